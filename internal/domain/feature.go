package domain

import "time"

type Feature struct {
	FeatureID   string    `json:"id" dynamodbav:"feature_id"`
	Name        string    `json:"name" dynamodbav:"name"`
	Description *string   `json:"description" dynamodbav:"description"`
	CreatedByID string    `json:"createdById" dynamodbav:"created_by_user_id"`
	CreatedAt   time.Time `json:"createdAt" dynamodbav:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" dynamodbav:"updated_at"`

	// Joined projections, populated by the feature service on reads.
	CreatedBy *UserRef `json:"createdBy,omitempty" dynamodbav:"-"`
	Scores    []Score  `json:"scores" dynamodbav:"-"`
}

// FeatureRef is the public projection embedded in score responses.
type FeatureRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (f *Feature) Ref() *FeatureRef {
	if f == nil {
		return nil
	}
	return &FeatureRef{ID: f.FeatureID, Name: f.Name}
}

type CreateFeatureRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
}
