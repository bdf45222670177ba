package domain

import "time"

// Score is one user's six-dimensional rating of a feature. At most one row
// exists per (feature, user) pair; resubmission overwrites the prior values.
type Score struct {
	FeatureID  string    `json:"featureId" dynamodbav:"feature_id"`
	UserID     string    `json:"userId" dynamodbav:"user_id"`
	Strategic  int       `json:"strategic" dynamodbav:"strategic"`
	Impact     int       `json:"impact" dynamodbav:"impact"`
	Technical  int       `json:"technical" dynamodbav:"technical"`
	Market     int       `json:"market" dynamodbav:"market"`
	Revenue    int       `json:"revenue" dynamodbav:"revenue"`
	Compliance int       `json:"compliance" dynamodbav:"compliance"`
	CreatedAt  time.Time `json:"createdAt" dynamodbav:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" dynamodbav:"updated_at"`

	// Joined projections, populated on reads.
	User    *UserRef    `json:"user,omitempty" dynamodbav:"-"`
	Feature *FeatureRef `json:"feature,omitempty" dynamodbav:"-"`
}

// ScoreValues carries the six rated dimensions as submitted. Pointer fields
// so that missing values are distinguishable from zero after JSON decoding,
// and float64 so that a fractional submission like 4.5 survives decoding and
// can be rejected with the dimension named instead of a generic body error.
type ScoreValues struct {
	Strategic  *float64 `json:"strategic"`
	Impact     *float64 `json:"impact"`
	Technical  *float64 `json:"technical"`
	Market     *float64 `json:"market"`
	Revenue    *float64 `json:"revenue"`
	Compliance *float64 `json:"compliance"`
}
