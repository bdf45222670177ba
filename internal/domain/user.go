package domain

import "time"

type User struct {
	UserID    string    `json:"id" dynamodbav:"user_id"`
	Email     string    `json:"email" dynamodbav:"email"`
	CreatedAt time.Time `json:"createdAt" dynamodbav:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" dynamodbav:"updated_at"`
}

// UserRef is the public projection embedded in API responses.
// Nothing beyond id and email ever leaves the service.
type UserRef struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func (u *User) Ref() *UserRef {
	if u == nil {
		return nil
	}
	return &UserRef{ID: u.UserID, Email: u.Email}
}

type LoginRequest struct {
	Email string `json:"email" validate:"required"`
}
