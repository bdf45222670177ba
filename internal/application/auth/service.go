package auth

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/deckmatch/feature-matrix/internal/domain"
	"github.com/deckmatch/feature-matrix/internal/pkg/id"
	"github.com/deckmatch/feature-matrix/internal/pkg/validate"
)

// emailPattern is the login allow-list. Any address outside @deckmatch.com is
// rejected unconditionally; this is the only access-control rule at signup.
var emailPattern = regexp.MustCompile(`^[^\s@]+@deckmatch\.com$`)

type Service interface {
	// Login normalizes and checks the email, then finds or creates the user
	// and issues a signed session token.
	Login(ctx context.Context, req domain.LoginRequest) (*domain.User, string, error)
	// Me re-resolves the authenticated user from the store. A verified token
	// whose user row is gone no longer grants access.
	Me(ctx context.Context, userID string) (*domain.User, error)
}

type userStore interface {
	FindOrCreate(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, userID string) (*domain.User, error)
}

type tokenSigner interface {
	Sign(userID, email string) (string, error)
}

type service struct {
	users  userStore
	tokens tokenSigner
}

func NewService(users userStore, tokens tokenSigner) Service {
	return &service{users: users, tokens: tokens}
}

func (s *service) Login(ctx context.Context, req domain.LoginRequest) (*domain.User, string, error) {
	if err := validate.Struct(req); err != nil {
		return nil, "", fmt.Errorf("email is required: %w", domain.ErrBadRequest)
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !emailPattern.MatchString(email) {
		return nil, "", fmt.Errorf("only @deckmatch.com email addresses are allowed: %w", domain.ErrForbidden)
	}

	now := time.Now().UTC()
	u, err := s.users.FindOrCreate(ctx, &domain.User{
		UserID:    id.New(),
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Sign(u.UserID, u.Email)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *service) Me(ctx context.Context, userID string) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		// Only a missing row revokes access; a store failure stays a store failure.
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("user no longer exists: %w", domain.ErrUnauthorized)
		}
		return nil, err
	}
	return u, nil
}
