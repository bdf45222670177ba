package score

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/deckmatch/feature-matrix/internal/domain"
)

type SubmitRequest struct {
	FeatureID string `json:"featureId"`
	domain.ScoreValues
}

type Service interface {
	// Submit validates the six dimensions and upserts the caller's score for
	// the feature. At most one score per (feature, user) pair ever exists.
	Submit(ctx context.Context, userID string, req SubmitRequest) (*domain.Score, error)
}

type scoreStore interface {
	Upsert(ctx context.Context, s *domain.Score) (*domain.Score, error)
}

type featureStore interface {
	Get(ctx context.Context, featureID string) (*domain.Feature, error)
}

type userStore interface {
	GetByID(ctx context.Context, userID string) (*domain.User, error)
}

type service struct {
	scores   scoreStore
	features featureStore
	users    userStore
}

func NewService(scores scoreStore, features featureStore, users userStore) Service {
	return &service{scores: scores, features: features, users: users}
}

func (s *service) Submit(ctx context.Context, userID string, req SubmitRequest) (*domain.Score, error) {
	if strings.TrimSpace(req.FeatureID) == "" {
		return nil, fmt.Errorf("featureId is required: %w", domain.ErrBadRequest)
	}

	// Dimensions are checked in a fixed order so the reported field is
	// deterministic when several are invalid.
	dims := []struct {
		name  string
		value *float64
	}{
		{"strategic", req.Strategic},
		{"impact", req.Impact},
		{"technical", req.Technical},
		{"market", req.Market},
		{"revenue", req.Revenue},
		{"compliance", req.Compliance},
	}
	for _, d := range dims {
		if d.value == nil || *d.value != math.Trunc(*d.value) || *d.value < 1 || *d.value > 5 {
			return nil, fmt.Errorf("invalid %s score, must be an integer between 1 and 5: %w", d.name, domain.ErrBadRequest)
		}
	}

	f, err := s.features.Get(ctx, req.FeatureID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("feature not found: %w", domain.ErrNotFound)
		}
		return nil, err
	}

	saved, err := s.scores.Upsert(ctx, &domain.Score{
		FeatureID:  req.FeatureID,
		UserID:     userID,
		Strategic:  int(*req.Strategic),
		Impact:     int(*req.Impact),
		Technical:  int(*req.Technical),
		Market:     int(*req.Market),
		Revenue:    int(*req.Revenue),
		Compliance: int(*req.Compliance),
	})
	if err != nil {
		return nil, err
	}

	if u, err := s.users.GetByID(ctx, userID); err == nil {
		saved.User = u.Ref()
	}
	saved.Feature = f.Ref()
	return saved, nil
}
