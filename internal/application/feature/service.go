package feature

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/deckmatch/feature-matrix/internal/domain"
	"github.com/deckmatch/feature-matrix/internal/pkg/id"
)

type Service interface {
	// Create stores a feature owned by ownerID. The owner always comes from
	// the resolved session, never from the request body.
	Create(ctx context.Context, req domain.CreateFeatureRequest, ownerID string) (*domain.Feature, error)
	// List returns every feature, newest first, joined with the owner
	// projection and all scores (each with its scorer's projection).
	List(ctx context.Context) ([]domain.Feature, error)
	// Delete removes the feature and, in the same cascade, all its scores.
	// Only the owner may delete. Returns the deleted id for confirmation.
	Delete(ctx context.Context, featureID, callerID string) (string, error)
}

type featureStore interface {
	Put(ctx context.Context, f *domain.Feature) error
	Get(ctx context.Context, featureID string) (*domain.Feature, error)
	Scan(ctx context.Context) ([]domain.Feature, error)
	DeleteCascade(ctx context.Context, featureID string, scorerIDs []string) error
}

type scoreStore interface {
	ListByFeature(ctx context.Context, featureID string) ([]domain.Score, error)
}

type userStore interface {
	GetByID(ctx context.Context, userID string) (*domain.User, error)
}

type service struct {
	features featureStore
	scores   scoreStore
	users    userStore
}

func NewService(features featureStore, scores scoreStore, users userStore) Service {
	return &service{features: features, scores: scores, users: users}
}

func (s *service) Create(ctx context.Context, req domain.CreateFeatureRequest, ownerID string) (*domain.Feature, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("feature name is required: %w", domain.ErrBadRequest)
	}
	var description *string
	if req.Description != nil {
		if d := strings.TrimSpace(*req.Description); d != "" {
			description = &d
		}
	}

	now := time.Now().UTC()
	f := &domain.Feature{
		FeatureID:   id.New(),
		Name:        name,
		Description: description,
		CreatedByID: ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.features.Put(ctx, f); err != nil {
		return nil, err
	}

	if owner, err := s.users.GetByID(ctx, ownerID); err == nil {
		f.CreatedBy = owner.Ref()
	}
	f.Scores = []domain.Score{}
	return f, nil
}

func (s *service) List(ctx context.Context) ([]domain.Feature, error) {
	features, err := s.features.Scan(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(features, func(i, j int) bool {
		if !features[i].CreatedAt.Equal(features[j].CreatedAt) {
			return features[i].CreatedAt.After(features[j].CreatedAt)
		}
		return features[i].FeatureID > features[j].FeatureID
	})

	// Per-request cache of user projections; the same scorer typically
	// appears across many features.
	refs := map[string]*domain.UserRef{}
	for i := range features {
		f := &features[i]
		f.CreatedBy = s.userRef(ctx, refs, f.CreatedByID)
		scores, err := s.scores.ListByFeature(ctx, f.FeatureID)
		if err != nil {
			return nil, err
		}
		for j := range scores {
			scores[j].User = s.userRef(ctx, refs, scores[j].UserID)
		}
		if scores == nil {
			scores = []domain.Score{}
		}
		f.Scores = scores
	}
	return features, nil
}

func (s *service) Delete(ctx context.Context, featureID, callerID string) (string, error) {
	if strings.TrimSpace(featureID) == "" {
		return "", fmt.Errorf("feature id is required: %w", domain.ErrBadRequest)
	}
	f, err := s.features.Get(ctx, featureID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", fmt.Errorf("feature not found: %w", domain.ErrNotFound)
		}
		return "", err
	}
	if f.CreatedByID != callerID {
		return "", fmt.Errorf("you can only delete features you created: %w", domain.ErrForbidden)
	}

	scores, err := s.scores.ListByFeature(ctx, featureID)
	if err != nil {
		return "", err
	}
	scorerIDs := make([]string, 0, len(scores))
	for _, sc := range scores {
		scorerIDs = append(scorerIDs, sc.UserID)
	}
	if err := s.features.DeleteCascade(ctx, featureID, scorerIDs); err != nil {
		return "", err
	}
	return featureID, nil
}

func (s *service) userRef(ctx context.Context, cache map[string]*domain.UserRef, userID string) *domain.UserRef {
	if ref, ok := cache[userID]; ok {
		return ref
	}
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		cache[userID] = nil
		return nil
	}
	cache[userID] = u.Ref()
	return cache[userID]
}
