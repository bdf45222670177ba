package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deckmatch/feature-matrix/internal/application/score"
	"github.com/deckmatch/feature-matrix/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type mockScoreService struct{ mock.Mock }

func (m *mockScoreService) Submit(ctx context.Context, userID string, req score.SubmitRequest) (*domain.Score, error) {
	args := m.Called(ctx, userID, req)
	if s, _ := args.Get(0).(*domain.Score); s != nil {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

// --- Submit tests ---

func TestSubmitScore_HappyPath(t *testing.T) {
	svc := &mockScoreService{}
	svc.On("Submit", mock.Anything, "u1", mock.MatchedBy(func(r score.SubmitRequest) bool {
		return r.FeatureID == "f1" && r.Strategic != nil && *r.Strategic == 4
	})).Return(&domain.Score{
		FeatureID: "f1", UserID: "u1",
		Strategic: 4, Impact: 1, Technical: 1, Market: 1, Revenue: 1, Compliance: 1,
		User:    &domain.UserRef{ID: "u1", Email: "a@deckmatch.com"},
		Feature: &domain.FeatureRef{ID: "f1", Name: "Dark Mode"},
	}, nil)

	h := NewScoreHandler(svc)
	body := `{"featureId":"f1","strategic":4,"impact":1,"technical":1,"market":1,"revenue":1,"compliance":1}`
	req := withClaims(httptest.NewRequest(http.MethodPost, "/scores", strings.NewReader(body)), "u1", "a@deckmatch.com")
	rr := httptest.NewRecorder()
	h.Submit(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var env ScoreEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	require.NotNil(t, env.Score)
	assert.Equal(t, 4, env.Score.Strategic)
	assert.Equal(t, "Dark Mode", env.Score.Feature.Name)
	assert.Equal(t, "a@deckmatch.com", env.Score.User.Email)
}

func TestSubmitScore_OutOfRangeNamesDimension(t *testing.T) {
	svc := &mockScoreService{}
	svc.On("Submit", mock.Anything, "u1", mock.Anything).
		Return(nil, fmt.Errorf("invalid strategic score, must be an integer between 1 and 5: %w", domain.ErrBadRequest))

	h := NewScoreHandler(svc)
	body := `{"featureId":"f1","strategic":6,"impact":1,"technical":1,"market":1,"revenue":1,"compliance":1}`
	req := withClaims(httptest.NewRequest(http.MethodPost, "/scores", strings.NewReader(body)), "u1", "a@deckmatch.com")
	rr := httptest.NewRecorder()
	h.Submit(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "strategic")
}

func TestSubmitScore_FractionalValueNamesDimension(t *testing.T) {
	svc := &mockScoreService{}
	svc.On("Submit", mock.Anything, "u1", mock.MatchedBy(func(r score.SubmitRequest) bool {
		return r.Strategic != nil && *r.Strategic == 4.5
	})).Return(nil, fmt.Errorf("invalid strategic score, must be an integer between 1 and 5: %w", domain.ErrBadRequest))

	h := NewScoreHandler(svc)
	body := `{"featureId":"f1","strategic":4.5,"impact":1,"technical":1,"market":1,"revenue":1,"compliance":1}`
	req := withClaims(httptest.NewRequest(http.MethodPost, "/scores", strings.NewReader(body)), "u1", "a@deckmatch.com")
	rr := httptest.NewRecorder()
	h.Submit(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "strategic")
}

func TestSubmitScore_NoClaims(t *testing.T) {
	h := NewScoreHandler(&mockScoreService{})
	req := httptest.NewRequest(http.MethodPost, "/scores", strings.NewReader(`{}`))
	rr := httptest.NewRecorder()
	h.Submit(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
