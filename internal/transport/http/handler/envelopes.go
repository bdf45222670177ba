package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/deckmatch/feature-matrix/internal/domain"
)

// MessageEnvelope is the generic response wrapper.
type MessageEnvelope struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// LoginEnvelope wraps the login response.
type LoginEnvelope struct {
	Success bool            `json:"success"`
	User    *domain.UserRef `json:"user"`
}

// UserEnvelope wraps the whoami response.
type UserEnvelope struct {
	User *domain.UserRef `json:"user"`
}

// FeatureEnvelope wraps a single-feature response.
type FeatureEnvelope struct {
	Feature *domain.Feature `json:"feature"`
}

// FeatureListEnvelope wraps the feature list response.
type FeatureListEnvelope struct {
	Features []domain.Feature `json:"features"`
}

// DeleteEnvelope confirms a feature deletion.
type DeleteEnvelope struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	FeatureID string `json:"featureId"`
}

// ScoreEnvelope wraps a score submission response.
type ScoreEnvelope struct {
	Score *domain.Score `json:"score"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageEnvelope{Error: msg})
}

// respondError maps domain sentinels to their HTTP status and surfaces the
// message verbatim. Anything else is logged and reduced to a generic 500 so
// infrastructure detail never reaches the caller.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrBadRequest):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		slog.Error("unexpected error", "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
