package handler

import (
	"encoding/json"
	"net/http"

	"github.com/deckmatch/feature-matrix/internal/application/feature"
	"github.com/deckmatch/feature-matrix/internal/domain"
	"github.com/deckmatch/feature-matrix/internal/transport/http/middleware"
	"github.com/go-chi/chi/v5"
)

// FeatureHandler handles feature CRUD endpoints.
type FeatureHandler struct {
	svc feature.Service
}

func NewFeatureHandler(svc feature.Service) *FeatureHandler {
	return &FeatureHandler{svc: svc}
}

func (h *FeatureHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	var req domain.CreateFeatureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	f, err := h.svc.Create(r.Context(), req, claims.UserID)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, FeatureEnvelope{Feature: f})
}

func (h *FeatureHandler) List(w http.ResponseWriter, r *http.Request) {
	features, err := h.svc.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	if features == nil {
		features = []domain.Feature{}
	}
	writeJSON(w, http.StatusOK, FeatureListEnvelope{Features: features})
}

func (h *FeatureHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	deletedID, err := h.svc.Delete(r.Context(), chi.URLParam(r, "id"), claims.UserID)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, DeleteEnvelope{
		Success:   true,
		Message:   "feature deleted successfully",
		FeatureID: deletedID,
	})
}
