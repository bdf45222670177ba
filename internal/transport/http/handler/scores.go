package handler

import (
	"encoding/json"
	"net/http"

	"github.com/deckmatch/feature-matrix/internal/application/score"
	"github.com/deckmatch/feature-matrix/internal/transport/http/middleware"
)

// ScoreHandler handles score submission.
type ScoreHandler struct {
	svc score.Service
}

func NewScoreHandler(svc score.Service) *ScoreHandler {
	return &ScoreHandler{svc: svc}
}

func (h *ScoreHandler) Submit(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	var req score.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	sc, err := h.svc.Submit(r.Context(), claims.UserID, req)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ScoreEnvelope{Score: sc})
}
