package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/deckmatch/feature-matrix/internal/application/auth"
	"github.com/deckmatch/feature-matrix/internal/domain"
	"github.com/deckmatch/feature-matrix/internal/transport/http/middleware"
)

// CookieSettings configures the credential cookie set on login.
type CookieSettings struct {
	Name   string
	Secure bool          // true in production; the cookie then requires HTTPS
	MaxAge time.Duration // matches the token expiry
}

// AuthHandler handles login and identity-confirmation endpoints.
type AuthHandler struct {
	svc    auth.Service
	cookie CookieSettings
}

func NewAuthHandler(svc auth.Service, cookie CookieSettings) *AuthHandler {
	return &AuthHandler{svc: svc, cookie: cookie}
}

// Login finds or creates the user for an allow-listed email and sets the
// HTTP-only session cookie. No cookie is set on failure.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	u, token, err := h.svc.Login(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(h.cookie.MaxAge.Seconds()),
	})
	writeJSON(w, http.StatusOK, LoginEnvelope{Success: true, User: u.Ref()})
}

// Me returns the caller's public projection. Unlike the write paths, it
// re-resolves the user from the store so deleted users lose access even with
// a still-valid token.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	u, err := h.svc.Me(r.Context(), claims.UserID)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, UserEnvelope{User: u.Ref()})
}
