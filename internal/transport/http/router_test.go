package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/deckmatch/feature-matrix/internal/config"
	jwtinfra "github.com/deckmatch/feature-matrix/internal/infrastructure/jwt"
	"github.com/stretchr/testify/assert"
)

func testRouter() http.Handler {
	cfg := &config.Config{
		AppEnv:         "development",
		JWTSecret:      "test-secret",
		TokenExpiry:    time.Hour,
		AuthCookieName: "auth-token",
		AllowedOrigins: []string{"*"},
	}
	return NewRouter(cfg, &Deps{JWTProvider: jwtinfra.NewProvider(cfg)})
}

func TestRouter_HealthCheckIsPublic(t *testing.T) {
	rr := httptest.NewRecorder()
	testRouter().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health-check", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRouter_ProtectedRoutesRequireCookie(t *testing.T) {
	r := testRouter()
	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/auth/me"},
		{http.MethodGet, "/features"},
		{http.MethodPost, "/features"},
		{http.MethodDelete, "/features/f1"},
		{http.MethodPost, "/scores"},
	} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(tc.method, tc.path, nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code, "%s %s", tc.method, tc.path)
	}
}

func TestRouter_WrongMethodIs405(t *testing.T) {
	r := testRouter()
	for _, tc := range []struct{ method, path string }{
		{http.MethodDelete, "/auth/login"},
		{http.MethodPut, "/features"},
		{http.MethodGet, "/scores"},
	} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(tc.method, tc.path, nil))
		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code, "%s %s", tc.method, tc.path)
	}
}

func TestRouter_UnknownPathIs404(t *testing.T) {
	rr := httptest.NewRecorder()
	testRouter().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
