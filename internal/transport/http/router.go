package http

import (
	"net/http"

	"github.com/deckmatch/feature-matrix/internal/application/auth"
	"github.com/deckmatch/feature-matrix/internal/application/feature"
	"github.com/deckmatch/feature-matrix/internal/application/score"
	"github.com/deckmatch/feature-matrix/internal/config"
	"github.com/deckmatch/feature-matrix/internal/transport/http/handler"
	appmiddleware "github.com/deckmatch/feature-matrix/internal/transport/http/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true, // session token travels in a cookie
		MaxAge:           300,
	}))

	authMw := appmiddleware.Auth(deps.JWTProvider, cfg.AuthCookieName)

	// 5 requests/second, burst of 10 — login is unauthenticated and creates users.
	loginRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	authSvc := auth.NewService(deps.UserRepo, deps.JWTProvider)
	featureSvc := feature.NewService(deps.FeatureRepo, deps.ScoreRepo, deps.UserRepo)
	scoreSvc := score.NewService(deps.ScoreRepo, deps.FeatureRepo, deps.UserRepo)

	healthH := handler.NewHealthHandler()
	authH := handler.NewAuthHandler(authSvc, handler.CookieSettings{
		Name:   cfg.AuthCookieName,
		Secure: cfg.IsProduction(),
		MaxAge: cfg.TokenExpiry,
	})
	featureH := handler.NewFeatureHandler(featureSvc)
	scoreH := handler.NewScoreHandler(scoreSvc)

	// ── Public routes (no auth) ──────────────────────────────────────────
	r.Get("/health-check", healthH.Ping)
	r.With(loginRL.Limit).Post("/auth/login", authH.Login)

	// ── Authenticated routes ─────────────────────────────────────────────
	r.Group(func(r chi.Router) {
		r.Use(authMw)

		r.Get("/auth/me", authH.Me)
		r.Get("/features", featureH.List)
		r.Post("/features", featureH.Create)
		r.Delete("/features/{id}", featureH.Delete)
		r.Post("/scores", scoreH.Submit)
	})

	return r
}
