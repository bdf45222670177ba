package http

import (
	"github.com/deckmatch/feature-matrix/internal/infrastructure/dynamo"
	jwtinfra "github.com/deckmatch/feature-matrix/internal/infrastructure/jwt"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	UserRepo    *dynamo.UserRepo
	FeatureRepo *dynamo.FeatureRepo
	ScoreRepo   *dynamo.ScoreRepo
	JWTProvider *jwtinfra.Provider
}
