package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultDevSecret signs tokens when JWT_SECRET is unset. Acceptable for local
// development only; Load refuses to start a production process with it.
const DefaultDevSecret = "dev-secret-change-in-production"

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort string
	AppEnv  string

	AWSRegion      string
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string
	DynamoTables   DynamoTables

	JWTSecret   string
	TokenExpiry time.Duration

	AuthCookieName string
	AllowedOrigins []string // CORS allowed origins
}

// DynamoTables holds the DynamoDB table name for each entity.
type DynamoTables struct {
	Users    string
	Features string
	Scores   string
}

// Load reads all configuration from environment variables.
// It fails when APP_ENV=production and no explicit JWT secret is configured,
// so a deployment can never silently sign tokens with the development default.
func Load() (*Config, error) {
	cfg := &Config{
		AppPort: getEnv("APP_PORT", "3000"),
		AppEnv:  getEnv("APP_ENV", "development"),

		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),
		DynamoTables: DynamoTables{
			Users:    getEnv("DYNAMO_TABLE_USERS", "users"),
			Features: getEnv("DYNAMO_TABLE_FEATURES", "features"),
			Scores:   getEnv("DYNAMO_TABLE_SCORES", "scores"),
		},

		JWTSecret:   getEnv("JWT_SECRET", DefaultDevSecret),
		TokenExpiry: time.Duration(getEnvInt("JWT_EXPIRY_DAYS", 7)) * 24 * time.Hour,

		AuthCookieName: getEnv("AUTH_COOKIE_NAME", "auth-token"),
		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}

	if cfg.IsProduction() && cfg.JWTSecret == DefaultDevSecret {
		return nil, fmt.Errorf("JWT_SECRET must be set explicitly when APP_ENV=production")
	}
	return cfg, nil
}

// IsProduction reports whether the process runs with production settings.
// Controls the Secure attribute on the auth cookie among other things.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
