package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds the application configuration.
type Config struct {
	ServerPort   int
	DatabasePath string
	CORSOrigin   string

	// Identity provider settings for bearer-token verification.
	AuthAudience string
	AuthIssuer   string
	AuthJWKSURL  string
}

// Load loads configuration from environment variables or sets defaults.
func Load() (*Config, error) {
	portStr := getEnv("PORT", "8000")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, err
	}

	issuer := getEnv("AUTH_ISSUER", "")
	audience := getEnv("AUTH_AUDIENCE", "")
	if issuer == "" || audience == "" {
		return nil, fmt.Errorf("AUTH_ISSUER and AUTH_AUDIENCE are required")
	}

	// The provider publishes its signing keys under the issuer by
	// convention; allow an explicit override.
	jwksURL := getEnv("AUTH_JWKS_URL", strings.TrimSuffix(issuer, "/")+"/.well-known/jwks.json")

	return &Config{
		ServerPort:   port,
		DatabasePath: getEnv("DATABASE_PATH", "./homestead.db"),
		CORSOrigin:   getEnv("CORS_ORIGIN", "http://localhost:3000"),
		AuthAudience: audience,
		AuthIssuer:   issuer,
		AuthJWKSURL:  jwksURL,
	}, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
