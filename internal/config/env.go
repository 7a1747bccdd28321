package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// tokens issued at login stay valid for 7 days unless TOKEN_TTL overrides it
const defaultTokenTTL = 7 * 24 * time.Hour

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have a .env file
	}

	databaseURL := os.Getenv("DATABASE_URL")
	jwtSecret := os.Getenv("JWT_SECRET")
	redisURL := os.Getenv("REDIS_URL")
	port := os.Getenv("PORT")
	environment := os.Getenv("ENVIRONMENT")

	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	// an empty signing secret would let any token validate; refuse to start
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	if port == "" {
		port = "8080"
	}

	if environment == "" {
		environment = "development"
	}

	tokenTTL := defaultTokenTTL
	if raw := os.Getenv("TOKEN_TTL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("TOKEN_TTL must be a positive duration, got %q", raw)
		}
		tokenTTL = parsed
	}

	return &Config{
		DatabaseURL: databaseURL,
		JWTSecret:   jwtSecret,
		RedisURL:    redisURL,
		Port:        port,
		Environment: environment,
		TokenTTL:    tokenTTL,
	}, nil
}
