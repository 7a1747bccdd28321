package config

import "time"

// holds all runtime configuration for the server
type Config struct {
	DatabaseURL string
	JWTSecret   string
	RedisURL    string
	Port        string
	Environment string
	TokenTTL    time.Duration
}
