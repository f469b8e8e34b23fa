package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config carries process-level settings read from the environment.
type Config struct {
	DatabaseURL string
	LogLevel    string
}

// Load reads configuration from the environment, consulting a local .env
// file when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DatabaseURL: getEnv("DATABASE_URL", "postgres://localhost/staffhub"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
