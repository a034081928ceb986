package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// ListenAddr is the fixed address the HTTP server binds to.
const ListenAddr = "0.0.0.0:8000"

// Config holds all configuration for the items service
type Config struct {
	ServiceName string
	DatabaseURL string
	LogLevel    string
}

// Load loads configuration from environment variables. A .env file in the
// working directory is applied first when one exists; variables already set
// in the environment win over it.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServiceName: getEnv("SERVICE_NAME", "items"),
		DatabaseURL: databaseURL(),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}
}

// databaseURL returns DATABASE_URL verbatim, or a postgres URL assembled from
// the POSTGRES_* variables.
func databaseURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		getEnv("POSTGRES_USER", "rust"),
		getEnv("POSTGRES_PASSWORD", "rust"),
		getEnv("POSTGRES_HOST", "db"),
		getEnv("POSTGRES_DB", "rustdb"),
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
