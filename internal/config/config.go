package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	// DatabaseURL enables the Postgres-authored question bank and the
	// archive store. Empty means in-memory only.
	DatabaseURL string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		Port:        getenvDefault("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}
