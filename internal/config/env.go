package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment,
// first loading a .env file from the working directory if one exists.
//
// Recognized variables:
//
//	SHOPKEEPER_DATABASE_DSN
//	SHOPKEEPER_LOG_LEVEL
func parseEnv(cfg *Config) {
	// A missing .env file is the normal case.
	_ = godotenv.Load()

	if v, ok := os.LookupEnv("SHOPKEEPER_DATABASE_DSN"); ok {
		cfg.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("SHOPKEEPER_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
}
