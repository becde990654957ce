// Package config loads application configuration from the environment, with
// optional .env file support for local development.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds all runtime configuration.
type AppConfig struct {
	Port               string
	DatabasePath       string // empty selects the in-memory store
	LogLevel           string
	ModelPath          string // optional trained classifier model (JSON)
	OutputDir          string
	MaxUploadSizeBytes int64
	JobTTL             time.Duration
}

// Load reads configuration from a .env file (if present) and the process
// environment, applying defaults for anything unset.
func Load() *AppConfig {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded, using environment variables", "err", err)
	}

	return &AppConfig{
		Port:               getEnv("PORT", "8113"),
		DatabasePath:       getEnv("DATABASE_PATH", ""),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		ModelPath:          getEnv("CLASSIFIER_MODEL_PATH", ""),
		OutputDir:          getEnv("OUTPUT_DIR", "extracted"),
		MaxUploadSizeBytes: getEnvAsInt64("MAX_UPLOAD_SIZE_BYTES", 10*1024*1024),
		JobTTL:             getEnvAsDuration("JOB_TTL", time.Hour),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvAsInt64(key string, fallback int64) int64 {
	v := getEnv(key, "")
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		slog.Warn("invalid integer value, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	v := getEnv(key, "")
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("invalid duration value, using default", "key", key, "value", v, "default", fallback.String())
		return fallback
	}
	return d
}
