// Package config loads the server configuration from environment
// variables.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/pdatalab/tripmatch-backend-go/internal/ingest"
)

// Config holds the server configuration.
type Config struct {
	Port        string
	JWTSecret   string
	MaxDatasets int

	RateLimit       int
	RateLimitWindow time.Duration

	Ingest ingest.Options
}

// Load reads the configuration from the environment, falling back to
// defaults suitable for local use.
func Load() *Config {
	cfg := &Config{
		Port:            getEnv("PORT", ":8080"),
		JWTSecret:       getEnv("JWT_SECRET", "change-me-in-production"),
		MaxDatasets:     getEnvInt("MAX_DATASETS", 16),
		RateLimit:       getEnvInt("RATE_LIMIT", 60),
		RateLimitWindow: time.Minute,
		Ingest:          ingest.DefaultOptions(),
	}

	if tz := os.Getenv("TIMEZONE"); tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			cfg.Ingest.Timezone = loc
		}
	}
	if v := os.Getenv("BIRDEYE_COEFFICIENT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.Ingest.BirdeyeCoefficient = f
		}
	}
	if v := os.Getenv("REPAIR_TIMESTAMPS"); v != "" {
		cfg.Ingest.RepairTimestamps = v == "true" || v == "1"
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
