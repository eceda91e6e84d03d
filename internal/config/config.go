// Package config loads the service configuration from the environment.
// A .env file is honored when present so local development matches the
// deployed configuration surface.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Default similarity thresholds, tuned to the extractor's embedding
// space. A different extractor model shifts the score distribution, so
// both are overridable via environment.
const (
	DefaultVerifyThreshold    = 0.40
	DefaultDuplicateThreshold = 0.50
)

// Thresholds groups the similarity cut-offs used by the enrollment and
// verification policies.
type Thresholds struct {
	// Verify is the minimum similarity for a positive verification.
	Verify float64
	// Duplicate is the similarity above which an enrollment is rejected
	// as colliding with an existing identity.
	Duplicate float64
}

// Config is the full runtime configuration.
type Config struct {
	ServiceName          string
	HTTPAddr             string
	DatabaseDSN          string
	RedisAddr            string
	ExtractorAddr        string
	ExtractorConcurrency int64
	ExtractionCacheTTL   int // seconds; 0 disables caching
	Thresholds           Thresholds
	JWTSecret            string
	JWTAudience          string
}

// AuthEnabled reports whether JWT manager authentication is configured.
func (c Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}

// Load reads configuration from the environment, after a best-effort
// .env load.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		ServiceName:   getEnv("SERVICE_NAME", "face-identity-service"),
		HTTPAddr:      getEnv("HTTP_ADDR", ":8080"),
		DatabaseDSN:   getEnv("DATABASE_DSN", "host=postgres user=postgres password=postgres dbname=faceid port=5432 sslmode=disable"),
		RedisAddr:     getEnv("REDIS_ADDR", "redis:6379"),
		ExtractorAddr: getEnv("EXTRACTOR_ADDR", "face-extractor:50051"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		JWTAudience:   os.Getenv("JWT_AUDIENCE"),
	}

	var err error
	if cfg.Thresholds.Verify, err = getFloat("VERIFY_THRESHOLD", DefaultVerifyThreshold); err != nil {
		return Config{}, err
	}
	if cfg.Thresholds.Duplicate, err = getFloat("DUPLICATE_THRESHOLD", DefaultDuplicateThreshold); err != nil {
		return Config{}, err
	}
	concurrency, err := getInt("EXTRACTOR_CONCURRENCY", 4)
	if err != nil {
		return Config{}, err
	}
	if concurrency < 1 {
		return Config{}, fmt.Errorf("config: EXTRACTOR_CONCURRENCY must be >= 1, got %d", concurrency)
	}
	cfg.ExtractorConcurrency = int64(concurrency)
	if cfg.ExtractionCacheTTL, err = getInt("EXTRACTION_CACHE_TTL_SECONDS", 300); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getFloat(key string, fallback float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s %q: %w", key, raw, err)
	}
	return value, nil
}

func getInt(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s %q: %w", key, raw, err)
	}
	return value, nil
}
