package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// AppConfig holds the startup configuration that gets injected into
// constructors. AI credentials live here on purpose so the services never
// read ambient globals.
type AppConfig struct {
	Port      string
	JWTSecret string

	GoogleProjectID string
	GoogleLocation  string
	GeminiModel     string
	AITimeout       time.Duration

	EntryCacheTTL time.Duration
}

func Load() (*AppConfig, error) {
	cfg := &AppConfig{
		Port:            getEnv("PORT", "8080"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		GoogleProjectID: os.Getenv("GOOGLE_PROJECT_ID"),
		GoogleLocation:  getEnv("GOOGLE_LOCATION", "us-central1"),
		GeminiModel:     getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		AITimeout:       getEnvDuration("AI_TIMEOUT_SECONDS", 30*time.Second),
		EntryCacheTTL:   getEnvDuration("ENTRY_CACHE_TTL_SECONDS", 60*time.Second),
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET environment variable is not set")
	}
	if cfg.GoogleProjectID == "" {
		return nil, errors.New("GOOGLE_PROJECT_ID environment variable is not set")
	}
	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return defaultVal
}
