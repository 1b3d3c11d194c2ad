// Package config loads tool settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the environment-driven settings.
type Config struct {
	BaseURL  string        // IMMO_BASE_URL, empty means the production API
	Timeout  time.Duration // IMMO_TIMEOUT
	CacheTTL time.Duration // IMMO_CACHE_TTL
	DebugLog string        // IMMO_DEBUG_LOG, path of the debug log file
}

const (
	defaultTimeout  = 10 * time.Second
	defaultCacheTTL = 2 * time.Minute
)

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first if present; real environment variables win.
func Load() Config {
	// godotenv does not override variables that are already set
	_ = godotenv.Load()

	return Config{
		BaseURL:  os.Getenv("IMMO_BASE_URL"),
		Timeout:  durationEnv("IMMO_TIMEOUT", defaultTimeout),
		CacheTTL: durationEnv("IMMO_CACHE_TTL", defaultCacheTTL),
		DebugLog: os.Getenv("IMMO_DEBUG_LOG"),
	}
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
