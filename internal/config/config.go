package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	DBPath      string // PROPCAT_DB, default "propcat.db"
	CatalogPath string // PROPCAT_CATALOG, optional
	LogLevel    string // PROPCAT_LOG_LEVEL, default "info"
	Seed        bool   // PROPCAT_SEED, default true
}

// Load reads configuration from environment variables with sensible defaults.
// An unparsable PROPCAT_SEED keeps the default.
func Load() Config {
	return Config{
		DBPath:      envOr("PROPCAT_DB", "propcat.db"),
		CatalogPath: os.Getenv("PROPCAT_CATALOG"),
		LogLevel:    envOr("PROPCAT_LOG_LEVEL", "info"),
		Seed:        boolEnvOr("PROPCAT_SEED", true),
	}
}

// ParseLevel maps a level name (debug, info, warn, error) to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", s)
	}
	return l, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func boolEnvOr(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
