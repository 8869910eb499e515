package config_test

import (
	"log/slog"
	"testing"

	"github.com/johnwards/propcat/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	// Unset any env vars that might be set.
	t.Setenv("PROPCAT_DB", "")
	t.Setenv("PROPCAT_CATALOG", "")
	t.Setenv("PROPCAT_LOG_LEVEL", "")
	t.Setenv("PROPCAT_SEED", "")

	cfg := config.Load()

	if cfg.DBPath != "propcat.db" {
		t.Errorf("DBPath = %q, want %q", cfg.DBPath, "propcat.db")
	}
	if cfg.CatalogPath != "" {
		t.Errorf("CatalogPath = %q, want empty", cfg.CatalogPath)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if !cfg.Seed {
		t.Error("Seed = false, want true")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PROPCAT_DB", "/tmp/test.db")
	t.Setenv("PROPCAT_CATALOG", "/tmp/catalog.yaml")
	t.Setenv("PROPCAT_LOG_LEVEL", "debug")
	t.Setenv("PROPCAT_SEED", "false")

	cfg := config.Load()

	if cfg.DBPath != "/tmp/test.db" {
		t.Errorf("DBPath = %q, want %q", cfg.DBPath, "/tmp/test.db")
	}
	if cfg.CatalogPath != "/tmp/catalog.yaml" {
		t.Errorf("CatalogPath = %q, want %q", cfg.CatalogPath, "/tmp/catalog.yaml")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.Seed {
		t.Error("Seed = true, want false")
	}
}

func TestLoadInvalidSeedKeepsDefault(t *testing.T) {
	t.Setenv("PROPCAT_SEED", "sometimes")

	if cfg := config.Load(); !cfg.Seed {
		t.Error("Seed = false, want true")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: " warn ", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "loud", want: slog.LevelInfo, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := config.ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
