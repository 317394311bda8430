// Package config tests configuration loading.
package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)

	if cfg.Addr != DefaultAddr {
		t.Errorf("Addr: got %q, want %q", cfg.Addr, DefaultAddr)
	}
	if cfg.Database != DefaultDatabase {
		t.Errorf("Database: got %q, want %q", cfg.Database, DefaultDatabase)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel: got %q, want %q", cfg.LogLevel, DefaultLogLevel)
	}
	if cfg.LogFormat != DefaultLogFormat {
		t.Errorf("LogFormat: got %q, want %q", cfg.LogFormat, DefaultLogFormat)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todoapi.toml")
	content := `addr = ":9000"
database = "/tmp/test-db.json"
log_level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":9000" {
		t.Errorf("Addr: got %q, want :9000", cfg.Addr)
	}
	if cfg.Database != "/tmp/test-db.json" {
		t.Errorf("Database: got %q", cfg.Database)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel: got %q, want debug", cfg.LogLevel)
	}
	// Unset keys keep their defaults.
	if cfg.LogFormat != DefaultLogFormat {
		t.Errorf("LogFormat: got %q, want %q", cfg.LogFormat, DefaultLogFormat)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todoapi.toml")
	if err := os.WriteFile(path, []byte(`addr = ":9000"`), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	t.Setenv("TODOAPI_ADDR", ":5000")
	t.Setenv("TODOAPI_LOG_FORMAT", "json")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":5000" {
		t.Errorf("Addr: env must override file, got %q", cfg.Addr)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat: got %q, want json", cfg.LogFormat)
	}
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("TODOAPI_LOG_LEVEL", "loud")

	if _, err := Load(""); err == nil {
		t.Fatal("expected error for invalid log_level")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		cfg := &Config{LogLevel: tt.level}
		if got := cfg.SlogLevel(); got != tt.want {
			t.Errorf("SlogLevel(%q): got %v, want %v", tt.level, got, tt.want)
		}
	}
}
