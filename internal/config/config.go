// Package config handles configuration loading and defaults.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/BurntSushi/toml"
)

// Default values.
const (
	DefaultAddr      = ":4000"
	DefaultDatabase  = "db.json"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Config holds the full configuration for the API server.
type Config struct {
	Addr      string `toml:"addr"`
	Database  string `toml:"database"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
}

// Load builds configuration from sources in priority order:
// defaults, then a TOML config file (explicit path, or todoapi.toml in the
// working directory if present), then environment variables.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	setDefaults(cfg)

	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	loadFromEnv(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(cfg *Config) {
	cfg.Addr = DefaultAddr
	cfg.Database = DefaultDatabase
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
}

func findConfigFile() string {
	if _, err := os.Stat("todoapi.toml"); err == nil {
		return "todoapi.toml"
	}
	return ""
}

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TODOAPI_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("TODOAPI_DB"); v != "" {
		cfg.Database = v
	}
	if v := os.Getenv("TODOAPI_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TODOAPI_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
}

func (c *Config) validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q (want debug, info, warn or error)", c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log_format %q (want text or json)", c.LogFormat)
	}
	return nil
}

// SlogLevel maps the configured level name onto slog's levels.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
