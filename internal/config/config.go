package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"invoice-ledger/internal/logger"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds runtime settings. Values come from the process environment
// (optionally seeded from a .env file) and may be overridden by CLI flags.
type Config struct {
	// DueInDays is the payment term added to the issue date of every invoice.
	DueInDays int `env:"LEDGER_DUE_DAYS" envDefault:"30"`

	// ExportPath, when set, receives a JSON snapshot of the ledger when the
	// menu exits. The file is never read back.
	ExportPath string `env:"LEDGER_EXPORT_PATH"`

	LogLevel      string `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat     string `env:"LOG_FORMAT" envDefault:"console"`
	LogTimeFormat string `env:"LOG_TIME_FORMAT" envDefault:"2006-01-02T15:04:05Z07:00"`
	LogOutput     string `env:"LOG_OUTPUT" envDefault:"stderr"`
}

// Load parses the environment into a validated Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	if c.DueInDays < 0 {
		return fmt.Errorf("%w: LEDGER_DUE_DAYS must not be negative, got %d", ErrInvalidConfig, c.DueInDays)
	}
	switch strings.ToLower(c.LogFormat) {
	case "console", "json":
	default:
		return fmt.Errorf("%w: LOG_FORMAT must be console or json, got %q", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}

// GetLoggerConfig returns a logger configuration from the main config
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}
