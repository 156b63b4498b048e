// Package config handles loading and managing application configuration
// from YAML files, an optional .env file and environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/openclaw/terminal-qr/script"
	"github.com/openclaw/terminal-qr/session"
)

// Config holds all application configuration values.
type Config struct {
	Port           int            `yaml:"port"`
	LogLevel       string         `yaml:"log_level"`
	Dialect        script.Dialect `yaml:"dialect"`
	TerminalWidth  int            `yaml:"terminal_width"`
	PreviewWidth   int            `yaml:"preview_width"`
	SessionTTL     Duration       `yaml:"session_ttl"`
	SessionCleanup Duration       `yaml:"session_cleanup"`
}

// Duration is a wrapper around time.Duration that supports YAML unmarshalling
// from human-readable strings like "30s", "5m", "1h".
type Duration struct {
	time.Duration
}

// UnmarshalYAML implements the yaml.Unmarshaler interface for Duration.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	d.Duration = parsed
	return nil
}

// MarshalYAML implements the yaml.Marshaler interface for Duration.
func (d Duration) MarshalYAML() (interface{}, error) {
	return d.Duration.String(), nil
}

// defaults returns a Config populated with sensible default values.
func defaults() *Config {
	return &Config{
		Port:           8556,
		LogLevel:       "info",
		Dialect:        script.Windows,
		TerminalWidth:  2,
		PreviewWidth:   1,
		SessionTTL:     Duration{30 * time.Minute},
		SessionCleanup: Duration{10 * time.Minute},
	}
}

// Load reads configuration from the YAML file at path, falling back to
// defaults if the file does not exist. A .env file in the working directory
// is loaded first when present; TQR_* environment variables then override
// any file or default values.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading .env file: %w", err)
	}

	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// File doesn't exist, proceed with defaults.
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies TQR_* environment variable overrides to cfg.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("TQR_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Port = p
		}
	}
	if v := os.Getenv("TQR_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TQR_DIALECT"); v != "" {
		d, err := script.ParseDialect(v)
		if err != nil {
			return fmt.Errorf("TQR_DIALECT: %w", err)
		}
		cfg.Dialect = d
	}
	if v := os.Getenv("TQR_TERMINAL_WIDTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.TerminalWidth = n
		}
	}
	if v := os.Getenv("TQR_PREVIEW_WIDTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.PreviewWidth = n
		}
	}
	if v := os.Getenv("TQR_SESSION_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.SessionTTL = Duration{d}
		}
	}
	return nil
}

// Validate checks that the loaded values are usable.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.TerminalWidth < 1 || c.TerminalWidth > session.MaxWidth {
		return fmt.Errorf("terminal_width must be between 1 and %d, got %d", session.MaxWidth, c.TerminalWidth)
	}
	if c.PreviewWidth < 1 || c.PreviewWidth > session.MaxWidth {
		return fmt.Errorf("preview_width must be between 1 and %d, got %d", session.MaxWidth, c.PreviewWidth)
	}
	if c.SessionTTL.Duration <= 0 {
		return fmt.Errorf("session_ttl must be positive, got %s", c.SessionTTL)
	}
	return nil
}
