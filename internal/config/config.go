// Package config loads the optional bordblick configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds user settings. Every field has a sensible default so the
// tool works without any config file at all.
type Config struct {
	// Endpoint overrides the portal base URL
	Endpoint string

	// Interval is the dashboard refresh interval
	Interval time.Duration

	// History is the snapshot buffer capacity
	History int

	// Replay points at a recording directory to replay instead of
	// polling the live portal
	Replay string

	// Color controls colored output: auto, always, or never
	Color string
}

// rawConfig is the file schema. Interval is a duration string ("2s",
// "500ms") since YAML has no duration type.
type rawConfig struct {
	Endpoint string `yaml:"endpoint"`
	Interval string `yaml:"interval"`
	History  *int   `yaml:"history"`
	Replay   string `yaml:"replay"`
	Color    string `yaml:"color"`
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		Interval: time.Second,
		History:  60,
		Color:    "auto",
	}
}

// Load reads a config file and merges it over the defaults. A missing
// file at the default location is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if raw.Endpoint != "" {
		cfg.Endpoint = raw.Endpoint
	}
	if raw.Interval != "" {
		d, err := time.ParseDuration(raw.Interval)
		if err != nil {
			return nil, fmt.Errorf("invalid interval %q: %w", raw.Interval, err)
		}
		cfg.Interval = d
	}
	if raw.History != nil {
		cfg.History = *raw.History
	}
	if raw.Replay != "" {
		cfg.Replay = raw.Replay
	}
	if raw.Color != "" {
		cfg.Color = raw.Color
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "bordblick", "config.yaml")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "bordblick", "config.yaml")
}

func (c *Config) validate() error {
	if c.Interval <= 0 {
		return fmt.Errorf("interval must be positive, got %s", c.Interval)
	}
	if c.History < 1 {
		return fmt.Errorf("history must be at least 1, got %d", c.History)
	}
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("color must be auto, always, or never, got %q", c.Color)
	}
	return nil
}
