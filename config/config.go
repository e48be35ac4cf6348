package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level server configuration.
type Config struct {
	// Listen is the HTTP listen address.
	Listen string `yaml:"listen"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// AllowPastDates lets events be booked on dates before today.
	AllowPastDates bool `yaml:"allow_past_dates"`
}

func DefaultConfig() *Config {
	return &Config{
		Listen:   ":8080",
		LogLevel: "info",
	}
}

// Normalize fills zero values with defaults.
func (c *Config) Normalize() {
	d := DefaultConfig()
	if c.Listen == "" {
		c.Listen = d.Listen
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		c.LogLevel = d.LogLevel
	}
}

// Load reads a YAML file at path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Normalize()
	return cfg, nil
}

// ApplyEnv overrides file values from the environment.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if port := getenv("PORT"); port != "" {
		host, _, err := net.SplitHostPort(c.Listen)
		if err != nil {
			host = ""
		}
		c.Listen = net.JoinHostPort(host, port)
	}
	if level := getenv("LOG_LEVEL"); level != "" {
		c.LogLevel = level
	}
	c.Normalize()
}
