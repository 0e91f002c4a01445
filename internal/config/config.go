// Package config loads the companion's YAML configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// BackendConfig describes the remote schedule backend the companion talks to.
type BackendConfig struct {
	// BaseURL is the backend's root, e.g. "https://schedule.example.com".
	BaseURL string `yaml:"base_url"`

	// Token is the session's bearer token. Obtaining and refreshing it is
	// outside the companion's scope.
	Token string `yaml:"token"`

	// TimeoutSeconds bounds every backend round trip.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// Config is the top-level application configuration.
type Config struct {
	// Listen is the local HTTP listen address.
	Listen string `yaml:"listen"`

	// DataDir holds the SQLite preferences database.
	DataDir string `yaml:"data_dir"`

	Backend BackendConfig `yaml:"backend"`
}

// Default returns an in-memory default configuration.
func Default() *Config {
	return &Config{
		Listen:  "127.0.0.1:8099",
		DataDir: "./data",
		Backend: BackendConfig{
			TimeoutSeconds: 15,
		},
	}
}

// Normalize fills missing or zero values with defaults so partially filled
// configs still behave.
func (c *Config) Normalize() {
	if c.Listen == "" {
		c.Listen = "127.0.0.1:8099"
	}
	if c.DataDir == "" {
		c.DataDir = "./data"
	}
	if c.Backend.TimeoutSeconds <= 0 {
		c.Backend.TimeoutSeconds = 15
	}
}

// Validate checks the fields without which the companion cannot start.
func (c *Config) Validate() error {
	if c.Backend.BaseURL == "" {
		return errors.New("backend.base_url is required")
	}
	if c.Backend.Token == "" {
		return errors.New("backend.token is required")
	}
	return nil
}

// Timeout returns the backend request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Backend.TimeoutSeconds) * time.Second
}

// Load reads the configuration from path. A missing file yields the
// defaults; the caller decides whether the result is complete enough via
// Validate.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.Normalize()
	return cfg, nil
}
