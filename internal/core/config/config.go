// Package config handles configuration loading and validation for the
// simplyjobs client.
package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	Server Server `yaml:"server"`
	Swipe  Swipe  `yaml:"swipe"`

	// SessionFile points at the identity file the login flow writes.
	SessionFile string `yaml:"session_file"`

	// DataDir is set by the caller, not from the config file.
	DataDir string `yaml:"-"`
}

// Server configures the transport collaborator.
type Server struct {
	// URL is the API base, e.g. http://localhost:8000.
	URL string `yaml:"url"`
	// Timeout bounds each request.
	Timeout time.Duration `yaml:"timeout"`
}

// Swipe configures the gesture classifier.
type Swipe struct {
	// Sensitivity is the drag distance, in units, past which a release
	// becomes a swipe. One terminal column is ten units.
	Sensitivity float64 `yaml:"sensitivity"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Server: Server{
			URL:     "http://localhost:8000",
			Timeout: 10 * time.Second,
		},
		Swipe: Swipe{
			Sensitivity: 100,
		},
	}
}

// Load reads configuration from the given path and sets the data
// directory. A missing file returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
			cfg.DataDir = dataDir
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Server.URL == "" {
		c.Server.URL = defaults.Server.URL
	}
	if c.Server.Timeout <= 0 {
		c.Server.Timeout = defaults.Server.Timeout
	}
	if c.Swipe.Sensitivity <= 0 {
		c.Swipe.Sensitivity = defaults.Swipe.Sensitivity
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data directory cannot be empty")
	}

	u, err := url.Parse(c.Server.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("server.url %q is not a valid absolute URL", c.Server.URL)
	}

	return nil
}
