// Package config provides configuration management for fil.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/open-cli-collective/filing-cli/internal/logging"
	"github.com/open-cli-collective/filing-cli/internal/view"
	"github.com/open-cli-collective/filing-cli/pkg/md"
)

// Defaults applied to unset fields.
const (
	DefaultOutputFormat = "table"
	DefaultLogLevel     = "warn"
)

// Environment variables that override the config file.
const (
	EnvCharsPerPage = "FIL_CHARS_PER_PAGE"
	EnvOutputFormat = "FIL_OUTPUT_FORMAT"
	EnvLogLevel     = "FIL_LOG_LEVEL"
)

// EnvVars lists every environment variable read by LoadFromEnv.
func EnvVars() []string {
	return []string{EnvCharsPerPage, EnvOutputFormat, EnvLogLevel}
}

// Config holds the fil configuration.
type Config struct {
	CharsPerPage int    `yaml:"chars_per_page,omitempty"`
	OutputFormat string `yaml:"output_format,omitempty"`
	LogLevel     string `yaml:"log_level,omitempty"`
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	if c.CharsPerPage < 0 {
		return errors.New("chars_per_page must not be negative")
	}
	if err := view.ValidateFormat(c.OutputFormat); err != nil {
		return err
	}
	return logging.ValidateLevel(c.LogLevel)
}

// ApplyDefaults fills unset fields with their default values.
func (c *Config) ApplyDefaults() {
	if c.CharsPerPage == 0 {
		c.CharsPerPage = md.DefaultCharsPerPage
	}
	if c.OutputFormat == "" {
		c.OutputFormat = DefaultOutputFormat
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables override existing values only if set and non-empty.
// A budget that is not an integer is reported as an error.
func (c *Config) LoadFromEnv() error {
	if v := os.Getenv(EnvCharsPerPage); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvCharsPerPage, v, err)
		}
		c.CharsPerPage = n
	}
	if v := os.Getenv(EnvOutputFormat); v != "" {
		c.OutputFormat = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	return nil
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	// Try XDG config directory first
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "fil", "config.yml")
	}

	// Fall back to ~/.config/fil/config.yml
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".fil", "config.yml")
	}

	return filepath.Join(home, ".config", "fil", "config.yml")
}

// Save writes the configuration to the specified path.
func (c *Config) Save(path string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Load reads the configuration from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadWithEnv loads configuration from file, overrides it with environment
// variables and fills defaults. A missing file is not an error.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		cfg = &Config{}
	}

	if err := cfg.LoadFromEnv(); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	return cfg, nil
}
