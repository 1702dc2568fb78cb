// Package config provides configuration management for ibx.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the ibx configuration.
type Config struct {
	Vault        string `yaml:"vault,omitempty"`
	Stylesheet   string `yaml:"stylesheet,omitempty"`
	Caption      string `yaml:"caption,omitempty"`
	OutputFormat string `yaml:"output_format,omitempty"`
}

// Validate checks that configured values are usable. All fields are
// optional, so only values that are present are checked.
func (c *Config) Validate() error {
	if c.Vault != "" {
		info, err := os.Stat(c.Vault)
		if err != nil {
			return fmt.Errorf("vault directory %s: %w", c.Vault, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("vault %s is not a directory", c.Vault)
		}
	}
	return nil
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables override existing values only if set and non-empty.
func (c *Config) LoadFromEnv() {
	if vault := os.Getenv("IBX_VAULT"); vault != "" {
		c.Vault = vault
	}
	if sheet := os.Getenv("IBX_STYLESHEET"); sheet != "" {
		c.Stylesheet = sheet
	}
	if caption := os.Getenv("IBX_CAPTION"); caption != "" {
		c.Caption = caption
	}
	if format := os.Getenv("IBX_OUTPUT_FORMAT"); format != "" {
		c.OutputFormat = format
	}
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	// Try XDG config directory first
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "ibx", "config.yml")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".ibx", "config.yml")
	}

	return filepath.Join(home, ".config", "ibx", "config.yml")
}

// Save writes the configuration to the specified path.
func (c *Config) Save(path string) error {
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

// LoadWithEnv loads configuration from file and overrides with environment
// variables. A missing file is not an error; env-only setups are fine.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		cfg = &Config{}
	}

	cfg.LoadFromEnv()
	return cfg, nil
}
