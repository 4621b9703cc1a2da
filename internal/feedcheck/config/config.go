// Package config provides configuration loading for feedcheck.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	rssconfig "github.com/jdziat/rssfeed/pkg/config"
)

// LogFormat selects the slog handler used by feedcheck.
type LogFormat string

const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

// Config represents the complete feedcheck configuration.
type Config struct {
	Import rssconfig.Options `yaml:"import"`
	Output OutputConfig      `yaml:"output"`
	Log    LogConfig         `yaml:"log"`
}

// OutputConfig controls the normalize command.
type OutputConfig struct {
	Indent string `yaml:"indent"`
}

// LogConfig controls diagnostics written to stderr.
type LogConfig struct {
	Format LogFormat `yaml:"format"`
	Level  string    `yaml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Import: rssconfig.DefaultOptions(),
		Output: OutputConfig{
			Indent: "  ",
		},
		Log: LogConfig{
			Format: LogFormatText,
			Level:  "warn",
		},
	}
}

// Load reads configuration from the nearest config file and environment
// variables.
func Load() (*Config, error) {
	return LoadFile(findConfigFile())
}

// LoadFile reads configuration from path, which may be empty, then applies
// environment overrides.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	rssconfig.ApplyEnv(&cfg.Import)
	if cfg.Import.Debug {
		cfg.Log.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if err := c.Import.Validate(); err != nil {
		return err
	}
	switch c.Log.Format {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("config: unknown log format %q", c.Log.Format)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.Log.Level)
	}
	return nil
}

// findConfigFile searches for the configuration file.
func findConfigFile() string {
	candidates := []string{
		".feedcheck.yaml",
		".feedcheck.yml",
	}

	// Start from current directory and walk up
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		for _, name := range candidates {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// loadFromFile reads configuration from a YAML file.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}
