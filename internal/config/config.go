// Package config loads sajukit configuration from YAML with environment
// variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all sajukit configuration.
type Config struct {
	// Hints configuration
	Hints HintsConfig `yaml:"hints"`

	// Report rendering
	Render RenderConfig `yaml:"render"`

	// Batch processing
	Batch BatchConfig `yaml:"batch"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// HintsConfig points at the optional interpretation-hints file.
type HintsConfig struct {
	Path string `yaml:"path"`
}

// RenderConfig configures report rendering.
type RenderConfig struct {
	Format    string `yaml:"format"` // text, markdown, json
	Width     int    `yaml:"width"`
	Color     bool   `yaml:"color"`
	Separator string `yaml:"separator"`
}

// BatchConfig configures concurrent batch analysis.
type BatchConfig struct {
	Workers int    `yaml:"workers"`
	OutDir  string `yaml:"out_dir"`
}

// LoggingConfig configures logging output.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
	File   string `yaml:"file"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Hints: HintsConfig{
			Path: "",
		},
		Render: RenderConfig{
			Format:    "text",
			Width:     80,
			Color:     true,
			Separator: "-",
		},
		Batch: BatchConfig{
			Workers: 4,
			OutDir:  "",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			File:   "",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return defaults if config file doesn't exist
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if path := os.Getenv("SAJUKIT_HINTS"); path != "" {
		c.Hints.Path = path
	}
	if format := os.Getenv("SAJUKIT_FORMAT"); format != "" {
		c.Render.Format = format
	}
	if level := os.Getenv("SAJUKIT_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if dir := os.Getenv("SAJUKIT_OUT_DIR"); dir != "" {
		c.Batch.OutDir = dir
	}
}

// ValidFormats lists all supported render formats.
var ValidFormats = []string{"text", "markdown", "json"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	validFormat := false
	for _, f := range ValidFormats {
		if c.Render.Format == f {
			validFormat = true
			break
		}
	}
	if !validFormat {
		return fmt.Errorf("invalid render format: %s (valid: %v)", c.Render.Format, ValidFormats)
	}

	if c.Render.Width < 20 {
		return fmt.Errorf("render width too small: %d (minimum 20)", c.Render.Width)
	}

	if c.Batch.Workers < 1 {
		return fmt.Errorf("batch workers must be at least 1, got %d", c.Batch.Workers)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error)", c.Logging.Level)
	}

	return nil
}
