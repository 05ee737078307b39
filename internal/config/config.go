// Package config loads the pipeloop CLI configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pipeloop/area"
)

// Config holds all CLI configuration.
type Config struct {
	// Inputs lists maze files to solve when none are given on the command line.
	Inputs []string `yaml:"inputs"`
	// Method is the enclosed-cell method: pick or scanline.
	Method string `yaml:"method"`
	// Workers bounds concurrent solves.
	Workers int `yaml:"workers"`
	// Verify cross-checks both area methods.
	Verify bool `yaml:"verify"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Inputs:  []string{"input.txt"},
		Method:  area.MethodPick.String(),
		Workers: 4,
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if _, err := area.ParseMethod(c.Method); err != nil {
		return fmt.Errorf("invalid method: %w", err)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging level %q", c.Logging.Level)
	}
	return nil
}

// AreaMethod returns the parsed Method. Call after Validate.
func (c *Config) AreaMethod() area.Method {
	m, _ := area.ParseMethod(c.Method)
	return m
}
