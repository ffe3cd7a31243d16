// Package config loads the YAML run configuration for the aoc command.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Defaults applied by Finalize.
const (
	DefaultInputDir  = "inputs"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
	FirstDay         = 1
	LastDay          = 4
)

var (
	// ErrInvalidLogLevel indicates an unknown log level.
	ErrInvalidLogLevel = errors.New("config: log_level must be one of debug, info, warn, error")
	// ErrInvalidLogFormat indicates an unknown log format.
	ErrInvalidLogFormat = errors.New("config: log_format must be text or json")
	// ErrInvalidDay indicates a day outside the solved range.
	ErrInvalidDay = errors.New("config: day out of range")
)

// Config describes which puzzles to run and where their inputs live.
type Config struct {
	InputDir  string         `yaml:"input_dir"`
	LogLevel  string         `yaml:"log_level"`
	LogFormat string         `yaml:"log_format"`
	Days      []int          `yaml:"days"`
	Inputs    map[int]string `yaml:"inputs"`
}

// Load reads and finalizes the configuration at path.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(b)
}

// Parse decodes YAML bytes and finalizes the result.
// Empty input yields the default configuration.
func Parse(b []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Finalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns a finalized configuration with every day enabled.
// It panics if the built-in defaults fail validation.
func Default() *Config {
	cfg := &Config{}
	if err := cfg.Finalize(); err != nil {
		panic(err)
	}
	return cfg
}

// Finalize fills in defaults and validates the configuration.
func (c *Config) Finalize() error {
	if c.InputDir == "" {
		c.InputDir = DefaultInputDir
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = DefaultLogFormat
	}
	if len(c.Days) == 0 {
		for d := FirstDay; d <= LastDay; d++ {
			c.Days = append(c.Days, d)
		}
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.LogFormat)
	}
	for _, d := range c.Days {
		if err := ValidateDay(d); err != nil {
			return err
		}
	}
	for d := range c.Inputs {
		if err := ValidateDay(d); err != nil {
			return fmt.Errorf("inputs: %w", err)
		}
	}
	return nil
}

// ValidateDay returns ErrInvalidDay unless FirstDay <= day <= LastDay.
func ValidateDay(day int) error {
	if day < FirstDay || day > LastDay {
		return fmt.Errorf("%w: %d (want %d..%d)", ErrInvalidDay, day, FirstDay, LastDay)
	}
	return nil
}

// InputPath returns the input file for day: the per-day override if set,
// otherwise <InputDir>/day<N>.txt.
func (c *Config) InputPath(day int) string {
	if p, ok := c.Inputs[day]; ok && p != "" {
		return p
	}
	return filepath.Join(c.InputDir, "day"+strconv.Itoa(day)+".txt")
}
