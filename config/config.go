// Package config holds the settings of the risc16 grader.
package config

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/ezrec/risc16/engine"
	"github.com/ezrec/risc16/exercise"
	"github.com/ezrec/risc16/exercises"
	"github.com/ezrec/risc16/translate"
)

var f = translate.From

var (
	ErrConfigInvalid = errors.New(f("configuration invalid"))
)

// Environment overrides.
const (
	ENV_EXERCISES = "RISC16_EXERCISES"
	ENV_LOG_LEVEL = "RISC16_LOG_LEVEL"
)

// Config holds all grader configuration.
type Config struct {
	// Exercise directory. Empty selects the built-in collection.
	Exercises string `yaml:"exercises"`

	// Engine defaults
	MaxInstructions int    `yaml:"max_instructions"`
	Architecture    string `yaml:"architecture"`
	Trace           bool   `yaml:"trace"`
	Parallelism     int    `yaml:"parallelism"` // Zero uses every CPU.

	LogLevel string `yaml:"log_level"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		MaxInstructions: engine.DEFAULT_MAX_INSTRUCTIONS,
		Architecture:    engine.DEFAULT_ARCHITECTURE,
		LogLevel:        "info",
	}
}

// Load reads a YAML configuration file over the defaults. A missing file
// yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			if err := cfg.Validate(); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if dir, ok := os.LookupEnv(ENV_EXERCISES); ok {
		c.Exercises = dir
	}
	if level, ok := os.LookupEnv(ENV_LOG_LEVEL); ok {
		c.LogLevel = level
	}
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if c.MaxInstructions < 0 {
		return fmt.Errorf("%w: max_instructions %d", ErrConfigInvalid, c.MaxInstructions)
	}
	if c.Parallelism < 0 {
		return fmt.Errorf("%w: parallelism %d", ErrConfigInvalid, c.Parallelism)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: log_level: %w", ErrConfigInvalid, err)
	}
	return nil
}

// Level returns the logging level.
func (c *Config) Level() (zapcore.Level, error) {
	if len(c.LogLevel) == 0 {
		return zapcore.InfoLevel, nil
	}
	return zapcore.ParseLevel(c.LogLevel)
}

// Options returns the engine options of the configuration.
func (c *Config) Options() engine.Options {
	return engine.Options{
		MaxInstructions: c.MaxInstructions,
		Architecture:    c.Architecture,
		Trace:           c.Trace,
	}
}

// Store returns the exercise collection of the configuration.
func (c *Config) Store() exercise.Store {
	if len(c.Exercises) == 0 {
		return exercises.Store()
	}
	return &exercise.FSStore{FS: os.DirFS(c.Exercises)}
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
