// Package config provides unified configuration loading for attractgen.
// It supports loading from YAML files and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/nvandessel/attractgen/internal/constants"
	"github.com/nvandessel/attractgen/internal/logging"
)

// Config contains all attractgen configuration settings.
type Config struct {
	// Output is the data file written by the write command.
	Output string `json:"output" yaml:"output" env:"ATTRACTGEN_OUTPUT"`

	// Seed makes generation reproducible. Zero draws from the unseeded
	// process-wide source, giving a different matrix on every run.
	Seed uint64 `json:"seed" yaml:"seed" env:"ATTRACTGEN_SEED"`

	// Range bounds the magnitude of generated values.
	Range RangeConfig `json:"range" yaml:"range"`

	// Logging contains settings for operational logging.
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// RangeConfig bounds the magnitude of generated attraction values.
type RangeConfig struct {
	Low  float64 `json:"low" yaml:"low" env:"ATTRACTGEN_LOW"`
	High float64 `json:"high" yaml:"high" env:"ATTRACTGEN_HIGH"`
}

// LoggingConfig configures attractgen's logging behavior.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug", or "trace".
	// "trace" logs every drawn value.
	Level string `json:"level" yaml:"level" env:"ATTRACTGEN_LOG_LEVEL"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Output: constants.DefaultOutputFile,
		Seed:   0,
		Range: RangeConfig{
			Low:  constants.DefaultLow,
			High: constants.DefaultHigh,
		},
		Logging: LoggingConfig{
			Level: logging.LevelNameInfo,
		},
	}
}

// DefaultPath returns ~/.attractgen/config.yaml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(homeDir, constants.ConfigDirName, constants.ConfigFileName), nil
}

// Load loads configuration from the default location and environment variables.
// Order: defaults -> ~/.attractgen/config.yaml -> environment variables
func Load() (*Config, error) {
	cfg := Default()

	if path, err := DefaultPath(); err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			fileCfg, loadErr := LoadFromFile(path)
			if loadErr != nil {
				return nil, fmt.Errorf("loading config file: %w", loadErr)
			}
			cfg = fileCfg
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadPath loads configuration from an explicit file followed by environment
// variables. An empty path behaves like Load.
func LoadPath(path string) (*Config, error) {
	if path == "" {
		return Load()
	}
	cfg, err := LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading config file: %w", err)
	}
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFile loads configuration from a specific YAML file. Keys missing
// from the file keep their defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Range.Low <= 0 {
		return fmt.Errorf("range.low must be positive, got %v", c.Range.Low)
	}
	if c.Range.High < c.Range.Low {
		return fmt.Errorf("range.high (%v) must not be below range.low (%v)", c.Range.High, c.Range.Low)
	}
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, trace, or empty for default)", c.Logging.Level)
	}
	return nil
}

// applyEnvOverrides applies ATTRACTGEN_* environment variables on top of cfg.
// Unset variables leave the current value alone.
func applyEnvOverrides(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Save writes cfg as YAML to path, creating the parent directory.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
