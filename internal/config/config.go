// Package config provides configuration loading for salescast.
// It supports loading from a YAML file and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the per-project configuration file.
const ConfigFileName = ".salescast.yaml"

// Config contains all salescast settings.
type Config struct {
	// Simulation contains defaults for the evaluate command.
	Simulation SimulationConfig `json:"simulation" yaml:"simulation"`

	// Output contains defaults for the generate command.
	Output OutputConfig `json:"output" yaml:"output"`

	// Logging contains settings for operational logging.
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// SimulationConfig holds Monte Carlo defaults.
type SimulationConfig struct {
	// Iterations is the number of simulation runs per evaluation.
	Iterations int `json:"iterations" yaml:"iterations"`

	// WeekendMultiplier scales the daily mean on Saturdays and Sundays.
	// 1 disables the weekend effect.
	WeekendMultiplier float64 `json:"weekend_multiplier" yaml:"weekend_multiplier"`

	// Workers bounds the simulation worker pool. 0 uses all CPUs.
	Workers int `json:"workers" yaml:"workers"`
}

// OutputConfig holds dataset generation defaults.
type OutputConfig struct {
	// Path is the output file written by the generate command.
	Path string `json:"path" yaml:"path"`

	// Format selects the writer: "csv", "arrow", or "sqlite".
	Format string `json:"format" yaml:"format"`
}

// LoggingConfig configures salescast's logging behavior.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default) or "debug".
	Level string `json:"level" yaml:"level"`
}

// Default returns a Config with the stock defaults.
func Default() *Config {
	return &Config{
		Simulation: SimulationConfig{
			Iterations:        1000,
			WeekendMultiplier: 1,
			Workers:           0,
		},
		Output: OutputConfig{
			Path:   "daily_sales_data.csv",
			Format: "csv",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load builds the effective configuration for root: defaults, then
// .salescast.yaml if present, then .env (best effort), then SALESCAST_*
// environment variables. Later sources win.
func Load(root string) (*Config, error) {
	cfg := Default()

	path := filepath.Join(root, ConfigFileName)
	if _, err := os.Stat(path); err == nil {
		loaded, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	// Missing .env is the normal case.
	_ = godotenv.Load(filepath.Join(root, ".env"))

	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFile loads configuration from a YAML file, filling unset fields
// from the defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// applyEnvOverrides applies SALESCAST_* environment variables on top of cfg.
// Unparseable numeric values are ignored.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SALESCAST_ITERATIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Simulation.Iterations = n
		}
	}
	if v := os.Getenv("SALESCAST_WEEKEND_MULTIPLIER"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Simulation.WeekendMultiplier = f
		}
	}
	if v := os.Getenv("SALESCAST_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Simulation.Workers = n
		}
	}
	if v := os.Getenv("SALESCAST_OUTPUT_PATH"); v != "" {
		cfg.Output.Path = v
	}
	if v := os.Getenv("SALESCAST_OUTPUT_FORMAT"); v != "" {
		cfg.Output.Format = v
	}
	if v := os.Getenv("SALESCAST_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

// Validate checks the configuration for values no command could run with.
func (c *Config) Validate() error {
	if c.Simulation.Iterations <= 0 {
		return fmt.Errorf("simulation.iterations must be positive, got %d", c.Simulation.Iterations)
	}
	switch c.Output.Format {
	case "csv", "arrow", "sqlite":
	default:
		return fmt.Errorf("output.format must be csv, arrow, or sqlite, got %q", c.Output.Format)
	}
	if c.Output.Path == "" {
		return fmt.Errorf("output.path must not be empty")
	}
	return nil
}
