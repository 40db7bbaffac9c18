// Package config provides configuration loading and management for
// meteoland. It handles loading configuration from YAML files and
// provides defaults matching the reference interpolation parameters.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/olivroy/meteoland/pkg/interpolation"
)

// Config represents the application configuration loaded from YAML.
type Config struct {
	// Interpolation parameters of the Gaussian-filter method.
	Interpolation struct {
		// InitialRadius seeds the truncation radius search, in the
		// units of the station coordinates.
		InitialRadius float64 `yaml:"initialRadius"`

		// Alpha is the Gaussian shape parameter.
		Alpha float64 `yaml:"alpha"`

		// TargetStations is the effective station count the radius
		// search aims for.
		TargetStations float64 `yaml:"targetStations"`

		// Iterations is the number of radius refinement rounds.
		Iterations int `yaml:"iterations"`
	} `yaml:"interpolation"`

	// Runtime controls execution, not results.
	Runtime struct {
		// Workers bounds the goroutines interpolating time slices.
		Workers int `yaml:"workers"`

		// LogLevel is one of debug, info, warn, error.
		LogLevel string `yaml:"logLevel"`
	} `yaml:"runtime"`

	// Grid describes the regular target grid used when no explicit
	// target file is given.
	Grid struct {
		// CellSize is the grid spacing in coordinate units.
		CellSize float64 `yaml:"cellSize"`

		// DefaultElevation is assigned to cells without elevation data.
		DefaultElevation float64 `yaml:"defaultElevation"`
	} `yaml:"grid"`

	// Render controls PNG output of interpolated grids.
	Render struct {
		// MinValue and MaxValue pin the color scale; when equal the
		// scale is taken from the data.
		MinValue float64 `yaml:"minValue"`
		MaxValue float64 `yaml:"maxValue"`
	} `yaml:"render"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	cfg := &Config{}

	p := interpolation.DefaultParams()
	cfg.Interpolation.InitialRadius = p.InitialRadius
	cfg.Interpolation.Alpha = p.Alpha
	cfg.Interpolation.TargetStations = p.TargetStations
	cfg.Interpolation.Iterations = p.Iterations

	cfg.Runtime.Workers = runtime.NumCPU()
	cfg.Runtime.LogLevel = "info"

	cfg.Grid.CellSize = 1000
	cfg.Grid.DefaultElevation = 0

	return cfg
}

// Params converts the interpolation section into engine parameters.
func (c *Config) Params() interpolation.Params {
	return interpolation.Params{
		InitialRadius:  c.Interpolation.InitialRadius,
		Alpha:          c.Interpolation.Alpha,
		TargetStations: c.Interpolation.TargetStations,
		Iterations:     c.Interpolation.Iterations,
	}
}

// Validate rejects settings the engine or the grid builder would refuse.
func (c *Config) Validate() error {
	if c.Interpolation.InitialRadius <= 0 {
		return fmt.Errorf("interpolation.initialRadius must be positive")
	}
	if c.Interpolation.Alpha < 0 {
		return fmt.Errorf("interpolation.alpha must be non-negative")
	}
	if c.Interpolation.TargetStations <= 0 {
		return fmt.Errorf("interpolation.targetStations must be positive")
	}
	if c.Interpolation.Iterations <= 0 {
		return fmt.Errorf("interpolation.iterations must be positive")
	}
	if c.Runtime.Workers < 1 {
		return fmt.Errorf("runtime.workers must be at least 1")
	}
	if c.Grid.CellSize <= 0 {
		return fmt.Errorf("grid.cellSize must be positive")
	}
	switch c.Runtime.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("runtime.logLevel %q is not one of debug, info, warn, error", c.Runtime.LogLevel)
	}
	return nil
}

// LoadConfig loads configuration from a YAML file. If the file doesn't
// exist, it returns the default configuration.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to a YAML file.
func SaveConfig(cfg *Config, configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}
