// Package config provides configuration loading and management for
// icesheet3d. It handles loading configuration from YAML files and
// provides default values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"icesheet3d/pkg/grid"
)

// Config represents the application configuration loaded from YAML.
type Config struct {
	// Grid holds the computational grid geometry.
	Grid grid.Params `yaml:"grid"`

	// Output parameters
	Output struct {
		// Dir is the directory slice images are written to.
		Dir string `yaml:"dir"`

		// SliceLevels are the heights (m above the ice base) at
		// which horizontal slices are rendered.
		SliceLevels []float64 `yaml:"sliceLevels"`

		// Verbose controls the amount of progress output.
		Verbose bool `yaml:"verbose"`
	} `yaml:"output"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Grid = grid.DefaultParams()

	cfg.Output.Dir = "slices"
	cfg.Output.SliceLevels = []float64{0, 1000, 2000, 3000}
	cfg.Output.Verbose = true

	return cfg
}

// LoadConfig loads configuration from a YAML file.
// If the file doesn't exist, it returns the default configuration.
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
