package main

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all service configuration parameters.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Engine EngineConfig `yaml:"engine"`
	Data   DataConfig   `yaml:"data"`
}

// ServerConfig holds HTTP settings.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// EngineConfig holds pathfinding engine settings.
type EngineConfig struct {
	// Step is the grid spacing used when building floor grids.
	Step float64 `yaml:"step"`
	// ShortestPathFactor is the default length-vs-clearance weight for the
	// proximity cost policy, in [0, 1].
	ShortestPathFactor float64 `yaml:"shortest_path_factor"`
}

// DataConfig holds floor data locations.
type DataConfig struct {
	PlansDir        string `yaml:"plans_dir"`
	DestinationsCSV string `yaml:"destinations_csv"`
}

// LoadConfig returns the embedded defaults overlaid with the YAML file at
// path, if one is given. Invalid parameter combinations fail the load.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultsYAML, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Engine.Step <= 0 {
		return fmt.Errorf("engine.step %.3f must be positive", c.Engine.Step)
	}
	if c.Engine.ShortestPathFactor < 0 || c.Engine.ShortestPathFactor > 1 {
		return fmt.Errorf("engine.shortest_path_factor %.2f must be in [0, 1]", c.Engine.ShortestPathFactor)
	}
	if c.Data.PlansDir == "" {
		return fmt.Errorf("data.plans_dir must be set")
	}
	return nil
}
