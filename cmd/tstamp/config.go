package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// config holds defaults loaded from an optional YAML file. Command-line
// flags take precedence over config values.
type config struct {
	Output  string `yaml:"output"`
	Verbose int    `yaml:"verbose"`
}

// loadConfig reads the YAML config at path. An empty path yields zero
// defaults without touching the filesystem.
func loadConfig(path string) (config, error) {
	var cfg config
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("invalid config file: %w", err)
	}
	return cfg, nil
}
