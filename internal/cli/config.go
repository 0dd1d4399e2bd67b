package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ServeConfig is the optional YAML config for the serve command. Flags
// given on the command line win over values from the file.
type ServeConfig struct {
	Database string `yaml:"database"`
	Listen   string `yaml:"listen"`
}

// LoadServeConfig reads a YAML config file for serve.
func LoadServeConfig(path string) (*ServeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg ServeConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}
