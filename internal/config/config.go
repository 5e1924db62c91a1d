// Package config loads optional project-level CLI settings.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProjectConfig holds settings loaded from graphkit.yml.
type ProjectConfig struct {
	OutputDir string `yaml:"outputDir,omitempty"`
	Compact   bool   `yaml:"compact,omitempty"`
	Verbose   bool   `yaml:"verbose,omitempty"`
}

// Load attempts to read graphkit.yml or graphkit.yaml from the given
// directory. Returns a zero-value config (not an error) if no config file
// exists.
func Load(dir string) (*ProjectConfig, error) {
	for _, name := range []string{"graphkit.yml", "graphkit.yaml"} {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var cfg ProjectConfig
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}
	return &ProjectConfig{}, nil
}
