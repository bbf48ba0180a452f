// Package config loads persistent tool settings from ~/.scfg/config.yaml.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultMirrorPath is where `load --store` writes the decoded document
// when no mirror_path is configured.
const DefaultMirrorPath = "config.json"

// Config holds persistent tool configuration loaded from ~/.scfg/config.yaml.
type Config struct {
	Account    string `yaml:"account"`
	MirrorPath string `yaml:"mirror_path"`
}

// DefaultPath returns the default config file path: ~/.scfg/config.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".scfg", "config.yaml")
}

// Load reads a YAML config file from path. If the file does not exist,
// it returns an empty Config and no error. An empty or all-comment file
// also returns an empty Config with no error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Mirror returns the configured mirror path, or DefaultMirrorPath when
// none is set.
func (c *Config) Mirror() string {
	if c.MirrorPath != "" {
		return c.MirrorPath
	}
	return DefaultMirrorPath
}
