// Package config handles reading and writing the salesflow config file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level structure for config.yaml.
type Config struct {
	Version int           `yaml:"version"`
	Storage StorageConfig `yaml:"storage"`
	UI      UIConfig      `yaml:"ui"`
}

// StorageConfig selects the persistence backend for session data.
type StorageConfig struct {
	Backend string `yaml:"backend"` // "file" | "sqlite" | "memory"
	Path    string `yaml:"path"`    // optional override for the data file
}

// UIConfig controls presentation details of the TUI.
type UIConfig struct {
	ShowTips bool `yaml:"show_tips"`
	Color    bool `yaml:"color"`
}

const configDirName = ".salesflow"
const configFile = "config.yaml"

// Dir returns the salesflow data directory inside dir (normally the user's
// home directory).
func Dir(dir string) string {
	return filepath.Join(dir, configDirName)
}

// ReadConfig reads config.yaml from the salesflow directory inside dir.
// Returns an error if the file is not found or YAML is malformed.
func ReadConfig(dir string) (*Config, error) {
	path := filepath.Join(Dir(dir), configFile)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}

// WriteConfig writes cfg to config.yaml inside dir, creating the salesflow
// directory if it does not exist.
func WriteConfig(dir string, cfg *Config) error {
	dirPath := Dir(dir)
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	path := filepath.Join(dirPath, configFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Storage: StorageConfig{
			Backend: "file",
		},
		UI: UIConfig{
			ShowTips: true,
			Color:    true,
		},
	}
}
