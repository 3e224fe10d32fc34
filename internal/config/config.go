// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"construct-cost/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Project contains project-file configuration
	Project ProjectConfig `json:"project"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format (cli, json, yaml)
	DefaultFormat string `json:"default_format"`

	// ShowDerivation shows full derivation strings in statement output
	ShowDerivation bool `json:"show_derivation"`
}

// ProjectConfig contains project-file settings
type ProjectConfig struct {
	// DefaultFile is the site definition file used when none is given
	DefaultFile string `json:"default_file"`

	// WbsProjectCode is the prefix used when numbering WBS nodes
	WbsProjectCode string `json:"wbs_project_code"`
}

// Default returns a default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	return &Config{
		Version: "1",
		Output: OutputConfig{
			DefaultFormat:  "cli",
			ShowDerivation: true,
		},
		Project: ProjectConfig{
			DefaultFile:    filepath.Join(homeDir, ".construct-cost", "site.hcl"),
			WbsProjectCode: "PRJ26",
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load reads configuration from a JSON file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes configuration to a JSON file
func Save(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

var (
	mu      sync.RWMutex
	current = Default()
)

// Get returns the current configuration
func Get() *Config {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Set replaces the current configuration
func Set(cfg *Config) {
	mu.Lock()
	defer mu.Unlock()
	current = cfg
}
