// Package config loads the demo configuration from .droplist.json,
// merging partial files over built-in defaults.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the full droplist configuration
type Config struct {
	UI     UIConfig     `json:"ui"`
	Select SelectConfig `json:"select"`
}

// UIConfig contains presentation settings
type UIConfig struct {
	Accent         string `json:"accent"`
	MaxVisibleRows int    `json:"maxVisibleRows"`
}

// SelectConfig contains dropdown behavior settings
type SelectConfig struct {
	// Placeholder is the row shown when no options match a filter.
	Placeholder string `json:"placeholder"`
	// StayOpen keeps single-select panels open after a selection.
	StayOpen bool `json:"stayOpen"`
	// NoRefocus disables focus restoration to the trigger on close.
	NoRefocus bool `json:"noRefocus"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Accent:         "blue",
			MaxVisibleRows: 8,
		},
		Select: SelectConfig{
			Placeholder: "No results",
		},
	}
}

// LoadConfig loads configuration from a .droplist.json in the given
// directory, falling back to defaults when the file is absent.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, ".droplist.json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return MergeWithDefaults(&cfg), nil
}

// SaveConfig saves configuration to the specified path
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MergeWithDefaults fills in missing values with defaults
func MergeWithDefaults(cfg *Config) *Config {
	defaults := DefaultConfig()

	if cfg.UI.Accent == "" {
		cfg.UI.Accent = defaults.UI.Accent
	}
	if cfg.UI.MaxVisibleRows == 0 {
		cfg.UI.MaxVisibleRows = defaults.UI.MaxVisibleRows
	}

	if cfg.Select.Placeholder == "" {
		cfg.Select.Placeholder = defaults.Select.Placeholder
	}

	return cfg
}

// Load is a convenience function that loads config from current directory
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return LoadConfig(cwd)
}
