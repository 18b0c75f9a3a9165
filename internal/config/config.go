package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Display styles
const (
	StylePlain = "plain"
	StyleCard  = "card"
)

// Config represents the application configuration
type Config struct {
	Input      InputConfig      `json:"input"`
	Validation ValidationConfig `json:"validation"`
	Display    DisplayConfig    `json:"display"`
}

// InputConfig selects where sensor packages come from
type InputConfig struct {
	// Path to a YAML or JSON package file. Empty means the built-in samples.
	Path string `json:"path"`
}

// ValidationConfig controls numeric domain checks on packages
type ValidationConfig struct {
	// Strict rejects zero or negative duration and height instead of
	// reporting Inf/NaN values.
	Strict bool `json:"strict"`
}

// DisplayConfig holds display preferences for the TUI
type DisplayConfig struct {
	Style string `json:"style"`
}

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			Style: StylePlain,
		},
	}
}

// Load reads the configuration from ~/.ftracker/config.json
func Load() (*Config, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration from path
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNoConfig
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply defaults for missing values
	defaults := DefaultConfig()
	if cfg.Display.Style == "" {
		cfg.Display.Style = defaults.Display.Style
	}

	return &cfg, nil
}

// Save writes the configuration to path, creating its directory
func Save(path string, cfg *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// CreateDefault writes DefaultConfig to path unless a file already exists
// there. It reports whether a file was written.
func CreateDefault(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil // Config exists, don't overwrite
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("checking config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := Save(path, &cfg); err != nil {
		return false, err
	}
	return true, nil
}

// Validate checks the config values
func (c *Config) Validate() error {
	if c.Display.Style != "" && c.Display.Style != StylePlain && c.Display.Style != StyleCard {
		return fmt.Errorf("display.style must be %q or %q, got %q", StylePlain, StyleCard, c.Display.Style)
	}

	if c.Input.Path != "" {
		info, err := os.Stat(c.Input.Path)
		if err != nil {
			return fmt.Errorf("input.path: %w", err)
		}
		if info.IsDir() {
			return fmt.Errorf("input.path %q is a directory", c.Input.Path)
		}
	}

	return nil
}

// DefaultPath returns ~/.ftracker/config.json
func DefaultPath() (string, error) {
	return getConfigPath()
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// GetConfigDir returns the path to the config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".ftracker"), nil
}
