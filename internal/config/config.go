// Package config handles loading and saving user configuration for wordfeel.
package config

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/hnordt/wordfeel/internal/card"
)

// Config holds all user configuration for wordfeel.
type Config struct {
	API      APIConfig  `yaml:"api"`
	Card     CardConfig `yaml:"card"`
	Database string     `yaml:"database,omitempty"` // Archive path; defaults to archive.db in the config dir
}

// APIConfig holds model settings. When RelayURL is set, requests go
// through the relay and no local API key is needed.
type APIConfig struct {
	Model     string `yaml:"model,omitempty"`
	MaxTokens int    `yaml:"max_tokens,omitempty"`
	RelayURL  string `yaml:"relay_url,omitempty"`
}

// CardConfig holds card geometry and palette as hex colors.
type CardConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Padding    int    `yaml:"padding"`
	Background string `yaml:"background"`
	Text       string `yaml:"text"`
	Accent     string `yaml:"accent"`
	Muted      string `yaml:"muted"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Card: CardConfig{
			Width:      800,
			Height:     600,
			Padding:    60,
			Background: "#1a1a2e",
			Text:       "#f1faee",
			Accent:     "#ffe66d",
			Muted:      "#8a8a9e",
		},
	}
}

// Load reads the configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to a YAML file.
func Save(path string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Geometry converts the card settings into a render geometry. Invalid
// hex colors fall back to the default palette rather than failing.
func (c CardConfig) Geometry() card.Geometry {
	geom := card.DefaultGeometry()

	if c.Width > 0 {
		geom.Width = c.Width
	}
	if c.Height > 0 {
		geom.Height = c.Height
	}
	if c.Padding > 0 {
		geom.Padding = c.Padding
	}

	if col, ok := parseHexColor(c.Background); ok {
		geom.Background = col
	}
	if col, ok := parseHexColor(c.Text); ok {
		geom.Text = col
	}
	if col, ok := parseHexColor(c.Accent); ok {
		geom.Accent = col
	}
	if col, ok := parseHexColor(c.Muted); ok {
		geom.Muted = col
	}

	return geom
}

// parseHexColor parses a "#rrggbb" color.
func parseHexColor(s string) (color.RGBA, bool) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, false
	}

	var r, g, b uint8
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, false
	}

	return color.RGBA{R: r, G: g, B: b, A: 0xff}, true
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "wordfeel"), nil
}

// EnsureConfigDir creates the config directory if it doesn't exist.
func EnsureConfigDir() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

// DatabasePath resolves the archive location for a config rooted at dir.
func (c *Config) DatabasePath(dir string) string {
	if c.Database != "" {
		return c.Database
	}
	return filepath.Join(dir, "archive.db")
}
