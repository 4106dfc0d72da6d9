package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/phroun/pawlist"
)

// ANSI color codes for the prompt
const (
	colorYellow    = "\x1b[93m" // Bright yellow foreground
	colorDarkBrown = "\x1b[33m" // Dark yellow/brown for light backgrounds
	colorReset     = "\x1b[0m"  // Reset to default
)

// CLIConfig holds configuration loaded from ~/.pawlist/config.yaml
type CLIConfig struct {
	pawlist.Config `yaml:",inline"`

	Prompt         string `yaml:"prompt"`
	TermBackground string `yaml:"term_background"` // "light", "dark", or "auto" (auto defaults to dark)
}

// DefaultCLIConfig returns the configuration used when no file exists
func DefaultCLIConfig() *CLIConfig {
	return &CLIConfig{
		Config:         *pawlist.DefaultConfig(),
		Prompt:         "pawlist> ",
		TermBackground: "auto",
	}
}

// getConfigFilePath returns the path to ~/.pawlist/config.yaml
func getConfigFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pawlist", "config.yaml")
}

// loadCLIConfig reads path, or the default location when path is empty.
// A missing default file is not an error.
func loadCLIConfig(path string) (*CLIConfig, error) {
	cfg := DefaultCLIConfig()
	explicit := path != ""
	if !explicit {
		path = getConfigFilePath()
		if path == "" {
			return cfg, nil
		}
	}
	if err := pawlist.DecodeConfigFile(path, cfg); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.TermBackground {
	case "light", "dark", "auto":
	default:
		return nil, fmt.Errorf("config: term_background must be light, dark or auto, got %q", cfg.TermBackground)
	}
	return cfg, nil
}

// promptColor returns the prompt color for the configured background
func (c *CLIConfig) promptColor() string {
	if c.TermBackground == "light" {
		return colorDarkBrown
	}
	return colorYellow
}
