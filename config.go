package pawlist

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds configuration for a Heap and the lists it creates
type Config struct {
	Debug         bool     `yaml:"debug"`
	LogCategories []string `yaml:"log_categories"`
	NoColor       bool     `yaml:"no_color"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Debug:         false,
		LogCategories: nil,
		NoColor:       false,
	}
}

// LoadConfig reads a YAML config file. Unknown keys are an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := DecodeConfigFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DecodeConfigFile decodes the YAML document at path into dst, which may be
// any struct embedding Config inline.
func DecodeConfigFile(path string, dst interface{}) error {
	if path == "" {
		return fmt.Errorf("config: empty path")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("config: resolve %s: %w", path, err)
	}
	file, err := os.Open(abs)
	if err != nil {
		return err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("config: parse %s: %w", abs, err)
	}
	return nil
}

// Validate reports categories the logger does not know about
func (c *Config) Validate() error {
	known := make(map[string]bool, len(AllCategories)+1)
	known["all"] = true
	for _, cat := range AllCategories {
		known[string(cat)] = true
	}
	for _, cat := range c.LogCategories {
		if !known[cat] {
			return fmt.Errorf("config: unknown log category %q", cat)
		}
	}
	return nil
}
