package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when none is given.
const DefaultPath = ".objcskel.yaml"

// Config represents the .objcskel.yaml configuration.
type Config struct {
	Extractor string       `yaml:"extractor"`
	RootType  string       `yaml:"root_type"`
	Output    OutputConfig `yaml:"output"`
	Map       MapConfig    `yaml:"map"`
}

// OutputConfig controls the outline document.
type OutputConfig struct {
	Header bool   `yaml:"header"`
	Indent string `yaml:"indent"`
}

// MapConfig controls the symbol map document.
type MapConfig struct {
	IncludeProperties bool   `yaml:"include_properties"`
	Indent            string `yaml:"indent"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Extractor: "regex",
		RootType:  "NSObject",
		Output: OutputConfig{
			Header: true,
			Indent: "  ",
		},
		Map: MapConfig{
			IncludeProperties: false,
			Indent:            "  ",
		},
	}
}

// Load reads a configuration file from the given path.
// Missing fields are filled with defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	// Ensure required defaults
	if cfg.Extractor == "" {
		cfg.Extractor = "regex"
	}
	if cfg.RootType == "" {
		cfg.RootType = "NSObject"
	}
	if cfg.Output.Indent == "" {
		cfg.Output.Indent = "  "
	}
	if cfg.Map.Indent == "" {
		cfg.Map.Indent = "  "
	}

	return cfg, nil
}
