// Package config resolves which index file planidx operates on and which
// structural markers it looks for.
//
// The index path can come from the command line, the PLANIDX_INDEX
// environment variable, an optional .planidx.yaml in the working
// directory, or fall back to INDEX.txt. The config file can also override
// the heading and plan-line prefix for indexes that use different markers.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/planidx/planidx/internal/index"
)

const (
	// FileName is the optional per-directory config file.
	FileName = ".planidx.yaml"

	// EnvIndexPath overrides the index path when set.
	EnvIndexPath = "PLANIDX_INDEX"

	// DefaultIndexFile is the fallback index filename.
	DefaultIndexFile = "INDEX.txt"
)

// Config holds the resolved settings for a run.
type Config struct {
	// IndexPath is the index file to operate on.
	IndexPath string `yaml:"index"`

	// Heading is the line that separates header from plan blocks.
	Heading string `yaml:"heading"`

	// PlanPrefix is the line prefix that starts a plan block.
	PlanPrefix string `yaml:"plan_prefix"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		IndexPath:  DefaultIndexFile,
		Heading:    index.DefaultHeading,
		PlanPrefix: index.DefaultPlanPrefix,
	}
}

// Load resolves configuration for the given working directory: built-in
// defaults, overlaid with .planidx.yaml if one exists, overlaid with the
// PLANIDX_INDEX environment variable. A missing config file is not an
// error; an unreadable or invalid one is.
func Load(dir string) (*Config, error) {
	cfg := Default()

	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if envPath := os.Getenv(EnvIndexPath); envPath != "" {
		cfg.IndexPath = envPath
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config in %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that no marker was configured empty.
func (c *Config) Validate() error {
	if c.IndexPath == "" {
		return fmt.Errorf("index path must not be empty")
	}
	if c.Heading == "" {
		return fmt.Errorf("heading must not be empty")
	}
	if c.PlanPrefix == "" {
		return fmt.Errorf("plan_prefix must not be empty")
	}
	return nil
}
