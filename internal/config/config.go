// Copyright (C) 2026 The jfmt Authors. All Rights Reserved.

// Package config loads formatter settings from .jfmt.yml files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config collects the formatting settings a project can fix in a
// .jfmt.yml file at its root. Command-line flags override these.
type Config struct {
	// Indent is the number of spaces per nesting level. Zero yields an
	// empty indent string and therefore compact output, the same as
	// setting Compact.
	Indent int `yaml:"indent"`

	// Tab selects tab indentation and overrides Indent.
	Tab bool `yaml:"tab"`

	// Compact selects single-line output with no interior whitespace.
	Compact bool `yaml:"compact"`

	// Color controls ANSI coloring of terminal output.
	// One of "auto", "always" or "never".
	Color string `yaml:"color"`
}

// Default returns the settings used when no config file is found.
func Default() *Config {
	return &Config{Indent: 4, Color: "auto"}
}

// fileNames are the config file names recognized, in order of preference.
var fileNames = []string{".jfmt.yml", ".jfmt.yaml"}

// vcsRootMarkers end the upward search for a config file.
var vcsRootMarkers = []string{".git", ".hg", ".svn"}

// Load searches workDir and its ancestors for a config file and parses the
// first one found. The search stops at a version control root or the
// filesystem root. If no file is found, Load returns Default().
func Load(workDir string) (*Config, error) {
	dir, err := filepath.Abs(workDir)
	if err != nil {
		return nil, err
	}
	for {
		for _, name := range fileNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return LoadPath(path)
			} else if !errors.Is(err, fs.ErrNotExist) {
				return nil, err
			}
		}
		if atRoot(dir) {
			return Default(), nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return Default(), nil
		}
		dir = parent
	}
}

// LoadPath parses the config file at path.
func LoadPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func atRoot(dir string) bool {
	for _, marker := range vcsRootMarkers {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}

func (c *Config) validate() error {
	if c.Indent < 0 || c.Indent > 16 {
		return fmt.Errorf("indent %d out of range 0..16", c.Indent)
	}
	switch c.Color {
	case "auto", "always", "never":
		return nil
	default:
		return fmt.Errorf("invalid color mode %q", c.Color)
	}
}
