// Package config loads optional CLI configuration from YAML files.
//
// The CLI surface stays a single positional argument; configuration is
// resolved entirely from the environment: an explicit path in the
// MD2HTML_CONFIG variable, or config.yaml under the user config
// directory, or built-in defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-md2html/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrInvalidIndent  = errors.New("invalid indent width")
)

// EnvConfigPath names the environment variable pointing at an explicit
// config file. When set, the file must exist (no silent fallback).
const EnvConfigPath = "MD2HTML_CONFIG"

// Indent bounds in spaces per nesting level.
const (
	MinIndent     = 0
	MaxIndent     = 8
	DefaultIndent = 2
)

// DefaultTheme is the chroma style used when no config overrides it.
const DefaultTheme = "colorful"

// Config holds CLI configuration.
type Config struct {
	Theme  string `yaml:"theme"`  // Chroma style name for highlighted code
	Indent int    `yaml:"indent"` // Spaces per indentation level in tidied output
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Theme:  DefaultTheme,
		Indent: DefaultIndent,
	}
}

// Load resolves and parses the configuration. getenv is injected for
// testability (pass os.Getenv in production).
func Load(getenv func(string) string) (*Config, error) {
	if path := getenv(EnvConfigPath); path != "" {
		if !fileExists(path) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return loadFile(path)
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return Default(), nil
	}
	for _, name := range []string{"config.yaml", "config.yml"} {
		path := filepath.Join(dir, "go-md2html", name)
		if fileExists(path) {
			return loadFile(path)
		}
	}

	return Default(), nil
}

// loadFile parses a config file. Fields left out of the file keep their
// default values; unknown fields are rejected.
func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field ranges.
func (c *Config) Validate() error {
	if c.Indent < MinIndent || c.Indent > MaxIndent {
		return fmt.Errorf("%w: %d (must be between %d and %d)", ErrInvalidIndent, c.Indent, MinIndent, MaxIndent)
	}
	return nil
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
