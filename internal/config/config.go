package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	DefaultIndent = 2
	FormatJSON    = "json"
	FormatYAML    = "yaml"
)

// Config holds optional defaults loaded from ~/.config/elbv2-dump/config.yaml.
// Credentials are never read from here.
type Config struct {
	DefaultProfile string `yaml:"default_profile"`
	DefaultRegion  string `yaml:"default_region"`
	IncludeRules   bool   `yaml:"include_rules"`
	Indent         *int   `yaml:"indent"`
	Format         string `yaml:"format"`
}

// Path returns the config file location, or "" when no home directory exists.
func Path() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "elbv2-dump", "config.yaml")
}

// Load reads the config file. Returns zero-value Config if the file doesn't exist.
func Load() (*Config, error) {
	path := Path()
	if path == "" {
		return &Config{}, nil
	}
	return LoadFile(path)
}

func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Format {
	case "", FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("unknown format %q (want json or yaml)", c.Format)
	}
	if c.Indent != nil && *c.Indent < 0 {
		return fmt.Errorf("indent must not be negative, got %d", *c.Indent)
	}
	return nil
}

// Merge applies CLI flag overrides. Flags take precedence over config defaults.
func (c *Config) Merge(profile, region string) (string, string) {
	p := c.DefaultProfile
	if profile != "" {
		p = profile
	}
	r := c.DefaultRegion
	if region != "" {
		r = region
	}
	return p, r
}

// IndentOr returns the configured indent, or def when none is set.
func (c *Config) IndentOr(def int) int {
	if c.Indent == nil {
		return def
	}
	return *c.Indent
}

// FormatOr returns the configured output format, or def when none is set.
func (c *Config) FormatOr(def string) string {
	if c.Format == "" {
		return def
	}
	return c.Format
}
