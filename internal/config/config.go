// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package config loads the optional YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/creachadair/schemascope/internal/logger"
	"github.com/creachadair/schemascope/session"
	"gopkg.in/yaml.v3"
)

// FileNames are the names searched for by Find, in order of preference.
var FileNames = []string{".schemascope.yml", ".schemascope.yaml"}

// Config is the complete configuration.
type Config struct {
	View      string        `yaml:"view"` // tree or table
	Dark      bool          `yaml:"dark"`
	Relaxed   bool          `yaml:"relaxed"`
	MaxDepth  int           `yaml:"max_depth"`
	ExportDir string        `yaml:"export_dir"`
	Logging   LoggingConfig `yaml:"logging"`
	Table     TableConfig   `yaml:"table"`
}

// LoggingConfig controls the debug log.
type LoggingConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
	Level   string `yaml:"level"`
}

// TableConfig controls the table view.
type TableConfig struct {
	// MaxValueWidth truncates values wider than this many columns.
	// Zero means no limit.
	MaxValueWidth int `yaml:"max_value_width"`
}

// NewConfig returns a Config with default values.
func NewConfig() *Config {
	return &Config{
		View:      "tree",
		ExportDir: ".",
		Logging:   LoggingConfig{Level: "info"},
		Table:     TableConfig{MaxValueWidth: 60},
	}
}

// Load reads the configuration file at path. Settings absent from the file
// keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// Find searches dir and each of its parents for a configuration file, and
// returns the path of the first one found, or "" if there is none.
func Find(dir string) string {
	for {
		for _, name := range FileNames {
			path := filepath.Join(dir, name)
			if fi, err := os.Stat(path); err == nil && fi.Mode().IsRegular() {
				return path
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// Validate reports an error if c has invalid settings.
func (c *Config) Validate() error {
	var errs []error
	if _, err := session.ParseView(c.View); err != nil {
		errs = append(errs, err)
	}
	if c.MaxDepth < 0 {
		errs = append(errs, fmt.Errorf("max_depth must not be negative (got %d)", c.MaxDepth))
	}
	if c.Table.MaxValueWidth < 0 {
		errs = append(errs, fmt.Errorf("table.max_value_width must not be negative (got %d)", c.Table.MaxValueWidth))
	}
	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Overrides are settings given on the command line. Nil fields are not set
// and leave the configured value alone.
type Overrides struct {
	View      *string
	Relaxed   *bool
	MaxDepth  *int
	ExportDir *string
	Debug     *bool
	LogDir    *string
}

// Merge returns a copy of c with the settings of o applied.
// Enabling Debug turns on logging at debug level.
func (c *Config) Merge(o Overrides) *Config {
	out := *c
	if o.View != nil {
		out.View = *o.View
	}
	if o.Relaxed != nil {
		out.Relaxed = *o.Relaxed
	}
	if o.MaxDepth != nil {
		out.MaxDepth = *o.MaxDepth
	}
	if o.ExportDir != nil {
		out.ExportDir = *o.ExportDir
	}
	if o.Debug != nil && *o.Debug {
		out.Logging.Enabled = true
		out.Logging.Level = "debug"
	}
	if o.LogDir != nil {
		out.Logging.Dir = *o.LogDir
	}
	return &out
}

// SessionOptions returns the session options described by c.
func (c *Config) SessionOptions() session.Options {
	view, _ := session.ParseView(c.View)
	return session.Options{
		Relaxed:  c.Relaxed,
		MaxDepth: c.MaxDepth,
		View:     view,
		Dark:     c.Dark,
	}
}

// LoggerOptions returns the logger options described by c.
func (c *Config) LoggerOptions() logger.Options {
	level, _ := logger.ParseLevel(c.Logging.Level)
	return logger.Options{
		Enabled: c.Logging.Enabled,
		LogDir:  c.Logging.Dir,
		Level:   level,
	}
}
