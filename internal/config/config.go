// Package config loads and validates cursorwatch settings from TOML or
// YAML files, with environment variable overrides and optional live
// reload of the file on disk.
package config

import (
	"fmt"
	"time"
)

// Config holds all cursorwatch settings.
type Config struct {
	Monitor MonitorConfig `toml:"monitor" yaml:"monitor"`
	Log     LogConfig     `toml:"log" yaml:"log"`
	Output  OutputConfig  `toml:"output" yaml:"output"`
	Hooks   HooksConfig   `toml:"hooks" yaml:"hooks"`
}

// MonitorConfig configures the sampling loop.
type MonitorConfig struct {
	// IntervalMS is the minimum spacing between sampling ticks, in
	// milliseconds.
	IntervalMS int `toml:"interval_ms" yaml:"interval_ms"`
}

// LogConfig configures the activity logger.
type LogConfig struct {
	// Level is the minimum level to write: debug, info, warn, error.
	Level string `toml:"level" yaml:"level"`

	// File is an optional log file path; empty means stderr.
	File string `toml:"file" yaml:"file"`
}

// OutputConfig configures event output on stdout.
type OutputConfig struct {
	// JSON prints each event as a JSON line.
	JSON bool `toml:"json" yaml:"json"`

	// Pretty switches JSON output to the indented form.
	Pretty bool `toml:"pretty" yaml:"pretty"`
}

// HooksConfig configures Lua event hooks.
type HooksConfig struct {
	// Script is the path to a Lua script defining event hooks; empty
	// disables hooks.
	Script string `toml:"script" yaml:"script"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Monitor: MonitorConfig{IntervalMS: 16},
		Log:     LogConfig{Level: "info"},
	}
}

// Interval returns the sampling interval as a duration.
func (c Config) Interval() time.Duration {
	return time.Duration(c.Monitor.IntervalMS) * time.Millisecond
}

// Validate checks the configuration for out-of-range values.
func (c Config) Validate() error {
	if c.Monitor.IntervalMS < 1 || c.Monitor.IntervalMS > 1000 {
		return fmt.Errorf("config: interval_ms must be in [1, 1000], got %d", c.Monitor.IntervalMS)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.Log.Level)
	}
	return nil
}
