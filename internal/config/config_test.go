package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Monitor.IntervalMS != 16 {
		t.Errorf("default interval_ms = %d, want 16", cfg.Monitor.IntervalMS)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("default log level = %q, want %q", cfg.Log.Level, "info")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestInterval(t *testing.T) {
	cfg := Default()
	cfg.Monitor.IntervalMS = 25

	if got := cfg.Interval(); got != 25*time.Millisecond {
		t.Errorf("Interval() = %v, want 25ms", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"interval too small", func(c *Config) { c.Monitor.IntervalMS = 0 }, true},
		{"interval too large", func(c *Config) { c.Monitor.IntervalMS = 5000 }, true},
		{"interval boundary", func(c *Config) { c.Monitor.IntervalMS = 1000 }, false},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }, true},
		{"debug level", func(c *Config) { c.Log.Level = "debug" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "cursorwatch.toml", `
[monitor]
interval_ms = 33

[log]
level = "debug"

[output]
json = true

[hooks]
script = "hooks.lua"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Monitor.IntervalMS != 33 {
		t.Errorf("interval_ms = %d, want 33", cfg.Monitor.IntervalMS)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Log.Level)
	}
	if !cfg.Output.JSON {
		t.Error("output.json not set")
	}
	if cfg.Hooks.Script != "hooks.lua" {
		t.Errorf("hooks.script = %q, want hooks.lua", cfg.Hooks.Script)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "cursorwatch.yaml", `
monitor:
  interval_ms: 50
log:
  level: warn
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Monitor.IntervalMS != 50 {
		t.Errorf("interval_ms = %d, want 50", cfg.Monitor.IntervalMS)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log level = %q, want warn", cfg.Log.Level)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load(missing) error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load(missing) = %+v, want defaults", cfg)
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := writeFile(t, "cursorwatch.ini", "interval=5")
	if _, err := Load(path); err == nil {
		t.Error("Load(.ini) succeeded, want error")
	}
}

func TestLoadBadTOML(t *testing.T) {
	path := writeFile(t, "cursorwatch.toml", "[monitor\ninterval_ms=")
	if _, err := Load(path); err == nil {
		t.Error("Load(malformed) succeeded, want error")
	}
}

func TestLoadInvalidValues(t *testing.T) {
	path := writeFile(t, "cursorwatch.toml", "[monitor]\ninterval_ms = 0\n")
	if _, err := Load(path); err == nil {
		t.Error("Load(invalid interval) succeeded, want error")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(envInterval, "40")
	t.Setenv(envLogLevel, "error")
	t.Setenv(envScript, "env.lua")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Monitor.IntervalMS != 40 {
		t.Errorf("interval_ms = %d, want env override 40", cfg.Monitor.IntervalMS)
	}
	if cfg.Log.Level != "error" {
		t.Errorf("log level = %q, want env override error", cfg.Log.Level)
	}
	if cfg.Hooks.Script != "env.lua" {
		t.Errorf("hooks.script = %q, want env override env.lua", cfg.Hooks.Script)
	}
}

func TestEnvOverridesBeatFile(t *testing.T) {
	path := writeFile(t, "cursorwatch.toml", "[monitor]\ninterval_ms = 33\n")
	t.Setenv(envInterval, "8")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Monitor.IntervalMS != 8 {
		t.Errorf("interval_ms = %d, want env override 8", cfg.Monitor.IntervalMS)
	}
}
