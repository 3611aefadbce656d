package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Environment variables overriding file settings.
const (
	envInterval = "CURSORWATCH_INTERVAL_MS"
	envLogLevel = "CURSORWATCH_LOG_LEVEL"
	envLogFile  = "CURSORWATCH_LOG_FILE"
	envScript   = "CURSORWATCH_SCRIPT"
)

// Load reads configuration from path, choosing the decoder by file
// extension (.toml, .yaml, .yml), then applies environment overrides
// and validates the result. An empty path or a missing file is not an
// error: defaults plus environment apply.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Defaults apply.
		case err != nil:
			return cfg, fmt.Errorf("config: reading %s: %w", path, err)
		default:
			if err := decode(path, data, &cfg); err != nil {
				return cfg, err
			}
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// decode parses data into cfg based on the file extension.
func decode(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("config: parsing %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("config: parsing %s: %w", path, err)
		}
	default:
		return fmt.Errorf("config: unsupported config format %q", filepath.Ext(path))
	}
	return nil
}

// applyEnv overlays environment variables onto cfg. Malformed numeric
// values are ignored rather than fatal.
func applyEnv(cfg *Config) {
	if v := os.Getenv(envInterval); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Monitor.IntervalMS = n
		}
	}
	if v := os.Getenv(envLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(envLogFile); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv(envScript); v != "" {
		cfg.Hooks.Script = v
	}
}
