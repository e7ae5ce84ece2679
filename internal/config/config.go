// Package config loads the application configuration file.
//
// The file is YAML, validated against an embedded CUE schema before
// unmarshalling so that typos (unknown keys, bad theme names) surface
// as schema errors instead of silently defaulted fields.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the application settings. Zero values are filled from
// Default at load time.
type Config struct {
	// Database is the SQLite database path.
	Database string `yaml:"database"`
	// ExportDir is where CSV exports are written by default.
	ExportDir string `yaml:"export_dir"`
	// Theme selects the calendar color theme: "dark" or "light".
	Theme string `yaml:"theme"`
}

// Default returns the built-in configuration: database under the user
// data directory, exports to the system temp directory, dark theme.
func Default() Config {
	return Config{
		Database:  filepath.Join(dataDir(), "paintrack.db"),
		ExportDir: os.TempDir(),
		Theme:     "dark",
	}
}

// DefaultPath returns the expected config file location.
func DefaultPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "paintrack", "config.yaml")
	}
	return filepath.Join(".", "paintrack.yaml")
}

// Load reads the config file at path. An absent file is not an error:
// it yields the defaults. A present file is schema-validated, then
// unmarshalled over the defaults so unset keys keep their default.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	if err := validate(path, data); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func dataDir() string {
	if dir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(dir, ".local", "share", "paintrack")
	}
	return "."
}
