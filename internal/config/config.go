// Package config loads gocube-corners settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/SeamusWaldron/gocube_corners"
)

// Config holds user settings. Command-line flags override these values.
type Config struct {
	Faces    string `toml:"faces"`     // enabled faces for searches, e.g. "UFR"
	Samples  int    `toml:"samples"`   // sample states kept per distance layer
	DBPath   string `toml:"db_path"`   // scan database, empty for the default
	LogLevel string `toml:"log_level"` // debug, info, warn or error
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Faces:    "UFR",
		Samples:  5,
		LogLevel: "info",
	}
}

// DefaultPath returns the default config file path.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".gocube_corners", "config.toml"), nil
}

// Load reads the config file at path on top of the defaults. A missing
// file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("unknown config key %q in %s", undecoded[0].String(), path)
	}
	return cfg, cfg.Validate()
}

// Validate checks that the settings are usable.
func (c Config) Validate() error {
	faces, err := gocube.ParseFaces(c.Faces)
	if err != nil {
		return fmt.Errorf("config faces: %w", err)
	}
	if _, err := gocube.MoveSetFromFaces(faces...); err != nil {
		return fmt.Errorf("config faces: %w", err)
	}
	if c.Samples < 0 {
		return fmt.Errorf("config samples must not be negative, got %d", c.Samples)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config log_level %q is not one of debug, info, warn, error", c.LogLevel)
	}
	return nil
}

// Save writes the config as TOML.
func (c Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
