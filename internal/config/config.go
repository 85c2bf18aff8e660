// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

// Package config loads mpcalc's on-disk configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config holds mpcalc's user-configurable defaults.
type Config struct {
	// Calc controls the default behavior of the calculator REPL and
	// one-shot evaluation mode.
	Calc struct {
		DefaultBase int    `toml:"default_base"`
		Allocator   string `toml:"allocator"` // "gc" or "pooled"
	} `toml:"calc"`

	// Display controls output formatting.
	Display struct {
		Uppercase bool `toml:"uppercase_hex"`
		ShowSign  bool `toml:"show_plus_sign"`
	} `toml:"display"`
}

// Default returns a Config populated with mpcalc's built-in defaults.
func Default() *Config {
	cfg := &Config{}
	cfg.Calc.DefaultBase = 10
	cfg.Calc.Allocator = "gc"
	cfg.Display.Uppercase = false
	cfg.Display.ShowSign = false
	return cfg
}

// Path returns the platform-specific configuration file path.
func Path() string {
	var dir string

	switch runtime.GOOS {
	case "windows":
		dir = os.Getenv("APPDATA")
		if dir == "" {
			dir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		dir = filepath.Join(dir, "mpcalc")
	case "darwin", "linux":
		home, err := os.UserHomeDir()
		if err != nil {
			return "mpcalc.toml"
		}
		dir = filepath.Join(home, ".config", "mpcalc")
	default:
		return "mpcalc.toml"
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "mpcalc.toml"
	}
	return filepath.Join(dir, "mpcalc.toml")
}

// Load reads the configuration file at Path, returning defaults if it
// does not exist.
func Load() (*Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads the configuration file at path, returning defaults if
// it does not exist.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes c to Path, creating parent directories as needed.
func (c *Config) Save() error {
	return c.SaveTo(Path())
}

// SaveTo writes c to path, creating parent directories as needed.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("config: create directory for %s: %w", path, err)
	}

	f, err := os.Create(path) // #nosec G304 -- user config file path
	if err != nil {
		return fmt.Errorf("config: create %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("config: encode %s: %w", path, err)
	}
	return nil
}
