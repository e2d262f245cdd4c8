// Package config loads the autonode configuration from
// ~/.config/autonode/config.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the autonode configuration
type Config struct {
	// NodesDir is the default custom_nodes directory used when --dir is
	// not given. Must be absolute or start with ~.
	NodesDir string `toml:"nodes_dir"`

	// Git overrides the git binary used for cloning (default "git").
	Git string `toml:"git"`

	// Pip overrides the pip binary used for dependency installs
	// (default "pip").
	Pip string `toml:"pip"`
}

// Default returns the default configuration
func Default() Config {
	return Config{
		Git: "git",
		Pip: "pip",
	}
}

// ValidatePath checks that the path is absolute or starts with ~
// Returns error if path is relative (like "." or "..")
func ValidatePath(path, fieldName string) error {
	if path == "" {
		return nil // Empty is allowed (means not configured)
	}
	if len(path) >= 1 && path[0] == '~' {
		return nil
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s must be absolute or start with ~, got: %q", fieldName, path)
	}
	return nil
}

// expandPath expands ~ to the user's home directory
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}

// configPath returns the path to the config file
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "autonode", "config.toml"), nil
}

// Load reads the config file. Returns the default config if the file does
// not exist.
func Load() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Default(), err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config from an explicit path.
func LoadFrom(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := ValidatePath(cfg.NodesDir, "nodes_dir"); err != nil {
		return Default(), err
	}

	if cfg.NodesDir != "" {
		expanded, err := expandPath(cfg.NodesDir)
		if err != nil {
			return Default(), err
		}
		cfg.NodesDir = expanded
	}

	if cfg.Git == "" {
		cfg.Git = "git"
	}
	if cfg.Pip == "" {
		cfg.Pip = "pip"
	}

	return cfg, nil
}
