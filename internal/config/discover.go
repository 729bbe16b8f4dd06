package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmunix/streamgen/pkg/streamlink"
)

// EnvConfigPath names the variable that overrides config discovery.
const EnvConfigPath = "STREAMGEN_CONFIG"

// DefaultPath is where `streamgen init` writes the config:
// $XDG_CONFIG_HOME/streamgen/config.toml, or ~/.config/streamgen/config.toml.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "config.toml"
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "streamgen", "config.toml")
}

// SearchPaths lists the locations Discover tries, in order, after
// STREAMGEN_CONFIG.
func SearchPaths() []string {
	return []string{"config.toml", DefaultPath(), "/etc/streamgen/config.toml"}
}

// Discover returns the first existing config file. STREAMGEN_CONFIG, when
// set, must point at an existing file.
func Discover() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		if _, err := os.Stat(p); err != nil {
			return "", fmt.Errorf("%s=%s: %w", EnvConfigPath, p, err)
		}
		return p, nil
	}

	paths := SearchPaths()
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w, checked: %s", ErrNotFound, strings.Join(paths, ", "))
}

// DiscoverRules builds the link rules used by offline commands. With an
// empty path the config is discovered; when none exists the built-in
// allow-list is used and the returned path is empty. Only the [links]
// section has to be valid.
func DiscoverRules(path string) (*streamlink.Rules, string, error) {
	if path == "" {
		found, err := Discover()
		if errors.Is(err, ErrNotFound) {
			return streamlink.DefaultRules(), "", nil
		}
		if err != nil {
			return nil, "", err
		}
		path = found
	}

	cfg, err := LoadWithoutValidation(path)
	if err != nil {
		return nil, "", err
	}
	rules, err := cfg.Links.Rules()
	if err != nil {
		return nil, "", &ConfigError{Path: path, Errors: []string{"links: " + err.Error()}}
	}
	return rules, path, nil
}
