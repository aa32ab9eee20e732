// Package fs implements glance collaborators backed by the local filesystem.
package fs

import (
	"os"
	"path/filepath"
	"time"
)

// DefaultStateDir returns the directory for glance's mutable state
// (history, logs). Uses XDG_STATE_HOME if set, otherwise falls back to
// ~/.local/state/glance, or the system temp directory if home is
// unavailable.
func DefaultStateDir() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "glance")
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(os.TempDir(), "glance")
	}
	return filepath.Join(home, ".local", "state", "glance")
}

// DefaultConfigDir returns the directory for glance's configuration
// (presets). Uses XDG_CONFIG_HOME if set, otherwise ~/.config/glance,
// or the system temp directory if home is unavailable.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "glance")
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(os.TempDir(), "glance")
	}
	return filepath.Join(home, ".config", "glance")
}

// timeNow is stubbed in tests.
var timeNow = time.Now
