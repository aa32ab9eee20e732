// Package toml persists inference presets as TOML.
package toml

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/southpawriter02/glance"
)

// Compile-time interface verification.
var _ glance.PresetStore = (*PresetStore)(nil)

// presetFile is the on-disk document shape.
type presetFile struct {
	Presets []glance.Preset `toml:"preset"`
}

// PresetStore reads and writes preset files.
type PresetStore struct{}

// NewPresetStore creates a new PresetStore.
func NewPresetStore() *PresetStore {
	return &PresetStore{}
}

// Load reads presets from path. A missing file yields the default
// presets rather than an error. Every loaded preset is validated.
func (s *PresetStore) Load(path string) ([]glance.Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return glance.DefaultPresets(), nil
		}
		return nil, err
	}

	var doc presetFile
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	for _, p := range doc.Presets {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}

	return doc.Presets, nil
}

// Save writes presets to path atomically (temp file plus rename),
// creating the directory as needed. Invalid presets are rejected.
func (s *PresetStore) Save(path string, presets []glance.Preset) error {
	for _, p := range presets {
		if err := p.Validate(); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".presets-*.toml")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := toml.NewEncoder(tmp).Encode(presetFile{Presets: presets}); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
