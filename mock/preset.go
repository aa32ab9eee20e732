package mock

import "github.com/southpawriter02/glance"

// Compile-time interface verification.
var _ glance.PresetStore = (*PresetStore)(nil)

// PresetStore is a mock implementation of glance.PresetStore.
type PresetStore struct {
	LoadFn func(path string) ([]glance.Preset, error)
	SaveFn func(path string, presets []glance.Preset) error
}

func (s *PresetStore) Load(path string) ([]glance.Preset, error) {
	return s.LoadFn(path)
}

func (s *PresetStore) Save(path string, presets []glance.Preset) error {
	return s.SaveFn(path, presets)
}
