package glance

import (
	"errors"
	"fmt"
)

// Preset is a named inference configuration for the assistant backend.
// The backend itself is external; glance only selects and edits the
// parameters sent to it.
type Preset struct {
	Name         string  `toml:"name"`
	Model        string  `toml:"model"`
	Temperature  float64 `toml:"temperature"`
	TopP         float64 `toml:"top_p"`
	MaxTokens    int     `toml:"max_tokens"`
	SystemPrompt string  `toml:"system_prompt,omitempty"`
}

// Preset validation errors.
var (
	ErrPresetName  = errors.New("preset name is required")
	ErrPresetModel = errors.New("preset model is required")
)

// Validate checks that the preset is well formed.
func (p Preset) Validate() error {
	if p.Name == "" {
		return ErrPresetName
	}
	if p.Model == "" {
		return ErrPresetModel
	}
	if p.Temperature < 0 || p.Temperature > 2 {
		return fmt.Errorf("preset %q: temperature %v out of range [0, 2]", p.Name, p.Temperature)
	}
	if p.TopP <= 0 || p.TopP > 1 {
		return fmt.Errorf("preset %q: top_p %v out of range (0, 1]", p.Name, p.TopP)
	}
	if p.MaxTokens <= 0 {
		return fmt.Errorf("preset %q: max_tokens must be positive", p.Name)
	}
	return nil
}

// DefaultPresets returns the presets shipped with a fresh install.
func DefaultPresets() []Preset {
	return []Preset{
		{
			Name:        "balanced",
			Model:       "default",
			Temperature: 0.7,
			TopP:        0.95,
			MaxTokens:   4096,
		},
		{
			Name:        "precise",
			Model:       "default",
			Temperature: 0.2,
			TopP:        0.9,
			MaxTokens:   4096,
		},
		{
			Name:        "creative",
			Model:       "default",
			Temperature: 1.1,
			TopP:        1.0,
			MaxTokens:   8192,
		},
	}
}

// PresetStore persists inference presets.
type PresetStore interface {
	// Load reads presets from path. A missing file yields the default
	// presets rather than an error.
	Load(path string) ([]Preset, error)
	Save(path string, presets []Preset) error
}
