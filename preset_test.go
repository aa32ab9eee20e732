package glance_test

import (
	"testing"

	"github.com/southpawriter02/glance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPreset() glance.Preset {
	return glance.Preset{
		Name:        "balanced",
		Model:       "default",
		Temperature: 0.7,
		TopP:        0.95,
		MaxTokens:   4096,
	}
}

func TestPreset_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts a well-formed preset", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, validPreset().Validate())
	})

	t.Run("requires a name", func(t *testing.T) {
		t.Parallel()

		p := validPreset()
		p.Name = ""

		assert.ErrorIs(t, p.Validate(), glance.ErrPresetName)
	})

	t.Run("requires a model", func(t *testing.T) {
		t.Parallel()

		p := validPreset()
		p.Model = ""

		assert.ErrorIs(t, p.Validate(), glance.ErrPresetModel)
	})

	t.Run("rejects temperatures outside [0, 2]", func(t *testing.T) {
		t.Parallel()

		p := validPreset()
		p.Temperature = 2.5
		assert.Error(t, p.Validate())

		p.Temperature = -0.1
		assert.Error(t, p.Validate())
	})

	t.Run("rejects top_p outside (0, 1]", func(t *testing.T) {
		t.Parallel()

		p := validPreset()
		p.TopP = 0
		assert.Error(t, p.Validate())

		p.TopP = 1.2
		assert.Error(t, p.Validate())
	})

	t.Run("rejects non-positive max_tokens", func(t *testing.T) {
		t.Parallel()

		p := validPreset()
		p.MaxTokens = 0

		assert.Error(t, p.Validate())
	})
}

func TestDefaultPresets(t *testing.T) {
	t.Parallel()

	presets := glance.DefaultPresets()

	require.NotEmpty(t, presets)
	for _, p := range presets {
		assert.NoError(t, p.Validate(), "default preset %q must validate", p.Name)
	}
}
