package lipgloss_test

import (
	"testing"

	"github.com/southpawriter02/glance"
	"github.com/southpawriter02/glance/lipgloss"
	"github.com/stretchr/testify/assert"
)

// Compile-time check that Theme implements glance.Theme.
var _ glance.Theme = (*lipgloss.Theme)(nil)

func TestDarkTheme(t *testing.T) {
	t.Parallel()

	theme := lipgloss.DarkTheme()
	styles := theme.Styles()

	t.Run("diff styles carry both colors where needed", func(t *testing.T) {
		t.Parallel()

		assert.NotEmpty(t, styles.Added.Foreground)
		assert.NotEmpty(t, styles.Added.Background)
		assert.NotEmpty(t, styles.Removed.Foreground)
		assert.NotEmpty(t, styles.Removed.Background)
		assert.NotEmpty(t, styles.Modified.Foreground)
	})

	t.Run("placeholder rows have a background but no text color", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, styles.Placeholder.Foreground)
		assert.NotEmpty(t, styles.Placeholder.Background)
	})

	t.Run("palette provides syntax colors", func(t *testing.T) {
		t.Parallel()

		p := theme.Palette()
		assert.NotEmpty(t, p.Keyword)
		assert.NotEmpty(t, p.String)
		assert.NotEmpty(t, p.Comment)
		assert.NotEmpty(t, p.UIAccent)
	})
}

func TestLightTheme(t *testing.T) {
	t.Parallel()

	theme := lipgloss.LightTheme()
	styles := theme.Styles()

	assert.NotEmpty(t, styles.Added.Foreground)
	assert.NotEmpty(t, styles.Removed.Foreground)
	assert.NotEqual(t, lipgloss.DarkTheme().Styles().Added, styles.Added)
}

func TestDefaultTheme(t *testing.T) {
	t.Parallel()

	assert.Equal(t, lipgloss.DarkTheme().Styles(), lipgloss.DefaultTheme().Styles())
}

func TestThemeByName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, lipgloss.LightTheme().Styles(), lipgloss.ThemeByName("light").Styles())
	assert.Equal(t, lipgloss.DarkTheme().Styles(), lipgloss.ThemeByName("dark").Styles())
	assert.Equal(t, lipgloss.DarkTheme().Styles(), lipgloss.ThemeByName("").Styles())
}
