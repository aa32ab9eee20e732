// Package lipgloss provides theme implementations using the Lipgloss styling library.
package lipgloss

import "github.com/southpawriter02/glance"

// Compile-time interface verification.
var _ glance.Theme = (*Theme)(nil)

// Theme implements glance.Theme with Lipgloss-compatible colors.
type Theme struct {
	styles  glance.Styles
	palette glance.Palette
}

// Styles returns the color styles for this theme.
func (t *Theme) Styles() glance.Styles {
	return t.styles
}

// Palette returns the semantic color palette for this theme.
func (t *Theme) Palette() glance.Palette {
	return t.palette
}

// DefaultTheme returns the default theme (dark background optimized).
func DefaultTheme() *Theme {
	return DarkTheme()
}

// DarkTheme returns a theme optimized for dark terminal backgrounds.
// Background colors are very dark to allow syntax highlighting colors to remain readable.
func DarkTheme() *Theme {
	return &Theme{
		styles: glance.Styles{
			Added: glance.ColorPair{
				Foreground: "#a6e3a1", // Green
				Background: "#004000", // Very dark green - syntax colors stay readable
			},
			Removed: glance.ColorPair{
				Foreground: "#f38ba8", // Red
				Background: "#3f0001", // Very dark red - syntax colors stay readable
			},
			Modified: glance.ColorPair{
				Foreground: "#f9e2af", // Yellow
				Background: "#32302f", // Dark amber-tinted surface
			},
			Context: glance.ColorPair{
				Foreground: "#6c7086", // Muted gray (dimmed for change visibility)
			},
			Placeholder: glance.ColorPair{
				Background: "#181825", // Slightly darker than the base background
			},
			HunkHeader: glance.ColorPair{
				Foreground: "#89b4fa", // Blue
			},
			FileHeader: glance.ColorPair{
				Foreground: "#f9e2af", // Yellow
				Background: "#313244", // Dark surface
			},
			LineNumber: glance.ColorPair{
				Foreground: "#6c7086", // Muted gray
			},
			AddedHighlight: glance.ColorPair{
				Foreground: "#1e1e2e", // Dark text on bright background
				Background: "#a6e3a1", // Bright green background
			},
			RemovedHighlight: glance.ColorPair{
				Foreground: "#1e1e2e", // Dark text on bright background
				Background: "#f38ba8", // Bright red background
			},
			Selection: glance.ColorPair{
				Foreground: "#1e1e2e",
				Background: "#89b4fa", // Accent blue
			},
			StatusBar: glance.ColorPair{
				Foreground: "#a6adc8",
				Background: "#313244",
			},
		},
		palette: glance.Palette{
			// Base colors (Catppuccin Mocha)
			Background: "#1e1e2e",
			Foreground: "#cdd6f4",

			// Syntax highlighting colors
			Keyword:     "#cba6f7",
			String:      "#a6e3a1",
			Number:      "#fab387",
			Comment:     "#6c7086",
			Operator:    "#89dceb",
			Function:    "#89b4fa",
			Type:        "#f9e2af",
			Constant:    "#fab387",
			Punctuation: "#9399b2",

			// UI colors
			UIBackground: "#313244",
			UIForeground: "#a6adc8",
			UIAccent:     "#89b4fa",
		},
	}
}

// LightTheme returns a theme optimized for light terminal backgrounds.
func LightTheme() *Theme {
	return &Theme{
		styles: glance.Styles{
			Added: glance.ColorPair{
				Foreground: "#40a02b", // Green
				Background: "#d4f4d4", // Subtle green background
			},
			Removed: glance.ColorPair{
				Foreground: "#d20f39", // Red
				Background: "#f4d4d4", // Subtle red background
			},
			Modified: glance.ColorPair{
				Foreground: "#df8e1d", // Amber
				Background: "#f4ecd4", // Subtle amber background
			},
			Context: glance.ColorPair{
				Foreground: "#9ca0b0", // Muted gray (dimmed for change visibility)
			},
			Placeholder: glance.ColorPair{
				Background: "#e6e9ef", // Slightly darker than the page background
			},
			HunkHeader: glance.ColorPair{
				Foreground: "#1e66f5", // Blue
			},
			FileHeader: glance.ColorPair{
				Foreground: "#df8e1d", // Amber
				Background: "#e6e9ef", // Light surface
			},
			LineNumber: glance.ColorPair{
				Foreground: "#9ca0b0", // Muted gray
			},
			AddedHighlight: glance.ColorPair{
				Foreground: "#eff1f5", // Light text on saturated background
				Background: "#40a02b", // Saturated green
			},
			RemovedHighlight: glance.ColorPair{
				Foreground: "#eff1f5", // Light text on saturated background
				Background: "#d20f39", // Saturated red
			},
			Selection: glance.ColorPair{
				Foreground: "#eff1f5",
				Background: "#1e66f5", // Accent blue
			},
			StatusBar: glance.ColorPair{
				Foreground: "#5c5f77",
				Background: "#e6e9ef",
			},
		},
		palette: glance.Palette{
			// Base colors (Catppuccin Latte)
			Background: "#eff1f5",
			Foreground: "#4c4f69",

			// Syntax highlighting colors
			Keyword:     "#8839ef",
			String:      "#40a02b",
			Number:      "#fe640b",
			Comment:     "#9ca0b0",
			Operator:    "#04a5e5",
			Function:    "#1e66f5",
			Type:        "#df8e1d",
			Constant:    "#fe640b",
			Punctuation: "#7c7f93",

			// UI colors
			UIBackground: "#e6e9ef",
			UIForeground: "#5c5f77",
			UIAccent:     "#1e66f5",
		},
	}
}

// ThemeByName returns the named theme, defaulting to the dark theme
// for unknown names.
func ThemeByName(name string) *Theme {
	switch name {
	case "light":
		return LightTheme()
	default:
		return DarkTheme()
	}
}
