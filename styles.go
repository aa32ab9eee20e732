package glance

// ColorPair represents a foreground and background color combination.
// Colors are hex strings in "#RRGGBB" format (e.g., "#ff0000" for red).
// Empty strings are valid and indicate no color override (use terminal default).
type ColorPair struct {
	Foreground string
	Background string
}

// Styles contains color pairs for all visual elements of the UI.
type Styles struct {
	Added            ColorPair // Added lines (+)
	Removed          ColorPair // Removed lines (-)
	Modified         ColorPair // Modified lines (~)
	Context          ColorPair // Unchanged lines
	Placeholder      ColorPair // Padding rows in side-by-side view
	HunkHeader       ColorPair // Hunk headers (@@ ... @@)
	FileHeader       ColorPair // Per-file headers
	LineNumber       ColorPair // Line numbers in the gutter
	AddedHighlight   ColorPair // Added inline segments within modified lines
	RemovedHighlight ColorPair // Removed inline segments within modified lines
	Selection        ColorPair // Selected row in pickers and lists
	StatusBar        ColorPair // Status text at the bottom of dialogs
}

// StyleClass returns the color pair for a row style class as produced
// by Row.ChangeClass. Unknown classes fall back to the context style.
func (s Styles) StyleClass(class string) ColorPair {
	switch class {
	case "diff-added":
		return s.Added
	case "diff-removed":
		return s.Removed
	case "diff-modified":
		return s.Modified
	case "diff-placeholder":
		return s.Placeholder
	default:
		return s.Context
	}
}

// Palette is the semantic color palette used for syntax highlighting
// and chrome outside the diff body.
type Palette struct {
	Background string
	Foreground string

	Keyword     string
	String      string
	Number      string
	Comment     string
	Operator    string
	Function    string
	Type        string
	Constant    string
	Punctuation string

	UIBackground string
	UIForeground string
	UIAccent     string
}

// Theme provides styles for rendering the UI.
// Different implementations can provide light/dark variants.
type Theme interface {
	Styles() Styles
	Palette() Palette
}
