package bubbletea

import "github.com/southpawriter02/glance"

// QuickOpenSelectedMsg is emitted when the user confirms a file in the
// quick-open picker.
type QuickOpenSelectedMsg struct {
	Result glance.FileSearchResult
}

// QuickOpenClosedMsg is emitted exactly once when the quick-open picker
// closes, whether by confirmation or cancellation.
type QuickOpenClosedMsg struct{}

// WorkspaceChosenMsg is emitted when the user picks a workspace on the
// welcome screen.
type WorkspaceChosenMsg struct {
	Workspace glance.Workspace
}

// NewFileRequestedMsg is emitted when the user asks to start a new file
// from the welcome screen.
type NewFileRequestedMsg struct{}

// FileOpenRequestedMsg is emitted when the user opens a file from the
// file tree.
type FileOpenRequestedMsg struct {
	Path string
}

// RenameRequestedMsg is emitted when the user commits a rename in the
// file tree. Paths are workspace-relative.
type RenameRequestedMsg struct {
	OldPath string
	NewPath string
}

// PresetChosenMsg is emitted when the user picks an inference preset.
type PresetChosenMsg struct {
	Preset glance.Preset
}

// PresetPickerClosedMsg is emitted when the preset picker closes without
// a choice.
type PresetPickerClosedMsg struct{}
