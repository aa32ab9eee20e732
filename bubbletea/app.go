package bubbletea

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/southpawriter02/glance"
)

// screen identifies which top-level screen the app is showing.
type screen int

const (
	screenWelcome screen = iota
	screenMain
)

// overlay identifies the modal component shown over the main screen.
type overlay int

const (
	overlayNone overlay = iota
	overlayQuickOpen
	overlayPresets
)

// treeWidth is the fixed width of the file tree sidebar.
const treeWidth = 32

// AppConfig carries the collaborators the application shell composes.
type AppConfig struct {
	Index      glance.FileIndex
	Workspaces glance.WorkspaceService
	Loader     glance.TreeLoader
	Presets    []glance.Preset
	Theme      glance.Theme
	Diff       *glance.Diff
	Detector   glance.LanguageDetector
	Tokenizer  glance.Tokenizer
	Differ     glance.WordDiffer
	Logger     *slog.Logger
}

// App is the top-level Bubble Tea model: the welcome screen until a
// workspace is chosen, then the main screen with the diff view, file
// tree, and modal pickers.
type App struct {
	cfg    AppConfig
	logger *slog.Logger
	keys   KeyMap

	screen  screen
	overlay overlay

	welcome      *Welcome
	tree         *FileTree
	quickOpen    *QuickOpen
	presetPicker *PresetPicker
	diffView     DiffModel

	workspace    glance.Workspace
	activeFile   string
	activePreset glance.Preset
	showTree     bool
	status       string

	width  int
	height int
}

// NewApp creates the application shell. Index, workspace service and
// tree loader are required.
func NewApp(cfg AppConfig) (*App, error) {
	if cfg.Index == nil {
		return nil, fmt.Errorf("bubbletea: file index is required")
	}
	if cfg.Workspaces == nil {
		return nil, fmt.Errorf("bubbletea: workspace service is required")
	}
	if cfg.Loader == nil {
		return nil, fmt.Errorf("bubbletea: tree loader is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if len(cfg.Presets) == 0 {
		cfg.Presets = glance.DefaultPresets()
	}

	welcome, err := NewWelcome(cfg.Workspaces)
	if err != nil {
		return nil, err
	}

	app := &App{
		cfg:          cfg,
		logger:       cfg.Logger,
		keys:         DefaultKeyMap(),
		screen:       screenWelcome,
		welcome:      welcome,
		diffView:     NewDiffModel(cfg.Diff, cfg.Theme, cfg.Detector, cfg.Tokenizer, cfg.Differ),
		activePreset: cfg.Presets[0],
		showTree:     true,
	}
	return app, nil
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return a.welcome.Init()
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// The diff view always tracks the terminal size, even while
		// another component has focus.
		model, cmd := a.diffView.Update(msg)
		a.diffView = model.(DiffModel)
		if a.overlay == overlayQuickOpen && a.quickOpen != nil {
			a.quickOpen.Update(msg)
		}
		return a, cmd

	case WorkspaceChosenMsg:
		return a, a.openWorkspace(msg.Workspace)

	case NewFileRequestedMsg:
		a.screen = screenMain
		a.activeFile = "untitled"
		a.status = "new file"
		return a, nil

	case QuickOpenSelectedMsg:
		a.activeFile = msg.Result.RelativePath
		a.status = fmt.Sprintf("opened %s", msg.Result.RelativePath)
		return a, nil

	case QuickOpenClosedMsg:
		a.overlay = overlayNone
		a.quickOpen = nil
		return a, nil

	case PresetChosenMsg:
		a.activePreset = msg.Preset
		a.overlay = overlayNone
		a.status = fmt.Sprintf("preset %s", msg.Preset.Name)
		return a, nil

	case PresetPickerClosedMsg:
		a.overlay = overlayNone
		return a, nil

	case FileOpenRequestedMsg:
		rel := a.cfg.Loader.RelativePath(a.workspace.RootPath, msg.Path)
		a.activeFile = rel
		a.status = fmt.Sprintf("opened %s", rel)
		return a, nil

	case RenameRequestedMsg:
		a.logger.Info("rename requested", "from", msg.OldPath, "to", msg.NewPath)
		a.status = fmt.Sprintf("rename %s -> %s", msg.OldPath, msg.NewPath)
		return a, nil

	case tea.KeyMsg:
		if key.Matches(msg, a.keys.Quit) {
			return a, tea.Quit
		}
		if a.screen == screenWelcome {
			return a, a.forward(msg)
		}
		return a.updateMainKey(msg)
	}

	return a, a.forward(msg)
}

// updateMainKey handles a key press on the main screen.
func (a *App) updateMainKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.overlay != overlayNone {
		return a, a.forward(msg)
	}

	switch {
	case key.Matches(msg, a.keys.QuickOpen):
		quickOpen, err := NewQuickOpen(a.cfg.Index, a.logger)
		if err != nil {
			a.logger.Error("quick open unavailable", "error", err)
			return a, nil
		}
		a.quickOpen = quickOpen
		a.overlay = overlayQuickOpen
		return a, quickOpen.Init()

	case key.Matches(msg, a.keys.Presets):
		picker, err := NewPresetPicker(a.cfg.Presets)
		if err != nil {
			a.logger.Error("preset picker unavailable", "error", err)
			return a, nil
		}
		picker.SetActive(a.activePreset.Name)
		a.presetPicker = picker
		a.overlay = overlayPresets
		return a, nil

	case key.Matches(msg, a.keys.ToggleTree):
		a.showTree = !a.showTree
		return a, nil
	}

	return a, a.forward(msg)
}

// forward routes a message to whichever component currently has focus.
func (a *App) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch {
	case a.screen == screenWelcome:
		_, cmd = a.welcome.Update(msg)
	case a.overlay == overlayQuickOpen && a.quickOpen != nil:
		_, cmd = a.quickOpen.Update(msg)
	case a.overlay == overlayPresets && a.presetPicker != nil:
		_, cmd = a.presetPicker.Update(msg)
	default:
		if _, isKey := msg.(tea.KeyMsg); isKey && a.showTree && a.tree != nil {
			_, cmd = a.tree.Update(msg)
			return cmd
		}
		var model tea.Model
		model, cmd = a.diffView.Update(msg)
		a.diffView = model.(DiffModel)
		if a.tree != nil {
			if _, isChildren := msg.(childrenLoadedMsg); isChildren {
				_, treeCmd := a.tree.Update(msg)
				cmd = tea.Batch(cmd, treeCmd)
			}
		}
	}
	return cmd
}

// openWorkspace switches to the main screen and records the workspace as
// recently used.
func (a *App) openWorkspace(workspace glance.Workspace) tea.Cmd {
	a.workspace = workspace
	a.screen = screenMain
	a.status = fmt.Sprintf("workspace %s", workspace.Name)

	tree, err := NewFileTree(a.cfg.Loader, workspace.RootPath)
	if err != nil {
		a.logger.Error("file tree unavailable", "error", err)
	} else {
		a.tree = tree
	}

	remember := func() tea.Msg {
		if _, err := a.cfg.Workspaces.RememberWorkspace(context.Background(), workspace.RootPath); err != nil {
			a.logger.Warn("could not record workspace", "path", workspace.RootPath, "error", err)
		}
		return nil
	}
	if a.tree != nil {
		return tea.Batch(remember, a.tree.Init())
	}
	return remember
}

// Screen state accessors used by the shell's host and tests.

// OnWelcomeScreen reports whether the welcome screen is showing.
func (a *App) OnWelcomeScreen() bool {
	return a.screen == screenWelcome
}

// ActiveFile returns the workspace-relative path of the open file.
func (a *App) ActiveFile() string {
	return a.activeFile
}

// ActivePreset returns the inference preset currently in effect.
func (a *App) ActivePreset() glance.Preset {
	return a.activePreset
}

// QuickOpenVisible reports whether the quick-open overlay is showing.
func (a *App) QuickOpenVisible() bool {
	return a.overlay == overlayQuickOpen
}

// View implements tea.Model.
func (a *App) View() string {
	if a.screen == screenWelcome {
		return a.welcome.View()
	}

	switch a.overlay {
	case overlayQuickOpen:
		if a.quickOpen != nil {
			return a.quickOpen.View()
		}
	case overlayPresets:
		if a.presetPicker != nil {
			return a.presetPicker.View()
		}
	}

	header := a.headerView()
	body := a.diffView.View()
	if a.showTree && a.tree != nil {
		treeStyle := lipgloss.NewStyle().Width(treeWidth)
		body = lipgloss.JoinHorizontal(lipgloss.Top, treeStyle.Render(a.tree.View()), body)
	}

	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteString("\n")
	sb.WriteString(body)
	if a.status != "" {
		sb.WriteString("\n")
		sb.WriteString(lipgloss.NewStyle().Faint(true).Render(a.status))
	}
	return sb.String()
}

func (a *App) headerView() string {
	parts := []string{a.workspace.Name}
	if a.activeFile != "" {
		parts = append(parts, a.activeFile)
	}
	parts = append(parts, a.activePreset.Name)
	return lipgloss.NewStyle().Bold(true).Render(strings.Join(parts, "  ·  "))
}
