package bubbletea

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/southpawriter02/glance"
)

// welcomeRecentLimit caps how many recent workspaces the welcome screen lists.
const welcomeRecentLimit = 9

// workspacesLoadedMsg carries the recent workspace list fetched at startup.
type workspacesLoadedMsg struct {
	workspaces []glance.Workspace
	err        error
}

// Welcome is the screen shown before a workspace is open. It lists
// recently opened workspaces and offers starting a new file.
type Welcome struct {
	service glance.WorkspaceService
	keys    ListKeyMap
	newFile key.Binding

	workspaces []glance.Workspace
	selected   int
	err        error
}

// NewWelcome creates the welcome screen. The workspace service is required.
func NewWelcome(service glance.WorkspaceService) (*Welcome, error) {
	if service == nil {
		return nil, fmt.Errorf("bubbletea: workspace service is required")
	}
	return &Welcome{
		service: service,
		keys:    DefaultListKeyMap(),
		newFile: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new file"),
		),
	}, nil
}

// Init implements tea.Model. It loads recent workspaces off the update loop.
func (w *Welcome) Init() tea.Cmd {
	return func() tea.Msg {
		workspaces, err := w.service.RecentWorkspaces(context.Background(), welcomeRecentLimit)
		return workspacesLoadedMsg{workspaces: workspaces, err: err}
	}
}

// Update implements tea.Model.
func (w *Welcome) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case workspacesLoadedMsg:
		if msg.err != nil {
			w.err = msg.err
			return w, nil
		}
		w.workspaces = msg.workspaces
		w.selected = 0
		return w, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, w.keys.Up):
			w.MoveUp()
		case key.Matches(msg, w.keys.Down):
			w.MoveDown()
		case key.Matches(msg, w.keys.Confirm):
			return w, w.Choose()
		case key.Matches(msg, w.newFile):
			return w, w.NewFile()
		default:
			// Digits jump straight to the numbered workspace.
			if idx, ok := digitIndex(msg.String()); ok && idx < len(w.workspaces) {
				w.selected = idx
				return w, w.Choose()
			}
		}
	}
	return w, nil
}

// Workspaces returns the loaded recent workspaces.
func (w *Welcome) Workspaces() []glance.Workspace {
	return w.workspaces
}

// SelectedIndex returns the index of the highlighted workspace.
func (w *Welcome) SelectedIndex() int {
	return w.selected
}

// MoveDown advances the selection, wrapping at the end.
func (w *Welcome) MoveDown() {
	if len(w.workspaces) == 0 {
		return
	}
	w.selected = (w.selected + 1) % len(w.workspaces)
}

// MoveUp retreats the selection, wrapping at the start.
func (w *Welcome) MoveUp() {
	if len(w.workspaces) == 0 {
		return
	}
	w.selected = (w.selected - 1 + len(w.workspaces)) % len(w.workspaces)
}

// Choose emits the highlighted workspace. It is a no-op command when no
// workspaces are listed.
func (w *Welcome) Choose() tea.Cmd {
	if len(w.workspaces) == 0 {
		return nil
	}
	workspace := w.workspaces[w.selected]
	return func() tea.Msg {
		return WorkspaceChosenMsg{Workspace: workspace}
	}
}

// NewFile emits a request to start a new untitled file.
func (w *Welcome) NewFile() tea.Cmd {
	return func() tea.Msg {
		return NewFileRequestedMsg{}
	}
}

// View implements tea.Model.
func (w *Welcome) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true)
	dimStyle := lipgloss.NewStyle().Faint(true)
	selectedStyle := lipgloss.NewStyle().Reverse(true)

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("glance"))
	sb.WriteString("\n\n")

	if w.err != nil {
		sb.WriteString(dimStyle.Render("could not load recent workspaces"))
		sb.WriteString("\n\n")
	} else if len(w.workspaces) == 0 {
		sb.WriteString(dimStyle.Render("no recent workspaces"))
		sb.WriteString("\n\n")
	}
	for i, workspace := range w.workspaces {
		line := fmt.Sprintf("%d  %s  %s", i+1, workspace.Name, dimStyle.Render(workspace.RootPath))
		if i == w.selected {
			line = selectedStyle.Render(fmt.Sprintf("%d  %s  %s", i+1, workspace.Name, workspace.RootPath))
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render("enter open · n new file · ctrl+c quit"))
	return sb.String()
}

// digitIndex maps "1".."9" to a zero-based index.
func digitIndex(s string) (int, bool) {
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return 0, false
	}
	return int(s[0] - '1'), true
}
