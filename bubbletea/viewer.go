// Package bubbletea provides the terminal UI: the diff viewer, the
// welcome screen, the quick-open picker, the file tree, and the preset
// picker, composed into an application shell.
package bubbletea

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/southpawriter02/glance"
)

// DiffModel is the Bubble Tea model for the side-by-side diff view.
type DiffModel struct {
	diff    *glance.Diff
	clip    glance.Clipboard
	cfg     renderConfig
	keys    ViewerKeyMap
	view    viewport.Model
	ready   bool
	content string
}

// NewDiffModel creates a diff view model. Theme, detector, tokenizer and
// differ are all optional; content renders unstyled without them.
func NewDiffModel(diff *glance.Diff, theme glance.Theme, detector glance.LanguageDetector, tokenizer glance.Tokenizer, differ glance.WordDiffer) DiffModel {
	cfg := renderConfig{
		diff:      diff,
		detector:  detector,
		tokenizer: tokenizer,
		differ:    differ,
		width:     80,
	}
	if theme != nil {
		cfg.styles = theme.Styles()
	}
	return DiffModel{
		diff: diff,
		cfg:  cfg,
		keys: DefaultViewerKeyMap(),
	}
}

// WithClipboard enables copying the raw diff text with the copy key.
func (m DiffModel) WithClipboard(clip glance.Clipboard) DiffModel {
	m.clip = clip
	return m
}

// WithRenderer replaces the lipgloss renderer, which controls the color
// profile of the output.
func (m DiffModel) WithRenderer(r *lipgloss.Renderer) DiffModel {
	m.cfg.renderer = r
	return m
}

// Init implements tea.Model.
func (m DiffModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m DiffModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.GotoTop):
			m.view.GotoTop()
			return m, nil
		case key.Matches(msg, m.keys.GotoBottom):
			m.view.GotoBottom()
			return m, nil
		case key.Matches(msg, m.keys.HalfPageUp):
			m.view.HalfViewUp()
			return m, nil
		case key.Matches(msg, m.keys.HalfPageDown):
			m.view.HalfViewDown()
			return m, nil
		case key.Matches(msg, m.keys.Copy):
			if m.clip != nil {
				// The viewer has no error surface; a failed copy is
				// indistinguishable from no copy.
				_ = m.clip.Copy(rawDiff(m.diff))
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.cfg.width = msg.Width
		m.content = renderDiff(m.cfg)
		if !m.ready {
			m.view = viewport.New(msg.Width, msg.Height)
			m.ready = true
		} else {
			m.view.Width = msg.Width
			m.view.Height = msg.Height
		}
		m.view.SetContent(m.content)
	}

	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m DiffModel) View() string {
	if !m.ready {
		return "Loading..."
	}
	return m.view.View()
}

// Compile-time interface verification.
var _ glance.Viewer = (*Viewer)(nil)

// Viewer implements glance.Viewer using a Bubble Tea program.
type Viewer struct {
	theme     glance.Theme
	detector  glance.LanguageDetector
	tokenizer glance.Tokenizer
	differ    glance.WordDiffer
	clip      glance.Clipboard
}

// NewViewer creates a Viewer with the given collaborators. All of them
// are optional.
func NewViewer(theme glance.Theme, detector glance.LanguageDetector, tokenizer glance.Tokenizer, differ glance.WordDiffer, clip glance.Clipboard) *Viewer {
	return &Viewer{
		theme:     theme,
		detector:  detector,
		tokenizer: tokenizer,
		differ:    differ,
		clip:      clip,
	}
}

// View displays the diff and blocks until the user exits.
func (v *Viewer) View(ctx context.Context, diff *glance.Diff) error {
	m := NewDiffModel(diff, v.theme, v.detector, v.tokenizer, v.differ).WithClipboard(v.clip)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	return err
}
