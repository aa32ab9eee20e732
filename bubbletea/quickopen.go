package bubbletea

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/southpawriter02/glance"
)

const (
	// quickOpenLimit caps the number of results shown in the picker.
	quickOpenLimit = 50

	// quickOpenDebounce is how long typing must pause before a search runs.
	quickOpenDebounce = 150 * time.Millisecond
)

// noSelection is the selected index when the result list is empty.
const noSelection = -1

// searchDueMsg fires when a debounce window elapses. The sequence number
// identifies the keystroke that scheduled it; stale ticks are dropped.
type searchDueMsg struct {
	seq int
}

// QuickOpen is the fuzzy file picker. It searches the workspace index as
// the user types, debouncing keystrokes so only the latest pending query
// runs.
type QuickOpen struct {
	index  glance.FileIndex
	logger *slog.Logger
	keys   ListKeyMap

	input    textinput.Model
	results  []glance.FileSearchResult
	selected int
	status   string
	seq      int
	closed   bool
	width    int
}

// NewQuickOpen creates a quick-open picker backed by the given file index.
// The index is required; a nil logger falls back to slog.Default.
func NewQuickOpen(index glance.FileIndex, logger *slog.Logger) (*QuickOpen, error) {
	if index == nil {
		return nil, fmt.Errorf("bubbletea: file index is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	input := textinput.New()
	input.Placeholder = "type to search files"
	input.Prompt = "> "
	input.Focus()

	q := &QuickOpen{
		index:    index,
		logger:   logger,
		keys:     DefaultListKeyMap(),
		input:    input,
		selected: noSelection,
		status:   fmt.Sprintf("%d files indexed", index.FileCount()),
	}
	q.loadInitialResults()
	return q, nil
}

// loadInitialResults seeds the list before the user has typed anything:
// recently opened files when any exist, otherwise the first files from an
// empty-query search.
func (q *QuickOpen) loadInitialResults() {
	if recents := q.index.RecentFiles(quickOpenLimit); len(recents) > 0 {
		results := make([]glance.FileSearchResult, 0, len(recents))
		for _, path := range recents {
			results = append(results, glance.FileSearchResult{
				Path:         path,
				Name:         filepath.Base(path),
				RelativePath: path,
			})
		}
		q.setResults(results)
		return
	}
	q.runSearch()
}

// Init implements tea.Model.
func (q *QuickOpen) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (q *QuickOpen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, q.keys.Up):
			q.MoveUp()
			return q, nil
		case key.Matches(msg, q.keys.Down):
			q.MoveDown()
			return q, nil
		case key.Matches(msg, q.keys.Confirm):
			return q, q.Confirm()
		case key.Matches(msg, q.keys.Cancel):
			return q, q.Cancel()
		}

		before := q.input.Value()
		var cmd tea.Cmd
		q.input, cmd = q.input.Update(msg)
		if q.input.Value() != before {
			return q, tea.Batch(cmd, q.scheduleSearch())
		}
		return q, cmd

	case searchDueMsg:
		if q.closed || msg.seq != q.seq {
			return q, nil
		}
		q.runSearch()
		return q, nil

	case tea.WindowSizeMsg:
		q.width = msg.Width
		return q, nil
	}

	var cmd tea.Cmd
	q.input, cmd = q.input.Update(msg)
	return q, cmd
}

// SetQuery replaces the query text and schedules a debounced search. The
// returned command must be executed for the search to eventually run.
func (q *QuickOpen) SetQuery(query string) tea.Cmd {
	q.input.SetValue(query)
	return q.scheduleSearch()
}

// Query returns the current query text.
func (q *QuickOpen) Query() string {
	return q.input.Value()
}

// Results returns the current result list.
func (q *QuickOpen) Results() []glance.FileSearchResult {
	return q.results
}

// SelectedIndex returns the index of the highlighted result, or -1 when
// the list is empty.
func (q *QuickOpen) SelectedIndex() int {
	return q.selected
}

// SelectedResult returns the highlighted result and whether one exists.
func (q *QuickOpen) SelectedResult() (glance.FileSearchResult, bool) {
	if q.selected == noSelection {
		return glance.FileSearchResult{}, false
	}
	return q.results[q.selected], true
}

// Status returns the status line text.
func (q *QuickOpen) Status() string {
	return q.status
}

// MoveDown advances the selection, wrapping past the last result. It is a
// no-op when the list is empty.
func (q *QuickOpen) MoveDown() {
	if len(q.results) == 0 {
		return
	}
	q.selected = (q.selected + 1) % len(q.results)
}

// MoveUp retreats the selection, wrapping past the first result. It is a
// no-op when the list is empty.
func (q *QuickOpen) MoveUp() {
	if len(q.results) == 0 {
		return
	}
	q.selected = (q.selected - 1 + len(q.results)) % len(q.results)
}

// Confirm closes the picker. With a non-empty list it emits the selected
// result followed by the close notification; with an empty list it emits
// only the close notification.
func (q *QuickOpen) Confirm() tea.Cmd {
	q.closed = true
	result, ok := q.SelectedResult()
	if !ok {
		return closeQuickOpen
	}
	return tea.Sequence(
		func() tea.Msg { return QuickOpenSelectedMsg{Result: result} },
		closeQuickOpen,
	)
}

// Cancel closes the picker without selecting anything.
func (q *QuickOpen) Cancel() tea.Cmd {
	q.closed = true
	return closeQuickOpen
}

func closeQuickOpen() tea.Msg {
	return QuickOpenClosedMsg{}
}

// scheduleSearch starts a new debounce window. Each call invalidates any
// window still in flight, so only the tick for the latest keystroke runs
// a search.
func (q *QuickOpen) scheduleSearch() tea.Cmd {
	q.seq++
	seq := q.seq
	return tea.Tick(quickOpenDebounce, func(time.Time) tea.Msg {
		return searchDueMsg{seq: seq}
	})
}

// runSearch queries the index with the current text. Search failures are
// logged and surfaced as an empty list rather than propagated.
func (q *QuickOpen) runSearch() {
	query := q.input.Value()
	results, err := q.index.Search(query, quickOpenLimit)
	if err != nil {
		q.logger.Error("file search failed", "query", query, "error", err)
		q.setResults(nil)
		q.status = "search failed"
		return
	}
	q.setResults(results)
	q.status = fmt.Sprintf("%d files indexed", q.index.FileCount())
}

func (q *QuickOpen) setResults(results []glance.FileSearchResult) {
	q.results = results
	if len(results) == 0 {
		q.selected = noSelection
		return
	}
	q.selected = 0
}

// View implements tea.Model.
func (q *QuickOpen) View() string {
	var sb strings.Builder
	sb.WriteString(q.input.View())
	sb.WriteString("\n\n")

	selectedStyle := lipgloss.NewStyle().Reverse(true)
	dimStyle := lipgloss.NewStyle().Faint(true)

	if len(q.results) == 0 {
		sb.WriteString(dimStyle.Render("no matching files"))
		sb.WriteString("\n")
	}
	for i, result := range q.results {
		line := fmt.Sprintf("%s  %s", result.Name, result.RelativePath)
		if i == q.selected {
			line = selectedStyle.Render(line)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render(q.status))
	return sb.String()
}
