package bubbletea

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/southpawriter02/glance"
)

// fileIcons maps file extensions to the glyph shown next to the name.
var fileIcons = map[string]string{
	".go":   "◆",
	".md":   "¶",
	".json": "{}",
	".toml": "#",
	".yaml": "#",
	".yml":  "#",
}

const defaultFileIcon = "·"

// treeNode is one entry in the tree with its lazily loaded children.
type treeNode struct {
	entry    glance.TreeEntry
	depth    int
	expanded bool
	loaded   bool
	children []*treeNode
}

// childrenLoadedMsg carries the entries of a directory that finished
// loading.
type childrenLoadedMsg struct {
	path    string
	entries []glance.TreeEntry
	err     error
}

// FileTree is the workspace file tree. Directories load their children on
// first expansion.
type FileTree struct {
	loader glance.TreeLoader
	root   string
	keys   TreeKeyMap

	nodes  []*treeNode
	cursor int
	err    error

	renaming    bool
	renameInput textinput.Model
}

// NewFileTree creates a file tree rooted at root. The loader is required.
func NewFileTree(loader glance.TreeLoader, root string) (*FileTree, error) {
	if loader == nil {
		return nil, fmt.Errorf("bubbletea: tree loader is required")
	}
	input := textinput.New()
	input.Prompt = ""
	return &FileTree{
		loader:      loader,
		root:        root,
		keys:        DefaultTreeKeyMap(),
		renameInput: input,
	}, nil
}

// Init implements tea.Model. It loads the top-level entries.
func (t *FileTree) Init() tea.Cmd {
	return t.loadChildren(t.root)
}

// Update implements tea.Model.
func (t *FileTree) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case childrenLoadedMsg:
		t.applyChildren(msg)
		return t, nil

	case tea.KeyMsg:
		if t.renaming {
			return t, t.updateRename(msg)
		}
		switch {
		case key.Matches(msg, t.keys.Up):
			t.MoveUp()
		case key.Matches(msg, t.keys.Down):
			t.MoveDown()
		case key.Matches(msg, t.keys.Expand):
			return t, t.Expand()
		case key.Matches(msg, t.keys.Collapse):
			t.Collapse()
		case key.Matches(msg, t.keys.Open):
			return t, t.Open()
		case key.Matches(msg, t.keys.Rename):
			t.StartRename()
		}
	}
	return t, nil
}

// Entries returns the currently visible nodes as tree entries, in display
// order.
func (t *FileTree) Entries() []glance.TreeEntry {
	visible := t.visible()
	entries := make([]glance.TreeEntry, len(visible))
	for i, node := range visible {
		entries[i] = node.entry
	}
	return entries
}

// SelectedEntry returns the entry under the cursor and whether one exists.
func (t *FileTree) SelectedEntry() (glance.TreeEntry, bool) {
	node := t.selectedNode()
	if node == nil {
		return glance.TreeEntry{}, false
	}
	return node.entry, true
}

// MoveDown moves the cursor toward the bottom of the visible tree.
func (t *FileTree) MoveDown() {
	if t.cursor < len(t.visible())-1 {
		t.cursor++
	}
}

// MoveUp moves the cursor toward the top of the visible tree.
func (t *FileTree) MoveUp() {
	if t.cursor > 0 {
		t.cursor--
	}
}

// Expand opens the directory under the cursor, loading its children the
// first time. It is a no-op on files.
func (t *FileTree) Expand() tea.Cmd {
	node := t.selectedNode()
	if node == nil || !node.entry.IsDir || node.expanded {
		return nil
	}
	node.expanded = true
	if node.loaded {
		return nil
	}
	return t.loadChildren(node.entry.Path)
}

// Collapse closes the directory under the cursor. On a file or collapsed
// directory it moves the cursor to the parent instead.
func (t *FileTree) Collapse() {
	node := t.selectedNode()
	if node == nil {
		return
	}
	if node.entry.IsDir && node.expanded {
		node.expanded = false
		return
	}
	t.moveToParent(node)
}

// Open emits an open request for the file under the cursor, or toggles a
// directory.
func (t *FileTree) Open() tea.Cmd {
	node := t.selectedNode()
	if node == nil {
		return nil
	}
	if node.entry.IsDir {
		if node.expanded {
			t.Collapse()
			return nil
		}
		return t.Expand()
	}
	path := node.entry.Path
	return func() tea.Msg {
		return FileOpenRequestedMsg{Path: path}
	}
}

// StartRename enters rename mode for the entry under the cursor, seeding
// the input with the current name.
func (t *FileTree) StartRename() {
	node := t.selectedNode()
	if node == nil {
		return
	}
	t.renaming = true
	t.renameInput.SetValue(node.entry.Name)
	t.renameInput.CursorEnd()
	t.renameInput.Focus()
}

// Renaming reports whether the tree is in rename mode.
func (t *FileTree) Renaming() bool {
	return t.renaming
}

// updateRename handles keys while renaming. Enter commits, esc aborts.
func (t *FileTree) updateRename(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		t.renaming = false
		return t.commitRename()
	case "esc":
		t.renaming = false
		return nil
	}
	var cmd tea.Cmd
	t.renameInput, cmd = t.renameInput.Update(msg)
	return cmd
}

// commitRename emits the rename request. An unchanged or empty name emits
// nothing.
func (t *FileTree) commitRename() tea.Cmd {
	node := t.selectedNode()
	newName := strings.TrimSpace(t.renameInput.Value())
	if node == nil || newName == "" || newName == node.entry.Name {
		return nil
	}
	oldPath := t.loader.RelativePath(t.root, node.entry.Path)
	newPath := t.loader.RelativePath(t.root, filepath.Join(filepath.Dir(node.entry.Path), newName))
	return func() tea.Msg {
		return RenameRequestedMsg{OldPath: oldPath, NewPath: newPath}
	}
}

// loadChildren fetches a directory's entries off the update loop.
func (t *FileTree) loadChildren(path string) tea.Cmd {
	return func() tea.Msg {
		entries, err := t.loader.Children(context.Background(), path)
		return childrenLoadedMsg{path: path, entries: entries, err: err}
	}
}

// applyChildren attaches loaded entries to their parent node, or to the
// top level when the path is the root.
func (t *FileTree) applyChildren(msg childrenLoadedMsg) {
	if msg.err != nil {
		t.err = msg.err
		return
	}

	if msg.path == t.root {
		t.nodes = makeNodes(msg.entries, 0)
		t.cursor = 0
		return
	}
	parent := t.findNode(msg.path)
	if parent == nil {
		return
	}
	parent.children = makeNodes(msg.entries, parent.depth+1)
	parent.loaded = true
}

func makeNodes(entries []glance.TreeEntry, depth int) []*treeNode {
	nodes := make([]*treeNode, len(entries))
	for i, entry := range entries {
		nodes[i] = &treeNode{entry: entry, depth: depth}
	}
	return nodes
}

// visible flattens the tree into display order, skipping children of
// collapsed directories.
func (t *FileTree) visible() []*treeNode {
	var out []*treeNode
	var walk func(nodes []*treeNode)
	walk = func(nodes []*treeNode) {
		for _, node := range nodes {
			out = append(out, node)
			if node.entry.IsDir && node.expanded {
				walk(node.children)
			}
		}
	}
	walk(t.nodes)
	return out
}

func (t *FileTree) selectedNode() *treeNode {
	visible := t.visible()
	if t.cursor < 0 || t.cursor >= len(visible) {
		return nil
	}
	return visible[t.cursor]
}

func (t *FileTree) findNode(path string) *treeNode {
	var find func(nodes []*treeNode) *treeNode
	find = func(nodes []*treeNode) *treeNode {
		for _, node := range nodes {
			if node.entry.Path == path {
				return node
			}
			if found := find(node.children); found != nil {
				return found
			}
		}
		return nil
	}
	return find(t.nodes)
}

// moveToParent places the cursor on the nearest visible ancestor of node.
func (t *FileTree) moveToParent(node *treeNode) {
	visible := t.visible()
	for i := t.cursor - 1; i >= 0; i-- {
		if visible[i].depth < node.depth {
			t.cursor = i
			return
		}
	}
}

// View implements tea.Model.
func (t *FileTree) View() string {
	selectedStyle := lipgloss.NewStyle().Reverse(true)
	dimStyle := lipgloss.NewStyle().Faint(true)

	if t.err != nil {
		return dimStyle.Render("could not read directory")
	}

	var sb strings.Builder
	for i, node := range t.visible() {
		indent := strings.Repeat("  ", node.depth)
		line := fmt.Sprintf("%s%s %s", indent, nodeIcon(node), node.entry.Name)
		if i == t.cursor {
			if t.renaming {
				line = fmt.Sprintf("%s%s %s", indent, nodeIcon(node), t.renameInput.View())
			} else {
				line = selectedStyle.Render(line)
			}
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}

func nodeIcon(node *treeNode) string {
	if node.entry.IsDir {
		if node.expanded {
			return "▾"
		}
		return "▸"
	}
	if icon, ok := fileIcons[strings.ToLower(filepath.Ext(node.entry.Name))]; ok {
		return icon
	}
	return defaultFileIcon
}
