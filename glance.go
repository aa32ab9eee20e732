// Package glance provides domain types for a terminal code-review
// companion: diff browsing, quick-open file search, and workspace
// management.
package glance

import (
	"context"
	"io"
)

// Parser parses unified diff content into a Diff.
type Parser interface {
	Parse(r io.Reader) (*Diff, error)
}

// Viewer displays a diff and blocks until the user exits.
type Viewer interface {
	View(ctx context.Context, diff *Diff) error
}

// GitRunner provides access to git operations for extracting diffs.
type GitRunner interface {
	// WorkingDiff returns the unified diff of uncommitted changes
	// (staged and unstaged) in the repository at repoPath.
	WorkingDiff(ctx context.Context, repoPath string) (string, error)
	// Show returns the diff for a specific commit hash.
	Show(ctx context.Context, repoPath string, hash string) (string, error)
}

// Clipboard writes content to the system clipboard.
type Clipboard interface {
	Copy(content string) error
}

// FileSearchResult is a single match returned by a FileIndex lookup.
type FileSearchResult struct {
	Path         string // absolute path
	Name         string // base name
	RelativePath string // path relative to the workspace root
}

// FileIndex looks up files in an indexed workspace.
type FileIndex interface {
	// Search returns up to limit results matching query, best first.
	// An empty query returns an arbitrary prefix of the index.
	Search(query string, limit int) ([]FileSearchResult, error)
	// RecentFiles returns up to limit recently opened paths, newest first.
	RecentFiles(limit int) []string
	// Indexed reports whether the index has finished building.
	Indexed() bool
	// FileCount returns the number of indexed files.
	FileCount() int
}

// Workspace identifies a project root the user has opened before.
type Workspace struct {
	ID       string
	RootPath string
	Name     string
}

// WorkspaceService records and lists recently opened workspaces.
type WorkspaceService interface {
	RecentWorkspaces(ctx context.Context, limit int) ([]Workspace, error)
	RememberWorkspace(ctx context.Context, rootPath string) (Workspace, error)
}

// TreeEntry is one row of a lazily loaded file tree.
type TreeEntry struct {
	Path  string
	Name  string
	IsDir bool
}

// TreeLoader supplies file-tree contents on demand.
type TreeLoader interface {
	// RelativePath returns path relative to root, or path unchanged
	// when it is not under root.
	RelativePath(root, path string) string
	// Children lists the entries directly under path, directories
	// first, each group sorted by name.
	Children(ctx context.Context, path string) ([]TreeEntry, error)
}
