package fs

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/southpawriter02/glance"
)

// Compile-time interface verification.
var _ glance.TreeLoader = (*Tree)(nil)

// Tree loads file-tree contents from the local filesystem.
type Tree struct{}

// NewTree creates a new tree loader.
func NewTree() *Tree {
	return &Tree{}
}

// RelativePath returns path relative to root, or path unchanged when
// it is not under root.
func (t *Tree) RelativePath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}

// Children lists the entries directly under path, directories first,
// each group sorted by name.
func (t *Tree) Children(ctx context.Context, path string) ([]glance.TreeEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dirents, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	entries := make([]glance.TreeEntry, 0, len(dirents))
	for _, d := range dirents {
		entries = append(entries, glance.TreeEntry{
			Path:  filepath.Join(path, d.Name()),
			Name:  d.Name(),
			IsDir: d.IsDir(),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return entries[i].Name < entries[j].Name
	})

	return entries, nil
}
