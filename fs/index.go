package fs

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/sahilm/fuzzy"
	"github.com/southpawriter02/glance"
	"github.com/southpawriter02/glance/jsonl"
	"golang.org/x/sync/errgroup"
)

// Compile-time interface verification.
var _ glance.FileIndex = (*Index)(nil)

// skipDirs are directory names never worth indexing.
var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	".idea":        true,
	".vscode":      true,
}

// indexWorkers bounds the number of concurrent directory walks.
const indexWorkers = 8

// Index is an in-memory file index over one workspace root. It is a
// thin walk-and-filter adapter: glance consumes the FileIndex contract
// and leaves heavyweight indexing to external tooling.
type Index struct {
	root    string
	history *jsonl.History // optional; nil disables recents

	mu      sync.RWMutex
	paths   []string // relative paths, sorted
	indexed bool
}

// NewIndex creates an index rooted at root. history may be nil, in
// which case RecentFiles always returns nothing.
func NewIndex(root string, history *jsonl.History) (*Index, error) {
	if root == "" {
		return nil, errors.New("fs: index root is required")
	}
	return &Index{root: root, history: history}, nil
}

// Build walks the workspace and records every regular file. Top-level
// directories are walked concurrently. Build replaces any previous
// contents and may be called again to refresh.
func (ix *Index) Build(ctx context.Context) error {
	entries, err := os.ReadDir(ix.root)
	if err != nil {
		return err
	}

	var collectMu sync.Mutex
	var paths []string
	add := func(batch []string) {
		collectMu.Lock()
		paths = append(paths, batch...)
		collectMu.Unlock()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(indexWorkers)

	for _, entry := range entries {
		if entry.IsDir() {
			if skipDirs[entry.Name()] {
				continue
			}
			dir := filepath.Join(ix.root, entry.Name())
			g.Go(func() error {
				batch, err := ix.walk(ctx, dir)
				if err != nil {
					return err
				}
				add(batch)
				return nil
			})
			continue
		}
		if entry.Type().IsRegular() {
			add([]string{entry.Name()})
		}
	}

	if err := g.Wait(); err != nil {
		return err
	}

	sort.Strings(paths)

	ix.mu.Lock()
	ix.paths = paths
	ix.indexed = true
	ix.mu.Unlock()

	return nil
}

// walk collects relative paths of regular files under dir.
func (ix *Index) walk(ctx context.Context, dir string) ([]string, error) {
	var batch []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(ix.root, path)
		if err != nil {
			return err
		}
		batch = append(batch, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return batch, nil
}

// Search returns up to limit results matching query, best first. An
// empty query returns the first limit files in path order.
func (ix *Index) Search(query string, limit int) ([]glance.FileSearchResult, error) {
	ix.mu.RLock()
	paths := ix.paths
	ix.mu.RUnlock()

	if limit <= 0 {
		return nil, nil
	}

	if query == "" {
		n := min(limit, len(paths))
		results := make([]glance.FileSearchResult, 0, n)
		for _, rel := range paths[:n] {
			results = append(results, ix.result(rel))
		}
		return results, nil
	}

	matches := fuzzy.Find(query, paths)
	n := min(limit, len(matches))
	results := make([]glance.FileSearchResult, 0, n)
	for _, m := range matches[:n] {
		results = append(results, ix.result(m.Str))
	}
	return results, nil
}

func (ix *Index) result(rel string) glance.FileSearchResult {
	return glance.FileSearchResult{
		Path:         filepath.Join(ix.root, rel),
		Name:         filepath.Base(rel),
		RelativePath: rel,
	}
}

// RecentFiles returns recently opened paths, newest first. History
// failures degrade to an empty list.
func (ix *Index) RecentFiles(limit int) []string {
	if ix.history == nil {
		return nil
	}
	entries, err := ix.history.Recent(jsonl.KindFile, limit)
	if err != nil {
		return nil
	}
	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		paths = append(paths, e.Path)
	}
	return paths
}

// RememberFile records path as opened so it surfaces in RecentFiles.
// A nil history makes this a no-op.
func (ix *Index) RememberFile(path string) error {
	if ix.history == nil {
		return nil
	}
	return ix.history.Append(jsonl.Entry{
		Kind:     jsonl.KindFile,
		Path:     path,
		Name:     filepath.Base(path),
		OpenedAt: timeNow(),
	})
}

// Indexed reports whether Build has completed.
func (ix *Index) Indexed() bool {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.indexed
}

// FileCount returns the number of indexed files.
func (ix *Index) FileCount() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.paths)
}
