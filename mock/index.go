package mock

import "github.com/southpawriter02/glance"

// Compile-time interface verification.
var _ glance.FileIndex = (*FileIndex)(nil)

// FileIndex is a mock implementation of glance.FileIndex.
type FileIndex struct {
	SearchFn      func(query string, limit int) ([]glance.FileSearchResult, error)
	RecentFilesFn func(limit int) []string
	IndexedFn     func() bool
	FileCountFn   func() int
}

func (ix *FileIndex) Search(query string, limit int) ([]glance.FileSearchResult, error) {
	return ix.SearchFn(query, limit)
}

func (ix *FileIndex) RecentFiles(limit int) []string {
	return ix.RecentFilesFn(limit)
}

func (ix *FileIndex) Indexed() bool {
	return ix.IndexedFn()
}

func (ix *FileIndex) FileCount() int {
	return ix.FileCountFn()
}
