package jsonl_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/southpawriter02/glance/jsonl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_Load(t *testing.T) {
	t.Parallel()

	t.Run("missing file yields no entries and no error", func(t *testing.T) {
		t.Parallel()

		h := jsonl.NewHistory(filepath.Join(t.TempDir(), "does-not-exist.jsonl"))

		entries, err := h.Load()

		require.NoError(t, err)
		assert.Nil(t, entries)
	})

	t.Run("skips blank lines", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "history.jsonl")
		content := `{"kind":"file","path":"/a.go","opened_at":"2026-01-02T15:04:05Z"}

{"kind":"file","path":"/b.go","opened_at":"2026-01-02T15:05:05Z"}
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		entries, err := jsonl.NewHistory(path).Load()

		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "/a.go", entries[0].Path)
		assert.Equal(t, "/b.go", entries[1].Path)
	})

	t.Run("reports malformed lines with their line number", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "history.jsonl")
		require.NoError(t, os.WriteFile(path, []byte("{not json}\n"), 0o644))

		_, err := jsonl.NewHistory(path).Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 1")
	})
}

func TestHistory_Append(t *testing.T) {
	t.Parallel()

	t.Run("creates the file and parent directory", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nested", "dir", "history.jsonl")
		h := jsonl.NewHistory(path)

		err := h.Append(jsonl.Entry{
			Kind:     jsonl.KindFile,
			Path:     "/project/main.go",
			OpenedAt: time.Now(),
		})

		require.NoError(t, err)

		entries, err := h.Load()
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "/project/main.go", entries[0].Path)
	})

	t.Run("appends preserve existing entries", func(t *testing.T) {
		t.Parallel()

		h := jsonl.NewHistory(filepath.Join(t.TempDir(), "history.jsonl"))

		require.NoError(t, h.Append(jsonl.Entry{Kind: jsonl.KindFile, Path: "/a.go"}))
		require.NoError(t, h.Append(jsonl.Entry{Kind: jsonl.KindFile, Path: "/b.go"}))

		entries, err := h.Load()
		require.NoError(t, err)
		require.Len(t, entries, 2)
	})
}

func TestHistory_Recent(t *testing.T) {
	t.Parallel()

	newHistory := func(t *testing.T) *jsonl.History {
		t.Helper()
		h := jsonl.NewHistory(filepath.Join(t.TempDir(), "history.jsonl"))
		seed := []jsonl.Entry{
			{Kind: jsonl.KindFile, Path: "/a.go"},
			{Kind: jsonl.KindWorkspace, Path: "/project"},
			{Kind: jsonl.KindFile, Path: "/b.go"},
			{Kind: jsonl.KindFile, Path: "/a.go"},
			{Kind: jsonl.KindFile, Path: "/c.go"},
		}
		for _, e := range seed {
			require.NoError(t, h.Append(e))
		}
		return h
	}

	t.Run("returns newest first, deduplicated by path", func(t *testing.T) {
		t.Parallel()

		entries, err := newHistory(t).Recent(jsonl.KindFile, 10)

		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, "/c.go", entries[0].Path)
		assert.Equal(t, "/a.go", entries[1].Path)
		assert.Equal(t, "/b.go", entries[2].Path)
	})

	t.Run("filters by kind", func(t *testing.T) {
		t.Parallel()

		entries, err := newHistory(t).Recent(jsonl.KindWorkspace, 10)

		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "/project", entries[0].Path)
	})

	t.Run("honors the limit", func(t *testing.T) {
		t.Parallel()

		entries, err := newHistory(t).Recent(jsonl.KindFile, 2)

		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("non-positive limits yield nothing", func(t *testing.T) {
		t.Parallel()

		for _, limit := range []int{0, -1} {
			entries, err := newHistory(t).Recent(jsonl.KindFile, limit)

			require.NoError(t, err)
			assert.Empty(t, entries)
		}
	})
}
