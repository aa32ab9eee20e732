package fs_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/southpawriter02/glance/fs"
	"github.com/southpawriter02/glance/jsonl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorkspaceService(t *testing.T) {
	t.Parallel()

	_, err := fs.NewWorkspaceService(nil)

	assert.Error(t, err)
}

func TestWorkspaceService(t *testing.T) {
	t.Parallel()

	newService := func(t *testing.T) *fs.WorkspaceService {
		t.Helper()
		history := jsonl.NewHistory(filepath.Join(t.TempDir(), "history.jsonl"))
		svc, err := fs.NewWorkspaceService(history)
		require.NoError(t, err)
		return svc
	}

	t.Run("remembering a workspace assigns an ID and name", func(t *testing.T) {
		t.Parallel()

		svc := newService(t)

		w, err := svc.RememberWorkspace(context.Background(), "/work/myproject")

		require.NoError(t, err)
		assert.NotEmpty(t, w.ID)
		assert.Equal(t, "/work/myproject", w.RootPath)
		assert.Equal(t, "myproject", w.Name)
	})

	t.Run("recent workspaces come back newest first without duplicates", func(t *testing.T) {
		t.Parallel()

		svc := newService(t)
		ctx := context.Background()

		_, err := svc.RememberWorkspace(ctx, "/work/alpha")
		require.NoError(t, err)
		_, err = svc.RememberWorkspace(ctx, "/work/beta")
		require.NoError(t, err)
		_, err = svc.RememberWorkspace(ctx, "/work/alpha")
		require.NoError(t, err)

		workspaces, err := svc.RecentWorkspaces(ctx, 10)

		require.NoError(t, err)
		require.Len(t, workspaces, 2)
		assert.Equal(t, "/work/alpha", workspaces[0].RootPath)
		assert.Equal(t, "/work/beta", workspaces[1].RootPath)
	})

	t.Run("empty history yields no workspaces", func(t *testing.T) {
		t.Parallel()

		workspaces, err := newService(t).RecentWorkspaces(context.Background(), 10)

		require.NoError(t, err)
		assert.Empty(t, workspaces)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := newService(t).RecentWorkspaces(ctx, 10)

		assert.ErrorIs(t, err, context.Canceled)
	})
}
