package fs

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/southpawriter02/glance"
	"github.com/southpawriter02/glance/jsonl"
)

// Compile-time interface verification.
var _ glance.WorkspaceService = (*WorkspaceService)(nil)

// WorkspaceService records and lists recently opened workspaces in the
// history store.
type WorkspaceService struct {
	history *jsonl.History
}

// NewWorkspaceService creates a workspace service over history.
func NewWorkspaceService(history *jsonl.History) (*WorkspaceService, error) {
	if history == nil {
		return nil, errors.New("fs: history is required")
	}
	return &WorkspaceService{history: history}, nil
}

// RecentWorkspaces returns up to limit workspaces, newest first.
func (s *WorkspaceService) RecentWorkspaces(ctx context.Context, limit int) ([]glance.Workspace, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := s.history.Recent(jsonl.KindWorkspace, limit)
	if err != nil {
		return nil, err
	}

	workspaces := make([]glance.Workspace, 0, len(entries))
	for _, e := range entries {
		workspaces = append(workspaces, glance.Workspace{
			ID:       e.ID,
			RootPath: e.Path,
			Name:     e.Name,
		})
	}
	return workspaces, nil
}

// RememberWorkspace records rootPath as opened and returns the stored
// workspace. Each open event gets a fresh ID; recency queries
// deduplicate by path.
func (s *WorkspaceService) RememberWorkspace(ctx context.Context, rootPath string) (glance.Workspace, error) {
	if err := ctx.Err(); err != nil {
		return glance.Workspace{}, err
	}

	w := glance.Workspace{
		ID:       uuid.NewString(),
		RootPath: rootPath,
		Name:     filepath.Base(rootPath),
	}

	err := s.history.Append(jsonl.Entry{
		Kind:     jsonl.KindWorkspace,
		Path:     w.RootPath,
		Name:     w.Name,
		ID:       w.ID,
		OpenedAt: timeNow(),
	})
	if err != nil {
		return glance.Workspace{}, err
	}
	return w, nil
}
