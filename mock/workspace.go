package mock

import (
	"context"

	"github.com/southpawriter02/glance"
)

// Compile-time interface verification.
var (
	_ glance.WorkspaceService = (*WorkspaceService)(nil)
	_ glance.TreeLoader       = (*TreeLoader)(nil)
)

// WorkspaceService is a mock implementation of glance.WorkspaceService.
type WorkspaceService struct {
	RecentWorkspacesFn  func(ctx context.Context, limit int) ([]glance.Workspace, error)
	RememberWorkspaceFn func(ctx context.Context, rootPath string) (glance.Workspace, error)
}

func (s *WorkspaceService) RecentWorkspaces(ctx context.Context, limit int) ([]glance.Workspace, error) {
	return s.RecentWorkspacesFn(ctx, limit)
}

func (s *WorkspaceService) RememberWorkspace(ctx context.Context, rootPath string) (glance.Workspace, error) {
	return s.RememberWorkspaceFn(ctx, rootPath)
}

// TreeLoader is a mock implementation of glance.TreeLoader.
type TreeLoader struct {
	RelativePathFn func(root, path string) string
	ChildrenFn     func(ctx context.Context, path string) ([]glance.TreeEntry, error)
}

func (l *TreeLoader) RelativePath(root, path string) string {
	return l.RelativePathFn(root, path)
}

func (l *TreeLoader) Children(ctx context.Context, path string) ([]glance.TreeEntry, error) {
	return l.ChildrenFn(ctx, path)
}
