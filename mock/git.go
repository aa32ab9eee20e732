package mock

import (
	"context"

	"github.com/southpawriter02/glance"
)

// Compile-time interface verification.
var _ glance.GitRunner = (*GitRunner)(nil)

// GitRunner is a mock implementation of glance.GitRunner.
type GitRunner struct {
	WorkingDiffFn func(ctx context.Context, repoPath string) (string, error)
	ShowFn        func(ctx context.Context, repoPath string, hash string) (string, error)
}

func (g *GitRunner) WorkingDiff(ctx context.Context, repoPath string) (string, error) {
	return g.WorkingDiffFn(ctx, repoPath)
}

func (g *GitRunner) Show(ctx context.Context, repoPath string, hash string) (string, error) {
	return g.ShowFn(ctx, repoPath, hash)
}
