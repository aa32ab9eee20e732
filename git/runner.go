// Package git provides access to git operations via shell commands.
package git

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/southpawriter02/glance"
)

// Compile-time interface verification.
var _ glance.GitRunner = (*Runner)(nil)

// Runner executes git commands via shell.
type Runner struct{}

// NewRunner creates a new git runner.
func NewRunner() *Runner {
	return &Runner{}
}

// WorkingDiff returns the unified diff of uncommitted changes (staged
// and unstaged) in the repository at repoPath.
func (r *Runner) WorkingDiff(ctx context.Context, repoPath string) (string, error) {
	args := []string{"-C", repoPath, "diff", "HEAD"}
	output, err := runGit(ctx, args)
	if err != nil {
		return "", fmt.Errorf("git diff failed: %w", err)
	}
	return output, nil
}

// Show returns the diff for a specific commit hash.
func (r *Runner) Show(ctx context.Context, repoPath string, hash string) (string, error) {
	args := []string{"-C", repoPath, "show", "--format=", hash}
	output, err := runGit(ctx, args)
	if err != nil {
		return "", fmt.Errorf("git show failed: %w", err)
	}
	return output, nil
}

func runGit(ctx context.Context, args []string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && len(exitErr.Stderr) > 0 {
			return "", fmt.Errorf("%s", string(exitErr.Stderr))
		}
		return "", err
	}
	return string(output), nil
}
