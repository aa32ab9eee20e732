package git_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/southpawriter02/glance/git"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRepo creates a temporary git repository with a single commit.
func setupTestRepo(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()

	runGitCmd(t, dir, "init", "-b", "main")
	runGitCmd(t, dir, "config", "user.email", "test@example.com")
	runGitCmd(t, dir, "config", "user.name", "Test User")

	writeFile(t, dir, "README.md", "# Test Repo\n")
	runGitCmd(t, dir, "add", ".")
	runGitCmd(t, dir, "commit", "-m", "Initial commit")

	return dir
}

// runGitCmd executes a git command in the given directory.
func runGitCmd(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "command git %v failed: %s", args, string(output))
	return string(output)
}

// writeFile creates a file with the given content.
func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644)
	require.NoError(t, err)
}

func TestRunner_WorkingDiff(t *testing.T) {
	t.Parallel()

	t.Run("clean tree yields an empty diff", func(t *testing.T) {
		t.Parallel()
		dir := setupTestRepo(t)

		runner := git.NewRunner()
		diff, err := runner.WorkingDiff(context.Background(), dir)

		require.NoError(t, err)
		assert.Empty(t, strings.TrimSpace(diff))
	})

	t.Run("includes unstaged modifications", func(t *testing.T) {
		t.Parallel()
		dir := setupTestRepo(t)
		writeFile(t, dir, "README.md", "# Test Repo\n\nMore text.\n")

		runner := git.NewRunner()
		diff, err := runner.WorkingDiff(context.Background(), dir)

		require.NoError(t, err)
		assert.Contains(t, diff, "README.md")
		assert.Contains(t, diff, "+More text.")
	})

	t.Run("includes staged changes", func(t *testing.T) {
		t.Parallel()
		dir := setupTestRepo(t)
		writeFile(t, dir, "new.txt", "staged content\n")
		runGitCmd(t, dir, "add", "new.txt")

		runner := git.NewRunner()
		diff, err := runner.WorkingDiff(context.Background(), dir)

		require.NoError(t, err)
		assert.Contains(t, diff, "new.txt")
		assert.Contains(t, diff, "+staged content")
	})

	t.Run("fails outside a repository", func(t *testing.T) {
		t.Parallel()

		runner := git.NewRunner()
		_, err := runner.WorkingDiff(context.Background(), t.TempDir())

		assert.Error(t, err)
	})
}

func TestRunner_Show(t *testing.T) {
	t.Parallel()

	t.Run("returns the diff for a commit", func(t *testing.T) {
		t.Parallel()
		dir := setupTestRepo(t)

		runner := git.NewRunner()
		diff, err := runner.Show(context.Background(), dir, "HEAD")

		require.NoError(t, err)
		assert.Contains(t, diff, "README.md")
		assert.Contains(t, diff, "+# Test Repo")
	})

	t.Run("fails for an unknown hash", func(t *testing.T) {
		t.Parallel()
		dir := setupTestRepo(t)

		runner := git.NewRunner()
		_, err := runner.Show(context.Background(), dir, "0000000000000000000000000000000000000000")

		assert.Error(t, err)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()
		dir := setupTestRepo(t)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		runner := git.NewRunner()
		_, err := runner.Show(ctx, dir, "HEAD")

		assert.Error(t, err)
	})
}
