package clipboard_test

import (
	"os/exec"
	"runtime"
	"testing"

	"github.com/southpawriter02/glance/clipboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommand_Copy(t *testing.T) {
	t.Parallel()

	if runtime.GOOS != "darwin" {
		t.Skip("clipboard round-trip test only runs on macOS")
	}
	if _, err := exec.LookPath("pbcopy"); err != nil {
		t.Skip("pbcopy not available, skipping clipboard test")
	}

	cb := clipboard.New()
	testContent := "test clipboard content from glance"

	err := cb.Copy(testContent)
	require.NoError(t, err)

	if _, err := exec.LookPath("pbpaste"); err != nil {
		t.Skip("pbpaste not available, cannot verify clipboard content")
	}

	out, err := exec.Command("pbpaste").Output()
	require.NoError(t, err)
	assert.Equal(t, testContent, string(out))
}

func TestCommand_Copy_MissingCommand(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "darwin" {
		t.Skip("pbcopy is always present on macOS")
	}
	if _, err := exec.LookPath("xclip"); err == nil {
		t.Skip("xclip available, missing-command path not reachable")
	}

	err := clipboard.New().Copy("content")

	assert.Error(t, err)
}
