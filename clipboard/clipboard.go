// Package clipboard provides clipboard operations via platform-specific commands.
package clipboard

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/southpawriter02/glance"
)

// Ensure Command implements the Clipboard interface.
var _ glance.Clipboard = (*Command)(nil)

// Command implements Clipboard by piping content to a copy command.
type Command struct {
	name string
	args []string
}

// New returns a clipboard for the current platform: pbcopy on macOS,
// xclip elsewhere.
func New() *Command {
	if runtime.GOOS == "darwin" {
		return &Command{name: "pbcopy"}
	}
	return &Command{name: "xclip", args: []string{"-selection", "clipboard"}}
}

// Copy writes content to the system clipboard.
func (c *Command) Copy(content string) error {
	if _, err := exec.LookPath(c.name); err != nil {
		return fmt.Errorf("clipboard command %q not found: %w", c.name, err)
	}
	cmd := exec.Command(c.name, c.args...)
	cmd.Stdin = strings.NewReader(content)
	return cmd.Run()
}
