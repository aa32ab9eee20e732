package mock

import "github.com/southpawriter02/glance"

// Compile-time interface verification.
var _ glance.Clipboard = (*Clipboard)(nil)

// Clipboard is a mock implementation of glance.Clipboard.
type Clipboard struct {
	CopyFn func(content string) error
}

func (c *Clipboard) Copy(content string) error {
	return c.CopyFn(content)
}
