package mock

import (
	"context"

	"github.com/southpawriter02/glance"
)

// Compile-time interface verification.
var _ glance.Viewer = (*Viewer)(nil)

// Viewer is a mock implementation of glance.Viewer.
type Viewer struct {
	ViewFn func(ctx context.Context, diff *glance.Diff) error
}

func (v *Viewer) View(ctx context.Context, diff *glance.Diff) error {
	return v.ViewFn(ctx, diff)
}
