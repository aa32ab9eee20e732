package mock

import "github.com/southpawriter02/glance"

// Compile-time interface verification.
var _ glance.WordDiffer = (*WordDiffer)(nil)

// WordDiffer is a mock implementation of glance.WordDiffer.
type WordDiffer struct {
	DiffFn func(original, proposed string) ([]glance.InlineSegment, []glance.InlineSegment)
}

func (d *WordDiffer) Diff(original, proposed string) (originalSegs, proposedSegs []glance.InlineSegment) {
	return d.DiffFn(original, proposed)
}
