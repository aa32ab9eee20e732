package glance

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// maxRowStringContent is the content rune count at which Row.String
// truncates, keeping log lines and debug dumps readable.
const maxRowStringContent = 50

// Row maps one logical diff line, or the absence of one, into a
// display-ready row for one side of a two-column diff view. Rows are
// built once per rendered line and not mutated afterwards, except for
// Segments which the row builder attaches.
type Row struct {
	LineNumber    int // 0 when the side has no line number
	Content       string
	Type          DiffLineType
	Side          Side
	IsPlaceholder bool
	Segments      []InlineSegment // nil when no intra-line diff exists
}

// PlaceholderRow returns a row used to pad one side of a two-column
// view when the other side has a line with no counterpart.
func PlaceholderRow() Row {
	return Row{Type: LineUnchanged, IsPlaceholder: true}
}

// NewRow builds a row for the given side of a diff line.
func NewRow(line DiffLine, side Side) Row {
	num := line.OriginalLine
	if side == SideProposed {
		num = line.ProposedLine
	}
	return Row{
		LineNumber: num,
		Content:    line.Content,
		Type:       line.Type,
		Side:       side,
	}
}

// IsAdded reports whether the row is an added line.
func (r Row) IsAdded() bool { return r.Type == LineAdded }

// IsRemoved reports whether the row is a removed line.
func (r Row) IsRemoved() bool { return r.Type == LineRemoved }

// IsModified reports whether the row is a modified line.
func (r Row) IsModified() bool { return r.Type == LineModified }

// IsChanged reports whether the row is added or removed. Modified
// lines are not "changed" in this sense: they keep their position on
// both sides and render with inline segments instead of whole-line
// emphasis.
func (r Row) IsChanged() bool { return r.IsAdded() || r.IsRemoved() }

// Prefix returns the single-character gutter glyph for the row.
func (r Row) Prefix() string {
	switch r.Type {
	case LineAdded:
		return "+"
	case LineRemoved:
		return "-"
	case LineModified:
		return "~"
	default:
		return " "
	}
}

// ChangeClass returns the style class used to pick theme colors.
func (r Row) ChangeClass() string {
	if r.IsPlaceholder {
		return "diff-placeholder"
	}
	return "diff-" + r.Type.String()
}

// LineNumberDisplay returns the line number as a string, or an empty
// string when the side has no line number.
func (r Row) LineNumberDisplay() string {
	if r.LineNumber == 0 {
		return ""
	}
	return strconv.Itoa(r.LineNumber)
}

// HasSegments reports whether inline segments are attached. A non-nil
// empty slice counts: the presence of the container is the signal, not
// its length.
func (r Row) HasSegments() bool {
	return r.Segments != nil
}

// SegmentAt returns the inline segment covering the given column, or
// nil when the row has no segments or the column is past the end of
// the content. Segments are laid out end to end; a column equal to a
// segment's last index resolves to that segment, not the next one.
func (r Row) SegmentAt(col int) *InlineSegment {
	if r.Segments == nil {
		return nil
	}
	cumulative := 0
	for i := range r.Segments {
		cumulative += len(r.Segments[i].Text)
		if col < cumulative {
			return &r.Segments[i]
		}
	}
	return nil
}

// String renders the row for logs and debugging.
func (r Row) String() string {
	if r.IsPlaceholder {
		return "[Placeholder]"
	}
	content := r.Content
	if utf8.RuneCountInString(content) > maxRowStringContent {
		// Cut on a rune boundary so multi-byte content stays valid.
		runes := []rune(content)
		content = string(runes[:maxRowStringContent]) + "..."
	}
	return fmt.Sprintf("[%s] %s %s", r.LineNumberDisplay(), r.Prefix(), content)
}

// RowPair is one visual row of a side-by-side diff view.
type RowPair struct {
	Original Row
	Proposed Row
}

// BuildRowPairs converts a hunk into side-by-side row pairs. Within a
// run of removals followed by additions, lines are paired 1:1 in order
// into modified rows with inline segments from differ; leftovers get a
// placeholder on the opposite side. A nil differ skips segment
// computation.
func BuildRowPairs(hunk Hunk, differ WordDiffer) []RowPair {
	pairs := make([]RowPair, 0, len(hunk.Lines))
	var pendingRemovals []DiffLine

	flush := func() {
		for _, rm := range pendingRemovals {
			pairs = append(pairs, RowPair{
				Original: NewRow(rm, SideOriginal),
				Proposed: PlaceholderRow(),
			})
		}
		pendingRemovals = pendingRemovals[:0]
	}

	for _, line := range hunk.Lines {
		switch line.Type {
		case LineRemoved:
			pendingRemovals = append(pendingRemovals, line)
		case LineAdded:
			if len(pendingRemovals) > 0 {
				rm := pendingRemovals[0]
				pendingRemovals = pendingRemovals[1:]
				pairs = append(pairs, pairModified(rm, line, differ))
				continue
			}
			pairs = append(pairs, RowPair{
				Original: PlaceholderRow(),
				Proposed: NewRow(line, SideProposed),
			})
		default:
			flush()
			pairs = append(pairs, RowPair{
				Original: NewRow(line, SideOriginal),
				Proposed: NewRow(line, SideProposed),
			})
		}
	}
	flush()

	return pairs
}

// pairModified joins a removal and the addition that replaced it into
// a modified row pair, with each side numbered in its own space.
func pairModified(rm, add DiffLine, differ WordDiffer) RowPair {
	modified := DiffLine{
		OriginalLine: rm.OriginalLine,
		ProposedLine: add.ProposedLine,
		Type:         LineModified,
	}

	original := modified
	original.Content = rm.Content
	proposed := modified
	proposed.Content = add.Content

	pair := RowPair{
		Original: NewRow(original, SideOriginal),
		Proposed: NewRow(proposed, SideProposed),
	}
	if differ != nil {
		// Parsed lines keep their trailing newline; it is layout, not
		// content, and must not leak into the segments.
		pair.Original.Segments, pair.Proposed.Segments = differ.Diff(
			strings.TrimSuffix(rm.Content, "\n"),
			strings.TrimSuffix(add.Content, "\n"),
		)
	}
	return pair
}
