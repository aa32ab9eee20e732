package glance_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/southpawriter02/glance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRow_Predicates(t *testing.T) {
	t.Parallel()

	t.Run("derived booleans follow the line type", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name     string
			lineType glance.DiffLineType
			added    bool
			removed  bool
			modified bool
			changed  bool
		}{
			{"unchanged", glance.LineUnchanged, false, false, false, false},
			{"added", glance.LineAdded, true, false, false, true},
			{"removed", glance.LineRemoved, false, true, false, true},
			{"modified", glance.LineModified, false, false, true, false},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				row := glance.NewRow(glance.DiffLine{Content: "x", Type: tt.lineType}, glance.SideOriginal)

				assert.Equal(t, tt.added, row.IsAdded())
				assert.Equal(t, tt.removed, row.IsRemoved())
				assert.Equal(t, tt.modified, row.IsModified())
				assert.Equal(t, tt.changed, row.IsChanged())
			})
		}
	})

	t.Run("modified lines are not considered changed", func(t *testing.T) {
		t.Parallel()

		row := glance.NewRow(glance.DiffLine{Type: glance.LineModified}, glance.SideProposed)

		assert.False(t, row.IsChanged())
	})
}

func TestRow_Prefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		lineType glance.DiffLineType
		want     string
	}{
		{"added", glance.LineAdded, "+"},
		{"removed", glance.LineRemoved, "-"},
		{"modified", glance.LineModified, "~"},
		{"unchanged", glance.LineUnchanged, " "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			row := glance.NewRow(glance.DiffLine{Content: "irrelevant", Type: tt.lineType}, glance.SideOriginal)

			assert.Equal(t, tt.want, row.Prefix())
		})
	}
}

func TestRow_ChangeClass(t *testing.T) {
	t.Parallel()

	t.Run("is derived from the line type", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			lineType glance.DiffLineType
			want     string
		}{
			{glance.LineAdded, "diff-added"},
			{glance.LineRemoved, "diff-removed"},
			{glance.LineModified, "diff-modified"},
			{glance.LineUnchanged, "diff-unchanged"},
		}

		for _, tt := range tests {
			row := glance.NewRow(glance.DiffLine{Type: tt.lineType}, glance.SideOriginal)
			assert.Equal(t, tt.want, row.ChangeClass())
		}
	})

	t.Run("placeholders override the line type", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "diff-placeholder", glance.PlaceholderRow().ChangeClass())
	})
}

func TestRow_LineNumbers(t *testing.T) {
	t.Parallel()

	line := glance.DiffLine{
		OriginalLine: 10,
		ProposedLine: 12,
		Content:      "func main() {",
		Type:         glance.LineUnchanged,
	}

	t.Run("original side uses the original line number", func(t *testing.T) {
		t.Parallel()

		row := glance.NewRow(line, glance.SideOriginal)

		assert.Equal(t, 10, row.LineNumber)
		assert.Equal(t, "10", row.LineNumberDisplay())
	})

	t.Run("proposed side uses the proposed line number", func(t *testing.T) {
		t.Parallel()

		row := glance.NewRow(line, glance.SideProposed)

		assert.Equal(t, 12, row.LineNumber)
		assert.Equal(t, "12", row.LineNumberDisplay())
	})

	t.Run("missing line number displays as empty string", func(t *testing.T) {
		t.Parallel()

		added := glance.DiffLine{ProposedLine: 5, Type: glance.LineAdded}
		row := glance.NewRow(added, glance.SideOriginal)

		assert.Equal(t, "", row.LineNumberDisplay())
	})
}

func TestRow_Placeholder(t *testing.T) {
	t.Parallel()

	row := glance.PlaceholderRow()

	assert.True(t, row.IsPlaceholder)
	assert.Equal(t, 0, row.LineNumber)
	assert.Equal(t, "", row.Content)
	assert.Equal(t, glance.LineUnchanged, row.Type)
	assert.Equal(t, "[Placeholder]", row.String())
}

func TestRow_Segments(t *testing.T) {
	t.Parallel()

	t.Run("nil segments report no segments", func(t *testing.T) {
		t.Parallel()

		row := glance.NewRow(glance.DiffLine{Content: "Hello world"}, glance.SideOriginal)

		assert.False(t, row.HasSegments())
		assert.Nil(t, row.SegmentAt(0))
	})

	t.Run("empty but non-nil segments still count as present", func(t *testing.T) {
		t.Parallel()

		row := glance.NewRow(glance.DiffLine{Content: ""}, glance.SideOriginal)
		row.Segments = []glance.InlineSegment{}

		assert.True(t, row.HasSegments())
	})

	t.Run("column lookups resolve boundary columns to the earlier segment", func(t *testing.T) {
		t.Parallel()

		row := glance.NewRow(glance.DiffLine{Content: "Hello world"}, glance.SideProposed)
		row.Segments = []glance.InlineSegment{
			glance.UnchangedSegment("Hello "),
			glance.AddedSegment("world"),
		}

		first := row.SegmentAt(0)
		require.NotNil(t, first)
		assert.Equal(t, "Hello ", first.Text)

		last := row.SegmentAt(5)
		require.NotNil(t, last)
		assert.Equal(t, "Hello ", last.Text, "column 5 is the last index of the first segment")

		second := row.SegmentAt(6)
		require.NotNil(t, second)
		assert.Equal(t, "world", second.Text)
		assert.Equal(t, glance.SegmentAdded, second.Kind)
	})

	t.Run("columns past the content return nil", func(t *testing.T) {
		t.Parallel()

		row := glance.NewRow(glance.DiffLine{Content: "Hello world"}, glance.SideProposed)
		row.Segments = []glance.InlineSegment{
			glance.UnchangedSegment("Hello "),
			glance.AddedSegment("world"),
		}

		assert.Nil(t, row.SegmentAt(11))
		assert.Nil(t, row.SegmentAt(100))
	})
}

func TestRow_String(t *testing.T) {
	t.Parallel()

	t.Run("formats line number, prefix and content", func(t *testing.T) {
		t.Parallel()

		line := glance.DiffLine{ProposedLine: 42, Content: "return nil", Type: glance.LineAdded}
		row := glance.NewRow(line, glance.SideProposed)

		assert.Equal(t, "[42] + return nil", row.String())
	})

	t.Run("truncates long content with an ellipsis", func(t *testing.T) {
		t.Parallel()

		line := glance.DiffLine{
			OriginalLine: 7,
			Content:      strings.Repeat("x", 100),
			Type:         glance.LineRemoved,
		}
		row := glance.NewRow(line, glance.SideOriginal)

		s := row.String()
		assert.Contains(t, s, "...")
		assert.Less(t, len(s), 100)
	})

	t.Run("truncation keeps multi-byte content valid", func(t *testing.T) {
		t.Parallel()

		line := glance.DiffLine{
			OriginalLine: 7,
			Content:      strings.Repeat("é", 80),
			Type:         glance.LineRemoved,
		}
		row := glance.NewRow(line, glance.SideOriginal)

		s := row.String()
		assert.True(t, utf8.ValidString(s))
		assert.Contains(t, s, "...")
	})
}

// pairDiffer is a canned WordDiffer for pairing tests.
type pairDiffer struct{}

func (pairDiffer) Diff(original, proposed string) (originalSegs, proposedSegs []glance.InlineSegment) {
	return []glance.InlineSegment{glance.RemovedSegment(original)},
		[]glance.InlineSegment{glance.AddedSegment(proposed)}
}

// capturingDiffer records the inputs it was asked to diff.
type capturingDiffer struct {
	original string
	proposed string
}

func (d *capturingDiffer) Diff(original, proposed string) (originalSegs, proposedSegs []glance.InlineSegment) {
	d.original, d.proposed = original, proposed
	return []glance.InlineSegment{glance.RemovedSegment(original)},
		[]glance.InlineSegment{glance.AddedSegment(proposed)}
}

func TestBuildRowPairs(t *testing.T) {
	t.Parallel()

	t.Run("context lines appear on both sides", func(t *testing.T) {
		t.Parallel()

		hunk := glance.Hunk{Lines: []glance.DiffLine{
			{OriginalLine: 1, ProposedLine: 1, Content: "a", Type: glance.LineUnchanged},
		}}

		pairs := glance.BuildRowPairs(hunk, nil)

		require.Len(t, pairs, 1)
		assert.Equal(t, "a", pairs[0].Original.Content)
		assert.Equal(t, "a", pairs[0].Proposed.Content)
		assert.False(t, pairs[0].Original.IsPlaceholder)
		assert.False(t, pairs[0].Proposed.IsPlaceholder)
	})

	t.Run("a removal followed by an addition pairs into a modified row", func(t *testing.T) {
		t.Parallel()

		hunk := glance.Hunk{Lines: []glance.DiffLine{
			{OriginalLine: 3, Content: "old text", Type: glance.LineRemoved},
			{ProposedLine: 3, Content: "new text", Type: glance.LineAdded},
		}}

		pairs := glance.BuildRowPairs(hunk, pairDiffer{})

		require.Len(t, pairs, 1)
		assert.True(t, pairs[0].Original.IsModified())
		assert.True(t, pairs[0].Proposed.IsModified())
		assert.Equal(t, 3, pairs[0].Original.LineNumber)
		assert.Equal(t, 3, pairs[0].Proposed.LineNumber)
		assert.Equal(t, "old text", pairs[0].Original.Content)
		assert.Equal(t, "new text", pairs[0].Proposed.Content)
		assert.True(t, pairs[0].Original.HasSegments())
		assert.True(t, pairs[0].Proposed.HasSegments())
	})

	t.Run("trailing newlines stay out of the word diff", func(t *testing.T) {
		t.Parallel()

		hunk := glance.Hunk{Lines: []glance.DiffLine{
			{OriginalLine: 3, Content: "old text\n", Type: glance.LineRemoved},
			{ProposedLine: 3, Content: "new text\n", Type: glance.LineAdded},
		}}

		differ := &capturingDiffer{}
		pairs := glance.BuildRowPairs(hunk, differ)

		require.Len(t, pairs, 1)
		assert.Equal(t, "old text", differ.original)
		assert.Equal(t, "new text", differ.proposed)
	})

	t.Run("unpaired removals pad the proposed side with placeholders", func(t *testing.T) {
		t.Parallel()

		hunk := glance.Hunk{Lines: []glance.DiffLine{
			{OriginalLine: 3, Content: "one", Type: glance.LineRemoved},
			{OriginalLine: 4, Content: "two", Type: glance.LineRemoved},
			{ProposedLine: 3, Content: "merged", Type: glance.LineAdded},
		}}

		pairs := glance.BuildRowPairs(hunk, nil)

		require.Len(t, pairs, 2)
		assert.True(t, pairs[0].Original.IsModified())
		assert.True(t, pairs[1].Original.IsRemoved())
		assert.True(t, pairs[1].Proposed.IsPlaceholder)
	})

	t.Run("unpaired additions pad the original side with placeholders", func(t *testing.T) {
		t.Parallel()

		hunk := glance.Hunk{Lines: []glance.DiffLine{
			{ProposedLine: 8, Content: "inserted", Type: glance.LineAdded},
		}}

		pairs := glance.BuildRowPairs(hunk, nil)

		require.Len(t, pairs, 1)
		assert.True(t, pairs[0].Original.IsPlaceholder)
		assert.True(t, pairs[0].Proposed.IsAdded())
		assert.Equal(t, 8, pairs[0].Proposed.LineNumber)
	})

	t.Run("context flushes pending removals before rendering", func(t *testing.T) {
		t.Parallel()

		hunk := glance.Hunk{Lines: []glance.DiffLine{
			{OriginalLine: 1, Content: "gone", Type: glance.LineRemoved},
			{OriginalLine: 2, ProposedLine: 1, Content: "kept", Type: glance.LineUnchanged},
		}}

		pairs := glance.BuildRowPairs(hunk, nil)

		require.Len(t, pairs, 2)
		assert.True(t, pairs[0].Original.IsRemoved())
		assert.True(t, pairs[0].Proposed.IsPlaceholder)
		assert.Equal(t, "kept", pairs[1].Proposed.Content)
	})
}
