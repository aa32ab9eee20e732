package glance

// Diff represents a complete diff containing one or more file changes.
type Diff struct {
	Files []FileDiff
}

// FileDiff represents changes to a single file.
type FileDiff struct {
	OldPath   string // "a/file.go" or empty for new files
	NewPath   string // "b/file.go" or empty for deleted files
	Operation FileOp
	IsBinary  bool // Binary files have no hunks
	Hunks     []Hunk
}

// Stats returns the number of added and removed lines in the file.
func (f FileDiff) Stats() (added, removed int) {
	for _, hunk := range f.Hunks {
		for _, line := range hunk.Lines {
			switch line.Type {
			case LineAdded:
				added++
			case LineRemoved:
				removed++
			}
		}
	}
	return added, removed
}

// FileOp represents the type of operation performed on a file.
type FileOp int

// File operation types.
const (
	FileModified FileOp = iota
	FileAdded
	FileDeleted
	FileRenamed
	FileCopied
)

// Hunk represents a contiguous block of changes within a file.
type Hunk struct {
	OldStart int    // From @@ -X,...
	OldCount int    // From @@ -X,Y ...
	NewStart int    // From @@ ...,+X
	NewCount int    // From @@ ...,+X,Y
	Section  string // Optional function name after @@ ... @@
	Lines    []DiffLine
}

// DiffLineType classifies a diff line.
type DiffLineType int

// Diff line types. Modified lines are produced by pairing a removal
// with the addition that replaced it.
const (
	LineUnchanged DiffLineType = iota
	LineAdded
	LineRemoved
	LineModified
)

// String returns the lowercase name of the type.
func (t DiffLineType) String() string {
	switch t {
	case LineAdded:
		return "added"
	case LineRemoved:
		return "removed"
	case LineModified:
		return "modified"
	default:
		return "unchanged"
	}
}

// DiffLine is one logical row of a diff, with independent line-number
// references into the original and proposed documents. A zero line
// number means the line does not exist on that side: added lines have
// no original number, removed lines no proposed number.
type DiffLine struct {
	OriginalLine int
	ProposedLine int
	Content      string
	Type         DiffLineType
}

// Side selects one of the two documents a diff compares.
type Side int

// Sides of a diff.
const (
	SideOriginal Side = iota
	SideProposed
)

// SegmentKind classifies an inline segment within a diff line.
type SegmentKind int

// Inline segment kinds.
const (
	SegmentUnchanged SegmentKind = iota
	SegmentAdded
	SegmentRemoved
)

// InlineSegment is a contiguous substring of a line's content tagged
// with its own change kind, used for character-level highlighting.
// A line's segments partition its content: the segment lengths sum to
// the content length.
type InlineSegment struct {
	Text string
	Kind SegmentKind
}

// UnchangedSegment returns a segment for text common to both sides.
func UnchangedSegment(text string) InlineSegment {
	return InlineSegment{Text: text, Kind: SegmentUnchanged}
}

// AddedSegment returns a segment for text present only in the proposed side.
func AddedSegment(text string) InlineSegment {
	return InlineSegment{Text: text, Kind: SegmentAdded}
}

// RemovedSegment returns a segment for text present only in the original side.
func RemovedSegment(text string) InlineSegment {
	return InlineSegment{Text: text, Kind: SegmentRemoved}
}

// WordDiffer computes intra-line differences between two strings.
type WordDiffer interface {
	// Diff returns inline segments for both the original and proposed
	// strings. Original segments are Removed/Unchanged, proposed
	// segments Added/Unchanged.
	Diff(original, proposed string) (originalSegs, proposedSegs []InlineSegment)
}
