// Package gitdiff implements diff parsing using bluekeyes/go-gitdiff.
package gitdiff

import (
	"io"

	"github.com/bluekeyes/go-gitdiff/gitdiff"
	"github.com/southpawriter02/glance"
)

// Compile-time interface verification.
var _ glance.Parser = (*Parser)(nil)

// Parser parses unified diff content using go-gitdiff.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads diff content and returns the parsed result.
func (p *Parser) Parse(r io.Reader) (*glance.Diff, error) {
	files, _, err := gitdiff.Parse(r)
	if err != nil {
		return nil, err
	}

	result := &glance.Diff{
		Files: make([]glance.FileDiff, 0, len(files)),
	}

	for _, f := range files {
		result.Files = append(result.Files, convertFile(f))
	}

	return result, nil
}

func convertFile(f *gitdiff.File) glance.FileDiff {
	fd := glance.FileDiff{
		OldPath:  f.OldName,
		NewPath:  f.NewName,
		IsBinary: f.IsBinary,
	}

	switch {
	case f.IsNew:
		fd.Operation = glance.FileAdded
	case f.IsDelete:
		fd.Operation = glance.FileDeleted
	case f.IsRename:
		fd.Operation = glance.FileRenamed
	case f.IsCopy:
		fd.Operation = glance.FileCopied
	default:
		fd.Operation = glance.FileModified
	}

	fd.Hunks = make([]glance.Hunk, 0, len(f.TextFragments))
	for _, frag := range f.TextFragments {
		fd.Hunks = append(fd.Hunks, convertFragment(frag))
	}

	return fd
}

func convertFragment(frag *gitdiff.TextFragment) glance.Hunk {
	hunk := glance.Hunk{
		OldStart: int(frag.OldPosition),
		OldCount: int(frag.OldLines),
		NewStart: int(frag.NewPosition),
		NewCount: int(frag.NewLines),
		Section:  frag.Comment,
	}

	// Track line numbers for the original and proposed documents
	originalLine := int(frag.OldPosition)
	proposedLine := int(frag.NewPosition)

	for _, l := range frag.Lines {
		line := glance.DiffLine{Content: l.Line}

		switch l.Op {
		case gitdiff.OpContext:
			line.Type = glance.LineUnchanged
			line.OriginalLine = originalLine
			line.ProposedLine = proposedLine
			originalLine++
			proposedLine++
		case gitdiff.OpAdd:
			line.Type = glance.LineAdded
			line.ProposedLine = proposedLine
			proposedLine++
		case gitdiff.OpDelete:
			line.Type = glance.LineRemoved
			line.OriginalLine = originalLine
			originalLine++
		}

		hunk.Lines = append(hunk.Lines, line)
	}

	return hunk
}
