// Package worddiff computes intra-line diffs by tokenizing both
// versions of a line and aligning them with a longest-common-subsequence
// pass, producing inline segments for character-level highlighting.
package worddiff

import (
	"strings"
	"unicode/utf8"

	"github.com/southpawriter02/glance"
)

// Compile-time interface verification.
var _ glance.WordDiffer = (*Differ)(nil)

// Differ tokenizes strings and computes word-level diffs.
type Differ struct{}

// NewDiffer creates a new Differ instance.
func NewDiffer() *Differ {
	return &Differ{}
}

// similarityThreshold is the minimum token-overlap ratio for word-level
// diffing. Below it, lines are treated as complete replacements.
const similarityThreshold = 0.4

// Diff returns inline segments for both the original and proposed
// strings. Original segments are Removed/Unchanged, proposed segments
// Added/Unchanged. Each side's segments partition that side's content.
func (d *Differ) Diff(original, proposed string) (originalSegs, proposedSegs []glance.InlineSegment) {
	if original == "" && proposed == "" {
		return nil, nil
	}
	if original == "" {
		return nil, []glance.InlineSegment{glance.AddedSegment(proposed)}
	}
	if proposed == "" {
		return []glance.InlineSegment{glance.RemovedSegment(original)}, nil
	}

	// Fast path for identical strings
	if original == proposed {
		seg := glance.UnchangedSegment(original)
		return []glance.InlineSegment{seg}, []glance.InlineSegment{seg}
	}

	originalTokens := d.Tokenize(original)
	proposedTokens := d.Tokenize(proposed)

	if !hasSufficientSimilarity(originalTokens, proposedTokens) {
		return []glance.InlineSegment{glance.RemovedSegment(original)},
			[]glance.InlineSegment{glance.AddedSegment(proposed)}
	}

	return lcsSegments(originalTokens, proposedTokens)
}

// Tokenize splits a string into tokens using a hand-written scanner.
// Token types: identifiers, numbers, string literals, operators, punctuation, whitespace.
func (d *Differ) Tokenize(s string) []string {
	if len(s) == 0 {
		return nil
	}

	tokens := make([]string, 0, len(s)/3+1)
	i := 0

	for i < len(s) {
		start := i
		c := s[i]

		switch {
		case isIdentifierStart(c):
			// Identifier: [a-zA-Z_][a-zA-Z0-9_]*
			i++
			for i < len(s) && isIdentifierChar(s[i]) {
				i++
			}
			tokens = append(tokens, s[start:i])

		case isDigit(c):
			// Number: [0-9]+(\.[0-9]+)?
			i++
			for i < len(s) && isDigit(s[i]) {
				i++
			}
			if i < len(s) && s[i] == '.' && i+1 < len(s) && isDigit(s[i+1]) {
				i++ // consume '.'
				for i < len(s) && isDigit(s[i]) {
					i++
				}
			}
			tokens = append(tokens, s[start:i])

		case c == '"', c == '\'':
			// Quoted string literal (handles backslash escapes)
			quote := c
			i++
			for i < len(s) {
				if s[i] == '\\' && i+1 < len(s) {
					i += 2
					continue
				}
				if s[i] == quote {
					i++
					break
				}
				i++
			}
			tokens = append(tokens, s[start:i])

		case isOperatorChar(c):
			i++
			for i < len(s) && isOperatorChar(s[i]) {
				i++
			}
			tokens = append(tokens, s[start:i])

		case isPunctuation(c):
			i++
			tokens = append(tokens, s[start:i])

		case isWhitespace(c):
			i++
			for i < len(s) && isWhitespace(s[i]) {
				i++
			}
			tokens = append(tokens, s[start:i])

		default:
			// Single character (catch-all for UTF-8 and other chars)
			_, size := utf8.DecodeRuneInString(s[i:])
			i += size
			tokens = append(tokens, s[start:i])
		}
	}

	return tokens
}

func isIdentifierStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isIdentifierChar(c byte) bool {
	return isIdentifierStart(c) || isDigit(c)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isOperatorChar(c byte) bool {
	switch c {
	case '+', '-', '*', '/', '=', '<', '>', '!', '&', '|', '^', '%', ':':
		return true
	}
	return false
}

func isPunctuation(c byte) bool {
	switch c {
	case '(', ')', '{', '}', '[', ']', ';', ',', '.':
		return true
	}
	return false
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// hasSufficientSimilarity checks if tokens have enough overlap to warrant word-level diff.
// Uses a simple count of common tokens as an upper bound estimate.
func hasSufficientSimilarity(originalTokens, proposedTokens []string) bool {
	oLen, pLen := len(originalTokens), len(proposedTokens)
	if oLen == 0 || pLen == 0 {
		return false
	}

	counts := make(map[string]int, oLen)
	for _, t := range originalTokens {
		counts[t]++
	}

	common := 0
	for _, t := range proposedTokens {
		if counts[t] > 0 {
			counts[t]--
			common++
		}
	}

	// Ratio = 2.0 * common / (len(original) + len(proposed))
	total := oLen + pLen
	return float64(2*common)/float64(total) >= similarityThreshold
}

// lcsSegments computes the LCS of two token sequences and returns merged segments.
// Uses O(n*m) dynamic programming with a flat array to minimize allocations.
func lcsSegments(originalTokens, proposedTokens []string) (originalSegs, proposedSegs []glance.InlineSegment) {
	m, n := len(originalTokens), len(proposedTokens)

	// DP table as a flat slice: table[i*(n+1)+j] is table[i][j]
	table := make([]int, (m+1)*(n+1))
	stride := n + 1

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if originalTokens[i-1] == proposedTokens[j-1] {
				table[i*stride+j] = table[(i-1)*stride+j-1] + 1
			} else if table[(i-1)*stride+j] > table[i*stride+j-1] {
				table[i*stride+j] = table[(i-1)*stride+j]
			} else {
				table[i*stride+j] = table[i*stride+j-1]
			}
		}
	}

	if table[m*stride+n] == 0 {
		// No common subsequence
		return []glance.InlineSegment{glance.RemovedSegment(joinTokens(originalTokens))},
			[]glance.InlineSegment{glance.AddedSegment(joinTokens(proposedTokens))}
	}

	// Backtrack to find matching positions
	type match struct{ originalIdx, proposedIdx int }
	matches := make([]match, 0, table[m*stride+n])

	i, j := m, n
	for i > 0 && j > 0 {
		if originalTokens[i-1] == proposedTokens[j-1] {
			matches = append(matches, match{i - 1, j - 1})
			i--
			j--
		} else if table[(i-1)*stride+j] > table[i*stride+j-1] {
			i--
		} else {
			j--
		}
	}

	// Backtracking yields matches in reverse order
	for left, right := 0, len(matches)-1; left < right; left, right = left+1, right-1 {
		matches[left], matches[right] = matches[right], matches[left]
	}

	original := newSegmentBuilder(glance.SegmentRemoved)
	proposed := newSegmentBuilder(glance.SegmentAdded)

	originalIdx, proposedIdx := 0, 0
	for _, mt := range matches {
		// Gap before the match = changed
		for originalIdx < mt.originalIdx {
			original.add(originalTokens[originalIdx], true)
			originalIdx++
		}
		for proposedIdx < mt.proposedIdx {
			proposed.add(proposedTokens[proposedIdx], true)
			proposedIdx++
		}

		original.add(originalTokens[mt.originalIdx], false)
		proposed.add(proposedTokens[mt.proposedIdx], false)
		originalIdx = mt.originalIdx + 1
		proposedIdx = mt.proposedIdx + 1
	}

	// Trailing gap
	for originalIdx < m {
		original.add(originalTokens[originalIdx], true)
		originalIdx++
	}
	for proposedIdx < n {
		proposed.add(proposedTokens[proposedIdx], true)
		proposedIdx++
	}

	return original.finish(), proposed.finish()
}

// segmentBuilder accumulates tokens into merged segments, coalescing
// adjacent tokens of the same change status.
type segmentBuilder struct {
	segs        []glance.InlineSegment
	text        strings.Builder
	changedKind glance.SegmentKind
	changed     bool
	pending     bool
}

func newSegmentBuilder(changedKind glance.SegmentKind) *segmentBuilder {
	return &segmentBuilder{changedKind: changedKind}
}

func (b *segmentBuilder) add(text string, changed bool) {
	if b.pending && b.changed != changed {
		b.flush()
	}
	b.text.WriteString(text)
	b.changed = changed
	b.pending = true
}

func (b *segmentBuilder) flush() {
	if !b.pending {
		return
	}
	kind := glance.SegmentUnchanged
	if b.changed {
		kind = b.changedKind
	}
	b.segs = append(b.segs, glance.InlineSegment{Text: b.text.String(), Kind: kind})
	b.text.Reset()
	b.pending = false
}

func (b *segmentBuilder) finish() []glance.InlineSegment {
	b.flush()
	return b.segs
}

// joinTokens concatenates tokens using a builder (single allocation for result).
func joinTokens(tokens []string) string {
	if len(tokens) == 0 {
		return ""
	}
	if len(tokens) == 1 {
		return tokens[0]
	}
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t)
	}
	return b.String()
}
