// Package chroma provides syntax highlighting using the chroma library.
package chroma

import (
	"errors"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/southpawriter02/glance"
)

// Compile-time interface verification.
var _ glance.Tokenizer = (*Tokenizer)(nil)

// StyleFunc maps chroma token types to glance styles.
type StyleFunc func(chromalib.TokenType) glance.Style

// Tokenizer extracts syntax tokens using chroma.
type Tokenizer struct {
	styleFunc StyleFunc
}

// NewTokenizer creates a new chroma-based tokenizer with the given style function.
// Use StyleFromPalette to create a style function from a glance.Palette.
func NewTokenizer(styleFunc StyleFunc) (*Tokenizer, error) {
	if styleFunc == nil {
		return nil, errors.New("chroma: styleFunc cannot be nil")
	}
	return &Tokenizer{styleFunc: styleFunc}, nil
}

// Tokenize splits source code into syntax-highlighted tokens for the given language.
// Returns nil if the language is not supported or an error occurs.
// Returns an empty slice for empty source (valid input, no tokens).
func (t *Tokenizer) Tokenize(language, source string) []glance.Token {
	if source == "" {
		return []glance.Token{}
	}

	lexer := lexers.Get(language)
	if lexer == nil {
		return nil
	}

	// Coalesce for better performance with consecutive tokens of the same type
	lexer = chromalib.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return nil
	}

	var tokens []glance.Token
	for token := iterator(); token != chromalib.EOF; token = iterator() {
		tokens = append(tokens, glance.Token{
			Text:  token.Value,
			Style: t.styleFunc(token.Type),
		})
	}

	return tokens
}
