package chroma

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/southpawriter02/glance"
)

// Compile-time interface verification.
var _ glance.LanguageDetector = (*Detector)(nil)

// Detector detects programming languages from file paths using chroma.
type Detector struct{}

// NewDetector creates a new chroma-based language detector.
func NewDetector() *Detector {
	return &Detector{}
}

// DetectFromPath returns the language name for the given path,
// or an empty string if the language cannot be determined.
// Strips "a/" or "b/" prefixes common in diff output.
func (d *Detector) DetectFromPath(path string) string {
	path = strings.TrimPrefix(path, "a/")
	path = strings.TrimPrefix(path, "b/")

	lexer := lexers.Match(filepath.Base(path))
	if lexer == nil {
		return ""
	}

	return lexer.Config().Name
}
