package glance

// Token is a run of source text carrying one visual style. Diff rows
// are tokenized per line, so a token never spans a line break.
type Token struct {
	Text  string
	Style Style
}

// Style is the visual treatment of a token. Colors sit on top of the
// row's background, which comes from the row's change class.
type Style struct {
	Foreground string // hex color, empty for the terminal default
	Bold       bool
}

// Tokenizer splits source code into styled tokens.
type Tokenizer interface {
	// Tokenize returns the tokens of source for the named language,
	// or nil when the language is not supported.
	Tokenize(language, source string) []Token
}

// LanguageDetector maps a file path to a language name for the
// Tokenizer.
type LanguageDetector interface {
	// DetectFromPath returns the language for path, or an empty string
	// when it cannot be determined. Paths may carry the "a/" and "b/"
	// prefixes that git diffs put on file headers.
	DetectFromPath(path string) string
}
