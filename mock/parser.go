// Package mock provides test doubles for glance interfaces.
package mock

import (
	"io"

	"github.com/southpawriter02/glance"
)

// Compile-time interface verification.
var _ glance.Parser = (*Parser)(nil)

// Parser is a mock implementation of glance.Parser.
type Parser struct {
	ParseFn func(r io.Reader) (*glance.Diff, error)
}

func (p *Parser) Parse(r io.Reader) (*glance.Diff, error) {
	return p.ParseFn(r)
}
