// Package importer parses bulk transaction files into drafts. Every parsed
// draft still goes through the draft validator before submission; the
// importer only handles decoding and grouping.
package importer

import (
	"io"
	"strings"

	"github.com/contable-dev/contable/internal/draft"
)

// Parser converts an input file into transaction drafts.
type Parser interface {
	Parse(r io.Reader) ([]draft.Draft, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&PartidasParser{})
	return r
}
