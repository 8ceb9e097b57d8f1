package ast

import (
	"fmt"
	"strings"

	"github.com/mindscript-lang/mindscript/internal/token"
)

// Pattern is a destructuring target: an identifier leaf (`let NAME` or
// bare `NAME`) or a nested array/object shape (spec.md §3.2, §4.2).
type Pattern interface {
	Node
	patternNode()
}

// IdentPattern is a bare `NAME` leaf: reassigns an existing cell.
type IdentPattern struct {
	Position token.Position
	Name     string
}

func (p *IdentPattern) Pos() token.Position { return p.Position }
func (p *IdentPattern) String() string      { return p.Name }
func (p *IdentPattern) patternNode()        {}

// LetPattern is a `let NAME` leaf: introduces a new cell.
type LetPattern struct {
	Position token.Position
	Name     string
}

func (p *LetPattern) Pos() token.Position { return p.Position }
func (p *LetPattern) String() string      { return "let " + p.Name }
func (p *LetPattern) patternNode()        {}

// ArrayPattern is `[p1, ..., pn]`: matches arrays of length >= n.
type ArrayPattern struct {
	Position token.Position
	Elements []Pattern
}

func (p *ArrayPattern) Pos() token.Position { return p.Position }
func (p *ArrayPattern) String() string {
	parts := make([]string, len(p.Elements))
	for i, e := range p.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
func (p *ArrayPattern) patternNode() {}

// ObjectPatternField is one `key: pattern` entry; Key alone (shorthand)
// is represented with Pattern being an Ident/LetPattern of the same name.
type ObjectPatternField struct {
	Key     string
	Pattern Pattern
}

// ObjectPattern is `{k1: p1, ...}`: matches objects containing those keys.
type ObjectPattern struct {
	Position token.Position
	Fields   []ObjectPatternField
}

func (p *ObjectPattern) Pos() token.Position { return p.Position }
func (p *ObjectPattern) String() string {
	parts := make([]string, len(p.Fields))
	for i, f := range p.Fields {
		parts[i] = fmt.Sprintf("%s: %s", f.Key, f.Pattern.String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
func (p *ObjectPattern) patternNode() {}
