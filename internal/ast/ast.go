// Package ast defines the abstract syntax tree produced by internal/parser
// and consumed by internal/interp. MindScript is expression-oriented: a
// single Expression interface covers everything from literals to blocks
// to control flow, mirroring spec.md §3.2's "tagged sum with variants"
// description.
package ast

import (
	"strings"

	"github.com/mindscript-lang/mindscript/internal/token"
)

// Node is the common interface for every AST node: it can report where in
// the source it came from.
type Node interface {
	Pos() token.Position
	String() string
}

// Expression is every MindScript AST node; there is no separate statement
// kind because every construct evaluates to a value (spec.md §1, §2).
type Expression interface {
	Node
	expressionNode()
}

// Program is a top-level sequence of expressions separated by newlines or
// semicolons. Its value is its last expression's value (spec.md §4.2).
type Program struct {
	Exprs []Expression
}

func (p *Program) Pos() token.Position {
	if len(p.Exprs) == 0 {
		return token.Position{}
	}
	return p.Exprs[0].Pos()
}

func (p *Program) String() string {
	var sb strings.Builder
	for i, e := range p.Exprs {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(e.String())
	}
	return sb.String()
}
