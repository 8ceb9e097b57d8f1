package ast

import (
	"fmt"
	"strings"

	"github.com/mindscript-lang/mindscript/internal/token"
)

// Param is one declared parameter of a function or oracle literal: a
// name with an optional formal type annotation.
type Param struct {
	Name string
	Type TypeExpr // nil if unannotated
}

// FunctionLiteral is `fun(p1: T1?, ...) -> R? do body end`. Parsing
// already lowers multi-parameter declarations into nested unary closures
// (spec.md §4.2 "Currying desugaring"): a FunctionLiteral in the AST
// always has exactly one Param; an empty parameter list synthesizes a
// single `_: Null` parameter so every function is unary at runtime.
type FunctionLiteral struct {
	Position token.Position
	Param    Param
	Return   TypeExpr // nil if unannotated
	Body     Expression
}

func (n *FunctionLiteral) Pos() token.Position { return n.Position }
func (n *FunctionLiteral) String() string {
	t := ""
	if n.Param.Type != nil {
		t = ": " + n.Param.Type.String()
	}
	r := ""
	if n.Return != nil {
		r = " -> " + n.Return.String()
	}
	return fmt.Sprintf("fun(%s%s)%s do %s end", n.Param.Name, t, r, n.Body.String())
}
func (n *FunctionLiteral) expressionNode() {}

// Example is one `from [examples]` entry for an oracle literal: a tuple
// of argument expressions paired with an expected result expression, in
// the single-parameter-per-level form the parser already curried the
// oracle declaration into (spec.md §4.2 "Oracle literal").
type Example struct {
	Arg    Expression
	Result Expression
}

// OracleLiteral is `oracle(p1: T1?, ...) -> R?` optionally followed by
// `from [examples]`. Like FunctionLiteral, multi-parameter declarations
// are already curried down to a single Param per literal by the parser.
type OracleLiteral struct {
	Position   token.Position
	Param      Param
	Return     TypeExpr
	Annotation string // informal type preceding the literal, if any
	Examples   []Example
}

func (n *OracleLiteral) Pos() token.Position { return n.Position }
func (n *OracleLiteral) String() string {
	t := ""
	if n.Param.Type != nil {
		t = ": " + n.Param.Type.String()
	}
	r := ""
	if n.Return != nil {
		r = " -> " + n.Return.String()
	}
	from := ""
	if len(n.Examples) > 0 {
		parts := make([]string, len(n.Examples))
		for i, e := range n.Examples {
			parts[i] = fmt.Sprintf("%s -> %s", e.Arg.String(), e.Result.String())
		}
		from = " from [" + strings.Join(parts, ", ") + "]"
	}
	return fmt.Sprintf("oracle(%s%s)%s%s", n.Param.Name, t, r, from)
}
func (n *OracleLiteral) expressionNode() {}
