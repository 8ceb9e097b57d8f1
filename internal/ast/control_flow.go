package ast

import (
	"fmt"
	"strings"

	"github.com/mindscript-lang/mindscript/internal/token"
)

// BlockExpr is `do e1; e2; ...; en end`: a fresh-frame sequence whose
// value is its last expression's value, or null if empty (spec.md §4.5).
type BlockExpr struct {
	Position token.Position
	Exprs    []Expression
}

func (n *BlockExpr) Pos() token.Position { return n.Position }
func (n *BlockExpr) String() string {
	parts := make([]string, len(n.Exprs))
	for i, e := range n.Exprs {
		parts[i] = e.String()
	}
	return "do " + strings.Join(parts, "; ") + " end"
}
func (n *BlockExpr) expressionNode() {}

// Branch is one `if`/`elif` guard-and-body pair.
type Branch struct {
	Guard Expression
	Body  Expression
}

// IfExpr is `if g1 do b1 elif g2 do b2 ... else be end`. If no branch
// fires, the value is null (spec.md §4.5).
type IfExpr struct {
	Position token.Position
	Branches []Branch
	Else     Expression // nil if no `else`
}

func (n *IfExpr) Pos() token.Position { return n.Position }
func (n *IfExpr) String() string {
	var sb strings.Builder
	for i, b := range n.Branches {
		kw := "if"
		if i > 0 {
			kw = "elif"
		}
		fmt.Fprintf(&sb, "%s %s do %s ", kw, b.Guard.String(), b.Body.String())
	}
	if n.Else != nil {
		fmt.Fprintf(&sb, "else %s ", n.Else.String())
	}
	sb.WriteString("end")
	return sb.String()
}
func (n *IfExpr) expressionNode() {}

// ForExpr is `for p in e do body end`. `e` must evaluate to an iterator
// function; the loop repeatedly calls it with null until it yields null
// (spec.md §4.5).
type ForExpr struct {
	Position token.Position
	Pattern  Pattern
	Iter     Expression
	Body     Expression
}

func (n *ForExpr) Pos() token.Position { return n.Position }
func (n *ForExpr) String() string {
	return fmt.Sprintf("for %s in %s do %s end", n.Pattern.String(), n.Iter.String(), n.Body.String())
}
func (n *ForExpr) expressionNode() {}

// ReturnExpr is `return e`. Non-local exit to the nearest enclosing
// function call (spec.md §4.5).
type ReturnExpr struct {
	Position token.Position
	Value    Expression // nil means return null
}

func (n *ReturnExpr) Pos() token.Position { return n.Position }
func (n *ReturnExpr) String() string {
	if n.Value == nil {
		return "return"
	}
	return "return " + n.Value.String()
}
func (n *ReturnExpr) expressionNode() {}

// BreakExpr is `break e`. Non-local exit to the nearest enclosing for-loop.
type BreakExpr struct {
	Position token.Position
	Value    Expression
}

func (n *BreakExpr) Pos() token.Position { return n.Position }
func (n *BreakExpr) String() string {
	if n.Value == nil {
		return "break"
	}
	return "break " + n.Value.String()
}
func (n *BreakExpr) expressionNode() {}

// ContinueExpr is `continue e`. Jumps to the next for-loop iteration.
type ContinueExpr struct {
	Position token.Position
	Value    Expression
}

func (n *ContinueExpr) Pos() token.Position { return n.Position }
func (n *ContinueExpr) String() string {
	if n.Value == nil {
		return "continue"
	}
	return "continue " + n.Value.String()
}
func (n *ContinueExpr) expressionNode() {}

// ThisExpr is the `this` receiver reference (spec.md §4.5).
type ThisExpr struct {
	Position token.Position
}

func (n *ThisExpr) Pos() token.Position { return n.Position }
func (n *ThisExpr) String() string      { return "this" }
func (n *ThisExpr) expressionNode()     {}
