package ast

import (
	"fmt"

	"github.com/mindscript-lang/mindscript/internal/token"
)

// BinaryExpr is a binary operator expression: `+ - * / % == != < <= > >= and or`.
type BinaryExpr struct {
	Position token.Position
	Op       token.Kind
	Left     Expression
	Right    Expression
}

func (n *BinaryExpr) Pos() token.Position { return n.Position }
func (n *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", n.Left.String(), n.Op.String(), n.Right.String())
}
func (n *BinaryExpr) expressionNode() {}

// UnaryExpr is a prefix operator expression: `-` or `not`.
type UnaryExpr struct {
	Position token.Position
	Op       token.Kind
	Operand  Expression
}

func (n *UnaryExpr) Pos() token.Position { return n.Position }
func (n *UnaryExpr) String() string {
	if n.Op == token.NOT {
		return fmt.Sprintf("(%s %s)", n.Op.String(), n.Operand.String())
	}
	return fmt.Sprintf("(%s%s)", n.Op.String(), n.Operand.String())
}
func (n *UnaryExpr) expressionNode() {}

// AnnotationExpr is `# "text" expr` or `# bare text\nexpr`: attaches a
// string annotation to the value of Expr (spec.md §3.3, §4.3).
type AnnotationExpr struct {
	Position token.Position
	Text     string
	Expr     Expression
}

func (n *AnnotationExpr) Pos() token.Position { return n.Position }
func (n *AnnotationExpr) String() string {
	return fmt.Sprintf("#%q %s", n.Text, n.Expr.String())
}
func (n *AnnotationExpr) expressionNode() {}

// LetExpr is `let pattern = expr`: introduces bindings and evaluates to
// the bound value (spec.md §4.5).
type LetExpr struct {
	Position token.Position
	Pattern  Pattern
	Value    Expression
}

func (n *LetExpr) Pos() token.Position { return n.Position }
func (n *LetExpr) String() string {
	return fmt.Sprintf("let %s = %s", n.Pattern.String(), n.Value.String())
}
func (n *LetExpr) expressionNode() {}

// AssignExpr is `lvalue = expr`: rebinds an existing cell, destructures a
// pattern, or writes through a member/index lvalue (spec.md §4.5).
type AssignExpr struct {
	Position token.Position
	Target   Expression // Identifier, MemberExpr, IndexExpr, or a pattern wrapped via PatternExpr
	Value    Expression
}

func (n *AssignExpr) Pos() token.Position { return n.Position }
func (n *AssignExpr) String() string {
	return fmt.Sprintf("%s = %s", n.Target.String(), n.Value.String())
}
func (n *AssignExpr) expressionNode() {}

// PatternExpr wraps a destructuring Pattern so it can appear on the left
// of AssignExpr without AssignExpr needing two different target shapes.
type PatternExpr struct {
	Position token.Position
	Pattern  Pattern
}

func (n *PatternExpr) Pos() token.Position { return n.Position }
func (n *PatternExpr) String() string      { return n.Pattern.String() }
func (n *PatternExpr) expressionNode()     {}

// MemberExpr is `obj.field`.
type MemberExpr struct {
	Position token.Position
	Object   Expression
	Field    string
}

func (n *MemberExpr) Pos() token.Position { return n.Position }
func (n *MemberExpr) String() string      { return fmt.Sprintf("%s.%s", n.Object.String(), n.Field) }
func (n *MemberExpr) expressionNode()     {}

// IndexExpr is `arr[index]`.
type IndexExpr struct {
	Position token.Position
	Object   Expression
	Index    Expression
}

func (n *IndexExpr) Pos() token.Position { return n.Position }
func (n *IndexExpr) String() string {
	return fmt.Sprintf("%s[%s]", n.Object.String(), n.Index.String())
}
func (n *IndexExpr) expressionNode() {}

// CallExpr is `f(a1, ..., an)`. The AST keeps the call n-ary as written;
// the interpreter applies one argument at a time against the (possibly
// curried) callee, so `f(a, b)` and `f(a)(b)` evaluate identically even
// though only the latter is literally nested CallExprs (spec.md §4.5,
// §8 currying property).
type CallExpr struct {
	Position token.Position
	Callee   Expression
	Args     []Expression
}

func (n *CallExpr) Pos() token.Position { return n.Position }
func (n *CallExpr) String() string {
	s := n.Callee.String() + "("
	for i, a := range n.Args {
		if i > 0 {
			s += ", "
		}
		s += a.String()
	}
	return s + ")"
}
func (n *CallExpr) expressionNode() {}
