package ast

import (
	"fmt"
	"strconv"

	"github.com/mindscript-lang/mindscript/internal/token"
)

// IntLiteral is an integer literal such as `42`.
type IntLiteral struct {
	Position token.Position
	Value    int64
}

func (n *IntLiteral) Pos() token.Position { return n.Position }
func (n *IntLiteral) String() string      { return strconv.FormatInt(n.Value, 10) }
func (n *IntLiteral) expressionNode()     {}

// NumLiteral is a floating-point literal such as `3.14`.
type NumLiteral struct {
	Position token.Position
	Value    float64
}

func (n *NumLiteral) Pos() token.Position { return n.Position }
func (n *NumLiteral) String() string      { return strconv.FormatFloat(n.Value, 'g', -1, 64) }
func (n *NumLiteral) expressionNode()     {}

// StringLiteral is a string literal with escapes already resolved.
type StringLiteral struct {
	Position token.Position
	Value    string
}

func (n *StringLiteral) Pos() token.Position { return n.Position }
func (n *StringLiteral) String() string      { return strconv.Quote(n.Value) }
func (n *StringLiteral) expressionNode()     {}

// BoolLiteral is `true` or `false`.
type BoolLiteral struct {
	Position token.Position
	Value    bool
}

func (n *BoolLiteral) Pos() token.Position { return n.Position }
func (n *BoolLiteral) String() string      { return strconv.FormatBool(n.Value) }
func (n *BoolLiteral) expressionNode()     {}

// NullLiteral is `null`.
type NullLiteral struct {
	Position token.Position
}

func (n *NullLiteral) Pos() token.Position { return n.Position }
func (n *NullLiteral) String() string      { return "null" }
func (n *NullLiteral) expressionNode()     {}

// Identifier is a reference to a bound name.
type Identifier struct {
	Position token.Position
	Name     string
}

func (n *Identifier) Pos() token.Position { return n.Position }
func (n *Identifier) String() string      { return n.Name }
func (n *Identifier) expressionNode()     {}

// ArrayLiteral is `[e1, e2, ...]`.
type ArrayLiteral struct {
	Position token.Position
	Elements []Expression
}

func (n *ArrayLiteral) Pos() token.Position { return n.Position }
func (n *ArrayLiteral) String() string {
	s := "["
	for i, e := range n.Elements {
		if i > 0 {
			s += ", "
		}
		s += e.String()
	}
	return s + "]"
}
func (n *ArrayLiteral) expressionNode() {}

// ObjectField is one `key: expr` entry of an object literal, order preserved.
type ObjectField struct {
	Key   string
	Value Expression
}

// ObjectLiteral is `{k1: e1, k2: e2, ...}` with insertion order preserved.
type ObjectLiteral struct {
	Position token.Position
	Fields   []ObjectField
}

func (n *ObjectLiteral) Pos() token.Position { return n.Position }
func (n *ObjectLiteral) String() string {
	s := "{"
	for i, f := range n.Fields {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%s: %s", f.Key, f.Value.String())
	}
	return s + "}"
}
func (n *ObjectLiteral) expressionNode() {}
