package ast

import (
	"fmt"
	"strings"

	"github.com/mindscript-lang/mindscript/internal/token"
)

// TypeExpr is the surface syntax for a type term (spec.md §3.4, §4.2).
// internal/types.FromExpr turns one of these into a resolved types.Type.
type TypeExpr interface {
	Node
	typeExprNode()
}

// NamedType is a primitive or bare type name: Null, Bool, Int, Num, Str,
// Type, Any, or a user-bound type alias identifier.
type NamedType struct {
	Position token.Position
	Name     string
}

func (n *NamedType) Pos() token.Position { return n.Position }
func (n *NamedType) String() string      { return n.Name }
func (n *NamedType) typeExprNode()       {}

// ArrayType is `[T]`.
type ArrayType struct {
	Position token.Position
	Elem     TypeExpr
}

func (n *ArrayType) Pos() token.Position { return n.Position }
func (n *ArrayType) String() string      { return "[" + n.Elem.String() + "]" }
func (n *ArrayType) typeExprNode()       {}

// ObjectTypeField is one `name: T` or `name!: T` field of an object shape.
// Required is true for the `!` form.
type ObjectTypeField struct {
	Name     string
	Type     TypeExpr
	Required bool
}

// ObjectType is `{k1!: T1, k2: T2, ...}`, an ordered field list.
type ObjectType struct {
	Position token.Position
	Fields   []ObjectTypeField
}

func (n *ObjectType) Pos() token.Position { return n.Position }
func (n *ObjectType) String() string {
	parts := make([]string, len(n.Fields))
	for i, f := range n.Fields {
		bang := ""
		if f.Required {
			bang = "!"
		}
		parts[i] = fmt.Sprintf("%s%s: %s", f.Name, bang, f.Type.String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
func (n *ObjectType) typeExprNode() {}

// ArrowType is `T1 -> T2`, always unary (spec.md §3.4).
type ArrowType struct {
	Position token.Position
	Param    TypeExpr
	Result   TypeExpr
}

func (n *ArrowType) Pos() token.Position { return n.Position }
func (n *ArrowType) String() string {
	return fmt.Sprintf("(%s -> %s)", n.Param.String(), n.Result.String())
}
func (n *ArrowType) typeExprNode() {}

// OptionalType is `T?`.
type OptionalType struct {
	Position token.Position
	Base     TypeExpr
}

func (n *OptionalType) Pos() token.Position { return n.Position }
func (n *OptionalType) String() string      { return n.Base.String() + "?" }
func (n *OptionalType) typeExprNode()       {}

// EnumType is `Enum(T, [v1, ..., vn])`. Values are literal expressions
// (spec.md restricts these to concrete values, so only literal AST nodes
// are valid here; the parser accepts any expression and types.FromExpr
// rejects non-literals when the type is resolved).
type EnumType struct {
	Position token.Position
	Base     TypeExpr
	Values   []Expression
}

func (n *EnumType) Pos() token.Position { return n.Position }
func (n *EnumType) String() string {
	parts := make([]string, len(n.Values))
	for i, v := range n.Values {
		parts[i] = v.String()
	}
	return fmt.Sprintf("Enum(%s, [%s])", n.Base.String(), strings.Join(parts, ", "))
}
func (n *EnumType) typeExprNode() {}

// TypeExprExpression wraps a TypeExpr so it can appear as an ordinary
// Expression (the `type <TypeExpr>` primary expression form, which
// evaluates to a Value of kind "type" — spec.md §4.2 "Type expressions").
type TypeExprExpression struct {
	Position token.Position
	Type     TypeExpr
}

func (n *TypeExprExpression) Pos() token.Position { return n.Position }
func (n *TypeExprExpression) String() string      { return "type " + n.Type.String() }
func (n *TypeExprExpression) expressionNode()     {}
