package types

import (
	"fmt"

	"github.com/mindscript-lang/mindscript/internal/ast"
)

// Resolver looks up a user-bound type alias by name (a `let` binding whose
// value is of kind "type"). FromExpr calls it only for names that are not
// one of the built-in primitive/top-type names.
type Resolver func(name string) (Type, bool)

var builtinNames = map[string]Type{
	"Null":   Null,
	"Bool":   Bool,
	"Int":    Int,
	"Num":    Num,
	"Str":    Str,
	"Type":   TypeT,
	"Any":    Any,
	"Object": Object{},
	"Fun":    Fun,
	"Array":  ArrayAny,
}

// FromExpr resolves a parsed type-expression AST node into a concrete
// Type (spec.md §3.4, §4.2). resolve is consulted for any bare name that
// is not a built-in primitive or top-type name.
func FromExpr(te ast.TypeExpr, resolve Resolver) (Type, error) {
	switch n := te.(type) {
	case *ast.NamedType:
		if t, ok := builtinNames[n.Name]; ok {
			return t, nil
		}
		if resolve != nil {
			if t, ok := resolve(n.Name); ok {
				return t, nil
			}
		}
		return nil, fmt.Errorf("unknown type name %q", n.Name)

	case *ast.ArrayType:
		elem, err := FromExpr(n.Elem, resolve)
		if err != nil {
			return nil, err
		}
		return Array{Elem: elem}, nil

	case *ast.ObjectType:
		fields := make([]Field, len(n.Fields))
		for i, f := range n.Fields {
			ft, err := FromExpr(f.Type, resolve)
			if err != nil {
				return nil, err
			}
			fields[i] = Field{Name: f.Name, Type: ft, Required: f.Required}
		}
		return Object{Fields: fields}, nil

	case *ast.ArrowType:
		param, err := FromExpr(n.Param, resolve)
		if err != nil {
			return nil, err
		}
		result, err := FromExpr(n.Result, resolve)
		if err != nil {
			return nil, err
		}
		return Arrow{Param: param, Result: result}, nil

	case *ast.OptionalType:
		base, err := FromExpr(n.Base, resolve)
		if err != nil {
			return nil, err
		}
		return Optional{Base: base}, nil

	case *ast.EnumType:
		base, err := FromExpr(n.Base, resolve)
		if err != nil {
			return nil, err
		}
		values := make([]any, len(n.Values))
		for i, v := range n.Values {
			lit, err := literalValue(v)
			if err != nil {
				return nil, err
			}
			values[i] = lit
		}
		return Enum{Base: base, Values: values}, nil
	}
	return nil, fmt.Errorf("unsupported type expression %T", te)
}

// literalValue evaluates the handful of expression forms permitted inside
// an Enum(...) value list: concrete literals, not general expressions
// (spec.md §3.4 restricts enum members to concrete values).
func literalValue(e ast.Expression) (any, error) {
	switch n := e.(type) {
	case *ast.IntLiteral:
		return n.Value, nil
	case *ast.NumLiteral:
		return n.Value, nil
	case *ast.StringLiteral:
		return n.Value, nil
	case *ast.BoolLiteral:
		return n.Value, nil
	case *ast.NullLiteral:
		return nil, nil
	default:
		return nil, fmt.Errorf("enum values must be literals, got %T", e)
	}
}
