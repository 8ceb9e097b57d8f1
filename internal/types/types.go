// Package types implements MindScript's structural type terms and the
// decidable subtype relation over them (spec.md §3.4, §4.4). A types.Type
// is itself a value the interpreter can carry around (kind "type" in the
// runtime value universe) — internal/interp/runtime wraps one of these in
// its Type value.
package types

import (
	"fmt"
	"sort"
	"strings"
)

// Kind identifies which shape of type term a Type is.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindNum
	KindStr
	KindType
	KindAny
	KindArray
	KindObject
	KindArrow
	KindOptional
	KindEnum
)

// Type is a structural type term. Two types are treated as equal when each
// is a subtype of the other (IsSubtype), so an Object's field order is not
// significant to type equality even though it is preserved for display.
type Type interface {
	Kind() Kind
	String() string
}

// Null, Bool, Int, Num, Str, TypeType, and Any are the primitive type
// terms, each a distinct zero-size type so type switches read naturally.
type NullType struct{}
type BoolType struct{}
type IntType struct{}
type NumType struct{}
type StrType struct{}
type TypeType struct{}
type AnyType struct{}

func (NullType) Kind() Kind     { return KindNull }
func (NullType) String() string { return "Null" }

func (BoolType) Kind() Kind     { return KindBool }
func (BoolType) String() string { return "Bool" }

func (IntType) Kind() Kind     { return KindInt }
func (IntType) String() string { return "Int" }

func (NumType) Kind() Kind     { return KindNum }
func (NumType) String() string { return "Num" }

func (StrType) Kind() Kind     { return KindStr }
func (StrType) String() string { return "Str" }

func (TypeType) Kind() Kind     { return KindType }
func (TypeType) String() string { return "Type" }

func (AnyType) Kind() Kind     { return KindAny }
func (AnyType) String() string { return "Any" }

// Singletons for the primitive type terms, so callers can write Null,
// Bool, Int, Num, Str, TypeT, Any directly.
var (
	Null  Type = NullType{}
	Bool  Type = BoolType{}
	Int   Type = IntType{}
	Num   Type = NumType{}
	Str   Type = StrType{}
	TypeT Type = TypeType{}
	Any   Type = AnyType{}
)

// Array is `[T]`.
type Array struct {
	Elem Type
}

func (a Array) Kind() Kind    { return KindArray }
func (a Array) String() string { return "[" + a.Elem.String() + "]" }

// Field is one field of an Object shape.
type Field struct {
	Name     string
	Type     Type
	Required bool
}

// Object is an ordered set of fields (spec.md §3.4). The empty Object{}
// is the type named `Object` in spec.md — supertype of every object by
// the structural subtype rule (no required fields to satisfy).
type Object struct {
	Fields []Field
}

func (o Object) Kind() Kind { return KindObject }

func (o Object) String() string {
	parts := make([]string, len(o.Fields))
	for i, f := range o.Fields {
		bang := ""
		if f.Required {
			bang = "!"
		}
		parts[i] = fmt.Sprintf("%s%s: %s", f.Name, bang, f.Type.String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Field looks up a field by name.
func (o Object) Field(name string) (Field, bool) {
	for _, f := range o.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Arrow is `T1 -> T2`, always unary (spec.md §3.4).
type Arrow struct {
	Param  Type
	Result Type
}

func (a Arrow) Kind() Kind    { return KindArrow }
func (a Arrow) String() string { return "(" + a.Param.String() + " -> " + a.Result.String() + ")" }

// Fun is the type named `Fun` in spec.md: supertype of every arrow type,
// regardless of parameter/result. It is represented as Any -> Any but
// IsSubtype special-cases it (see IsFun) since ordinary contravariant
// arrow subtyping would not make every arrow a subtype of Any -> Any.
var Fun Type = Arrow{Param: Any, Result: Any}

// IsFun reports whether t is the Fun top type.
func IsFun(t Type) bool {
	a, ok := t.(Arrow)
	return ok && a.Param.Kind() == KindAny && a.Result.Kind() == KindAny
}

// ArrayAny is the type named `Array` in spec.md: `[Any]`, supertype of
// every array type.
var ArrayAny Type = Array{Elem: Any}

// IsArrayAny reports whether t is the ArrayAny top type.
func IsArrayAny(t Type) bool {
	a, ok := t.(Array)
	return ok && a.Elem.Kind() == KindAny
}

// Optional is `T?`, equivalent to the union of T and Null (spec.md §3.4).
type Optional struct {
	Base Type
}

func (o Optional) Kind() Kind    { return KindOptional }
func (o Optional) String() string { return o.Base.String() + "?" }

// Enum is `Enum(T, [v1, ..., vn])`: a finite set of permitted concrete
// values of base type T. Values are stored as comparable Go values
// produced by the interpreter's literal evaluation (int64, float64,
// string, bool, nil for null) so set membership and subset tests can use
// plain equality.
type Enum struct {
	Base   Type
	Values []any
}

func (e Enum) Kind() Kind { return KindEnum }

func (e Enum) String() string {
	parts := make([]string, len(e.Values))
	for i, v := range e.Values {
		parts[i] = fmt.Sprintf("%v", v)
	}
	sort.Strings(parts)
	return fmt.Sprintf("Enum(%s, [%s])", e.Base.String(), strings.Join(parts, ", "))
}

// Contains reports whether v (a comparable literal value) is a member of
// the enum's value set.
func (e Enum) Contains(v any) bool {
	for _, cand := range e.Values {
		if cand == v {
			return true
		}
	}
	return false
}
