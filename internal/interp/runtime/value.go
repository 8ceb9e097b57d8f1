// Package runtime provides MindScript's runtime value system: the value
// universe {null, bool, int, num, str, array, object, function, oracle,
// type} (spec.md §3), lexical environments, and the conformance rule
// tying runtime values back to internal/types.Type (spec.md §4.4).
package runtime

import (
	"strconv"
)

// Kind identifies which member of the runtime value universe a Value is.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindNum
	KindStr
	KindArray
	KindObject
	KindFunction
	KindOracle
	KindType
)

var kindNames = [...]string{
	KindNull: "null", KindBool: "bool", KindInt: "int", KindNum: "num",
	KindStr: "str", KindArray: "array", KindObject: "object",
	KindFunction: "function", KindOracle: "oracle", KindType: "type",
}

func (k Kind) String() string { return kindNames[k] }

// Value is any MindScript runtime value.
type Value interface {
	Kind() Kind
	String() string
}

// Null is the single `null` value.
type Null struct{}

func (Null) Kind() Kind     { return KindNull }
func (Null) String() string { return "null" }

// NullValue is the shared Null singleton.
var NullValue Value = Null{}

// Bool is `true`/`false`.
type Bool struct{ Value bool }

func (b Bool) Kind() Kind { return KindBool }
func (b Bool) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// Int is a 64-bit signed integer value.
type Int struct{ Value int64 }

func (i Int) Kind() Kind     { return KindInt }
func (i Int) String() string { return strconv.FormatInt(i.Value, 10) }

// Num is a 64-bit floating-point value.
type Num struct{ Value float64 }

func (n Num) Kind() Kind     { return KindNum }
func (n Num) String() string { return strconv.FormatFloat(n.Value, 'g', -1, 64) }

// Str is a string value.
type Str struct{ Value string }

func (s Str) Kind() Kind     { return KindStr }
func (s Str) String() string { return s.Value }

// Bool/Int/Num/Str/Null are plain value types (no identity); Array and
// Object are reference types (spec.md §3.2: mutation through one
// reference is visible through any other reference to the same value).
