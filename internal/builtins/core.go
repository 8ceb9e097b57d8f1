// Package builtins seeds MindScript's root environment with the minimum
// built-in set required by spec.md §4.6: printing, stringification,
// assertion, iteration, reflection, and the two importers. Grounded on
// the teacher's internal/builtins Context-parameter, one-function-per-
// builtin style (internal/builtins/ordinal.go, json.go), adapted to
// MindScript's unary-curried calling convention: every builtin is a
// *runtime.Builtin taking exactly one argument, and an n-argument
// builtin (isSubtype) is implemented as a builtin returning a closure
// builtin for the remaining arguments rather than by accepting an array.
package builtins

import (
	"fmt"

	"github.com/mindscript-lang/mindscript/internal/interp/runtime"
	"github.com/mindscript-lang/mindscript/internal/types"
)

// Install seeds every builtin named in spec.md §4.6 into root.
func Install(root *runtime.Environment) {
	for name, fn := range map[string]func(runtime.Caller, runtime.Value) (runtime.Value, error){
		"print":     builtinPrint,
		"println":   builtinPrintln,
		"str":       builtinStr,
		"assert":    builtinAssert,
		"iter":      builtinIter,
		"typeOf":    builtinTypeOf,
		"isSubtype": builtinIsSubtype,
		"getEnv":    builtinGetEnv,
		"import":    builtinImport,
		"netImport": builtinNetImport,
	} {
		root.Define(name, &runtime.Builtin{Name: name, Fn: fn})
	}
	installArrayBuiltins(root)
	installJSONBuiltins(root)
}

func builtin(name string, fn func(runtime.Caller, runtime.Value) (runtime.Value, error)) *runtime.Builtin {
	return &runtime.Builtin{Name: name, Fn: fn}
}

// builtinPrint writes str(v) to stdout without a trailing newline.
func builtinPrint(c runtime.Caller, v runtime.Value) (runtime.Value, error) {
	if w := c.Stdout(); w != nil {
		fmt.Fprint(w, stringify(v, true, map[any]bool{}))
	}
	return runtime.NullValue, nil
}

// builtinPrintln writes str(v) to stdout followed by a newline.
func builtinPrintln(c runtime.Caller, v runtime.Value) (runtime.Value, error) {
	if w := c.Stdout(); w != nil {
		fmt.Fprintln(w, stringify(v, true, map[any]bool{}))
	}
	return runtime.NullValue, nil
}

// builtinStr stringifies any value (spec.md §4.6): deep for containers,
// with a leading `# "text"` comment line when v carries an annotation.
func builtinStr(_ runtime.Caller, v runtime.Value) (runtime.Value, error) {
	return runtime.Str{Value: stringify(v, true, map[any]bool{})}, nil
}

// builtinAssert raises a ValueError (via the plain error applyBuiltin
// wraps) when v is not truthy, otherwise returns null (spec.md §4.6).
func builtinAssert(_ runtime.Caller, v runtime.Value) (runtime.Value, error) {
	if !truthy(v) {
		return nil, fmt.Errorf("assertion failed: %s", v.String())
	}
	return runtime.NullValue, nil
}

func truthy(v runtime.Value) bool {
	switch vv := runtime.Unannotate(v).(type) {
	case runtime.Null:
		return false
	case runtime.Bool:
		return vv.Value
	default:
		return true
	}
}

// builtinTypeOf returns the most precise type term describing v
// (spec.md §4.4, §4.6).
func builtinTypeOf(_ runtime.Caller, v runtime.Value) (runtime.Value, error) {
	return &runtime.TypeValue{Type: runtime.TypeOf(v)}, nil
}

// builtinIsSubtype is curried: isSubtype(a) returns a builtin awaiting
// b, so that isSubtype(a, b) (== isSubtype(a)(b) by the curry property)
// yields the Bool a <= b (spec.md §4.4, §4.6).
func builtinIsSubtype(_ runtime.Caller, a runtime.Value) (runtime.Value, error) {
	at, ok := runtime.Unannotate(a).(*runtime.TypeValue)
	if !ok {
		return nil, fmt.Errorf("isSubtype() expects a type as its first argument, got %s", a.Kind())
	}
	return builtin("isSubtype(a)", func(_ runtime.Caller, b runtime.Value) (runtime.Value, error) {
		bt, ok := runtime.Unannotate(b).(*runtime.TypeValue)
		if !ok {
			return nil, fmt.Errorf("isSubtype() expects a type as its second argument, got %s", b.Kind())
		}
		return runtime.Bool{Value: types.IsSubtype(at.Type, bt.Type)}, nil
	}), nil
}

// builtinGetEnv snapshots the current root frame's bindings as an object,
// ordered by name (spec.md §4.6: "snapshot of bindings"). Seeded builtins
// themselves are included, matching getEnv's use as an introspection tool
// over "the root frame" builtins are installed into.
func builtinGetEnv(c runtime.Caller, _ runtime.Value) (runtime.Value, error) {
	return envToObject(c.RootEnv()), nil
}
