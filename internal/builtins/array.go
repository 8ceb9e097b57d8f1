package builtins

import (
	"fmt"

	"github.com/mindscript-lang/mindscript/internal/interp/runtime"
	"github.com/samber/lo"
)

// installArrayBuiltins seeds the array/object/string helpers referenced
// by "the library" (spec.md §4.6). Pure, non-callback helpers are
// grounded on samber/lo (already a pack dependency, see DESIGN.md);
// map/filter/reduce call back into user code through runtime.Caller and
// so are hand-rolled loops, since a callback can itself raise an error
// and lo's higher-order helpers have no error-propagating variant.
func installArrayBuiltins(root *runtime.Environment) {
	root.Define("length", builtin("length", builtinLength))
	root.Define("push", builtin("push", curry2(builtinPush)))
	root.Define("contains", builtin("contains", curry2(builtinContains)))
	root.Define("reverse", builtin("reverse", builtinReverse))
	root.Define("keys", builtin("keys", builtinKeys))
	root.Define("values", builtin("values", builtinValues))
	root.Define("map", builtin("map", curry2(builtinMap)))
	root.Define("filter", builtin("filter", curry2(builtinFilter)))
	root.Define("reduce", builtin("reduce", curry3(builtinReduce)))
}

// curry2 lifts a two-argument Go function into MindScript's curried
// calling convention: curry2(f)(a) returns a builtin awaiting b, then
// calls f(c, a, b) (spec.md §4.2's f(a,b) == f(a)(b) property, extended
// to natively two-argument builtins).
func curry2(f func(runtime.Caller, runtime.Value, runtime.Value) (runtime.Value, error)) func(runtime.Caller, runtime.Value) (runtime.Value, error) {
	return func(c runtime.Caller, a runtime.Value) (runtime.Value, error) {
		return builtin("partial", func(c runtime.Caller, b runtime.Value) (runtime.Value, error) {
			return f(c, a, b)
		}), nil
	}
}

func curry3(f func(runtime.Caller, runtime.Value, runtime.Value, runtime.Value) (runtime.Value, error)) func(runtime.Caller, runtime.Value) (runtime.Value, error) {
	return func(c runtime.Caller, a runtime.Value) (runtime.Value, error) {
		return builtin("partial", func(c runtime.Caller, b runtime.Value) (runtime.Value, error) {
			return builtin("partial", func(c runtime.Caller, cc runtime.Value) (runtime.Value, error) {
				return f(c, a, b, cc)
			}), nil
		}), nil
	}
}

func builtinLength(_ runtime.Caller, v runtime.Value) (runtime.Value, error) {
	switch vv := runtime.Unannotate(v).(type) {
	case *runtime.Array:
		return runtime.Int{Value: int64(len(vv.Elements))}, nil
	case runtime.Str:
		return runtime.Int{Value: int64(len([]rune(vv.Value)))}, nil
	default:
		return nil, fmt.Errorf("length() expects an array or str, got %s", v.Kind())
	}
}

func builtinPush(_ runtime.Caller, arr, v runtime.Value) (runtime.Value, error) {
	a, ok := runtime.Unannotate(arr).(*runtime.Array)
	if !ok {
		return nil, fmt.Errorf("push() expects an array as its first argument, got %s", arr.Kind())
	}
	a.Elements = append(a.Elements, v)
	return a, nil
}

func builtinContains(_ runtime.Caller, arr, v runtime.Value) (runtime.Value, error) {
	a, ok := runtime.Unannotate(arr).(*runtime.Array)
	if !ok {
		return nil, fmt.Errorf("contains() expects an array as its first argument, got %s", arr.Kind())
	}
	found := lo.ContainsBy(a.Elements, func(e runtime.Value) bool { return runtime.Equal(e, v) })
	return runtime.Bool{Value: found}, nil
}

func builtinReverse(_ runtime.Caller, v runtime.Value) (runtime.Value, error) {
	a, ok := runtime.Unannotate(v).(*runtime.Array)
	if !ok {
		return nil, fmt.Errorf("reverse() expects an array, got %s", v.Kind())
	}
	cp := append([]runtime.Value(nil), a.Elements...)
	return runtime.NewArray(lo.Reverse(cp)), nil
}

func builtinKeys(_ runtime.Caller, v runtime.Value) (runtime.Value, error) {
	o, ok := runtime.Unannotate(v).(*runtime.Object)
	if !ok {
		return nil, fmt.Errorf("keys() expects an object, got %s", v.Kind())
	}
	return runtime.NewArray(lo.Map(o.Fields, func(f runtime.Field, _ int) runtime.Value {
		return runtime.Str{Value: f.Key}
	})), nil
}

func builtinValues(_ runtime.Caller, v runtime.Value) (runtime.Value, error) {
	o, ok := runtime.Unannotate(v).(*runtime.Object)
	if !ok {
		return nil, fmt.Errorf("values() expects an object, got %s", v.Kind())
	}
	return runtime.NewArray(lo.Map(o.Fields, func(f runtime.Field, _ int) runtime.Value {
		return f.Value
	})), nil
}

func builtinMap(c runtime.Caller, v, fn runtime.Value) (runtime.Value, error) {
	a, ok := runtime.Unannotate(v).(*runtime.Array)
	if !ok {
		return nil, fmt.Errorf("map() expects an array as its first argument, got %s", v.Kind())
	}
	out := make([]runtime.Value, len(a.Elements))
	for i, e := range a.Elements {
		r, err := c.Call(fn, e)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return runtime.NewArray(out), nil
}

func builtinFilter(c runtime.Caller, v, fn runtime.Value) (runtime.Value, error) {
	a, ok := runtime.Unannotate(v).(*runtime.Array)
	if !ok {
		return nil, fmt.Errorf("filter() expects an array as its first argument, got %s", v.Kind())
	}
	var out []runtime.Value
	for _, e := range a.Elements {
		r, err := c.Call(fn, e)
		if err != nil {
			return nil, err
		}
		if truthy(r) {
			out = append(out, e)
		}
	}
	return runtime.NewArray(out), nil
}

// builtinReduce folds fn over v's elements left to right, starting from
// init: reduce(arr, fn, init) applies fn to [acc, elem] pairs via an
// object-free two-value array argument, since every MindScript callable
// is unary. fn receives the accumulator and element packed as a
// two-element array, mirroring the destructuring idiom spec.md §4.2
// already uses for multi-value callback arguments.
func builtinReduce(c runtime.Caller, v, fn, init runtime.Value) (runtime.Value, error) {
	a, ok := runtime.Unannotate(v).(*runtime.Array)
	if !ok {
		return nil, fmt.Errorf("reduce() expects an array as its first argument, got %s", v.Kind())
	}
	acc := init
	for _, e := range a.Elements {
		r, err := c.Call(fn, runtime.NewArray([]runtime.Value{acc, e}))
		if err != nil {
			return nil, err
		}
		acc = r
	}
	return acc, nil
}
