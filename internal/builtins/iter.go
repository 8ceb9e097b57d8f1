package builtins

import (
	"fmt"

	"github.com/mindscript-lang/mindscript/internal/interp/runtime"
)

// builtinIter adapts a value to the iterator protocol (spec.md §4.5's
// glossary entry: a unary function that yields the next element, or
// null to end the sequence). Arrays yield elements in order; objects
// yield `[key, value]` pairs in insertion order; an already-callable
// value passes through unchanged, letting `for ... in iter(x) do ... end`
// work uniformly whether x is a container or a hand-written generator.
func builtinIter(_ runtime.Caller, v runtime.Value) (runtime.Value, error) {
	switch vv := runtime.Unannotate(v).(type) {
	case *runtime.Array:
		return arrayIterator(vv), nil
	case *runtime.Object:
		return objectIterator(vv), nil
	case *runtime.Function, *runtime.Oracle, *runtime.Builtin:
		return v, nil
	default:
		return nil, fmt.Errorf("iter() expects an array, object, or function, got %s", v.Kind())
	}
}

func arrayIterator(a *runtime.Array) *runtime.Builtin {
	i := 0
	return builtin("iter(array)", func(_ runtime.Caller, _ runtime.Value) (runtime.Value, error) {
		if i >= len(a.Elements) {
			return runtime.NullValue, nil
		}
		v := a.Elements[i]
		i++
		return v, nil
	})
}

func objectIterator(o *runtime.Object) *runtime.Builtin {
	i := 0
	return builtin("iter(object)", func(_ runtime.Caller, _ runtime.Value) (runtime.Value, error) {
		if i >= len(o.Fields) {
			return runtime.NullValue, nil
		}
		f := o.Fields[i]
		i++
		return runtime.NewArray([]runtime.Value{runtime.Str{Value: f.Key}, f.Value}), nil
	})
}
