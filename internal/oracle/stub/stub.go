// Package stub implements a deterministic runtime.OracleAdapter that
// needs no network or model backend: it answers from an oracle
// literal's own examples, falling back to a zero value of the declared
// return type. It exists to exercise the adapter boundary end-to-end
// (a real model-backed adapter is out of scope) and is the CLI's
// default adapter when none is configured.
package stub

import (
	"fmt"

	"github.com/mindscript-lang/mindscript/internal/interp/runtime"
	"github.com/mindscript-lang/mindscript/internal/types"
	"github.com/samber/lo"
)

// Adapter resolves an oracle call by looking up its argument among the
// literal's declared examples (exact structural match first, since
// that's the only correlation a stub can draw without a real backend);
// when Strict is false and no example matches, it falls back to zeroOf
// of the declared return type.
type Adapter struct {
	// Strict makes an unmatched call an OracleError instead of falling
	// back to a zero value.
	Strict bool
}

// New creates an Adapter.
func New() *Adapter { return &Adapter{} }

// Resolve implements runtime.OracleAdapter.
func (a *Adapter) Resolve(req runtime.OracleRequest) (runtime.OracleResponse, error) {
	if result, ok := lookupExample(req.Examples, req.Arg); ok {
		return runtime.OracleResponse{Value: result}, nil
	}
	if a.Strict {
		return runtime.OracleResponse{}, fmt.Errorf("no example matches argument %s for oracle %q", req.Arg.String(), req.ID)
	}
	if req.ReturnType == nil {
		return runtime.OracleResponse{Value: runtime.NullValue}, nil
	}
	return runtime.OracleResponse{Value: zeroOf(req.ReturnType)}, nil
}

func lookupExample(examples []runtime.Example, arg runtime.Value) (runtime.Value, bool) {
	ex, ok := lo.Find(examples, func(e runtime.Example) bool {
		return runtime.Equal(e.Arg, arg)
	})
	if !ok {
		return nil, false
	}
	return ex.Result, true
}

// zeroOf produces the simplest value conforming to t, the stub's answer
// of last resort when no example matches and Strict is false. For an
// arrow type it returns null, which does not conform.
func zeroOf(t types.Type) runtime.Value {
	switch tt := t.(type) {
	case types.TypeType:
		return &runtime.TypeValue{Type: types.AnyType{}}
	case types.NullType:
		return runtime.NullValue
	case types.BoolType:
		return runtime.Bool{Value: false}
	case types.IntType:
		return runtime.Int{Value: 0}
	case types.NumType:
		return runtime.Num{Value: 0}
	case types.StrType:
		return runtime.Str{Value: ""}
	case types.AnyType:
		return runtime.NullValue
	case types.Array:
		return runtime.NewArray(nil)
	case types.Object:
		fields := make([]runtime.Field, 0, len(tt.Fields))
		for _, f := range tt.Fields {
			if f.Required {
				fields = append(fields, runtime.Field{Key: f.Name, Value: zeroOf(f.Type)})
			}
		}
		return runtime.NewObject(fields)
	case types.Optional:
		return runtime.NullValue
	case types.Enum:
		if len(tt.Values) == 0 {
			return zeroOf(tt.Base)
		}
		return literalToValue(tt.Values[0])
	default:
		return runtime.NullValue
	}
}

// literalToValue converts one of an Enum's stored Go literal values
// (int64/float64/string/bool/nil, produced by types.literalValue when the
// Enum(...) type was constructed) into the runtime.Value of matching kind.
func literalToValue(v any) runtime.Value {
	switch vv := v.(type) {
	case int64:
		return runtime.Int{Value: vv}
	case float64:
		return runtime.Num{Value: vv}
	case string:
		return runtime.Str{Value: vv}
	case bool:
		return runtime.Bool{Value: vv}
	default:
		return runtime.NullValue
	}
}

var _ runtime.OracleAdapter = (*Adapter)(nil)
