package interp

import (
	"github.com/mindscript-lang/mindscript/internal/ast"
	"github.com/mindscript-lang/mindscript/internal/errors"
	"github.com/mindscript-lang/mindscript/internal/interp/runtime"
)

func (it *Interp) evalArrayLiteral(n *ast.ArrayLiteral, env *runtime.Environment) (runtime.Value, *Signal, *errors.Error) {
	elems := make([]runtime.Value, 0, len(n.Elements))
	for _, e := range n.Elements {
		v, sig, err := it.Eval(e, env)
		if err != nil {
			return nil, nil, err
		}
		if sig != nil && sig.Kind != SigNone {
			return nil, sig, nil
		}
		elems = append(elems, v)
	}
	return runtime.NewArray(elems), nil, nil
}

func (it *Interp) evalObjectLiteral(n *ast.ObjectLiteral, env *runtime.Environment) (runtime.Value, *Signal, *errors.Error) {
	fields := make([]runtime.Field, 0, len(n.Fields))
	for _, f := range n.Fields {
		v, sig, err := it.Eval(f.Value, env)
		if err != nil {
			return nil, nil, err
		}
		if sig != nil && sig.Kind != SigNone {
			return nil, sig, nil
		}
		fields = append(fields, runtime.Field{Key: f.Key, Value: v})
	}
	return runtime.NewObject(fields), nil, nil
}
