package interp

import (
	"github.com/mindscript-lang/mindscript/internal/ast"
	"github.com/mindscript-lang/mindscript/internal/errors"
	"github.com/mindscript-lang/mindscript/internal/interp/runtime"
)

func (it *Interp) evalBlockExpr(n *ast.BlockExpr, env *runtime.Environment) (runtime.Value, *Signal, *errors.Error) {
	inner := runtime.NewEnclosedEnvironment(env)
	var result runtime.Value = runtime.NullValue
	for _, e := range n.Exprs {
		v, sig, err := it.Eval(e, inner)
		if err != nil {
			return nil, nil, err
		}
		if sig != nil && sig.Kind != SigNone {
			return nil, sig, nil
		}
		result = v
	}
	return result, nil, nil
}

func (it *Interp) evalIfExpr(n *ast.IfExpr, env *runtime.Environment) (runtime.Value, *Signal, *errors.Error) {
	for _, branch := range n.Branches {
		guard, sig, err := it.Eval(branch.Guard, env)
		if err != nil {
			return nil, nil, err
		}
		if sig != nil && sig.Kind != SigNone {
			return nil, sig, nil
		}
		if truthy(guard) {
			return it.Eval(branch.Body, env)
		}
	}
	if n.Else != nil {
		return it.Eval(n.Else, env)
	}
	return runtime.NullValue, nil, nil
}

// evalForExpr drives the iterator protocol (spec.md §4.5): Iter must
// evaluate to a unary callable, which the loop invokes with null before
// each iteration; a null result ends the loop, any other value is bound
// to Pattern for that iteration's Body. `break`/`continue` are consumed
// here; `return` keeps propagating to the enclosing function call.
func (it *Interp) evalForExpr(n *ast.ForExpr, env *runtime.Environment) (runtime.Value, *Signal, *errors.Error) {
	iterV, sig, err := it.Eval(n.Iter, env)
	if err != nil {
		return nil, nil, err
	}
	if sig != nil && sig.Kind != SigNone {
		return nil, sig, nil
	}

	var result runtime.Value = runtime.NullValue
	for {
		next, callErr := it.applyCallable(n.Pos(), iterV, runtime.NullValue)
		if callErr != nil {
			return nil, nil, callErr
		}
		if _, isNull := runtime.Unannotate(next).(runtime.Null); isNull {
			break
		}

		iterEnv := runtime.NewEnclosedEnvironment(env)
		if err := it.bindPattern(n.Pattern, next, iterEnv); err != nil {
			return nil, nil, err
		}

		v, sig, err := it.Eval(n.Body, iterEnv)
		if err != nil {
			return nil, nil, err
		}
		if sig != nil {
			switch sig.Kind {
			case SigBreak:
				if sig.Value != nil {
					return sig.Value, nil, nil
				}
				return runtime.NullValue, nil, nil
			case SigContinue:
				if sig.Value != nil {
					result = sig.Value
				}
				continue
			case SigReturn:
				return nil, sig, nil
			}
		}
		result = v
	}
	return result, nil, nil
}

func (it *Interp) evalReturnExpr(n *ast.ReturnExpr, env *runtime.Environment) (runtime.Value, *Signal, *errors.Error) {
	v, sig, err := it.evalOptional(n.Value, env)
	if err != nil {
		return nil, nil, err
	}
	if sig != nil && sig.Kind != SigNone {
		return nil, sig, nil
	}
	return nil, &Signal{Kind: SigReturn, Value: v}, nil
}

func (it *Interp) evalBreakExpr(n *ast.BreakExpr, env *runtime.Environment) (runtime.Value, *Signal, *errors.Error) {
	v, sig, err := it.evalOptional(n.Value, env)
	if err != nil {
		return nil, nil, err
	}
	if sig != nil && sig.Kind != SigNone {
		return nil, sig, nil
	}
	return nil, &Signal{Kind: SigBreak, Value: v}, nil
}

func (it *Interp) evalContinueExpr(n *ast.ContinueExpr, env *runtime.Environment) (runtime.Value, *Signal, *errors.Error) {
	v, sig, err := it.evalOptional(n.Value, env)
	if err != nil {
		return nil, nil, err
	}
	if sig != nil && sig.Kind != SigNone {
		return nil, sig, nil
	}
	return nil, &Signal{Kind: SigContinue, Value: v}, nil
}

func (it *Interp) evalOptional(e ast.Expression, env *runtime.Environment) (runtime.Value, *Signal, *errors.Error) {
	if e == nil {
		return runtime.NullValue, nil, nil
	}
	return it.Eval(e, env)
}
