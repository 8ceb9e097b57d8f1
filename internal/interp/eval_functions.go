package interp

import (
	"github.com/google/uuid"
	"github.com/mindscript-lang/mindscript/internal/ast"
	"github.com/mindscript-lang/mindscript/internal/errors"
	"github.com/mindscript-lang/mindscript/internal/interp/runtime"
	"github.com/mindscript-lang/mindscript/internal/token"
	"github.com/mindscript-lang/mindscript/internal/types"
)

func (it *Interp) evalFunctionLiteral(n *ast.FunctionLiteral, env *runtime.Environment) (runtime.Value, *Signal, *errors.Error) {
	paramType, err := it.resolveParamType(n.Param, env)
	if err != nil {
		return nil, nil, err
	}
	returnType, err := it.resolveReturnType(n.Return, env)
	if err != nil {
		return nil, nil, err
	}
	return &runtime.Function{
		Param:      n.Param.Name,
		ParamType:  paramType,
		ReturnType: returnType,
		Body:       n.Body,
		Closure:    env,
	}, nil, nil
}

func (it *Interp) evalOracleLiteral(n *ast.OracleLiteral, env *runtime.Environment) (runtime.Value, *Signal, *errors.Error) {
	paramType, err := it.resolveParamType(n.Param, env)
	if err != nil {
		return nil, nil, err
	}
	returnType, err := it.resolveReturnType(n.Return, env)
	if err != nil {
		return nil, nil, err
	}

	examples := make([]runtime.Example, 0, len(n.Examples))
	for _, ex := range n.Examples {
		argV, sig, evalErr := it.Eval(ex.Arg, env)
		if evalErr != nil {
			return nil, nil, evalErr
		}
		if sig != nil && sig.Kind != SigNone {
			return nil, sig, nil
		}
		resultV, sig, evalErr := it.Eval(ex.Result, env)
		if evalErr != nil {
			return nil, nil, evalErr
		}
		if sig != nil && sig.Kind != SigNone {
			return nil, sig, nil
		}
		examples = append(examples, runtime.Example{Arg: argV, Result: resultV})
	}

	return &runtime.Oracle{
		Param:      n.Param.Name,
		ParamType:  paramType,
		ReturnType: returnType,
		Annotation: n.Annotation,
		Examples:   examples,
		Adapter:    it.Adapter,
	}, nil, nil
}

func (it *Interp) resolveParamType(p ast.Param, env *runtime.Environment) (types.Type, *errors.Error) {
	if p.Type == nil {
		return nil, nil
	}
	t, err := types.FromExpr(p.Type, it.resolver(env))
	if err != nil {
		return nil, it.errf(errors.TypeError, p.Type.Pos(), "%s", err)
	}
	return t, nil
}

func (it *Interp) resolveReturnType(te ast.TypeExpr, env *runtime.Environment) (types.Type, *errors.Error) {
	if te == nil {
		return nil, nil
	}
	t, err := types.FromExpr(te, it.resolver(env))
	if err != nil {
		return nil, it.errf(errors.TypeError, te.Pos(), "%s", err)
	}
	return t, nil
}

// evalCallExpr applies n.Args one at a time against the (possibly
// curried) callee, per spec.md §4.5's currying property. When the
// callee is a member expression, the receiver is bound as `this` for
// the first application only (spec.md §4.5 `this` semantics).
func (it *Interp) evalCallExpr(n *ast.CallExpr, env *runtime.Environment) (runtime.Value, *Signal, *errors.Error) {
	fnV, sig, err := it.evalCallee(n.Callee, env)
	if err != nil {
		return nil, nil, err
	}
	if sig != nil && sig.Kind != SigNone {
		return nil, sig, nil
	}

	// A zero-argument call (`f()`) still performs one application: every
	// declared function is unary, and a zero-parameter declaration
	// desugars to a synthesized `_: Null` parameter (internal/parser's
	// buildCurriedFunction), so `f()` must invoke it with `null` rather
	// than yield the callee itself unapplied.
	if len(n.Args) == 0 {
		result, callErr := it.applyCallable(n.Pos(), fnV, runtime.NullValue)
		if callErr != nil {
			return nil, nil, callErr
		}
		return result, nil, nil
	}

	cur := fnV
	for _, argExpr := range n.Args {
		argV, sig, err := it.Eval(argExpr, env)
		if err != nil {
			return nil, nil, err
		}
		if sig != nil && sig.Kind != SigNone {
			return nil, sig, nil
		}
		result, callErr := it.applyCallable(n.Pos(), cur, argV)
		if callErr != nil {
			return nil, nil, callErr
		}
		cur = result
	}
	return cur, nil, nil
}

func (it *Interp) evalCallee(callee ast.Expression, env *runtime.Environment) (runtime.Value, *Signal, *errors.Error) {
	member, ok := callee.(*ast.MemberExpr)
	if !ok {
		return it.Eval(callee, env)
	}
	objV, sig, err := it.Eval(member.Object, env)
	if err != nil {
		return nil, nil, err
	}
	if sig != nil && sig.Kind != SigNone {
		return nil, sig, nil
	}
	obj, ok := runtime.Unannotate(objV).(*runtime.Object)
	if !ok {
		return nil, nil, it.errf(errors.TypeError, member.Pos(), "cannot read field %q on %s", member.Field, objV.Kind())
	}
	fnV, ok := obj.Get(member.Field)
	if !ok {
		return nil, nil, it.errf(errors.ValueError, member.Pos(), "object has no field %q", member.Field)
	}
	return bindReceiver(fnV, objV), nil, nil
}

// bindReceiver returns a copy of fn with This set to receiver, if fn is
// a user-defined Function; any other callable kind is returned unchanged
// (Builtins and Oracles do not observe `this`).
func bindReceiver(fn, receiver runtime.Value) runtime.Value {
	f, ok := runtime.Unannotate(fn).(*runtime.Function)
	if !ok {
		return fn
	}
	bound := *f
	bound.This = receiver
	return &bound
}

// applyCallable invokes fn with a single argument, dispatching on its
// concrete runtime kind. Called both from call-expression evaluation and
// from the for-loop's iterator protocol.
func (it *Interp) applyCallable(pos token.Position, fn, arg runtime.Value) (runtime.Value, *errors.Error) {
	switch callee := runtime.Unannotate(fn).(type) {
	case *runtime.Function:
		return it.applyFunction(pos, callee, arg)
	case *runtime.Oracle:
		return it.applyOracle(pos, callee, arg)
	case *runtime.Builtin:
		return it.applyBuiltin(pos, callee, arg)
	}
	return nil, it.errf(errors.TypeError, pos, "%s is not callable", fn.Kind())
}

func (it *Interp) applyFunction(pos token.Position, f *runtime.Function, arg runtime.Value) (runtime.Value, *errors.Error) {
	if f.ParamType != nil && !runtime.Conforms(arg, f.ParamType) {
		return nil, it.errf(errors.TypeError, pos, "argument of type %s does not conform to %s", runtime.TypeOf(arg), f.ParamType)
	}

	it.depth++
	defer func() { it.depth-- }()
	if it.depth > maxCallDepth {
		return nil, it.errf(errors.InternalError, pos, "maximum call depth exceeded")
	}

	callEnv := runtime.NewEnclosedEnvironment(f.Closure)
	callEnv.Define(f.Param, arg)
	if f.This != nil {
		callEnv.Define("this", f.This)
	} else {
		callEnv.Define("this", runtime.NullValue)
	}

	result, sig, err := it.Eval(f.Body, callEnv)
	if err != nil {
		return nil, err
	}
	if sig != nil {
		switch sig.Kind {
		case SigReturn:
			result = sig.Value
		case SigBreak, SigContinue:
			return nil, it.errf(errors.ValueError, pos, "%s used outside of its enclosing for-loop", signalName(sig.Kind))
		}
	}

	if f.ReturnType != nil && !runtime.Conforms(result, f.ReturnType) {
		return nil, it.errf(errors.TypeError, pos, "return value of type %s does not conform to %s", runtime.TypeOf(result), f.ReturnType)
	}
	return result, nil
}

func (it *Interp) applyOracle(pos token.Position, o *runtime.Oracle, arg runtime.Value) (runtime.Value, *errors.Error) {
	if o.ParamType != nil && !runtime.Conforms(arg, o.ParamType) {
		return nil, it.errf(errors.TypeError, pos, "argument of type %s does not conform to %s", runtime.TypeOf(arg), o.ParamType)
	}
	if o.Adapter == nil {
		return nil, it.errf(errors.OracleError, pos, "no oracle adapter configured")
	}

	resp, err := o.Adapter.Resolve(runtime.OracleRequest{
		ID:         uuid.NewString(),
		Annotation: o.Annotation,
		ParamType:  o.ParamType,
		ReturnType: o.ReturnType,
		Arg:        arg,
		Examples:   o.Examples,
	})
	if err != nil {
		return nil, it.errf(errors.OracleError, pos, "%s", err)
	}
	if o.ReturnType != nil && !runtime.Conforms(resp.Value, o.ReturnType) {
		return nil, it.errf(errors.TypeError, pos, "oracle result of type %s does not conform to %s", runtime.TypeOf(resp.Value), o.ReturnType)
	}
	return resp.Value, nil
}

func (it *Interp) applyBuiltin(pos token.Position, b *runtime.Builtin, arg runtime.Value) (runtime.Value, *errors.Error) {
	result, err := b.Fn(it, arg)
	if err != nil {
		if me, ok := err.(*errors.Error); ok {
			return nil, me
		}
		return nil, it.errf(errors.ValueError, pos, "%s", err)
	}
	return result, nil
}

// Call implements runtime.Caller so builtins (e.g. array map/filter) can
// invoke user-level callables without importing this package.
func (it *Interp) Call(fn runtime.Value, arg runtime.Value) (runtime.Value, error) {
	v, err := it.applyCallable(token.Position{}, fn, arg)
	if err != nil {
		return nil, err
	}
	return v, nil
}
