package interp

import (
	"github.com/mindscript-lang/mindscript/internal/ast"
	"github.com/mindscript-lang/mindscript/internal/errors"
	"github.com/mindscript-lang/mindscript/internal/interp/runtime"
	"github.com/mindscript-lang/mindscript/internal/token"
)

func (it *Interp) evalLetExpr(n *ast.LetExpr, env *runtime.Environment) (runtime.Value, *Signal, *errors.Error) {
	v, sig, err := it.Eval(n.Value, env)
	if err != nil {
		return nil, nil, err
	}
	if sig != nil && sig.Kind != SigNone {
		return nil, sig, nil
	}
	if err := it.bindPattern(n.Pattern, v, env); err != nil {
		return nil, nil, err
	}
	return v, nil, nil
}

// bindPattern destructures v against p, declaring a fresh cell for every
// LetPattern leaf and rebinding an existing one for every bare
// IdentPattern leaf (spec.md §4.2 destructuring). Array patterns require
// at least as many elements as the pattern has, object patterns require
// every named field to be present.
func (it *Interp) bindPattern(p ast.Pattern, v runtime.Value, env *runtime.Environment) *errors.Error {
	switch pat := p.(type) {
	case *ast.LetPattern:
		env.Define(pat.Name, v)
		return nil
	case *ast.IdentPattern:
		if !env.Set(pat.Name, v) {
			return it.errf(errors.NameError, pat.Pos(), "undefined name %q", pat.Name)
		}
		return nil
	case *ast.ArrayPattern:
		arr, ok := runtime.Unannotate(v).(*runtime.Array)
		if !ok {
			return it.errf(errors.TypeError, pat.Pos(), "cannot destructure %s as an array", v.Kind())
		}
		if len(arr.Elements) < len(pat.Elements) {
			return it.errf(errors.ValueError, pat.Pos(), "array pattern expects at least %d elements, got %d", len(pat.Elements), len(arr.Elements))
		}
		for i, elemPat := range pat.Elements {
			if err := it.bindPattern(elemPat, arr.Elements[i], env); err != nil {
				return err
			}
		}
		return nil
	case *ast.ObjectPattern:
		obj, ok := runtime.Unannotate(v).(*runtime.Object)
		if !ok {
			return it.errf(errors.TypeError, pat.Pos(), "cannot destructure %s as an object", v.Kind())
		}
		for _, field := range pat.Fields {
			fv, ok := obj.Get(field.Key)
			if !ok {
				return it.errf(errors.ValueError, pat.Pos(), "object has no field %q", field.Key)
			}
			if err := it.bindPattern(field.Pattern, fv, env); err != nil {
				return err
			}
		}
		return nil
	}
	return it.errf(errors.InternalError, p.Pos(), "unhandled pattern %T", p)
}

func (it *Interp) evalAssignExpr(n *ast.AssignExpr, env *runtime.Environment) (runtime.Value, *Signal, *errors.Error) {
	v, sig, err := it.Eval(n.Value, env)
	if err != nil {
		return nil, nil, err
	}
	if sig != nil && sig.Kind != SigNone {
		return nil, sig, nil
	}

	switch target := n.Target.(type) {
	case *ast.Identifier:
		if !env.Set(target.Name, v) {
			return nil, nil, it.errf(errors.NameError, target.Pos(), "undefined name %q", target.Name)
		}
	case *ast.PatternExpr:
		if err := it.bindPattern(target.Pattern, v, env); err != nil {
			return nil, nil, err
		}
	case *ast.MemberExpr:
		objV, sig, evalErr := it.Eval(target.Object, env)
		if evalErr != nil {
			return nil, nil, evalErr
		}
		if sig != nil && sig.Kind != SigNone {
			return nil, sig, nil
		}
		obj, ok := runtime.Unannotate(objV).(*runtime.Object)
		if !ok {
			return nil, nil, it.errf(errors.TypeError, target.Pos(), "cannot set field %q on %s", target.Field, objV.Kind())
		}
		obj.Set(target.Field, v)
	case *ast.IndexExpr:
		objV, sig, evalErr := it.Eval(target.Object, env)
		if evalErr != nil {
			return nil, nil, evalErr
		}
		if sig != nil && sig.Kind != SigNone {
			return nil, sig, nil
		}
		idxV, sig, evalErr := it.Eval(target.Index, env)
		if evalErr != nil {
			return nil, nil, evalErr
		}
		if sig != nil && sig.Kind != SigNone {
			return nil, sig, nil
		}
		if err := it.setIndexed(target.Pos(), objV, idxV, v); err != nil {
			return nil, nil, err
		}
	default:
		return nil, nil, it.errf(errors.InternalError, n.Pos(), "unsupported assignment target %T", n.Target)
	}
	return v, nil, nil
}

func (it *Interp) setIndexed(pos token.Position, objV, idxV, v runtime.Value) *errors.Error {
	switch obj := runtime.Unannotate(objV).(type) {
	case *runtime.Array:
		idx, ok := runtime.Unannotate(idxV).(runtime.Int)
		if !ok {
			return it.errf(errors.TypeError, pos, "array index must be an int, got %s", idxV.Kind())
		}
		i := int(idx.Value)
		if i < 0 || i >= len(obj.Elements) {
			return it.errf(errors.ValueError, pos, "array index %d out of range (length %d)", i, len(obj.Elements))
		}
		obj.Elements[i] = v
		return nil
	case *runtime.Object:
		key, ok := runtime.Unannotate(idxV).(runtime.Str)
		if !ok {
			return it.errf(errors.TypeError, pos, "object key must be a str, got %s", idxV.Kind())
		}
		obj.Set(key.Value, v)
		return nil
	}
	return it.errf(errors.TypeError, pos, "cannot index-assign into %s", objV.Kind())
}

func (it *Interp) evalMemberExpr(n *ast.MemberExpr, env *runtime.Environment) (runtime.Value, *Signal, *errors.Error) {
	objV, sig, err := it.Eval(n.Object, env)
	if err != nil {
		return nil, nil, err
	}
	if sig != nil && sig.Kind != SigNone {
		return nil, sig, nil
	}
	obj, ok := runtime.Unannotate(objV).(*runtime.Object)
	if !ok {
		return nil, nil, it.errf(errors.TypeError, n.Pos(), "cannot read field %q on %s", n.Field, objV.Kind())
	}
	v, ok := obj.Get(n.Field)
	if !ok {
		return nil, nil, it.errf(errors.ValueError, n.Pos(), "object has no field %q", n.Field)
	}
	return v, nil, nil
}

func (it *Interp) evalIndexExpr(n *ast.IndexExpr, env *runtime.Environment) (runtime.Value, *Signal, *errors.Error) {
	objV, sig, err := it.Eval(n.Object, env)
	if err != nil {
		return nil, nil, err
	}
	if sig != nil && sig.Kind != SigNone {
		return nil, sig, nil
	}
	idxV, sig, err := it.Eval(n.Index, env)
	if err != nil {
		return nil, nil, err
	}
	if sig != nil && sig.Kind != SigNone {
		return nil, sig, nil
	}

	switch obj := runtime.Unannotate(objV).(type) {
	case *runtime.Array:
		idx, ok := runtime.Unannotate(idxV).(runtime.Int)
		if !ok {
			return nil, nil, it.errf(errors.TypeError, n.Pos(), "array index must be an int, got %s", idxV.Kind())
		}
		i := int(idx.Value)
		if i < 0 || i >= len(obj.Elements) {
			return nil, nil, it.errf(errors.ValueError, n.Pos(), "array index %d out of range (length %d)", i, len(obj.Elements))
		}
		return obj.Elements[i], nil, nil
	case *runtime.Object:
		key, ok := runtime.Unannotate(idxV).(runtime.Str)
		if !ok {
			return nil, nil, it.errf(errors.TypeError, n.Pos(), "object key must be a str, got %s", idxV.Kind())
		}
		v, ok := obj.Get(key.Value)
		if !ok {
			return nil, nil, it.errf(errors.ValueError, n.Pos(), "object has no field %q", key.Value)
		}
		return v, nil, nil
	}
	return nil, nil, it.errf(errors.TypeError, n.Pos(), "cannot index into %s", objV.Kind())
}
