package interp

import (
	"github.com/mindscript-lang/mindscript/internal/ast"
	"github.com/mindscript-lang/mindscript/internal/errors"
	"github.com/mindscript-lang/mindscript/internal/interp/runtime"
	"github.com/mindscript-lang/mindscript/internal/token"
)

// truthy implements MindScript's conditional/`and`/`or`/`not` test:
// `null` and `false` are falsy, every other value (including 0, "", and
// empty arrays/objects) is truthy (spec.md §4.3 decided against
// JavaScript-style falsy coercion of empty containers and zero, since
// MindScript is structurally typed and a Bool/Null test already exists
// for that).
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

func (it *Interp) evalUnaryExpr(n *ast.UnaryExpr, env *runtime.Environment) (runtime.Value, *Signal, *errors.Error) {
	operand, sig, err := it.Eval(n.Operand, env)
	if err != nil {
		return nil, nil, err
	}
	if sig != nil && sig.Kind != SigNone {
		return nil, sig, nil
	}

	switch n.Op {
	case token.NOT:
		return runtime.Bool{Value: !truthy(operand)}, nil, nil
	case token.MINUS:
		switch v := runtime.Unannotate(operand).(type) {
		case runtime.Int:
			return runtime.Int{Value: -v.Value}, nil, nil
		case runtime.Num:
			return runtime.Num{Value: -v.Value}, nil, nil
		default:
			return nil, nil, it.errf(errors.TypeError, n.Pos(), "cannot negate a %s", operand.Kind())
		}
	}
	return nil, nil, it.errf(errors.InternalError, n.Pos(), "unhandled unary operator %s", n.Op)
}

func (it *Interp) evalAnnotationExpr(n *ast.AnnotationExpr, env *runtime.Environment) (runtime.Value, *Signal, *errors.Error) {
	v, sig, err := it.Eval(n.Expr, env)
	if err != nil {
		return nil, nil, err
	}
	if sig != nil && sig.Kind != SigNone {
		return nil, sig, nil
	}
	// An annotation directly preceding an oracle literal is also the
	// informal type transmitted to the oracle adapter (spec.md §4.3, §4.7),
	// not just generic display metadata, so it is copied onto the Oracle
	// value itself in addition to the ordinary Annotated wrapping.
	if o, ok := v.(*runtime.Oracle); ok {
		bound := *o
		bound.Annotation = n.Text
		v = &bound
	}
	return runtime.Annotate(v, n.Text), nil, nil
}

func (it *Interp) evalBinaryExpr(n *ast.BinaryExpr, env *runtime.Environment) (runtime.Value, *Signal, *errors.Error) {
	left, sig, err := it.Eval(n.Left, env)
	if err != nil {
		return nil, nil, err
	}
	if sig != nil && sig.Kind != SigNone {
		return nil, sig, nil
	}

	// `and`/`or` short-circuit and never evaluate the right operand
	// unless needed; they return whichever operand decided the result,
	// not a coerced Bool (spec.md §4.3).
	switch n.Op {
	case token.AND:
		if !truthy(left) {
			return left, nil, nil
		}
		return it.evalRight(n, env)
	case token.OR:
		if truthy(left) {
			return left, nil, nil
		}
		return it.evalRight(n, env)
	}

	right, sig, err := it.Eval(n.Right, env)
	if err != nil {
		return nil, nil, err
	}
	if sig != nil && sig.Kind != SigNone {
		return nil, sig, nil
	}

	switch n.Op {
	case token.EQ:
		return runtime.Bool{Value: runtime.Equal(left, right)}, nil, nil
	case token.NOT_EQ:
		return runtime.Bool{Value: !runtime.Equal(left, right)}, nil, nil
	case token.PLUS:
		return it.evalPlus(n, left, right)
	case token.MINUS, token.STAR, token.SLASH, token.PERCENT:
		return it.evalArith(n, left, right)
	case token.LT, token.LT_EQ, token.GT, token.GT_EQ:
		return it.evalCompare(n, left, right)
	}
	return nil, nil, it.errf(errors.InternalError, n.Pos(), "unhandled binary operator %s", n.Op)
}

func (it *Interp) evalRight(n *ast.BinaryExpr, env *runtime.Environment) (runtime.Value, *Signal, *errors.Error) {
	right, sig, err := it.Eval(n.Right, env)
	if err != nil {
		return nil, nil, err
	}
	if sig != nil && sig.Kind != SigNone {
		return nil, sig, nil
	}
	return right, nil, nil
}

func (it *Interp) evalPlus(n *ast.BinaryExpr, left, right runtime.Value) (runtime.Value, *Signal, *errors.Error) {
	l, r := runtime.Unannotate(left), runtime.Unannotate(right)
	switch lv := l.(type) {
	case runtime.Str:
		rv, ok := r.(runtime.Str)
		if !ok {
			return nil, nil, it.errf(errors.TypeError, n.Pos(), "cannot add str and %s", right.Kind())
		}
		return runtime.Str{Value: lv.Value + rv.Value}, nil, nil
	case *runtime.Array:
		rv, ok := r.(*runtime.Array)
		if !ok {
			return nil, nil, it.errf(errors.TypeError, n.Pos(), "cannot add array and %s", right.Kind())
		}
		combined := make([]runtime.Value, 0, len(lv.Elements)+len(rv.Elements))
		combined = append(combined, lv.Elements...)
		combined = append(combined, rv.Elements...)
		return runtime.NewArray(combined), nil, nil
	}
	return it.evalArith(n, left, right)
}

func (it *Interp) evalArith(n *ast.BinaryExpr, left, right runtime.Value) (runtime.Value, *Signal, *errors.Error) {
	lf, lok := numericValue(left)
	rf, rok := numericValue(right)
	if !lok || !rok {
		return nil, nil, it.errf(errors.TypeError, n.Pos(), "cannot apply %s to %s and %s", n.Op, left.Kind(), right.Kind())
	}
	li, lInt := runtime.Unannotate(left).(runtime.Int)
	ri, rInt := runtime.Unannotate(right).(runtime.Int)
	bothInt := lInt && rInt

	switch n.Op {
	case token.PLUS:
		if bothInt {
			return runtime.Int{Value: li.Value + ri.Value}, nil, nil
		}
		return runtime.Num{Value: lf + rf}, nil, nil
	case token.MINUS:
		if bothInt {
			return runtime.Int{Value: li.Value - ri.Value}, nil, nil
		}
		return runtime.Num{Value: lf - rf}, nil, nil
	case token.STAR:
		if bothInt {
			return runtime.Int{Value: li.Value * ri.Value}, nil, nil
		}
		return runtime.Num{Value: lf * rf}, nil, nil
	case token.SLASH:
		if rf == 0 {
			return nil, nil, it.errf(errors.ValueError, n.Pos(), "division by zero")
		}
		return runtime.Num{Value: lf / rf}, nil, nil
	case token.PERCENT:
		if rf == 0 {
			return nil, nil, it.errf(errors.ValueError, n.Pos(), "division by zero")
		}
		if bothInt {
			return runtime.Int{Value: li.Value % ri.Value}, nil, nil
		}
		return runtime.Num{Value: modFloat(lf, rf)}, nil, nil
	}
	return nil, nil, it.errf(errors.InternalError, n.Pos(), "unhandled arithmetic operator %s", n.Op)
}

func modFloat(a, b float64) float64 {
	m := a - b*float64(int64(a/b))
	return m
}

func numericValue(v runtime.Value) (float64, bool) {
	switch vv := runtime.Unannotate(v).(type) {
	case runtime.Int:
		return float64(vv.Value), true
	case runtime.Num:
		return vv.Value, true
	default:
		return 0, false
	}
}

func (it *Interp) evalCompare(n *ast.BinaryExpr, left, right runtime.Value) (runtime.Value, *Signal, *errors.Error) {
	l, r := runtime.Unannotate(left), runtime.Unannotate(right)
	if ls, ok := l.(runtime.Str); ok {
		rs, ok := r.(runtime.Str)
		if !ok {
			return nil, nil, it.errf(errors.TypeError, n.Pos(), "cannot compare str and %s", right.Kind())
		}
		return runtime.Bool{Value: compareOp(n.Op, strCompare(ls.Value, rs.Value))}, nil, nil
	}
	lf, lok := numericValue(left)
	rf, rok := numericValue(right)
	if !lok || !rok {
		return nil, nil, it.errf(errors.TypeError, n.Pos(), "cannot compare %s and %s", left.Kind(), right.Kind())
	}
	var cmp int
	switch {
	case lf < rf:
		cmp = -1
	case lf > rf:
		cmp = 1
	}
	return runtime.Bool{Value: compareOp(n.Op, cmp)}, nil, nil
}

func strCompare(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareOp(op token.Kind, cmp int) bool {
	switch op {
	case token.LT:
		return cmp < 0
	case token.LT_EQ:
		return cmp <= 0
	case token.GT:
		return cmp > 0
	case token.GT_EQ:
		return cmp >= 0
	}
	return false
}
