// Package interp is MindScript's tree-walking evaluator: it turns an
// internal/ast.Program into internal/interp/runtime.Value results,
// threading lexical environments and non-local exits (spec.md §4.5).
package interp

import (
	"fmt"
	"io"
	"os"

	"github.com/mindscript-lang/mindscript/internal/ast"
	"github.com/mindscript-lang/mindscript/internal/errors"
	"github.com/mindscript-lang/mindscript/internal/interp/runtime"
	"github.com/mindscript-lang/mindscript/internal/token"
	"github.com/mindscript-lang/mindscript/internal/types"
)

// maxCallDepth guards against runaway recursion in user scripts; hitting
// it surfaces as an ordinary InternalError rather than a Go stack
// overflow crash.
const maxCallDepth = 4096

// Interp runs MindScript programs against a root environment. File and
// Source are used only for error messages.
type Interp struct {
	Root    *runtime.Environment
	Adapter runtime.OracleAdapter
	File    string
	Source  string
	Output  io.Writer
	depth   int
}

// New creates an Interp with the given root environment, writing
// print/println output to os.Stdout by default.
func New(root *runtime.Environment) *Interp {
	return &Interp{Root: root, Output: os.Stdout}
}

// Stdout implements runtime.Caller.
func (it *Interp) Stdout() io.Writer { return it.Output }

func (it *Interp) errf(kind errors.Kind, pos token.Position, format string, args ...any) *errors.Error {
	return errors.New(kind, pos, fmt.Sprintf(format, args...), it.Source, it.File)
}

// RunProgram evaluates every expression in order, returning the last
// value (or Null for an empty program), per spec.md §4.2.
func (it *Interp) RunProgram(prog *ast.Program) (runtime.Value, *errors.Error) {
	var result runtime.Value = runtime.NullValue
	for _, e := range prog.Exprs {
		v, sig, err := it.Eval(e, it.Root)
		if err != nil {
			return nil, err
		}
		if sig != nil && sig.Kind != SigNone {
			return nil, it.errf(errors.ValueError, e.Pos(), "%s used outside of its enclosing construct", signalName(sig.Kind))
		}
		result = v
	}
	return result, nil
}

func signalName(k SignalKind) string {
	switch k {
	case SigReturn:
		return "return"
	case SigBreak:
		return "break"
	case SigContinue:
		return "continue"
	default:
		return "signal"
	}
}

// Eval evaluates a single expression node in env. A non-nil Signal means
// evaluation short-circuited on a return/break/continue; callers must
// check it before trusting the returned Value.
func (it *Interp) Eval(node ast.Expression, env *runtime.Environment) (runtime.Value, *Signal, *errors.Error) {
	switch n := node.(type) {
	case *ast.IntLiteral:
		return runtime.Int{Value: n.Value}, nil, nil
	case *ast.NumLiteral:
		return runtime.Num{Value: n.Value}, nil, nil
	case *ast.StringLiteral:
		return runtime.Str{Value: n.Value}, nil, nil
	case *ast.BoolLiteral:
		return runtime.Bool{Value: n.Value}, nil, nil
	case *ast.NullLiteral:
		return runtime.NullValue, nil, nil
	case *ast.Identifier:
		return it.evalIdentifier(n, env)
	case *ast.ThisExpr:
		v, ok := env.Get("this")
		if !ok {
			return nil, nil, it.errf(errors.NameError, n.Pos(), "`this` is not bound here")
		}
		return v, nil, nil
	case *ast.ArrayLiteral:
		return it.evalArrayLiteral(n, env)
	case *ast.ObjectLiteral:
		return it.evalObjectLiteral(n, env)
	case *ast.BinaryExpr:
		return it.evalBinaryExpr(n, env)
	case *ast.UnaryExpr:
		return it.evalUnaryExpr(n, env)
	case *ast.AnnotationExpr:
		return it.evalAnnotationExpr(n, env)
	case *ast.LetExpr:
		return it.evalLetExpr(n, env)
	case *ast.AssignExpr:
		return it.evalAssignExpr(n, env)
	case *ast.MemberExpr:
		return it.evalMemberExpr(n, env)
	case *ast.IndexExpr:
		return it.evalIndexExpr(n, env)
	case *ast.CallExpr:
		return it.evalCallExpr(n, env)
	case *ast.FunctionLiteral:
		return it.evalFunctionLiteral(n, env)
	case *ast.OracleLiteral:
		return it.evalOracleLiteral(n, env)
	case *ast.TypeExprExpression:
		t, err := types.FromExpr(n.Type, it.resolver(env))
		if err != nil {
			return nil, nil, it.errf(errors.TypeError, n.Pos(), "%s", err)
		}
		return &runtime.TypeValue{Type: t}, nil, nil
	case *ast.BlockExpr:
		return it.evalBlockExpr(n, env)
	case *ast.IfExpr:
		return it.evalIfExpr(n, env)
	case *ast.ForExpr:
		return it.evalForExpr(n, env)
	case *ast.ReturnExpr:
		return it.evalReturnExpr(n, env)
	case *ast.BreakExpr:
		return it.evalBreakExpr(n, env)
	case *ast.ContinueExpr:
		return it.evalContinueExpr(n, env)
	}
	return nil, nil, it.errf(errors.InternalError, node.Pos(), "unhandled AST node %T", node)
}

// resolver adapts an Environment lookup to types.Resolver, so a bare type
// name in a type expression can refer to a user `let`-bound type alias
// (a Value of kind "type") in addition to the built-in primitive names.
func (it *Interp) resolver(env *runtime.Environment) types.Resolver {
	return func(name string) (types.Type, bool) {
		v, ok := env.Get(name)
		if !ok {
			return nil, false
		}
		tv, ok := v.(*runtime.TypeValue)
		if !ok {
			return nil, false
		}
		return tv.Type, true
	}
}

func (it *Interp) evalIdentifier(n *ast.Identifier, env *runtime.Environment) (runtime.Value, *Signal, *errors.Error) {
	v, ok := env.Get(n.Name)
	if !ok {
		return nil, nil, it.errf(errors.NameError, n.Pos(), "undefined name %q", n.Name)
	}
	return v, nil, nil
}
