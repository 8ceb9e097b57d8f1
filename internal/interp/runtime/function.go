package runtime

import (
	"fmt"
	"io"

	"github.com/mindscript-lang/mindscript/internal/ast"
	"github.com/mindscript-lang/mindscript/internal/types"
)

// Caller lets a Builtin invoke a user-level callable (Function/Oracle/
// another Builtin), read the root environment, and run imported source
// in a fresh top-level environment, without the runtime package
// depending on the evaluator that knows how to run an ast.Expression
// body (avoids an import cycle between runtime and interp).
type Caller interface {
	Call(fn Value, arg Value) (Value, error)

	// RootEnv returns the interpreter's top-level environment, the basis
	// for getEnv's snapshot and for seeding an import's fresh environment
	// (spec.md §4.6).
	RootEnv() *Environment

	// EvalSource parses and runs source as a standalone program in a
	// fresh environment whose initial bindings are a copy of RootEnv
	// (spec.md §5: "Import produces a fresh top-level environment per
	// call; imported modules do not share mutable state with the caller
	// except through the returned object."). Returns the program's final
	// value and the environment it ran in, so the caller can read back
	// whatever the imported source bound at its top level.
	EvalSource(source string) (Value, *Environment, error)

	// Stdout is where print/println write (spec.md §4.6). May be nil, in
	// which case output is silently discarded (grounded on the teacher's
	// Interpreter.builtinPrintLn nil-output guard, used by tests that
	// don't care about captured output).
	Stdout() io.Writer
}

// Function is a user-defined, always-unary closure (spec.md §4.2
// currying desugaring: every surface `fun` literal becomes one or more
// nested Functions, each taking exactly one parameter).
type Function struct {
	Param      string
	ParamType  types.Type // nil if unannotated
	ReturnType types.Type // nil if unannotated
	Body       ast.Expression
	Closure    *Environment
	This       Value // receiver bound via `this`, nil outside a method context
}

func (f *Function) Kind() Kind     { return KindFunction }
func (f *Function) String() string { return "<function>" }

// Builtin is a root-environment primitive implemented in Go (spec.md §6).
// Builtins are unary like every other callable; multi-argument builtins
// such as isSubtype or map are curried, returning a further Builtin that
// awaits the next argument (see internal/builtins).
type Builtin struct {
	Name string
	Fn   func(c Caller, arg Value) (Value, error)
}

func (b *Builtin) Kind() Kind     { return KindFunction }
func (b *Builtin) String() string { return fmt.Sprintf("<builtin %s>", b.Name) }

// Example is one `from [...]` entry of an oracle literal, already
// evaluated to runtime values at the point the literal was created.
type Example struct {
	Arg    Value
	Result Value
}

// OracleRequest is what the core interpreter hands an OracleAdapter to
// resolve a single informal call (spec.md §5).
type OracleRequest struct {
	ID         string
	Annotation string
	ParamType  types.Type
	ReturnType types.Type
	Arg        Value
	Examples   []Example
}

// OracleResponse is what an OracleAdapter returns.
type OracleResponse struct {
	Value Value
}

// OracleAdapter resolves a single informal oracle call. The core
// evaluator calls this once per oracle application and then checks the
// returned value conforms to ReturnType (spec.md §4.4, §5).
type OracleAdapter interface {
	Resolve(req OracleRequest) (OracleResponse, error)
}

// Oracle is an `oracle(...)` literal: like Function but resolved
// informally via an OracleAdapter instead of by evaluating a body.
type Oracle struct {
	Param      string
	ParamType  types.Type
	ReturnType types.Type
	Annotation string
	Examples   []Example
	Adapter    OracleAdapter
}

func (o *Oracle) Kind() Kind     { return KindOracle }
func (o *Oracle) String() string { return "<oracle>" }

// TypeValue wraps a resolved types.Type so it can flow through the
// runtime value universe as the `type` kind (spec.md §3.4).
type TypeValue struct {
	Type types.Type
}

func (t *TypeValue) Kind() Kind     { return KindType }
func (t *TypeValue) String() string { return t.Type.String() }

func sameTypeValue(a, b *TypeValue) bool {
	return types.IsSubtype(a.Type, b.Type) && types.IsSubtype(b.Type, a.Type)
}
