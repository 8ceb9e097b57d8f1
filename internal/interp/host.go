package interp

import (
	"github.com/mindscript-lang/mindscript/internal/interp/runtime"
	"github.com/mindscript-lang/mindscript/internal/lexer"
	"github.com/mindscript-lang/mindscript/internal/parser"
)

// RootEnv implements runtime.Caller for getEnv and import's fresh-
// environment seeding.
func (it *Interp) RootEnv() *runtime.Environment {
	return it.Root
}

// EvalSource implements runtime.Caller: it runs source as an independent
// program in a fresh environment copied from Root, sharing no mutable
// bindings with the caller's own scope (spec.md §5). The new Interp
// inherits the same oracle adapter, so oracle literals declared in
// imported source resolve the same way as in the importing program.
func (it *Interp) EvalSource(source string) (runtime.Value, *runtime.Environment, error) {
	l := lexer.New(source)
	p := parser.New(l)
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		return nil, nil, errs[0]
	}

	fresh := runtime.NewEnvironmentFrom(it.Root.Snapshot())
	child := &Interp{Root: fresh, Adapter: it.Adapter, File: it.File, Source: source, Output: it.Output}

	v, err := child.RunProgram(program)
	if err != nil {
		return nil, nil, err
	}
	return v, fresh, nil
}

var _ runtime.Caller = (*Interp)(nil)
