package interp

import "github.com/mindscript-lang/mindscript/internal/interp/runtime"

// SignalKind distinguishes MindScript's non-local exits. Modeled as an
// explicit result alongside the evaluated Value rather than as a Go
// panic/recover or a typed error, mirroring the teacher's ControlFlow
// signal checked after each sub-evaluation (internal/interp/evaluator's
// ControlFlow in the teacher repo) generalized to also carry a payload
// value, since `return`/`break`/`continue` in MindScript each carry one
// (spec.md §4.5).
type SignalKind int

const (
	SigNone SignalKind = iota
	SigReturn
	SigBreak
	SigContinue
)

// Signal is a pending non-local exit produced by return/break/continue.
// Eval callers check it after every sub-evaluation and, if set, stop
// evaluating siblings and propagate it upward unchanged until something
// that handles that Kind (a function call for Return, a for-loop for
// Break/Continue) consumes it.
type Signal struct {
	Kind  SignalKind
	Value runtime.Value
}
