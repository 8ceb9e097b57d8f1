package interp

import (
	"testing"

	"github.com/mindscript-lang/mindscript/internal/errors"
	"github.com/mindscript-lang/mindscript/internal/interp/runtime"
	"github.com/mindscript-lang/mindscript/internal/lexer"
	"github.com/mindscript-lang/mindscript/internal/parser"
)

// testEval parses and runs input against a fresh root environment.
func testEval(t *testing.T, input string) runtime.Value {
	t.Helper()
	l := lexer.New(input)
	p := parser.New(l)
	program := p.ParseProgram()
	if len(p.Errors()) > 0 {
		t.Fatalf("parser errors for %q: %v", input, p.Errors())
	}

	it := New(runtime.NewEnvironment())
	it.Source = input
	val, err := it.RunProgram(program)
	if err != nil {
		t.Fatalf("eval error for %q: %s", input, err)
	}
	return val
}

// testEvalErr parses and runs input, expecting an *errors.Error of kind.
func testEvalErr(t *testing.T, input string, kind errors.Kind) *errors.Error {
	t.Helper()
	l := lexer.New(input)
	p := parser.New(l)
	program := p.ParseProgram()
	if len(p.Errors()) > 0 {
		t.Fatalf("parser errors for %q: %v", input, p.Errors())
	}

	it := New(runtime.NewEnvironment())
	it.Source = input
	_, err := it.RunProgram(program)
	if err == nil {
		t.Fatalf("expected error evaluating %q, got none", input)
	}
	if err.Kind != kind {
		t.Fatalf("expected %s evaluating %q, got %s: %s", kind, input, err.Kind, err.Message)
	}
	return err
}

func wantInt(t *testing.T, v runtime.Value, want int64) {
	t.Helper()
	i, ok := v.(runtime.Int)
	if !ok {
		t.Fatalf("expected Int, got %T (%s)", v, v.String())
	}
	if i.Value != want {
		t.Fatalf("expected %d, got %d", want, i.Value)
	}
}

func wantNum(t *testing.T, v runtime.Value, want float64) {
	t.Helper()
	n, ok := v.(runtime.Num)
	if !ok {
		t.Fatalf("expected Num, got %T (%s)", v, v.String())
	}
	if n.Value != want {
		t.Fatalf("expected %g, got %g", want, n.Value)
	}
}

func wantStr(t *testing.T, v runtime.Value, want string) {
	t.Helper()
	s, ok := v.(runtime.Str)
	if !ok {
		t.Fatalf("expected Str, got %T (%s)", v, v.String())
	}
	if s.Value != want {
		t.Fatalf("expected %q, got %q", want, s.Value)
	}
}

func wantBool(t *testing.T, v runtime.Value, want bool) {
	t.Helper()
	b, ok := v.(runtime.Bool)
	if !ok {
		t.Fatalf("expected Bool, got %T (%s)", v, v.String())
	}
	if b.Value != want {
		t.Fatalf("expected %v, got %v", want, b.Value)
	}
}

func TestArithmetic(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"1 + 2", 3},
		{"10 - 4 * 2", 2},
		{"(10 - 4) * 2", 12},
		{"7 % 3", 1},
	}
	for _, tt := range tests {
		wantInt(t, testEval(t, tt.input), tt.want)
	}
}

func TestDivisionAlwaysProducesNum(t *testing.T) {
	wantNum(t, testEval(t, "7 / 2"), 3.5)
}

func TestDivisionByZeroIsValueError(t *testing.T) {
	testEvalErr(t, "1 / 0", errors.ValueError)
}

func TestIntNumPromotion(t *testing.T) {
	wantNum(t, testEval(t, "1 + 2.5"), 3.5)
}

func TestStringConcat(t *testing.T) {
	wantStr(t, testEval(t, `"foo" + "bar"`), "foobar")
}

func TestArrayConcatProducesNewArray(t *testing.T) {
	v := testEval(t, "[1, 2] + [3]")
	arr, ok := v.(*runtime.Array)
	if !ok || len(arr.Elements) != 3 {
		t.Fatalf("expected a 3-element array, got %s", v.String())
	}
}

func TestComparisonAndEquality(t *testing.T) {
	wantBool(t, testEval(t, "1 < 2"), true)
	wantBool(t, testEval(t, `"abc" < "abd"`), true)
	wantBool(t, testEval(t, "1 == 1.0"), true)
	wantBool(t, testEval(t, "[1, 2] == [1, 2]"), true)
	wantBool(t, testEval(t, "{a: 1} == {a: 1}"), true)
}

func TestFalsySet(t *testing.T) {
	// spec.md pins the falsy set to exactly {false, null}; 0 and "" are truthy.
	wantInt(t, testEval(t, "if 0 do 1 else 2 end"), 1)
	wantInt(t, testEval(t, `if "" do 1 else 2 end`), 1)
	wantInt(t, testEval(t, "if null do 1 else 2 end"), 2)
	wantInt(t, testEval(t, "if false do 1 else 2 end"), 2)
}

func TestAndOrReturnOperandNotBool(t *testing.T) {
	wantInt(t, testEval(t, "0 or 5"), 0)
	wantInt(t, testEval(t, "1 and 5"), 5)
}

func TestLetAndReassign(t *testing.T) {
	wantInt(t, testEval(t, "let x = 1; x = x + 1; x"), 2)
}

func TestDestructuringLet(t *testing.T) {
	wantInt(t, testEval(t, "let [a, b] = [1, 2]; a + b"), 3)
	wantInt(t, testEval(t, "let {x} = {x: 7}; x"), 7)
}

func TestBareDestructuringAssignmentWithLetLeaves(t *testing.T) {
	// spec.md §8 scenario 3: `let` may be embedded per-leaf inside a bare
	// destructuring assignment target rather than wrapping the whole
	// pattern, introducing fresh cells for x and y.
	wantInt(t, testEval(t, "[let x, let y] = [0, 1]; x + y"), 1)
}

func TestIntArithmeticStaysExactBeyondFloat64Precision(t *testing.T) {
	// 2^60 + 1 loses its low bit if routed through float64, which can only
	// represent integers exactly up to 2^53.
	wantInt(t, testEval(t, "1152921504606846977 + 0"), 1152921504606846977)
	wantInt(t, testEval(t, "1152921504606846976 * 3"), 3458764513820540928)
}

func TestObjectFieldAssignment(t *testing.T) {
	wantInt(t, testEval(t, "let o = {x: 1}; o.x = 9; o.x"), 9)
}

func TestArrayIndexAssignment(t *testing.T) {
	wantInt(t, testEval(t, "let a = [1, 2, 3]; a[1] = 9; a[1]"), 9)
}

func TestFunctionCallAndReturn(t *testing.T) {
	wantInt(t, testEval(t, "let f = fun(x: Int) -> Int do return x + 1 end; f(41)"), 42)
}

func TestCurriedCall(t *testing.T) {
	wantInt(t, testEval(t, "let add = fun(x: Int, y: Int) -> Int do x + y end; add(3)(4)"), 7)
	wantInt(t, testEval(t, "let add = fun(x: Int, y: Int) -> Int do x + y end; add(3, 4)"), 7)
}

func TestFactorialRecursion(t *testing.T) {
	src := `
let fact = fun(n: Int) -> Int do
  if n <= 1 do return 1 end
  return n * fact(n - 1)
end
fact(5)
`
	wantInt(t, testEval(t, src), 120)
}

func TestForLoopOverIterator(t *testing.T) {
	src := `
let counter = fun(limit: Int) do
  let i = 0
  fun(_: Null) do
    if i >= limit do return null end
    let v = i
    i = i + 1
    return v
  end
end

let sum = 0
for let x in counter(3) do
  sum = sum + x
end
sum
`
	wantInt(t, testEval(t, src), 3)
}

func TestBreakValueEscapesLoop(t *testing.T) {
	src := `
let counter = fun(limit: Int) do
  let i = 0
  fun(_: Null) do
    if i >= limit do return null end
    let v = i
    i = i + 1
    return v
  end
end

for let x in counter(10) do
  if x == 2 do break 99 end
end
`
	wantInt(t, testEval(t, src), 99)
}

func TestContinueSkipsRestOfBody(t *testing.T) {
	src := `
let counter = fun(limit: Int) do
  let i = 0
  fun(_: Null) do
    if i >= limit do return null end
    let v = i
    i = i + 1
    return v
  end
end

let sum = 0
for let x in counter(4) do
  if x == 1 do continue end
  sum = sum + x
end
sum
`
	wantInt(t, testEval(t, src), 5) // 0 + 2 + 3, skipping 1
}

func TestThisBoundOnMemberCall(t *testing.T) {
	src := `
let o = {greet: fun(_: Null) do this end}
o.greet(null) == o
`
	wantBool(t, testEval(t, src), true)
}

func TestThisIsNullOnFreeCall(t *testing.T) {
	src := `
let f = fun(_: Null) do this end
f(null) == null
`
	wantBool(t, testEval(t, src), true)
}

func TestAnnotationIsTransparentToEquality(t *testing.T) {
	wantBool(t, testEval(t, `(# "a number" 5) == 5`), true)
}

func TestTypeExpressionEvaluatesToTypeValue(t *testing.T) {
	v := testEval(t, "type Int")
	tv, ok := v.(*runtime.TypeValue)
	if !ok {
		t.Fatalf("expected a TypeValue, got %T", v)
	}
	if tv.Type.String() != "Int" {
		t.Fatalf("expected type Int, got %s", tv.Type.String())
	}
}

func TestUndefinedNameIsNameError(t *testing.T) {
	testEvalErr(t, "doesNotExist", errors.NameError)
}

func TestParamTypeMismatchIsTypeError(t *testing.T) {
	testEvalErr(t, "let f = fun(x: Int) do x end; f(\"nope\")", errors.TypeError)
}
