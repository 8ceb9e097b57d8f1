package builtins_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/mindscript-lang/mindscript/internal/builtins"
	"github.com/mindscript-lang/mindscript/internal/errors"
	"github.com/mindscript-lang/mindscript/internal/interp"
	"github.com/mindscript-lang/mindscript/internal/interp/runtime"
	"github.com/mindscript-lang/mindscript/internal/lexer"
	"github.com/mindscript-lang/mindscript/internal/parser"
)

// run parses and evaluates input against a root environment seeded with
// every builtin, capturing print/println output for assertions.
func run(t *testing.T, input string) (runtime.Value, string) {
	t.Helper()
	l := lexer.New(input)
	p := parser.New(l)
	program := p.ParseProgram()
	if len(p.Errors()) > 0 {
		t.Fatalf("parser errors for %q: %v", input, p.Errors())
	}

	root := runtime.NewEnvironment()
	builtins.Install(root)

	it := interp.New(root)
	it.Source = input
	var out bytes.Buffer
	it.Output = &out

	v, err := it.RunProgram(program)
	if err != nil {
		t.Fatalf("eval error for %q: %s", input, err)
	}
	return v, out.String()
}

func runErr(t *testing.T, input string, kind errors.Kind) {
	t.Helper()
	l := lexer.New(input)
	p := parser.New(l)
	program := p.ParseProgram()
	if len(p.Errors()) > 0 {
		t.Fatalf("parser errors for %q: %v", input, p.Errors())
	}
	root := runtime.NewEnvironment()
	builtins.Install(root)
	it := interp.New(root)
	it.Source = input
	_, err := it.RunProgram(program)
	if err == nil {
		t.Fatalf("expected error evaluating %q, got none", input)
	}
	if err.Kind != kind {
		t.Fatalf("expected %s evaluating %q, got %s: %s", kind, input, err.Kind, err.Message)
	}
}

func wantInt(t *testing.T, v runtime.Value, want int64) {
	t.Helper()
	i, ok := v.(runtime.Int)
	if !ok || i.Value != want {
		t.Fatalf("expected Int %d, got %s", want, v.String())
	}
}

func wantBool(t *testing.T, v runtime.Value, want bool) {
	t.Helper()
	b, ok := v.(runtime.Bool)
	if !ok || b.Value != want {
		t.Fatalf("expected Bool %v, got %s", want, v.String())
	}
}

func wantStr(t *testing.T, v runtime.Value, want string) {
	t.Helper()
	s, ok := v.(runtime.Str)
	if !ok || s.Value != want {
		t.Fatalf("expected Str %q, got %s", want, v.String())
	}
}

func TestPrintlnWritesToOutput(t *testing.T) {
	_, out := run(t, `println("hi")`)
	if out != "hi\n" {
		t.Fatalf("expected %q, got %q", "hi\n", out)
	}
}

func TestStrIsDeepAndAnnotatesTopLevel(t *testing.T) {
	wantStr(t, mustEval(t, `str([1, "a", true])`), `[1, "a", true]`)
	wantStr(t, mustEval(t, `str(# "count" 5)`), "# \"count\"\n5")
}

func TestAssertPassesAndFails(t *testing.T) {
	mustEval(t, `assert(true)`)
	runErr(t, `assert(false)`, errors.ValueError)
}

func TestTypeOfAndIsSubtypeBuiltins(t *testing.T) {
	wantBool(t, mustEval(t, `isSubtype(typeOf(1), typeOf(1.5))`), true)
	wantBool(t, mustEval(t, `isSubtype(typeOf("x"), typeOf(1))`), false)
}

func TestGetEnvIncludesRootBindings(t *testing.T) {
	v := mustEval(t, `let a = 1; getEnv()`)
	obj, ok := v.(*runtime.Object)
	if !ok {
		t.Fatalf("expected an object, got %T", v)
	}
	if _, ok := obj.Get("a"); !ok {
		t.Fatalf("expected getEnv() to include %q", "a")
	}
	if _, ok := obj.Get("print"); !ok {
		t.Fatalf("expected getEnv() to include seeded builtin %q", "print")
	}
}

func TestIterOverArrayAndObject(t *testing.T) {
	src := `
let sum = 0
for let x in iter([1, 2, 3]) do sum = sum + x end
sum
`
	wantInt(t, mustEval(t, src), 6)

	src2 := `
let out = []
for let pair in iter({a: 1, b: 2}) do out = out + [pair[1]] end
let total = 0
for let v in iter(out) do total = total + v end
total
`
	wantInt(t, mustEval(t, src2), 3)
}

func TestArrayHelpers(t *testing.T) {
	wantInt(t, mustEval(t, `length([1, 2, 3])`), 3)
	wantInt(t, mustEval(t, `length("abcd")`), 4)
	wantBool(t, mustEval(t, `contains([1, 2, 3], 2)`), true)
	wantBool(t, mustEval(t, `contains([1, 2, 3], 9)`), false)

	src := `
let doubled = map([1, 2, 3], fun(x: Int) do x * 2 end)
doubled[0] + doubled[1] + doubled[2]
`
	wantInt(t, mustEval(t, src), 12)

	src2 := `
let evens = filter([1, 2, 3, 4], fun(x: Int) do x % 2 == 0 end)
length(evens)
`
	wantInt(t, mustEval(t, src2), 2)

	src3 := `
reduce([1, 2, 3, 4], fun(acc: [Int]) do acc[0] + acc[1] end, 0)
`
	wantInt(t, mustEval(t, src3), 10)
}

func TestJSONRoundTrip(t *testing.T) {
	src := `
let doc = parseJson("{\"a\": 1, \"b\": [1, 2, 3]}")
toJson(doc)
`
	v := mustEval(t, src)
	s, ok := v.(runtime.Str)
	if !ok {
		t.Fatalf("expected Str, got %T", v)
	}
	if s.Value != `{"a":1,"b":[1,2,3]}` {
		t.Fatalf("unexpected round-trip: %s", s.Value)
	}
}

func TestImportReadsAndEvaluatesAFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mod.ms")
	if err := os.WriteFile(path, []byte("let answer = 42\nanswer"), 0o644); err != nil {
		t.Fatalf("write fixture: %s", err)
	}
	v := mustEval(t, `import("`+path+`").answer`)
	wantInt(t, v, 42)
}

func TestNetImportFetchesAndEvaluatesSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("let answer = 7\nanswer"))
	}))
	defer srv.Close()

	v := mustEval(t, `netImport("`+srv.URL+`").answer`)
	wantInt(t, v, 7)
}

func mustEval(t *testing.T, input string) runtime.Value {
	t.Helper()
	v, _ := run(t, input)
	return v
}
