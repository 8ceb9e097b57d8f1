package interp

import (
	"bytes"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/mindscript-lang/mindscript/internal/builtins"
	"github.com/mindscript-lang/mindscript/internal/interp/runtime"
	"github.com/mindscript-lang/mindscript/internal/lexer"
	"github.com/mindscript-lang/mindscript/internal/parser"
)

// TestProgramFixtures runs a handful of representative MindScript programs
// end to end and snapshots their combined stdout + final str() rendering.
// Each fixture pins down a distinct language feature (currying, iter,
// destructuring, object literals, annotations) so a regression in any of
// them shows up as a snapshot diff instead of a silent behavior change.
func TestProgramFixtures(t *testing.T) {
	fixtures := []struct {
		name string
		src  string
	}{
		{
			name: "curried_add",
			src: `
let add = fun(x: Int, y: Int) -> Int do x + y end
println(add(2)(3))
add(2, 3)
`,
		},
		{
			name: "fibonacci",
			src: `
let fib = fun(n: Int) -> Int do
  if n <= 1 do return n end
  return fib(n - 1) + fib(n - 2)
end
fib(10)
`,
		},
		{
			name: "array_pipeline",
			src: `
let xs = [1, 2, 3, 4, 5]
let doubled = map(xs, fun(n: Int) -> Int do n * 2 end)
let evens = filter(doubled, fun(n: Int) -> Bool do n % 4 == 0 end)
evens
`,
		},
		{
			name: "object_and_destructuring",
			src: `
let point = {x: 3, y: 4}
let {x, y} = point
x * x + y * y
`,
		},
		{
			name: "annotated_value",
			src: `
let score = # "the final score" 97
str(score)
`,
		},
		{
			name: "iter_for_loop",
			src: `
let total = 0
for let kv in iter({a: 1, b: 2, c: 3}) do
  let [_, v] = kv
  total = total + v
end
total
`,
		},
	}

	for _, f := range fixtures {
		t.Run(f.name, func(t *testing.T) {
			l := lexer.New(f.src)
			p := parser.New(l)
			program := p.ParseProgram()
			if errs := p.Errors(); len(errs) > 0 {
				t.Fatalf("parser errors for %s: %v", f.name, errs)
			}

			root := runtime.NewEnvironment()
			builtins.Install(root)

			var out bytes.Buffer
			it := New(root)
			it.Output = &out
			it.Source = f.src

			result, err := it.RunProgram(program)
			if err != nil {
				t.Fatalf("eval error for %s: %s", f.name, err.Format(false))
			}

			str, ok := root.Get("str")
			if !ok {
				t.Fatalf("root environment is missing the str builtin")
			}
			rendered, callErr := it.Call(str, result)
			if callErr != nil {
				t.Fatalf("str() error for %s: %s", f.name, callErr)
			}

			snaps.MatchSnapshot(t, out.String()+rendered.String())
		})
	}
}
