package parser

import (
	"testing"

	"github.com/mindscript-lang/mindscript/internal/ast"
	"github.com/mindscript-lang/mindscript/internal/lexer"
)

func parseProgram(t *testing.T, src string) *ast.Program {
	t.Helper()
	p := New(lexer.New(src))
	prog := p.ParseProgram()
	if len(p.Errors()) > 0 {
		t.Fatalf("unexpected parse errors for %q: %v", src, p.Errors())
	}
	return prog
}

func TestArithmeticPrecedence(t *testing.T) {
	prog := parseProgram(t, "1 + 2 * 3 - 4 / 2")
	if len(prog.Exprs) != 1 {
		t.Fatalf("expected 1 expression, got %d", len(prog.Exprs))
	}
	got := prog.Exprs[0].String()
	want := "((1 + (2 * 3)) - (4 / 2))"
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestLogicalPrecedence(t *testing.T) {
	prog := parseProgram(t, "a and b or c and not d")
	got := prog.Exprs[0].String()
	want := "((a and b) or (c and (not d)))"
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestLetAndReassignment(t *testing.T) {
	prog := parseProgram(t, "let x = 1; x = 2")
	if len(prog.Exprs) != 2 {
		t.Fatalf("expected 2 expressions, got %d", len(prog.Exprs))
	}
	let, ok := prog.Exprs[0].(*ast.LetExpr)
	if !ok {
		t.Fatalf("expected *ast.LetExpr, got %T", prog.Exprs[0])
	}
	if _, ok := let.Pattern.(*ast.LetPattern); !ok {
		t.Errorf("expected LetPattern, got %T", let.Pattern)
	}
	assign, ok := prog.Exprs[1].(*ast.AssignExpr)
	if !ok {
		t.Fatalf("expected *ast.AssignExpr, got %T", prog.Exprs[1])
	}
	if _, ok := assign.Target.(*ast.Identifier); !ok {
		t.Errorf("expected Identifier target, got %T", assign.Target)
	}
}

func TestDestructuringAssignment(t *testing.T) {
	prog := parseProgram(t, "[a, b] = pair")
	assign := prog.Exprs[0].(*ast.AssignExpr)
	pe, ok := assign.Target.(*ast.PatternExpr)
	if !ok {
		t.Fatalf("expected PatternExpr target, got %T", assign.Target)
	}
	arr, ok := pe.Pattern.(*ast.ArrayPattern)
	if !ok || len(arr.Elements) != 2 {
		t.Fatalf("expected 2-element ArrayPattern, got %#v", pe.Pattern)
	}
}

func TestDestructuringAssignmentWithLetLeaves(t *testing.T) {
	prog := parseProgram(t, "[let x, let y] = [0, 1]")
	assign := prog.Exprs[0].(*ast.AssignExpr)
	pe, ok := assign.Target.(*ast.PatternExpr)
	if !ok {
		t.Fatalf("expected PatternExpr target, got %T", assign.Target)
	}
	arr, ok := pe.Pattern.(*ast.ArrayPattern)
	if !ok || len(arr.Elements) != 2 {
		t.Fatalf("expected 2-element ArrayPattern, got %#v", pe.Pattern)
	}
	for i, name := range []string{"x", "y"} {
		lp, ok := arr.Elements[i].(*ast.LetPattern)
		if !ok || lp.Name != name {
			t.Fatalf("expected LetPattern %q at index %d, got %#v", name, i, arr.Elements[i])
		}
	}
}

func TestIfElifElse(t *testing.T) {
	prog := parseProgram(t, "if a do 1 elif b do 2 else 3 end")
	ifx, ok := prog.Exprs[0].(*ast.IfExpr)
	if !ok {
		t.Fatalf("expected *ast.IfExpr, got %T", prog.Exprs[0])
	}
	if len(ifx.Branches) != 2 {
		t.Fatalf("expected 2 branches, got %d", len(ifx.Branches))
	}
	if ifx.Else == nil {
		t.Fatalf("expected an else branch")
	}
}

func TestIfThenSynonym(t *testing.T) {
	prog := parseProgram(t, "if a then 1 else 2 end")
	if _, ok := prog.Exprs[0].(*ast.IfExpr); !ok {
		t.Fatalf("expected *ast.IfExpr, got %T", prog.Exprs[0])
	}
}

func TestForLoop(t *testing.T) {
	prog := parseProgram(t, "for x in iter do print(x) end")
	forx, ok := prog.Exprs[0].(*ast.ForExpr)
	if !ok {
		t.Fatalf("expected *ast.ForExpr, got %T", prog.Exprs[0])
	}
	if _, ok := forx.Pattern.(*ast.IdentPattern); !ok {
		t.Errorf("expected IdentPattern, got %T", forx.Pattern)
	}
}

func TestCurriedFunctionLiteralDesugar(t *testing.T) {
	prog := parseProgram(t, "fun(a: Int, b: Int) -> Int do a + b end")
	outer, ok := prog.Exprs[0].(*ast.FunctionLiteral)
	if !ok {
		t.Fatalf("expected *ast.FunctionLiteral, got %T", prog.Exprs[0])
	}
	if outer.Param.Name != "a" {
		t.Errorf("expected outer param a, got %s", outer.Param.Name)
	}
	inner, ok := outer.Body.(*ast.FunctionLiteral)
	if !ok {
		t.Fatalf("expected nested *ast.FunctionLiteral body, got %T", outer.Body)
	}
	if inner.Param.Name != "b" {
		t.Errorf("expected inner param b, got %s", inner.Param.Name)
	}
	if outer.Return == nil {
		t.Fatalf("expected outer curried return type (Int -> Int)")
	}
	if outer.Return.String() != "(Int -> Int)" {
		t.Errorf("got outer return %s", outer.Return.String())
	}
}

func TestZeroParamFunctionSynthesizesUnderscore(t *testing.T) {
	prog := parseProgram(t, "fun() -> Int do 1 end")
	fn := prog.Exprs[0].(*ast.FunctionLiteral)
	if fn.Param.Name != "_" {
		t.Errorf("expected synthesized `_` param, got %s", fn.Param.Name)
	}
}

func TestAnnotationQuotedForm(t *testing.T) {
	prog := parseProgram(t, `# "a label" 42`)
	ann, ok := prog.Exprs[0].(*ast.AnnotationExpr)
	if !ok {
		t.Fatalf("expected *ast.AnnotationExpr, got %T", prog.Exprs[0])
	}
	if ann.Text != "a label" {
		t.Errorf("got text %q", ann.Text)
	}
}

func TestAnnotationBareForm(t *testing.T) {
	prog := parseProgram(t, "# a bare label\n42")
	ann, ok := prog.Exprs[0].(*ast.AnnotationExpr)
	if !ok {
		t.Fatalf("expected *ast.AnnotationExpr, got %T", prog.Exprs[0])
	}
	if ann.Text != "a bare label" {
		t.Errorf("got text %q", ann.Text)
	}
}

func TestTypeExpressionLiteral(t *testing.T) {
	prog := parseProgram(t, "type [Int?]")
	te, ok := prog.Exprs[0].(*ast.TypeExprExpression)
	if !ok {
		t.Fatalf("expected *ast.TypeExprExpression, got %T", prog.Exprs[0])
	}
	if te.Type.String() != "[Int?]" {
		t.Errorf("got %s", te.Type.String())
	}
}

func TestEnumTypeExpression(t *testing.T) {
	prog := parseProgram(t, `type Enum(Str, ["a", "b"])`)
	te := prog.Exprs[0].(*ast.TypeExprExpression)
	enum, ok := te.Type.(*ast.EnumType)
	if !ok {
		t.Fatalf("expected *ast.EnumType, got %T", te.Type)
	}
	if len(enum.Values) != 2 {
		t.Errorf("expected 2 enum values, got %d", len(enum.Values))
	}
}

func TestObjectLiteralAndMemberIndex(t *testing.T) {
	prog := parseProgram(t, `let o = {x: 1, y: 2}; o.x; o["y"]`)
	if len(prog.Exprs) != 3 {
		t.Fatalf("expected 3 expressions, got %d", len(prog.Exprs))
	}
	if _, ok := prog.Exprs[1].(*ast.MemberExpr); !ok {
		t.Errorf("expected MemberExpr, got %T", prog.Exprs[1])
	}
	if _, ok := prog.Exprs[2].(*ast.IndexExpr); !ok {
		t.Errorf("expected IndexExpr, got %T", prog.Exprs[2])
	}
}

func TestCallExpressionNAry(t *testing.T) {
	prog := parseProgram(t, "f(1, 2, 3)")
	call, ok := prog.Exprs[0].(*ast.CallExpr)
	if !ok {
		t.Fatalf("expected *ast.CallExpr, got %T", prog.Exprs[0])
	}
	if len(call.Args) != 3 {
		t.Errorf("expected 3 args, got %d", len(call.Args))
	}
}

func TestCurriedCallChain(t *testing.T) {
	prog := parseProgram(t, "mk(5)(3)")
	outer, ok := prog.Exprs[0].(*ast.CallExpr)
	if !ok {
		t.Fatalf("expected *ast.CallExpr, got %T", prog.Exprs[0])
	}
	if len(outer.Args) != 1 {
		t.Errorf("expected 1 arg on outer call, got %d", len(outer.Args))
	}
	if _, ok := outer.Callee.(*ast.CallExpr); !ok {
		t.Errorf("expected nested CallExpr callee, got %T", outer.Callee)
	}
}

func TestReturnBreakContinueWithAndWithoutValue(t *testing.T) {
	prog := parseProgram(t, "for x in it do if x == 1 do continue elif x == 2 do break 9 else return x end end")
	forx := prog.Exprs[0].(*ast.ForExpr)
	ifx := forx.Body.(*ast.IfExpr)
	if _, ok := ifx.Branches[0].Body.(*ast.ContinueExpr); !ok {
		t.Errorf("expected bare continue, got %T", ifx.Branches[0].Body)
	}
	brk, ok := ifx.Branches[1].Body.(*ast.BreakExpr)
	if !ok || brk.Value == nil {
		t.Errorf("expected break with value, got %#v", ifx.Branches[1].Body)
	}
	ret, ok := ifx.Else.(*ast.ReturnExpr)
	if !ok || ret.Value == nil {
		t.Errorf("expected return with value, got %#v", ifx.Else)
	}
}

func TestErrorStopsAtFirstFailure(t *testing.T) {
	p := New(lexer.New("let = 1"))
	p.ParseProgram()
	if len(p.Errors()) == 0 {
		t.Fatalf("expected a parse error")
	}
}
