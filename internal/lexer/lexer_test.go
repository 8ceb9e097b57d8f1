package lexer

import (
	"testing"

	"github.com/mindscript-lang/mindscript/internal/token"
)

func TestNextTokenBasics(t *testing.T) {
	input := `let x = 5 + 3.5; fun(n: Int) -> Int do n end`

	tests := []struct {
		kind    token.Kind
		literal string
	}{
		{token.LET, "let"},
		{token.IDENT, "x"},
		{token.ASSIGN, "="},
		{token.INT, "5"},
		{token.PLUS, "+"},
		{token.NUM, "3.5"},
		{token.SEMICOLON, ";"},
		{token.FUN, "fun"},
		{token.LPAREN, "("},
		{token.IDENT, "n"},
		{token.COLON, ":"},
		{token.IDENT, "Int"},
		{token.RPAREN, ")"},
		{token.ARROW, "->"},
		{token.IDENT, "Int"},
		{token.DO, "do"},
		{token.IDENT, "n"},
		{token.END, "end"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Kind != tt.kind {
			t.Fatalf("token %d: kind = %s, want %s (literal %q)", i, tok.Kind, tt.kind, tok.Literal)
		}
		if tok.Literal != tt.literal {
			t.Fatalf("token %d: literal = %q, want %q", i, tok.Literal, tt.literal)
		}
	}
}

func TestStringEscapes(t *testing.T) {
	l := New(`"a\nb\tc\"d"`)
	tok := l.NextToken()
	if tok.Kind != token.STRING {
		t.Fatalf("kind = %s, want STRING", tok.Kind)
	}
	want := "a\nb\tc\"d"
	if tok.Literal != want {
		t.Fatalf("literal = %q, want %q", tok.Literal, want)
	}
}

func TestSingleQuoteStrings(t *testing.T) {
	l := New(`'hello'`)
	tok := l.NextToken()
	if tok.Kind != token.STRING || tok.Literal != "hello" {
		t.Fatalf("got %v %q", tok.Kind, tok.Literal)
	}
}

func TestAnnotationQuotedForm(t *testing.T) {
	l := New(`# "velocity" let v = 3`)
	hash := l.NextToken()
	if hash.Kind != token.HASH {
		t.Fatalf("kind = %s, want HASH", hash.Kind)
	}
	ann := l.NextToken()
	if ann.Kind != token.STRING || ann.Literal != "velocity" {
		t.Fatalf("annotation = %v %q, want STRING velocity", ann.Kind, ann.Literal)
	}
	next := l.NextToken()
	if next.Kind != token.LET {
		t.Fatalf("kind = %s, want LET", next.Kind)
	}
}

func TestAnnotationBareForm(t *testing.T) {
	l := New("# velocity in meters per second\nlet v = 3")
	hash := l.NextToken()
	if hash.Kind != token.HASH {
		t.Fatalf("kind = %s, want HASH", hash.Kind)
	}
	ann := l.NextToken()
	if ann.Kind != token.STRING || ann.Literal != "velocity in meters per second" {
		t.Fatalf("annotation = %v %q", ann.Kind, ann.Literal)
	}
	next := l.NextToken()
	if next.Kind != token.LET {
		t.Fatalf("kind = %s, want LET", next.Kind)
	}
}

func TestUnterminatedStringRecordsError(t *testing.T) {
	l := New(`"abc`)
	l.NextToken()
	if len(l.Errors()) == 0 {
		t.Fatal("expected a lex error for unterminated string")
	}
}

func TestIllegalCharacter(t *testing.T) {
	l := New("let x = $5")
	for {
		tok := l.NextToken()
		if tok.Kind == token.EOF {
			break
		}
	}
	if len(l.Errors()) == 0 {
		t.Fatal("expected a lex error for '$'")
	}
}

func TestUnicodeIdentifiersAndColumns(t *testing.T) {
	l := New("let Δ = 1")
	l.NextToken() // let
	tok := l.NextToken()
	if tok.Literal != "Δ" {
		t.Fatalf("literal = %q, want Δ", tok.Literal)
	}
	if tok.Pos.Column != 5 {
		t.Fatalf("column = %d, want 5", tok.Pos.Column)
	}
}

func TestNumberKinds(t *testing.T) {
	cases := []struct {
		in   string
		kind token.Kind
	}{
		{"123", token.INT},
		{"123.45", token.NUM},
		{"1.5e10", token.NUM},
		{"1e3", token.NUM},
	}
	for _, c := range cases {
		l := New(c.in)
		tok := l.NextToken()
		if tok.Kind != c.kind {
			t.Errorf("%q: kind = %s, want %s", c.in, tok.Kind, c.kind)
		}
	}
}
