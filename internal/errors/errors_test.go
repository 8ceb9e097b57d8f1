package errors_test

import (
	"strings"
	"testing"

	"github.com/mindscript-lang/mindscript/internal/errors"
	"github.com/mindscript-lang/mindscript/internal/token"
)

func TestFormatIncludesSourceLineAndCaret(t *testing.T) {
	src := "let x = 1\nlet y = x + \nlet z = 3"
	e := errors.New(errors.ParseError, token.Position{Line: 2, Column: 13}, "expected an expression", src, "test.ms")

	out := e.Format(false)
	if !strings.Contains(out, "ParseError: test.ms:2:13") {
		t.Fatalf("expected a header line with kind/file/position, got:\n%s", out)
	}
	if !strings.Contains(out, "let y = x + ") {
		t.Fatalf("expected the offending source line, got:\n%s", out)
	}
	if !strings.Contains(out, "expected an expression") {
		t.Fatalf("expected the message, got:\n%s", out)
	}
}

func TestFormatWithoutFileOmitsFilename(t *testing.T) {
	e := errors.New(errors.NameError, token.Position{Line: 1, Column: 1}, "undefined name %q", "", "")
	out := e.Format(false)
	if strings.Contains(out, ":1:1\n") == false || strings.Contains(out, "test.ms") {
		t.Fatalf("expected a file-less header, got:\n%s", out)
	}
}

func TestFormatErrorsNumbersEachEntry(t *testing.T) {
	errs := []*errors.Error{
		errors.New(errors.LexError, token.Position{Line: 1, Column: 1}, "bad token", "", ""),
		errors.New(errors.LexError, token.Position{Line: 2, Column: 1}, "bad token", "", ""),
	}
	out := errors.FormatErrors(errs, false)
	if !strings.Contains(out, "[1] LexError") || !strings.Contains(out, "[2] LexError") {
		t.Fatalf("expected both entries numbered, got:\n%s", out)
	}
}

func TestKindStringCoversAllKinds(t *testing.T) {
	for k := errors.LexError; k <= errors.InternalError; k++ {
		if k.String() == "UnknownError" {
			t.Fatalf("kind %d has no name", k)
		}
	}
}
