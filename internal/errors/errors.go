// Package errors formats MindScript diagnostics with source context,
// line/column information, and a caret pointing at the offending column.
package errors

import (
	"fmt"
	"strings"

	"github.com/mindscript-lang/mindscript/internal/token"
)

// Kind classifies what stage and concern raised an Error (spec.md §7).
type Kind int

const (
	LexError Kind = iota
	ParseError
	NameError
	TypeError
	ValueError
	OracleError
	InternalError
)

var kindNames = [...]string{
	LexError:      "LexError",
	ParseError:    "ParseError",
	NameError:     "NameError",
	TypeError:     "TypeError",
	ValueError:    "ValueError",
	OracleError:   "OracleError",
	InternalError: "InternalError",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "UnknownError"
}

// Error is a single MindScript diagnostic with position and source
// context, grounded on the teacher's CompilerError.
type Error struct {
	Kind    Kind
	Message string
	Source  string
	File    string
	Pos     token.Position
}

// New creates an Error.
func New(kind Kind, pos token.Position, message, source, file string) *Error {
	return &Error{Kind: kind, Message: message, Source: source, File: file, Pos: pos}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Format(false)
}

// Format renders the error with its single source line and a caret. If
// color is true, ANSI codes highlight the caret and message.
func (e *Error) Format(color bool) string {
	var sb strings.Builder

	if e.File != "" {
		fmt.Fprintf(&sb, "%s: %s:%d:%d\n", e.Kind, e.File, e.Pos.Line, e.Pos.Column)
	} else {
		fmt.Fprintf(&sb, "%s at %d:%d\n", e.Kind, e.Pos.Line, e.Pos.Column)
	}

	if line := e.sourceLine(e.Pos.Line); line != "" {
		lineNumStr := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+e.Pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}
	return sb.String()
}

func (e *Error) sourceLine(n int) string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if n < 1 || n > len(lines) {
		return ""
	}
	return lines[n-1]
}

// FormatErrors renders a batch of errors, numbered, separated by blank
// lines (spec.md §7: multiple diagnostics from a single run, e.g. every
// lexical error the lexer recorded before parsing gave up).
func FormatErrors(errs []*Error, color bool) string {
	var sb strings.Builder
	for i, e := range errs {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		fmt.Fprintf(&sb, "[%d] %s", i+1, e.Format(color))
	}
	return sb.String()
}
