// Package parser implements MindScript's recursive-descent, Pratt-style
// parser: tokens from internal/lexer become the AST defined in
// internal/ast. Parsing stops at the first error (spec.md §4.2).
package parser

import (
	"fmt"

	"github.com/mindscript-lang/mindscript/internal/ast"
	"github.com/mindscript-lang/mindscript/internal/lexer"
	"github.com/mindscript-lang/mindscript/internal/token"
)

// Precedence levels, low to high (spec.md §4.2).
const (
	_ int = iota
	LOWEST
	ASSIGNMENT // = (right-associative, binds looser than everything else)
	OR
	AND
	EQUALS     // == !=
	COMPARISON // < <= > >=
	SUM        // + -
	PRODUCT    // * / %
	PREFIX     // - not #
	POSTFIX    // call / index / member
)

var precedences = map[token.Kind]int{
	token.ASSIGN:  ASSIGNMENT,
	token.OR:      OR,
	token.AND:     AND,
	token.EQ:      EQUALS,
	token.NOT_EQ:  EQUALS,
	token.LT:      COMPARISON,
	token.LT_EQ:   COMPARISON,
	token.GT:      COMPARISON,
	token.GT_EQ:   COMPARISON,
	token.PLUS:    SUM,
	token.MINUS:   SUM,
	token.STAR:    PRODUCT,
	token.SLASH:   PRODUCT,
	token.PERCENT: PRODUCT,
	token.LPAREN:  POSTFIX,
	token.LBRACK:  POSTFIX,
	token.DOT:     POSTFIX,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// Error is a grammar violation: carries a source position and the
// expected/actual token (spec.md §4.2, §7 ParseError).
type Error struct {
	Message string
	Pos     token.Position
}

func (e *Error) Error() string {
	return fmt.Sprintf("parse error at %d:%d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// Parser turns a token stream into an ast.Program.
type Parser struct {
	l *lexer.Lexer

	curToken  token.Token
	peekToken token.Token

	errors []*Error

	prefixFns map[token.Kind]prefixParseFn
	infixFns  map[token.Kind]infixParseFn
}

// New creates a Parser reading from l.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}

	p.prefixFns = map[token.Kind]prefixParseFn{}
	p.infixFns = map[token.Kind]infixParseFn{}

	p.registerPrefix(token.IDENT, p.parseIdentifier)
	p.registerPrefix(token.INT, p.parseIntLiteral)
	p.registerPrefix(token.NUM, p.parseNumLiteral)
	p.registerPrefix(token.STRING, p.parseStringLiteral)
	p.registerPrefix(token.TRUE, p.parseBoolLiteral)
	p.registerPrefix(token.FALSE, p.parseBoolLiteral)
	p.registerPrefix(token.NULL, p.parseNullLiteral)
	p.registerPrefix(token.THIS, p.parseThis)
	p.registerPrefix(token.LPAREN, p.parseGroupedExpression)
	p.registerPrefix(token.LBRACK, p.parseArrayLiteral)
	p.registerPrefix(token.LBRACE, p.parseObjectLiteral)
	p.registerPrefix(token.MINUS, p.parsePrefixExpression)
	p.registerPrefix(token.NOT, p.parsePrefixExpression)
	p.registerPrefix(token.HASH, p.parseAnnotation)
	p.registerPrefix(token.LET, p.parseLetExpression)
	p.registerPrefix(token.FUN, p.parseFunctionLiteral)
	p.registerPrefix(token.ORACLE, p.parseOracleLiteral)
	p.registerPrefix(token.TYPE, p.parseTypeExprExpression)
	p.registerPrefix(token.IF, p.parseIfExpression)
	p.registerPrefix(token.FOR, p.parseForExpression)
	p.registerPrefix(token.DO, p.parseBlockExpression)
	p.registerPrefix(token.RETURN, p.parseReturnExpression)
	p.registerPrefix(token.BREAK, p.parseBreakExpression)
	p.registerPrefix(token.CONTINUE, p.parseContinueExpression)

	p.registerInfix(token.PLUS, p.parseBinaryExpression)
	p.registerInfix(token.MINUS, p.parseBinaryExpression)
	p.registerInfix(token.STAR, p.parseBinaryExpression)
	p.registerInfix(token.SLASH, p.parseBinaryExpression)
	p.registerInfix(token.PERCENT, p.parseBinaryExpression)
	p.registerInfix(token.EQ, p.parseBinaryExpression)
	p.registerInfix(token.NOT_EQ, p.parseBinaryExpression)
	p.registerInfix(token.LT, p.parseBinaryExpression)
	p.registerInfix(token.LT_EQ, p.parseBinaryExpression)
	p.registerInfix(token.GT, p.parseBinaryExpression)
	p.registerInfix(token.GT_EQ, p.parseBinaryExpression)
	p.registerInfix(token.AND, p.parseBinaryExpression)
	p.registerInfix(token.OR, p.parseBinaryExpression)
	p.registerInfix(token.LPAREN, p.parseCallExpression)
	p.registerInfix(token.LBRACK, p.parseIndexExpression)
	p.registerInfix(token.DOT, p.parseMemberExpression)
	p.registerInfix(token.ASSIGN, p.parseAssignExpression)

	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) registerPrefix(k token.Kind, fn prefixParseFn) { p.prefixFns[k] = fn }
func (p *Parser) registerInfix(k token.Kind, fn infixParseFn)   { p.infixFns[k] = fn }

// Errors returns every parse error recorded. Parsing stops at the first
// one (spec.md §4.2), so this holds at most one entry in practice, plus
// whatever lexical errors the underlying lexer recorded.
func (p *Parser) Errors() []*Error {
	errs := append([]*Error(nil), p.errors...)
	for _, le := range p.l.Errors() {
		errs = append(errs, &Error{Message: le.Message, Pos: le.Pos})
	}
	return errs
}

func (p *Parser) addError(format string, args ...any) {
	p.errors = append(p.errors, &Error{Message: fmt.Sprintf(format, args...), Pos: p.curToken.Pos})
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curIs(k token.Kind) bool  { return p.curToken.Kind == k }
func (p *Parser) peekIs(k token.Kind) bool { return p.peekToken.Kind == k }

func (p *Parser) expectPeek(k token.Kind) bool {
	if p.peekIs(k) {
		p.nextToken()
		return true
	}
	p.addErrorAt(p.peekToken.Pos, "expected %s, got %s (%q)", k, p.peekToken.Kind, p.peekToken.Literal)
	return false
}

func (p *Parser) addErrorAt(pos token.Position, format string, args ...any) {
	p.errors = append(p.errors, &Error{Message: fmt.Sprintf(format, args...), Pos: pos})
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peekToken.Kind]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if pr, ok := precedences[p.curToken.Kind]; ok {
		return pr
	}
	return LOWEST
}

// skipSeparators consumes any run of semicolons (newlines are not
// tokens; the lexer treats them as insignificant whitespace, so the
// grammar uses `;` as the canonical top-level/block separator, matching
// how the teacher's own grammar accepts either newline or `;` by not
// distinguishing them at the token level).
func (p *Parser) skipSeparators() {
	for p.curIs(token.SEMICOLON) {
		p.nextToken()
	}
}

// ParseProgram parses the whole token stream as a sequence of expressions
// (spec.md §4.2: "a sequence of expressions separated by newlines or
// semicolons... itself an expression whose value is the last
// subexpression's value").
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{}
	p.skipSeparators()
	for !p.curIs(token.EOF) {
		expr := p.parseExpression(LOWEST)
		if expr == nil {
			return prog
		}
		prog.Exprs = append(prog.Exprs, expr)
		p.nextToken()
		p.skipSeparators()
	}
	return prog
}

func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix, ok := p.prefixFns[p.curToken.Kind]
	if !ok {
		p.addError("unexpected token %s (%q)", p.curToken.Kind, p.curToken.Literal)
		return nil
	}
	left := prefix()
	if left == nil {
		return nil
	}

	for !p.peekIs(token.SEMICOLON) && precedence < p.peekPrecedence() {
		infix, ok := p.infixFns[p.peekToken.Kind]
		if !ok {
			return left
		}
		p.nextToken()
		left = infix(left)
		if left == nil {
			return nil
		}
	}
	return left
}

// parseExprSequence parses expressions into a slice until the current
// token is one of the given terminator kinds, consuming `;`-separators
// between them. Used for `do ... end`-style bodies.
func (p *Parser) parseExprSequence(terminators ...token.Kind) []ast.Expression {
	var exprs []ast.Expression
	p.skipSeparators()
	for !p.atAny(terminators...) && !p.curIs(token.EOF) {
		e := p.parseExpression(LOWEST)
		if e == nil {
			return exprs
		}
		exprs = append(exprs, e)
		p.nextToken()
		p.skipSeparators()
	}
	return exprs
}

func (p *Parser) atAny(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.curIs(k) {
			return true
		}
	}
	return false
}
