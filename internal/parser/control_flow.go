package parser

import (
	"github.com/mindscript-lang/mindscript/internal/ast"
	"github.com/mindscript-lang/mindscript/internal/token"
)

// expectBody consumes `do` and advances onto the first token of the body.
func (p *Parser) expectBody() bool {
	if !p.expectPeek(token.DO) {
		return false
	}
	p.nextToken()
	return true
}

// expectConditionalBody consumes `do` or `then` (spec.md §4.2 accepts
// `then` as a synonym for `do` introducing an if/elif body only) and
// advances onto the first token of the body.
func (p *Parser) expectConditionalBody() bool {
	if p.peekIs(token.DO) || p.peekIs(token.THEN) {
		p.nextToken()
		p.nextToken()
		return true
	}
	p.addErrorAt(p.peekToken.Pos, "expected do/then, got %s (%q)", p.peekToken.Kind, p.peekToken.Literal)
	return false
}

func (p *Parser) parseBlockExpression() ast.Expression {
	pos := p.curToken.Pos
	p.nextToken()
	exprs := p.parseExprSequence(token.END)
	if !p.curIs(token.END) {
		p.addError("expected end, got %s (%q)", p.curToken.Kind, p.curToken.Literal)
		return nil
	}
	return &ast.BlockExpr{Position: pos, Exprs: exprs}
}

// parseIfExpression parses `if g do b (elif g do b)* (else b)? end`.
func (p *Parser) parseIfExpression() ast.Expression {
	pos := p.curToken.Pos
	expr := &ast.IfExpr{Position: pos}

	p.nextToken()
	guard := p.parseExpression(LOWEST)
	if guard == nil {
		return nil
	}
	if !p.expectConditionalBody() {
		return nil
	}
	body := p.parseExprSequence(token.ELIF, token.ELSE, token.END)
	expr.Branches = append(expr.Branches, ast.Branch{Guard: guard, Body: wrapBlock(pos, body)})

	for p.curIs(token.ELIF) {
		p.nextToken()
		g := p.parseExpression(LOWEST)
		if g == nil {
			return nil
		}
		if !p.expectConditionalBody() {
			return nil
		}
		bpos := p.curToken.Pos
		b := p.parseExprSequence(token.ELIF, token.ELSE, token.END)
		expr.Branches = append(expr.Branches, ast.Branch{Guard: g, Body: wrapBlock(bpos, b)})
	}

	if p.curIs(token.ELSE) {
		epos := p.curToken.Pos
		p.nextToken()
		eb := p.parseExprSequence(token.END)
		expr.Else = wrapBlock(epos, eb)
	}

	if !p.curIs(token.END) {
		p.addError("expected end, got %s (%q)", p.curToken.Kind, p.curToken.Literal)
		return nil
	}
	return expr
}

// wrapBlock collapses a parsed body sequence into a single Expression: the
// lone expression if there is exactly one, otherwise a BlockExpr (keeps
// `if x do y end` from printing as a one-element block).
func wrapBlock(pos token.Position, exprs []ast.Expression) ast.Expression {
	if len(exprs) == 1 {
		return exprs[0]
	}
	return &ast.BlockExpr{Position: pos, Exprs: exprs}
}

// parseForExpression parses `for pattern in iter do body end`.
func (p *Parser) parseForExpression() ast.Expression {
	pos := p.curToken.Pos
	p.nextToken()
	pat := p.parsePattern(true)
	if pat == nil {
		return nil
	}
	if !p.expectPeek(token.IN) {
		return nil
	}
	p.nextToken()
	iter := p.parseExpression(LOWEST)
	if iter == nil {
		return nil
	}
	if !p.expectBody() {
		return nil
	}
	bpos := p.curToken.Pos
	body := p.parseExprSequence(token.END)
	if !p.curIs(token.END) {
		p.addError("expected end, got %s (%q)", p.curToken.Kind, p.curToken.Literal)
		return nil
	}
	return &ast.ForExpr{Position: pos, Pattern: pat, Iter: iter, Body: wrapBlock(bpos, body)}
}

// canStartExpression reports whether kind could begin an expression, used
// to decide whether `return`/`break`/`continue` carry a value.
func (p *Parser) canStartExpression(kind token.Kind) bool {
	if kind == token.EOF || kind == token.SEMICOLON {
		return false
	}
	switch kind {
	case token.END, token.ELIF, token.ELSE, token.RPAREN, token.RBRACK, token.RBRACE, token.COMMA:
		return false
	}
	_, ok := p.prefixFns[kind]
	return ok
}

func (p *Parser) parseReturnExpression() ast.Expression {
	pos := p.curToken.Pos
	if !p.canStartExpression(p.peekToken.Kind) {
		return &ast.ReturnExpr{Position: pos}
	}
	p.nextToken()
	val := p.parseExpression(LOWEST)
	if val == nil {
		return nil
	}
	return &ast.ReturnExpr{Position: pos, Value: val}
}

func (p *Parser) parseBreakExpression() ast.Expression {
	pos := p.curToken.Pos
	if !p.canStartExpression(p.peekToken.Kind) {
		return &ast.BreakExpr{Position: pos}
	}
	p.nextToken()
	val := p.parseExpression(LOWEST)
	if val == nil {
		return nil
	}
	return &ast.BreakExpr{Position: pos, Value: val}
}

func (p *Parser) parseContinueExpression() ast.Expression {
	pos := p.curToken.Pos
	if !p.canStartExpression(p.peekToken.Kind) {
		return &ast.ContinueExpr{Position: pos}
	}
	p.nextToken()
	val := p.parseExpression(LOWEST)
	if val == nil {
		return nil
	}
	return &ast.ContinueExpr{Position: pos, Value: val}
}
