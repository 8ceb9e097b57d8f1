package parser

import (
	"strconv"

	"github.com/mindscript-lang/mindscript/internal/ast"
	"github.com/mindscript-lang/mindscript/internal/token"
)

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Position: p.curToken.Pos, Name: p.curToken.Literal}
}

func (p *Parser) parseThis() ast.Expression {
	return &ast.ThisExpr{Position: p.curToken.Pos}
}

func (p *Parser) parseIntLiteral() ast.Expression {
	pos := p.curToken.Pos
	v, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
	if err != nil {
		p.addError("invalid integer literal %q: %s", p.curToken.Literal, err)
		return nil
	}
	return &ast.IntLiteral{Position: pos, Value: v}
}

func (p *Parser) parseNumLiteral() ast.Expression {
	pos := p.curToken.Pos
	v, err := strconv.ParseFloat(p.curToken.Literal, 64)
	if err != nil {
		p.addError("invalid numeric literal %q: %s", p.curToken.Literal, err)
		return nil
	}
	return &ast.NumLiteral{Position: pos, Value: v}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Position: p.curToken.Pos, Value: p.curToken.Literal}
}

func (p *Parser) parseBoolLiteral() ast.Expression {
	return &ast.BoolLiteral{Position: p.curToken.Pos, Value: p.curToken.Kind == token.TRUE}
}

func (p *Parser) parseNullLiteral() ast.Expression {
	return &ast.NullLiteral{Position: p.curToken.Pos}
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken()
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return expr
}

func (p *Parser) parseArrayLiteral() ast.Expression {
	pos := p.curToken.Pos
	elems, ok := p.parseElementList(token.RBRACK, true)
	if !ok {
		return nil
	}
	return &ast.ArrayLiteral{Position: pos, Elements: elems}
}

// parseExpressionList parses a comma-separated list of plain expressions
// (call arguments: `let` is never a valid leaf there) up to and including
// the closing token, leaving curToken on that closer.
func (p *Parser) parseExpressionList(closer token.Kind) ([]ast.Expression, bool) {
	return p.parseElementList(closer, false)
}

// parseElementList parses a comma-separated list up to and including the
// closing token. When allowLetLeaf is true (array literal elements), a
// bare `let NAME` leaf is parsed as a pattern and wrapped in PatternExpr
// instead of being routed through parseLetExpression's full `let pattern
// = expr` grammar, so `[let x, let y] = pair` destructures through
// exprToPattern without requiring `= expr` after each leaf (spec.md
// §4.5).
func (p *Parser) parseElementList(closer token.Kind, allowLetLeaf bool) ([]ast.Expression, bool) {
	var list []ast.Expression
	if p.peekIs(closer) {
		p.nextToken()
		return list, true
	}
	p.nextToken()
	e := p.parseElement(allowLetLeaf)
	if e == nil {
		return nil, false
	}
	list = append(list, e)
	for p.peekIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		e := p.parseElement(allowLetLeaf)
		if e == nil {
			return nil, false
		}
		list = append(list, e)
	}
	if !p.expectPeek(closer) {
		return nil, false
	}
	return list, true
}

func (p *Parser) parseElement(allowLetLeaf bool) ast.Expression {
	if allowLetLeaf && p.curIs(token.LET) {
		pos := p.curToken.Pos
		pat := p.parsePattern(true)
		if pat == nil {
			return nil
		}
		return &ast.PatternExpr{Position: pos, Pattern: pat}
	}
	return p.parseExpression(LOWEST)
}

func (p *Parser) parseObjectLiteral() ast.Expression {
	pos := p.curToken.Pos
	obj := &ast.ObjectLiteral{Position: pos}
	if p.peekIs(token.RBRACE) {
		p.nextToken()
		return obj
	}
	for {
		p.nextToken()
		key, ok := p.parseFieldKey()
		if !ok {
			return nil
		}
		if !p.expectPeek(token.COLON) {
			return nil
		}
		p.nextToken()
		val := p.parseElement(true)
		if val == nil {
			return nil
		}
		obj.Fields = append(obj.Fields, ast.ObjectField{Key: key, Value: val})
		if p.peekIs(token.COMMA) {
			p.nextToken()
			continue
		}
		break
	}
	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	return obj
}

// parseFieldKey accepts an identifier, a keyword spelled like one, or a
// quoted string as an object-literal/object-type field name.
func (p *Parser) parseFieldKey() (string, bool) {
	if p.curIs(token.IDENT) || p.curToken.Kind.IsKeyword() {
		return p.curToken.Literal, true
	}
	if p.curIs(token.STRING) {
		return p.curToken.Literal, true
	}
	p.addError("expected a field name, got %s (%q)", p.curToken.Kind, p.curToken.Literal)
	return "", false
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	pos := p.curToken.Pos
	op := p.curToken.Kind
	p.nextToken()
	operand := p.parseExpression(PREFIX)
	if operand == nil {
		return nil
	}
	return &ast.UnaryExpr{Position: pos, Op: op, Operand: operand}
}

func (p *Parser) parseBinaryExpression(left ast.Expression) ast.Expression {
	pos := p.curToken.Pos
	op := p.curToken.Kind
	precedence := p.curPrecedence()
	p.nextToken()
	right := p.parseExpression(precedence)
	if right == nil {
		return nil
	}
	return &ast.BinaryExpr{Position: pos, Op: op, Left: left, Right: right}
}

// parseAnnotation handles `# "text" expr` and the bare `# rest-of-line`
// form. The lexer normalizes both to a STRING token immediately following
// HASH (internal/lexer's afterHash handling), so the parser treats them
// identically.
func (p *Parser) parseAnnotation() ast.Expression {
	pos := p.curToken.Pos
	if !p.expectPeek(token.STRING) {
		return nil
	}
	text := p.curToken.Literal
	p.nextToken()
	expr := p.parseExpression(PREFIX)
	if expr == nil {
		return nil
	}
	return &ast.AnnotationExpr{Position: pos, Text: text, Expr: expr}
}

func (p *Parser) parseCallExpression(callee ast.Expression) ast.Expression {
	pos := p.curToken.Pos
	args, ok := p.parseExpressionList(token.RPAREN)
	if !ok {
		return nil
	}
	return &ast.CallExpr{Position: pos, Callee: callee, Args: args}
}

func (p *Parser) parseIndexExpression(obj ast.Expression) ast.Expression {
	pos := p.curToken.Pos
	p.nextToken()
	idx := p.parseExpression(LOWEST)
	if idx == nil {
		return nil
	}
	if !p.expectPeek(token.RBRACK) {
		return nil
	}
	return &ast.IndexExpr{Position: pos, Object: obj, Index: idx}
}

// parseAssignExpression handles `lvalue = expr`. When lvalue is an
// array/object literal, it is reinterpreted as a bare destructuring
// pattern wrapped in PatternExpr (spec.md §4.5).
func (p *Parser) parseAssignExpression(left ast.Expression) ast.Expression {
	pos := p.curToken.Pos
	p.nextToken()
	val := p.parseExpression(LOWEST)
	if val == nil {
		return nil
	}
	target := left
	switch left.(type) {
	case *ast.ArrayLiteral, *ast.ObjectLiteral:
		pat := exprToPattern(left)
		if pat == nil {
			p.addErrorAt(left.Pos(), "invalid assignment target")
			return nil
		}
		target = &ast.PatternExpr{Position: left.Pos(), Pattern: pat}
	case *ast.Identifier, *ast.MemberExpr, *ast.IndexExpr:
		// valid as-is
	default:
		p.addErrorAt(left.Pos(), "invalid assignment target")
		return nil
	}
	return &ast.AssignExpr{Position: pos, Target: target, Value: val}
}

func (p *Parser) parseMemberExpression(obj ast.Expression) ast.Expression {
	pos := p.curToken.Pos
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	return &ast.MemberExpr{Position: pos, Object: obj, Field: p.curToken.Literal}
}

// parseLetExpression parses `let pattern = expr`; here curToken is LET.
// A bare NAME right after `let` becomes a LetPattern, so `let x = e`
// introduces x; bare leaves nested inside an array or object pattern stay
// IdentPatterns.
func (p *Parser) parseLetExpression() ast.Expression {
	pos := p.curToken.Pos
	p.nextToken()
	pat := p.parsePattern(true)
	if pat == nil {
		return nil
	}
	if id, ok := pat.(*ast.IdentPattern); ok {
		pat = &ast.LetPattern{Position: id.Position, Name: id.Name}
	}
	if !p.expectPeek(token.ASSIGN) {
		return nil
	}
	p.nextToken()
	val := p.parseExpression(LOWEST)
	if val == nil {
		return nil
	}
	return &ast.LetExpr{Position: pos, Pattern: pat, Value: val}
}
