package parser

import (
	"github.com/mindscript-lang/mindscript/internal/ast"
	"github.com/mindscript-lang/mindscript/internal/token"
)

// parseTypeExprExpression parses the `type <TypeExpr>` primary expression
// (spec.md §4.2 "Type expressions"), which evaluates to a Value of kind
// "type".
func (p *Parser) parseTypeExprExpression() ast.Expression {
	pos := p.curToken.Pos
	p.nextToken()
	t := p.parseTypeExpr()
	if t == nil {
		return nil
	}
	return &ast.TypeExprExpression{Position: pos, Type: t}
}

// parseTypeExpr parses a type-expression term and any trailing `?`
// (optional) and `->` (arrow, right-associative) operators.
func (p *Parser) parseTypeExpr() ast.TypeExpr {
	t := p.parseTypeAtom()
	if t == nil {
		return nil
	}
	for p.peekIs(token.QUESTION) {
		p.nextToken()
		t = &ast.OptionalType{Position: t.Pos(), Base: t}
	}
	if p.peekIs(token.ARROW) {
		p.nextToken()
		p.nextToken()
		result := p.parseTypeExpr()
		if result == nil {
			return nil
		}
		t = &ast.ArrowType{Position: t.Pos(), Param: t, Result: result}
	}
	return t
}

func (p *Parser) parseTypeAtom() ast.TypeExpr {
	switch p.curToken.Kind {
	case token.IDENT:
		return p.parseNamedOrEnumType()
	case token.LPAREN:
		p.nextToken()
		t := p.parseTypeExpr()
		if t == nil {
			return nil
		}
		if !p.expectPeek(token.RPAREN) {
			return nil
		}
		return t
	case token.LBRACK:
		pos := p.curToken.Pos
		p.nextToken()
		elem := p.parseTypeExpr()
		if elem == nil {
			return nil
		}
		if !p.expectPeek(token.RBRACK) {
			return nil
		}
		return &ast.ArrayType{Position: pos, Elem: elem}
	case token.LBRACE:
		return p.parseObjectType()
	default:
		p.addError("expected a type, got %s (%q)", p.curToken.Kind, p.curToken.Literal)
		return nil
	}
}

// parseNamedOrEnumType handles a bare name (primitive or alias) and the
// special `Enum(T, [v1, ...])` form, which is spelled like a call on the
// identifier `Enum` (spec.md §3.4).
func (p *Parser) parseNamedOrEnumType() ast.TypeExpr {
	pos := p.curToken.Pos
	name := p.curToken.Literal
	if name != "Enum" || !p.peekIs(token.LPAREN) {
		return &ast.NamedType{Position: pos, Name: name}
	}

	p.nextToken() // (
	p.nextToken()
	base := p.parseTypeExpr()
	if base == nil {
		return nil
	}
	if !p.expectPeek(token.COMMA) {
		return nil
	}
	if !p.expectPeek(token.LBRACK) {
		return nil
	}
	values, ok := p.parseExpressionList(token.RBRACK)
	if !ok {
		return nil
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return &ast.EnumType{Position: pos, Base: base, Values: values}
}

// parseObjectType parses `{name!: T, name: T, ...}`.
func (p *Parser) parseObjectType() ast.TypeExpr {
	pos := p.curToken.Pos
	ot := &ast.ObjectType{Position: pos}
	if p.peekIs(token.RBRACE) {
		p.nextToken()
		return ot
	}
	for {
		p.nextToken()
		name, ok := p.parseFieldKey()
		if !ok {
			return nil
		}
		required := false
		if p.peekIs(token.EXCLAIM) {
			p.nextToken()
			required = true
		}
		if !p.expectPeek(token.COLON) {
			return nil
		}
		p.nextToken()
		t := p.parseTypeExpr()
		if t == nil {
			return nil
		}
		ot.Fields = append(ot.Fields, ast.ObjectTypeField{Name: name, Type: t, Required: required})
		if p.peekIs(token.COMMA) {
			p.nextToken()
			continue
		}
		break
	}
	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	return ot
}
