package parser

import (
	"github.com/mindscript-lang/mindscript/internal/ast"
	"github.com/mindscript-lang/mindscript/internal/token"
)

// parsePattern parses a destructuring pattern leaf or nested shape. When
// allowLet is true, an identifier leaf may be preceded by `let` to
// introduce a fresh cell instead of reassigning an existing one (spec.md
// §4.2 destructuring patterns).
func (p *Parser) parsePattern(allowLet bool) ast.Pattern {
	switch p.curToken.Kind {
	case token.LET:
		if !allowLet {
			p.addError("`let` is not allowed here")
			return nil
		}
		pos := p.curToken.Pos
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		return &ast.LetPattern{Position: pos, Name: p.curToken.Literal}
	case token.IDENT:
		return &ast.IdentPattern{Position: p.curToken.Pos, Name: p.curToken.Literal}
	case token.LBRACK:
		return p.parseArrayPattern()
	case token.LBRACE:
		return p.parseObjectPattern()
	default:
		p.addError("expected a pattern, got %s (%q)", p.curToken.Kind, p.curToken.Literal)
		return nil
	}
}

func (p *Parser) parseArrayPattern() ast.Pattern {
	pos := p.curToken.Pos
	pat := &ast.ArrayPattern{Position: pos}
	if p.peekIs(token.RBRACK) {
		p.nextToken()
		return pat
	}
	for {
		p.nextToken()
		elem := p.parsePattern(true)
		if elem == nil {
			return nil
		}
		pat.Elements = append(pat.Elements, elem)
		if p.peekIs(token.COMMA) {
			p.nextToken()
			continue
		}
		break
	}
	if !p.expectPeek(token.RBRACK) {
		return nil
	}
	return pat
}

func (p *Parser) parseObjectPattern() ast.Pattern {
	pos := p.curToken.Pos
	pat := &ast.ObjectPattern{Position: pos}
	if p.peekIs(token.RBRACE) {
		p.nextToken()
		return pat
	}
	for {
		p.nextToken()
		key, ok := p.parseFieldKey()
		if !ok {
			return nil
		}
		keyPos := p.curToken.Pos
		var sub ast.Pattern
		if p.peekIs(token.COLON) {
			p.nextToken()
			p.nextToken()
			sub = p.parsePattern(true)
			if sub == nil {
				return nil
			}
		} else {
			// shorthand `{name}` binds the field's value to a new name
			// identical to the key (spec.md §4.2).
			sub = &ast.LetPattern{Position: keyPos, Name: key}
		}
		pat.Fields = append(pat.Fields, ast.ObjectPatternField{Key: key, Pattern: sub})
		if p.peekIs(token.COMMA) {
			p.nextToken()
			continue
		}
		break
	}
	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	return pat
}

// exprToPattern converts an ordinary expression parsed on the left-hand
// side of `=` into a bare (non-`let`) destructuring pattern, used for
// plain reassignment through array/object literal shapes such as
// `[a, b] = pair` (spec.md §4.5 assignment).
func exprToPattern(e ast.Expression) ast.Pattern {
	switch n := e.(type) {
	case *ast.PatternExpr:
		// A bare `let NAME` leaf, already parsed as a pattern by
		// parseElement; pass it through unchanged.
		return n.Pattern
	case *ast.Identifier:
		return &ast.IdentPattern{Position: n.Position, Name: n.Name}
	case *ast.ArrayLiteral:
		pat := &ast.ArrayPattern{Position: n.Position}
		for _, el := range n.Elements {
			sub := exprToPattern(el)
			if sub == nil {
				return nil
			}
			pat.Elements = append(pat.Elements, sub)
		}
		return pat
	case *ast.ObjectLiteral:
		pat := &ast.ObjectPattern{Position: n.Position}
		for _, f := range n.Fields {
			sub := exprToPattern(f.Value)
			if sub == nil {
				return nil
			}
			pat.Fields = append(pat.Fields, ast.ObjectPatternField{Key: f.Key, Pattern: sub})
		}
		return pat
	default:
		return nil
	}
}
