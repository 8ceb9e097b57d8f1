package parser

import (
	"github.com/mindscript-lang/mindscript/internal/ast"
	"github.com/mindscript-lang/mindscript/internal/token"
)

// parseParamList parses `(name (: type)?, ...)`, curToken starting on the
// opening `(`. Leaves curToken on the closing `)`.
func (p *Parser) parseParamList() ([]ast.Param, bool) {
	var params []ast.Param
	if p.peekIs(token.RPAREN) {
		p.nextToken()
		return params, true
	}
	for {
		p.nextToken()
		if !p.curIs(token.IDENT) {
			p.addError("expected a parameter name, got %s (%q)", p.curToken.Kind, p.curToken.Literal)
			return nil, false
		}
		param := ast.Param{Name: p.curToken.Literal}
		if p.peekIs(token.COLON) {
			p.nextToken()
			p.nextToken()
			t := p.parseTypeExpr()
			if t == nil {
				return nil, false
			}
			param.Type = t
		}
		params = append(params, param)
		if p.peekIs(token.COMMA) {
			p.nextToken()
			continue
		}
		break
	}
	if !p.expectPeek(token.RPAREN) {
		return nil, false
	}
	return params, true
}

// remainingArrowType builds the formal type of applying params[i:] then
// producing ret, or nil if ret or any remaining param type is unannotated
// (partial type information is dropped rather than guessed).
func remainingArrowType(params []ast.Param, i int, ret ast.TypeExpr) ast.TypeExpr {
	if i >= len(params) {
		return ret
	}
	if ret == nil || params[i].Type == nil {
		return nil
	}
	inner := remainingArrowType(params, i+1, ret)
	if inner == nil {
		return nil
	}
	return &ast.ArrowType{Position: params[i].Type.Pos(), Param: params[i].Type, Result: inner}
}

// buildCurriedFunction lowers a (possibly multi-parameter) declaration
// into nested unary FunctionLiterals (spec.md §4.2 currying desugaring).
// A zero-parameter declaration synthesizes a single `_: Null` parameter.
func buildCurriedFunction(pos token.Position, params []ast.Param, ret ast.TypeExpr, body ast.Expression) *ast.FunctionLiteral {
	if len(params) == 0 {
		params = []ast.Param{{Name: "_", Type: &ast.NamedType{Position: pos, Name: "Null"}}}
	}
	return buildCurriedFunctionAt(pos, params, 0, ret, body)
}

func buildCurriedFunctionAt(pos token.Position, params []ast.Param, i int, ret ast.TypeExpr, body ast.Expression) *ast.FunctionLiteral {
	if i == len(params)-1 {
		return &ast.FunctionLiteral{Position: pos, Param: params[i], Return: ret, Body: body}
	}
	inner := buildCurriedFunctionAt(pos, params, i+1, ret, body)
	return &ast.FunctionLiteral{
		Position: pos,
		Param:    params[i],
		Return:   remainingArrowType(params, i+1, ret),
		Body:     inner,
	}
}

// parseFunctionLiteral parses `fun(p1: T1, ...) -> R? do body end`.
func (p *Parser) parseFunctionLiteral() ast.Expression {
	pos := p.curToken.Pos
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	params, ok := p.parseParamList()
	if !ok {
		return nil
	}
	var ret ast.TypeExpr
	if p.peekIs(token.ARROW) {
		p.nextToken()
		p.nextToken()
		ret = p.parseTypeExpr()
		if ret == nil {
			return nil
		}
	}
	if !p.expectBody() {
		return nil
	}
	bpos := p.curToken.Pos
	bodyExprs := p.parseExprSequence(token.END)
	if !p.curIs(token.END) {
		p.addError("expected end, got %s (%q)", p.curToken.Kind, p.curToken.Literal)
		return nil
	}
	body := wrapBlock(bpos, bodyExprs)
	return buildCurriedFunction(pos, params, ret, body)
}

// parseOracleLiteral parses `oracle(p1: T1, ...) -> R?` optionally
// followed by `from [arg -> result, ...]`. Only the innermost curried
// oracle literal carries the parsed Examples; the outer partial
// applications have none, since an example pairs a full argument application with its
// result (spec.md §4.2 "Oracle literal").
func (p *Parser) parseOracleLiteral() ast.Expression {
	pos := p.curToken.Pos
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	params, ok := p.parseParamList()
	if !ok {
		return nil
	}
	var ret ast.TypeExpr
	if p.peekIs(token.ARROW) {
		p.nextToken()
		p.nextToken()
		ret = p.parseTypeExpr()
		if ret == nil {
			return nil
		}
	}

	var examples []ast.Example
	if p.peekIs(token.FROM) {
		p.nextToken()
		if !p.expectPeek(token.LBRACK) {
			return nil
		}
		examples, ok = p.parseExampleList()
		if !ok {
			return nil
		}
	}

	if len(params) == 0 {
		params = []ast.Param{{Name: "_", Type: &ast.NamedType{Position: pos, Name: "Null"}}}
	}
	return buildCurriedOracle(pos, params, ret, examples)
}

func (p *Parser) parseExampleList() ([]ast.Example, bool) {
	var examples []ast.Example
	if p.peekIs(token.RBRACK) {
		p.nextToken()
		return examples, true
	}
	for {
		p.nextToken()
		arg := p.parseExpression(ASSIGNMENT)
		if arg == nil {
			return nil, false
		}
		if !p.expectPeek(token.ARROW) {
			return nil, false
		}
		p.nextToken()
		res := p.parseExpression(LOWEST)
		if res == nil {
			return nil, false
		}
		examples = append(examples, ast.Example{Arg: arg, Result: res})
		if p.peekIs(token.COMMA) {
			p.nextToken()
			continue
		}
		break
	}
	if !p.expectPeek(token.RBRACK) {
		return nil, false
	}
	return examples, true
}

// buildCurriedOracle lowers a multi-parameter oracle declaration into
// nested unary FunctionLiterals wrapping a single innermost OracleLiteral
// that takes the last parameter (oracle literals have no body of their
// own to nest further inside, unlike fun literals). Declared examples
// pair the full argument application with a result, so they attach to
// the innermost oracle where the final argument is actually resolved.
func buildCurriedOracle(pos token.Position, params []ast.Param, ret ast.TypeExpr, examples []ast.Example) ast.Expression {
	last := len(params) - 1
	inner := ast.Expression(&ast.OracleLiteral{
		Position: pos,
		Param:    params[last],
		Return:   ret,
		Examples: examples,
	})
	for i := last - 1; i >= 0; i-- {
		inner = &ast.FunctionLiteral{
			Position: pos,
			Param:    params[i],
			Return:   remainingArrowType(params, i+1, ret),
			Body:     inner,
		}
	}
	return inner
}
