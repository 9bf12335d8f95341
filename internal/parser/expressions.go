package parser

import (
	"github.com/eigerproject/eiger/internal/ast"
	"github.com/eigerproject/eiger/internal/token"
)

var assignOperators = []token.TokenType{
	token.ASSIGN,
	token.PLUS_ASSIGN,
	token.MINUS_ASSIGN,
	token.ASTERISK_ASSIGN,
	token.SLASH_ASSIGN,
}

var comparisonOperators = []token.TokenType{
	token.EQ,
	token.NOT_EQ,
	token.LT,
	token.GT,
	token.LTE,
	token.GTE,
}

func (p *Parser) parseExpression() *ast.Node {
	return p.parseAssignment()
}

// Assignment is right-associative: a = b = 1.
func (p *Parser) parseAssignment() *ast.Node {
	left := p.parseOr()
	if left == nil {
		return nil
	}
	if !p.peekTokenIs(assignOperators...) {
		return left
	}
	p.nextToken()
	opTok := p.curToken
	p.nextToken()
	right := p.parseAssignment()
	if right == nil {
		return nil
	}
	return ast.New(ast.BinOp, opTok, opTok.Literal, left, right)
}

// parseBinary parses a left-associative chain of operators at one level.
func (p *Parser) parseBinary(next func() *ast.Node, operators ...token.TokenType) *ast.Node {
	left := next()
	if left == nil {
		return nil
	}
	for p.peekTokenIs(operators...) {
		p.nextToken()
		opTok := p.curToken
		p.nextToken()
		right := next()
		if right == nil {
			return nil
		}
		left = ast.New(ast.BinOp, opTok, opTok.Literal, left, right)
	}
	return left
}

func (p *Parser) parseOr() *ast.Node {
	return p.parseBinary(p.parseAnd, token.OR)
}

func (p *Parser) parseAnd() *ast.Node {
	return p.parseBinary(p.parseNot, token.AND)
}

func (p *Parser) parseNot() *ast.Node {
	if p.curTokenIs(token.NOT) {
		tok := p.curToken
		p.nextToken()
		operand := p.parseNot()
		if operand == nil {
			return nil
		}
		return ast.New(ast.UnaryOp, tok, tok.Literal, operand)
	}
	return p.parseComparison()
}

func (p *Parser) parseComparison() *ast.Node {
	return p.parseBinary(p.parseAdditive, comparisonOperators...)
}

func (p *Parser) parseAdditive() *ast.Node {
	return p.parseBinary(p.parseTerm, token.PLUS, token.MINUS)
}

func (p *Parser) parseTerm() *ast.Node {
	return p.parseBinary(p.parseUnary, token.ASTERISK, token.SLASH, token.PERCENT)
}

func (p *Parser) parseUnary() *ast.Node {
	if p.curTokenIs(token.MINUS) {
		tok := p.curToken
		p.nextToken()
		operand := p.parseUnary()
		if operand == nil {
			return nil
		}
		return ast.New(ast.UnaryOp, tok, tok.Literal, operand)
	}
	return p.parsePower()
}

// Power binds tighter than unary minus on its left and is right-associative.
func (p *Parser) parsePower() *ast.Node {
	left := p.parsePostfix()
	if left == nil {
		return nil
	}
	if !p.peekTokenIs(token.CARET) {
		return left
	}
	p.nextToken()
	opTok := p.curToken
	p.nextToken()
	right := p.parseUnary()
	if right == nil {
		return nil
	}
	return ast.New(ast.BinOp, opTok, opTok.Literal, left, right)
}

// parsePostfix handles calls, indexing and attribute access. Calls and
// indexing only bind when the bracket is on the same line.
func (p *Parser) parsePostfix() *ast.Node {
	expr := p.parsePrimary()
	if expr == nil {
		return nil
	}

	for {
		switch {
		case p.peekOnSameLine(token.LPAREN):
			p.nextToken()
			call := ast.New(ast.FuncCall, expr.Token, nil, expr)
			args := p.parseExpressionList(token.RPAREN)
			if p.failed() {
				return nil
			}
			call.Children = append(call.Children, args...)
			expr = call
		case p.peekOnSameLine(token.LBRACKET):
			p.nextToken()
			p.nextToken()
			index := p.parseExpression()
			if index == nil || !p.expectPeek(token.RBRACKET) {
				return nil
			}
			expr = ast.New(ast.ElementAccess, expr.Token, nil, expr, index)
		case p.peekTokenIs(token.DOT):
			p.nextToken()
			if !p.expectPeek(token.IDENT) {
				return nil
			}
			member := ast.New(ast.Identifier, p.curToken, p.curToken.Literal)
			if p.peekOnSameLine(token.LPAREN) {
				p.nextToken()
				args := p.parseExpressionList(token.RPAREN)
				if p.failed() {
					return nil
				}
				member = ast.New(ast.FuncCall, member.Token, nil, append([]*ast.Node{member}, args...)...)
			}
			expr = ast.New(ast.AttrAccess, expr.Token, nil, expr, member)
		default:
			return expr
		}
	}
}

// parseExpressionList parses comma separated expressions after the current
// opening bracket up to end. The current token ends up on end.
func (p *Parser) parseExpressionList(end token.TokenType) []*ast.Node {
	var list []*ast.Node

	if p.peekTokenIs(end) {
		p.nextToken()
		return list
	}

	p.nextToken()
	item := p.parseExpression()
	if item == nil {
		return nil
	}
	list = append(list, item)

	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		item := p.parseExpression()
		if item == nil {
			return nil
		}
		list = append(list, item)
	}

	if !p.expectPeek(end) {
		return nil
	}
	return list
}

func (p *Parser) parsePrimary() *ast.Node {
	tok := p.curToken
	switch tok.Type {
	case token.NUMBER:
		return ast.New(ast.Literal, tok, tok.Number)
	case token.STRING:
		return ast.New(ast.Literal, tok, tok.Literal)
	case token.TRUE:
		return ast.New(ast.Literal, tok, ast.True)
	case token.FALSE:
		return ast.New(ast.Literal, tok, ast.False)
	case token.NIX:
		return ast.New(ast.Literal, tok, ast.Nix)
	case token.IDENT:
		return ast.New(ast.Identifier, tok, tok.Literal)
	case token.LBRACKET:
		elements := p.parseExpressionList(token.RBRACKET)
		if p.failed() {
			return nil
		}
		return ast.New(ast.Array, tok, nil, elements...)
	case token.LPAREN:
		p.nextToken()
		expr := p.parseExpression()
		if expr == nil || !p.expectPeek(token.RPAREN) {
			return nil
		}
		return expr
	case token.FUNC, token.READONLY, token.PRIVATE:
		return p.parseFunctionDefinition()
	default:
		p.unexpected(tok)
		return nil
	}
}

// parseFunctionDefinition parses
//
//	modifier* func name?(params) > expr
//	modifier* func name?(params) ... end
func (p *Parser) parseFunctionDefinition() *ast.Node {
	startTok := p.curToken
	mods := p.parseModifiers()
	if !p.curTokenIs(token.FUNC) {
		p.unexpected(p.curToken)
		return nil
	}

	decl := ast.Decl{Modifiers: mods}
	if p.peekTokenIs(token.IDENT) {
		p.nextToken()
		decl.Name = p.curToken.Literal
	}
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	params := p.parseParameters()
	if params == nil && p.failed() {
		return nil
	}

	if p.peekTokenIs(token.GT) {
		p.nextToken()
		p.nextToken()
		body := p.parseExpression()
		if body == nil {
			return nil
		}
		return ast.New(ast.FuncDefInline, startTok, decl, append([]*ast.Node{body}, params...)...)
	}

	body := p.parseBlock(token.END)
	if body == nil {
		return nil
	}
	return ast.New(ast.FuncDef, startTok, decl, append([]*ast.Node{body}, params...)...)
}

// parseParameters parses `a, b, +rest)` after the opening paren. Only the
// last parameter may be variadic.
func (p *Parser) parseParameters() []*ast.Node {
	params := []*ast.Node{}
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return params
	}

	for {
		p.nextToken()
		variadic := false
		if p.curTokenIs(token.PLUS) {
			variadic = true
			p.nextToken()
		}
		if !p.curTokenIs(token.IDENT) {
			p.unexpected(p.curToken)
			return nil
		}
		name := p.curToken.Literal
		if variadic {
			name = ast.VariadicPrefix + name
		}
		params = append(params, ast.New(ast.Identifier, p.curToken, name))

		if p.peekTokenIs(token.RPAREN) {
			p.nextToken()
			return params
		}
		if variadic {
			p.errorf(p.peekToken, "Variadic parameter %s must be the last parameter", name)
			return nil
		}
		if !p.expectPeek(token.COMMA) {
			return nil
		}
	}
}
