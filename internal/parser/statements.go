package parser

import (
	"github.com/eigerproject/eiger/internal/ast"
	"github.com/eigerproject/eiger/internal/token"
)

func (p *Parser) parseStatement() *ast.Node {
	switch p.curToken.Type {
	case token.LET:
		return p.parseLetStatement()
	case token.IF:
		return p.parseIfStatement()
	case token.WHILE:
		return p.parseWhileStatement()
	case token.FOR:
		return p.parseForStatement()
	case token.CLASS:
		return p.parseScopedDefinition(ast.Class)
	case token.NAMESPACE:
		return p.parseScopedDefinition(ast.Namespace)
	case token.DATACLASS:
		return p.parseScopedDefinition(ast.Dataclass)
	case token.RET:
		return p.parseReturnStatement()
	case token.BRK:
		return ast.New(ast.Break, p.curToken, nil)
	case token.CONT:
		return ast.New(ast.Continue, p.curToken, nil)
	case token.INCLUDE:
		return p.parseIncludeStatement()
	default:
		return p.parseExpression()
	}
}

func (p *Parser) parseModifiers() ast.Modifiers {
	var mods ast.Modifiers
	for {
		switch p.curToken.Type {
		case token.READONLY:
			mods |= ast.Readonly
		case token.PRIVATE:
			mods |= ast.Private
		default:
			return mods
		}
		p.nextToken()
	}
}

// let readonly private x = expr
func (p *Parser) parseLetStatement() *ast.Node {
	letTok := p.curToken
	p.nextToken()
	mods := p.parseModifiers()

	if !p.curTokenIs(token.IDENT) {
		p.unexpected(p.curToken)
		return nil
	}
	node := ast.New(ast.Let, letTok, ast.Decl{Modifiers: mods, Name: p.curToken.Literal})

	if p.peekTokenIs(token.ASSIGN) {
		p.nextToken()
		p.nextToken()
		value := p.parseExpression()
		if value == nil {
			return nil
		}
		node.Children = append(node.Children, value)
	}
	return node
}

// if c then ... elif c then ... else ... end
func (p *Parser) parseIfStatement() *ast.Node {
	node := ast.New(ast.If, p.curToken, nil)

	for {
		p.nextToken()
		cond := p.parseExpression()
		if cond == nil || !p.expectPeek(token.THEN) {
			return nil
		}
		body := p.parseBlock(token.ELIF, token.ELSE, token.END)
		if body == nil {
			return nil
		}
		node.Children = append(node.Children, cond, body)

		if !p.curTokenIs(token.ELIF) {
			break
		}
	}

	if p.curTokenIs(token.ELSE) {
		elseBlock := p.parseBlock(token.END)
		if elseBlock == nil {
			return nil
		}
		node.Children = append(node.Children, elseBlock)
	}
	return node
}

// while c do ... end
func (p *Parser) parseWhileStatement() *ast.Node {
	node := ast.New(ast.While, p.curToken, nil)
	p.nextToken()

	cond := p.parseExpression()
	if cond == nil || !p.expectPeek(token.DO) {
		return nil
	}
	body := p.parseBlock(token.END)
	if body == nil {
		return nil
	}
	node.Children = append(node.Children, cond, body)
	return node
}

// for i = start to end do ... end
func (p *Parser) parseForStatement() *ast.Node {
	forTok := p.curToken
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	name := p.curToken.Literal
	if !p.expectPeek(token.ASSIGN) {
		return nil
	}
	p.nextToken()
	start := p.parseOr()
	if start == nil || !p.expectPeek(token.TO) {
		return nil
	}
	p.nextToken()
	end := p.parseOr()
	if end == nil || !p.expectPeek(token.DO) {
		return nil
	}
	body := p.parseBlock(token.END)
	if body == nil {
		return nil
	}
	return ast.New(ast.ForTo, forTok, name, start, end, body)
}

// class Name ... end, namespace Name ... end, dataclass Name ... end
func (p *Parser) parseScopedDefinition(kind ast.Kind) *ast.Node {
	tok := p.curToken
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	name := p.curToken.Literal
	body := p.parseBlock(token.END)
	if body == nil {
		return nil
	}
	return ast.New(kind, tok, name, body)
}

// ret has no value when it is the last thing on its line or closes a block.
func (p *Parser) parseReturnStatement() *ast.Node {
	node := ast.New(ast.Return, p.curToken, nil)
	if p.peekTokenIs(token.END, token.ELIF, token.ELSE, token.EOF) || p.peekToken.AfterNewline {
		return node
	}
	p.nextToken()
	value := p.parseExpression()
	if value == nil {
		return nil
	}
	node.Children = append(node.Children, value)
	return node
}

// include math, include "path/to/file"
func (p *Parser) parseIncludeStatement() *ast.Node {
	node := ast.New(ast.Include, p.curToken, nil)
	p.nextToken()

	switch p.curToken.Type {
	case token.IDENT:
		node.Children = append(node.Children, ast.New(ast.Identifier, p.curToken, p.curToken.Literal))
	case token.STRING:
		node.Children = append(node.Children, ast.New(ast.Literal, p.curToken, p.curToken.Literal))
	default:
		p.unexpected(p.curToken)
		return nil
	}
	return node
}
