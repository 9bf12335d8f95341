package parser

import (
	"errors"

	"github.com/eigerproject/eiger/internal/ast"
	"github.com/eigerproject/eiger/internal/config"
	"github.com/eigerproject/eiger/internal/diagnostics"
	"github.com/eigerproject/eiger/internal/lexer"
	"github.com/eigerproject/eiger/internal/pipeline"
	"github.com/eigerproject/eiger/internal/token"
)

type Parser struct {
	tokens []token.Token
	pos    int
	ctx    *pipeline.PipelineContext

	curToken  token.Token
	peekToken token.Token
}

// New creates a parser over tokens. The slice must end with an EOF token.
// Errors are appended to ctx.Errors.
func New(tokens []token.Token, ctx *pipeline.PipelineContext) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != token.EOF {
		tokens = append(tokens, token.Token{Type: token.EOF, File: ctx.FilePath, Line: 1, Column: 1})
	}
	p := &Parser{tokens: tokens, ctx: ctx, pos: -1}
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	if p.pos+1 < len(p.tokens) {
		p.pos++
	}
	p.curToken = p.tokens[p.pos]
	if p.pos+1 < len(p.tokens) {
		p.peekToken = p.tokens[p.pos+1]
	} else {
		p.peekToken = p.curToken
	}
}

func (p *Parser) curTokenIs(types ...token.TokenType) bool {
	for _, t := range types {
		if p.curToken.Type == t {
			return true
		}
	}
	return false
}

func (p *Parser) peekTokenIs(types ...token.TokenType) bool {
	for _, t := range types {
		if p.peekToken.Type == t {
			return true
		}
	}
	return false
}

// peekOnSameLine reports whether the next token is t and is not separated
// from the current one by a newline.
func (p *Parser) peekOnSameLine(t token.TokenType) bool {
	return p.peekToken.Type == t && !p.peekToken.AfterNewline
}

func (p *Parser) expectPeek(t token.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.unexpected(p.peekToken)
	return false
}

func (p *Parser) failed() bool {
	return len(p.ctx.Errors) > 0
}

// unexpected records a parse error at tok. Only the first error is kept.
func (p *Parser) unexpected(tok token.Token) {
	if p.failed() {
		return
	}
	if tok.Type == token.EOF {
		p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewAt(diagnostics.ParserError, tok, config.UnexpectedEOFStr))
		return
	}
	p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewAt(diagnostics.ParserError, tok, "%s %s", config.UnexpectedTokenStr, tok))
}

func (p *Parser) errorf(tok token.Token, format string, a ...interface{}) {
	if p.failed() {
		return
	}
	p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewAt(diagnostics.ParserError, tok, format, a...))
}

// ParseProgram parses every statement up to EOF into a Block node.
func (p *Parser) ParseProgram() *ast.Node {
	program := ast.New(ast.Block, p.curToken, nil)

	for !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt == nil || p.failed() {
			return nil
		}
		program.Children = append(program.Children, stmt)
		p.nextToken()
	}

	return program
}

// parseBlock parses statements after the current token until one of the
// terminators. The current token ends up on the terminator.
func (p *Parser) parseBlock(terminators ...token.TokenType) *ast.Node {
	block := ast.New(ast.Block, p.peekToken, nil)
	p.nextToken()

	for !p.curTokenIs(terminators...) {
		if p.curTokenIs(token.EOF) {
			p.unexpected(p.curToken)
			return nil
		}
		stmt := p.parseStatement()
		if stmt == nil || p.failed() {
			return nil
		}
		block.Children = append(block.Children, stmt)
		p.nextToken()
	}

	return block
}

// ParseSource runs the lexer and parser over src. file is recorded in every
// token position.
func ParseSource(src, file string) (*ast.Node, error) {
	ctx := pipeline.New(&lexer.LexerProcessor{}, &ParserProcessor{}).Run(&pipeline.PipelineContext{
		SourceCode: src,
		FilePath:   file,
	})
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return ctx.AstRoot, nil
}

// IsIncomplete reports whether err was caused by input ending inside an
// unfinished construct, meaning more input could make it parse.
func IsIncomplete(err error) bool {
	var de *diagnostics.Error
	if !errors.As(err, &de) {
		return false
	}
	return de.Kind == diagnostics.ParserError && de.Message == config.UnexpectedEOFStr ||
		de.Kind == diagnostics.LexerError && de.Message == "Unterminated string"
}
