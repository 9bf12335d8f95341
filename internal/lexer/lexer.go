package lexer

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/eigerproject/eiger/internal/config"
	"github.com/eigerproject/eiger/internal/diagnostics"
	"github.com/eigerproject/eiger/internal/token"
)

type Lexer struct {
	input        string
	file         string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           rune // current char under examination
	line         int
	column       int
	sawNewline   bool
	err          *diagnostics.Error
}

func New(input, file string) *Lexer {
	l := &Lexer{input: input, file: file, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}

	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = len(l.input)
		l.readPosition = len(l.input) + 1
		l.column++
		return
	}

	r, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += w
	l.column++
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

// Err returns the first error met while scanning, if any.
func (l *Lexer) Err() *diagnostics.Error {
	return l.err
}

// Tokenize scans the whole input. The returned slice always ends with EOF
// unless an error is returned.
func (l *Lexer) Tokenize() ([]token.Token, error) {
	var tokens []token.Token
	for {
		tok := l.NextToken()
		if tok.Type == token.ILLEGAL {
			return nil, l.err
		}
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			return tokens, nil
		}
	}
}

func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	tok := token.Token{File: l.file, Line: l.line, Column: l.column, AfterNewline: l.sawNewline}
	l.sawNewline = false

	switch l.ch {
	case 0:
		tok.Type = token.EOF
		tok.Literal = ""
		return tok
	case '+', '-', '*', '/':
		if l.peekChar() == '=' {
			op := string(l.ch) + "="
			l.readChar()
			tok.Type = token.TokenType(op)
			tok.Literal = op
		} else {
			tok.Type = token.TokenType(string(l.ch))
			tok.Literal = string(l.ch)
		}
	case '%', '^', '=', '(', ')', '[', ']', ',', '.':
		tok.Type = token.TokenType(string(l.ch))
		tok.Literal = string(l.ch)
	case '<', '>':
		if l.peekChar() == '=' {
			op := string(l.ch) + "="
			l.readChar()
			tok.Type = token.TokenType(op)
			tok.Literal = op
		} else {
			tok.Type = token.TokenType(string(l.ch))
			tok.Literal = string(l.ch)
		}
	case '?', '!':
		if l.peekChar() != '=' {
			return l.illegal(tok, "%s: %c", config.InvalidCharStr, l.ch)
		}
		op := string(l.ch) + "="
		l.readChar()
		tok.Type = token.TokenType(op)
		tok.Literal = op
	case '"':
		str, ok := l.readString()
		if !ok {
			return l.illegal(tok, "Unterminated string")
		}
		tok.Type = token.STRING
		tok.Literal = str
		return tok
	default:
		if isLetter(l.ch) {
			tok.Literal = l.readIdentifier()
			tok.Type = token.LookupIdent(tok.Literal)
			return tok
		}
		if isDigit(l.ch) {
			tok.Literal = l.readNumber()
			tok.Type = token.NUMBER
			n, err := strconv.ParseFloat(tok.Literal, 64)
			if err != nil {
				return l.illegal(tok, "Invalid number %s", tok.Literal)
			}
			tok.Number = n
			return tok
		}
		return l.illegal(tok, "%s: %c", config.InvalidCharStr, l.ch)
	}

	l.readChar()
	return tok
}

func (l *Lexer) illegal(tok token.Token, format string, a ...interface{}) token.Token {
	tok.Type = token.ILLEGAL
	tok.Literal = string(l.ch)
	if l.err == nil {
		l.err = diagnostics.NewAt(diagnostics.LexerError, tok, format, a...)
	}
	return tok
}

func (l *Lexer) skipWhitespace() {
	for {
		switch l.ch {
		case ' ', '\t', '\r':
			l.readChar()
		case '\n':
			l.sawNewline = true
			l.readChar()
		case '~':
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
		default:
			return
		}
	}
}

func (l *Lexer) readIdentifier() string {
	position := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

// readNumber consumes digits with at most one fractional part. A dot is only
// part of the number when a digit follows it, so `1.length` still lexes as
// NUMBER DOT IDENT.
func (l *Lexer) readNumber() string {
	position := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	return l.input[position:l.position]
}

// readString reads a double-quoted string starting at the opening quote and
// returns its decoded contents. The current char ends up after the closing quote.
func (l *Lexer) readString() (string, bool) {
	var out strings.Builder
	l.readChar()
	for {
		switch l.ch {
		case 0:
			return "", false
		case '"':
			l.readChar()
			return out.String(), true
		case '\\':
			switch l.peekChar() {
			case '"':
				out.WriteRune('"')
			case '\\':
				out.WriteRune('\\')
			case 'n':
				out.WriteRune('\n')
			case 't':
				out.WriteRune('\t')
			default:
				out.WriteRune('\\')
				l.readChar()
				continue
			}
			l.readChar()
		default:
			out.WriteRune(l.ch)
		}
		l.readChar()
	}
}

func isLetter(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}
