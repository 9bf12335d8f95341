package token

import "fmt"

type TokenType string

const (
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"

	IDENT  TokenType = "IDENT"
	NUMBER TokenType = "NUMBER"
	STRING TokenType = "STRING"

	// Operators
	PLUS            TokenType = "+"
	MINUS           TokenType = "-"
	ASTERISK        TokenType = "*"
	SLASH           TokenType = "/"
	PERCENT         TokenType = "%"
	CARET           TokenType = "^"
	ASSIGN          TokenType = "="
	PLUS_ASSIGN     TokenType = "+="
	MINUS_ASSIGN    TokenType = "-="
	ASTERISK_ASSIGN TokenType = "*="
	SLASH_ASSIGN    TokenType = "/="
	EQ              TokenType = "?="
	NOT_EQ          TokenType = "!="
	LT              TokenType = "<"
	GT              TokenType = ">"
	LTE             TokenType = "<="
	GTE             TokenType = ">="

	// Delimiters
	LPAREN   TokenType = "("
	RPAREN   TokenType = ")"
	LBRACKET TokenType = "["
	RBRACKET TokenType = "]"
	COMMA    TokenType = ","
	DOT      TokenType = "."

	// Keywords
	LET       TokenType = "LET"
	IF        TokenType = "IF"
	THEN      TokenType = "THEN"
	ELIF      TokenType = "ELIF"
	ELSE      TokenType = "ELSE"
	END       TokenType = "END"
	WHILE     TokenType = "WHILE"
	DO        TokenType = "DO"
	FOR       TokenType = "FOR"
	TO        TokenType = "TO"
	FUNC      TokenType = "FUNC"
	RET       TokenType = "RET"
	BRK       TokenType = "BRK"
	CONT      TokenType = "CONT"
	CLASS     TokenType = "CLASS"
	NAMESPACE TokenType = "NAMESPACE"
	DATACLASS TokenType = "DATACLASS"
	INCLUDE   TokenType = "INCLUDE"
	NOT       TokenType = "NOT"
	AND       TokenType = "AND"
	OR        TokenType = "OR"
	TRUE      TokenType = "TRUE"
	FALSE     TokenType = "FALSE"
	NIX       TokenType = "NIX"
	READONLY  TokenType = "READONLY"
	PRIVATE   TokenType = "PRIVATE"
)

var keywords = map[string]TokenType{
	"let":       LET,
	"if":        IF,
	"then":      THEN,
	"elif":      ELIF,
	"else":      ELSE,
	"end":       END,
	"while":     WHILE,
	"do":        DO,
	"for":       FOR,
	"to":        TO,
	"func":      FUNC,
	"ret":       RET,
	"brk":       BRK,
	"cont":      CONT,
	"class":     CLASS,
	"namespace": NAMESPACE,
	"dataclass": DATACLASS,
	"include":   INCLUDE,
	"not":       NOT,
	"and":       AND,
	"or":        OR,
	"true":      TRUE,
	"false":     FALSE,
	"nix":       NIX,
	"readonly":  READONLY,
	"private":   PRIVATE,
}

// LookupIdent returns the keyword type for ident, or IDENT.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// IsKeyword reports whether t is a reserved word.
func IsKeyword(t TokenType) bool {
	for _, kw := range keywords {
		if kw == t {
			return true
		}
	}
	return false
}

type Token struct {
	Type    TokenType
	Literal string  // source text, or the decoded value for strings
	Number  float64 // set for NUMBER
	File    string
	Line    int
	Column  int
	// AfterNewline is set when at least one newline separates this token from the previous one.
	AfterNewline bool
}

func (t Token) String() string {
	if t.Type == EOF {
		return "end of input"
	}
	return fmt.Sprintf("`%s`", t.Literal)
}
