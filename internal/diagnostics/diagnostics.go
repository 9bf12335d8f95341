// Package diagnostics defines the error type shared by every stage of the
// interpreter, from the lexer to built-in functions.
package diagnostics

import (
	"errors"
	"fmt"

	"github.com/eigerproject/eiger/internal/token"
)

type Kind int

const (
	RuntimeError Kind = iota
	IndexError
	ZeroDivisionError
	ArgumentError
	InvalidOperationError
	ParserError
	LexerError
	IOError
)

func (k Kind) String() string {
	switch k {
	case RuntimeError:
		return "RuntimeError"
	case IndexError:
		return "IndexError"
	case ZeroDivisionError:
		return "ZeroDivisionError"
	case ArgumentError:
		return "ArgumentError"
	case InvalidOperationError:
		return "InvalidOperationError"
	case ParserError:
		return "ParserError"
	case LexerError:
		return "LexerError"
	case IOError:
		return "IOError"
	default:
		return "Error"
	}
}

// Error is a positioned interpreter error. A zero Line means the position has
// not been attached yet; the evaluator fills it from the node being evaluated.
type Error struct {
	Kind    Kind
	File    string
	Line    int
	Column  int
	Message string
}

func New(kind Kind, format string, a ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, a...)}
}

func NewAt(kind Kind, tok token.Token, format string, a ...interface{}) *Error {
	return &Error{
		Kind:    kind,
		File:    tok.File,
		Line:    tok.Line,
		Column:  tok.Column,
		Message: fmt.Sprintf(format, a...),
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("Error in file %s at line %d, %d:\n%s", e.File, e.Line, e.Column, e.Message)
}

// Tagged is Error() prefixed with the error kind, the form shown to users.
func (e *Error) Tagged() string {
	return e.Kind.String() + ": " + e.Error()
}

// HasPosition reports whether a source position was attached.
func (e *Error) HasPosition() bool {
	return e.Line > 0
}

// Locate attaches a position if none is set yet and returns e.
func (e *Error) Locate(tok token.Token) *Error {
	if !e.HasPosition() {
		e.File = tok.File
		e.Line = tok.Line
		e.Column = tok.Column
	}
	return e
}

// KindOf returns the kind of err if it is (or wraps) an *Error.
func KindOf(err error) (Kind, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind, true
	}
	return 0, false
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
