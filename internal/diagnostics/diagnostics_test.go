package diagnostics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eigerproject/eiger/internal/token"
)

func TestErrorFormat(t *testing.T) {
	err := NewAt(RuntimeError, token.Token{File: "<stdin>", Line: 3, Column: 7}, "%s is undefined", "x")
	assert.Equal(t, "Error in file <stdin> at line 3, 7:\nx is undefined", err.Error())
	assert.Equal(t, "RuntimeError: Error in file <stdin> at line 3, 7:\nx is undefined", err.Tagged())
}

func TestLocateKeepsFirstPosition(t *testing.T) {
	err := New(IndexError, "Index out of bounds")
	require.False(t, err.HasPosition())

	err.Locate(token.Token{File: "a.ei", Line: 2, Column: 4})
	err.Locate(token.Token{File: "b.ei", Line: 9, Column: 1})

	assert.Equal(t, "a.ei", err.File)
	assert.Equal(t, 2, err.Line)
	assert.Equal(t, 4, err.Column)
}

func TestKindOfWrapped(t *testing.T) {
	wrapped := fmt.Errorf("running script: %w", New(ZeroDivisionError, "Zero Division"))

	kind, ok := KindOf(wrapped)
	require.True(t, ok)
	assert.Equal(t, ZeroDivisionError, kind)
	assert.True(t, Is(wrapped, ZeroDivisionError))
	assert.False(t, Is(wrapped, IndexError))

	_, ok = KindOf(fmt.Errorf("plain"))
	assert.False(t, ok)
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{RuntimeError, "RuntimeError"},
		{IndexError, "IndexError"},
		{ZeroDivisionError, "ZeroDivisionError"},
		{ArgumentError, "ArgumentError"},
		{InvalidOperationError, "InvalidOperationError"},
		{ParserError, "ParserError"},
		{LexerError, "LexerError"},
		{IOError, "IOError"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.String())
		})
	}
}
