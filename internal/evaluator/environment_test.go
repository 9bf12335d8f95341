package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eigerproject/eiger/internal/ast"
)

func TestScope(t *testing.T) {
	global := NewScope()
	require.NoError(t, global.Declare("a", num(1), 0))
	require.NoError(t, global.Declare("r", num(2), ast.Readonly))

	inner := NewEnclosedScope(global)
	assert.Same(t, global, inner.Outer())

	t.Run("lookup through outer", func(t *testing.T) {
		v, err := inner.Get("a")
		require.NoError(t, err)
		assert.Equal(t, "1", v.String())
		assert.False(t, inner.Has("a"))
	})

	t.Run("shadowing", func(t *testing.T) {
		s := NewEnclosedScope(global)
		require.NoError(t, s.Declare("a", num(5), 0))
		v, _ := s.Get("a")
		assert.Equal(t, "5", v.String())
		v, _ = global.Get("a")
		assert.Equal(t, "1", v.String())
	})

	t.Run("redeclare", func(t *testing.T) {
		err := global.Declare("a", num(3), 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "a is already declared")
	})

	t.Run("set writes the owning scope", func(t *testing.T) {
		s := NewEnclosedScope(global)
		require.NoError(t, s.Set("a", num(9)))
		assert.False(t, s.Has("a"))
		v, _ := global.Get("a")
		assert.Equal(t, "9", v.String())
	})

	t.Run("set never declares", func(t *testing.T) {
		err := inner.Set("missing", num(1))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Setting to undefined symbol missing")
	})

	t.Run("readonly", func(t *testing.T) {
		err := inner.Set("r", num(1))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "r is read-only")

		_, mods, ok := inner.Lookup("r")
		require.True(t, ok)
		assert.True(t, mods.Has(ast.Readonly))
	})

	t.Run("set local ignores outer", func(t *testing.T) {
		err := inner.SetLocal("a", num(1))
		require.Error(t, err)
	})

	t.Run("bind overrides readonly", func(t *testing.T) {
		s := NewScope()
		s.Bind("c", num(1), ast.Readonly)
		s.Bind("c", num(2), ast.Readonly)
		v, mods, ok := s.Local("c")
		require.True(t, ok)
		assert.Equal(t, "2", v.String())
		assert.True(t, mods.Has(ast.Readonly))
	})

	t.Run("names", func(t *testing.T) {
		assert.Equal(t, []string{"a", "r"}, global.Names())
	})
}
