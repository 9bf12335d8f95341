package modules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eigerproject/eiger/internal/diagnostics"
)

func TestResolveNameEmbedded(t *testing.T) {
	l := NewLoader("", "")

	src, err := l.ResolveName("event")
	require.NoError(t, err)
	assert.True(t, src.Embedded)
	assert.Contains(t, src.Code, "namespace event")
	assert.Equal(t, "stdlib/event.ei", src.Path)
}

func TestResolveNamePrefersDisk(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "strings.ei"), []byte("let local = 1"), 0o644))

	src, err := NewLoader(dir, "").ResolveName("strings")
	require.NoError(t, err)
	assert.False(t, src.Embedded)
	assert.Equal(t, "let local = 1", src.Code)
}

func TestResolveNameMissing(t *testing.T) {
	_, err := NewLoader(t.TempDir(), "").ResolveName("nope")
	require.Error(t, err)
	assert.True(t, diagnostics.Is(err, diagnostics.IOError))
}

func TestResolvePath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "lib"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lib", "util.ei"), []byte("let x = 1"), 0o644))

	l := NewLoader("", dir)

	tests := []struct {
		name string
		path string
		kind diagnostics.Kind
		ok   bool
	}{
		{"extension added", "lib/util", 0, true},
		{"explicit extension", "lib/util.ei", 0, true},
		{"wrong extension", "lib/util.txt", diagnostics.RuntimeError, false},
		{"missing file", "lib/missing", diagnostics.IOError, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := l.ResolvePath(tt.path)
			if !tt.ok {
				require.Error(t, err)
				assert.True(t, diagnostics.Is(err, tt.kind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "let x = 1", src.Code)
			assert.Equal(t, filepath.Join(dir, "lib", "util.ei"), src.Path)
		})
	}
}

func TestEmbeddedNames(t *testing.T) {
	assert.Equal(t, []string{"event", "strings"}, EmbeddedNames())
}
