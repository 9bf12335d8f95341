package session_test

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eigerproject/eiger/internal/config"
	"github.com/eigerproject/eiger/internal/diagnostics"
	"github.com/eigerproject/eiger/internal/session"
)

func newSession(t *testing.T, out io.Writer, input string, opts ...session.Option) *session.Session {
	t.Helper()
	cfg := config.Default()
	cfg.Color = config.ColorNever
	base := []session.Option{
		session.WithConfig(cfg),
		session.WithOutput(out),
		session.WithInput(strings.NewReader(input)),
		session.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	}
	s, err := session.New(append(base, opts...)...)
	require.NoError(t, err)
	return s
}

func TestNew(t *testing.T) {
	var out bytes.Buffer
	a := newSession(t, &out, "")
	b := newSession(t, &out, "")

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.NotSame(t, a.Globals, b.Globals)

	for _, name := range []string{config.EmitFuncName, config.FmtFuncName, config.FgColorName} {
		_, _, ok := a.Globals.Local(name)
		assert.True(t, ok, name)
	}
}

func TestNewRejectsBadLogLevel(t *testing.T) {
	cfg := config.Default()
	cfg.LogLevel = "loud"
	_, err := session.New(session.WithConfig(cfg), session.WithOutput(io.Discard))
	require.Error(t, err)
}

func TestExecuteKeepsGlobalState(t *testing.T) {
	var out bytes.Buffer
	s := newSession(t, &out, "")

	_, err := s.Execute("let x = 1\nfunc inc() > x += 1", "<stdin>")
	require.NoError(t, err)

	v, err := s.Execute("inc()\ninc()", "<stdin>")
	require.NoError(t, err)
	assert.Equal(t, "3", v.String())
}

func TestExecuteStopsAtFirstError(t *testing.T) {
	var out bytes.Buffer
	s := newSession(t, &out, "")

	_, err := s.Execute("let a = 1\nlet b = 1 / 0\nlet c = 3", "<stdin>")
	require.Error(t, err)
	assert.True(t, diagnostics.Is(err, diagnostics.ZeroDivisionError))

	v, err := s.Execute("a", "<stdin>")
	require.NoError(t, err)
	assert.Equal(t, "1", v.String())

	_, err = s.Execute("c", "<stdin>")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "c is undefined")

	// b was never declared, so it can be declared now
	_, err = s.Execute("let b = 2", "<stdin>")
	require.NoError(t, err)
}

func TestExecuteParseError(t *testing.T) {
	var out bytes.Buffer
	s := newSession(t, &out, "")

	_, err := s.Execute("emitln(1)\nlet = 2", "<stdin>")
	require.Error(t, err)
	assert.True(t, diagnostics.Is(err, diagnostics.ParserError))
	assert.Empty(t, out.String(), "nothing runs when the source does not parse")
}

func TestEcho(t *testing.T) {
	var out bytes.Buffer
	s := newSession(t, &out, "", session.WithEcho(true))

	_, err := s.Execute("let x = 2\nx * 3\nemit(\"a\")\nint(\"3.765\")\nnix", "<stdin>")
	require.NoError(t, err)
	assert.Equal(t, "6\na4\n", out.String())
}

func TestReset(t *testing.T) {
	var out bytes.Buffer
	s := newSession(t, &out, "")
	id := s.ID

	_, err := s.Execute("let x = 1\ncolor(3, 0)\ninclude math", "<stdin>")
	require.NoError(t, err)

	s.Reset()
	assert.Equal(t, id, s.ID)

	_, err = s.Execute("x", "<stdin>")
	require.Error(t, err)

	v, err := s.Execute("fgcolor", "<stdin>")
	require.NoError(t, err)
	assert.Equal(t, "7", v.String())

	// the include is not remembered across a reset
	v, err = s.Execute("include math\nmath.sqrt(9)", "<stdin>")
	require.NoError(t, err)
	assert.Equal(t, "3", v.String())
}

func TestInputIsSharedAcrossReset(t *testing.T) {
	var out bytes.Buffer
	s := newSession(t, &out, "first\nsecond\n")

	v, err := s.Execute("in()", "<stdin>")
	require.NoError(t, err)
	assert.Equal(t, "first", v.String())

	s.Reset()
	v, err = s.Execute("in()", "<stdin>")
	require.NoError(t, err)
	assert.Equal(t, "second", v.String())
}

func TestRunFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "hello.ei")
	require.NoError(t, os.WriteFile(good, []byte(`emit("hi")`), 0o644))
	other := filepath.Join(dir, "hello.txt")
	require.NoError(t, os.WriteFile(other, []byte(`emit("hi")`), 0o644))

	var out bytes.Buffer
	s := newSession(t, &out, "")

	require.NoError(t, s.RunFile(good))
	assert.Equal(t, "hi", out.String())

	err := s.RunFile(other)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a .ei file")

	err = s.RunFile(filepath.Join(dir, "missing.ei"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestStdlibPathOverridesEmbedded(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "strings.ei"), []byte("let strings = \"local\"\n"), 0o644))

	cfg := config.Default()
	cfg.StdlibPath = dir
	var out bytes.Buffer
	s := newSession(t, &out, "", session.WithConfig(cfg))

	v, err := s.Execute("include strings\nstrings", "<stdin>")
	require.NoError(t, err)
	assert.Equal(t, "local", v.String())
}

func TestIncludeRelativeToBaseDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lib.ei"), []byte("let answer = 42\nlet broken = nope\nlet never = 1\n"), 0o644))

	var out bytes.Buffer
	s := newSession(t, &out, "", session.WithBaseDir(dir))

	_, err := s.Execute(`include "lib"`, "<stdin>")
	require.Error(t, err)

	// statements before the failing one stay in effect
	v, err := s.Execute("answer", "<stdin>")
	require.NoError(t, err)
	assert.Equal(t, "42", v.String())

	_, err = s.Execute("never", "<stdin>")
	require.Error(t, err)
}
