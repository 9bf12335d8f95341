package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eigerproject/eiger/internal/config"
)

func runCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv("EIGER_COLOR", config.ColorNever)

	var out, errOut bytes.Buffer
	cmd := NewRootCommand(strings.NewReader(""), &out, &errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeSource(t *testing.T, name, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestVersion(t *testing.T) {
	out, _, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Equal(t, config.LangName+" "+config.LangVersion+"\nDocumentation: "+config.DocURL+"\n", out)
}

func TestRunFile(t *testing.T) {
	testCases := []struct {
		name     string
		file     string
		src      string
		args     []string
		wantOut  string
		wantErr  string
		exitCode int
	}{
		{
			name:    "root_command",
			file:    "hello.ei",
			src:     `emitln("hello")`,
			wantOut: "hello\n",
		},
		{
			name:    "run_command",
			file:    "hello.ei",
			src:     "let x = 20\nemit(x + 22)",
			args:    []string{"run"},
			wantOut: "42",
		},
		{
			name:     "runtime_error",
			file:     "div.ei",
			src:      "emitln(1)\nemitln(1 / 0)",
			wantOut:  "1\n",
			wantErr:  "ZeroDivisionError: Error in file",
			exitCode: 1,
		},
		{
			name:     "exit_code",
			file:     "exit.ei",
			src:      "emit(1)\nexit(4)\nemit(2)",
			wantOut:  "1",
			exitCode: 4,
		},
		{
			name:     "wrong_extension",
			file:     "hello.txt",
			src:      `emitln("hello")`,
			wantErr:  "not an .ei file",
			exitCode: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeSource(t, tc.file, tc.src)
			out, errOut, err := runCommand(t, append(tc.args, path)...)

			assert.Equal(t, tc.wantOut, out)
			assert.Equal(t, tc.exitCode, ExitCode(err))
			if tc.wantErr != "" {
				assert.Contains(t, errOut, tc.wantErr)
			} else {
				assert.Empty(t, errOut)
			}
		})
	}
}

func TestParseCommand(t *testing.T) {
	path := writeSource(t, "tree.ei", "emitln(1)")
	out, _, err := runCommand(t, "parse", path)
	require.NoError(t, err)
	assert.Equal(t, "Block\n  FuncCall\n    Identifier emitln\n    Literal 1\n", out)

	bad := writeSource(t, "bad.ei", "let = 1")
	_, errOut, err := runCommand(t, "parse", bad)
	require.Error(t, err)
	assert.Contains(t, errOut, "ParserError")
}

func TestMissingConfigFile(t *testing.T) {
	_, _, err := runCommand(t, "--config", filepath.Join(t.TempDir(), "none.yaml"), "version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

type scriptedLines struct {
	lines   []string
	prompts []string
	history []string
}

func (s *scriptedLines) Prompt(prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

func (s *scriptedLines) AppendHistory(item string) {
	s.history = append(s.history, item)
}

func TestShell(t *testing.T) {
	var out, errOut bytes.Buffer
	cfg := config.Default()
	cfg.Color = config.ColorNever
	a := &app{cfg: cfg, stdin: strings.NewReader(""), stdout: &out, stderr: &errOut}

	s, err := a.newSession()
	require.NoError(t, err)
	s.Echo = true

	lines := &scriptedLines{lines: []string{
		"let x = 2",
		"func f()",
		"  ret x * 10",
		"end",
		"f()",
		"y",
		":reset",
		"x",
		":quit",
		"emitln(1)",
	}}
	require.NoError(t, a.shell(s, lines))

	assert.Equal(t, "[function f]\n20\n", out.String())
	assert.Contains(t, errOut.String(), "y is undefined")
	assert.Contains(t, errOut.String(), "x is undefined")
	assert.Equal(t, []string{"emitln(1)"}, lines.lines)
	assert.Equal(t, continuationPrompt, lines.prompts[2])
	assert.Contains(t, lines.history, "func f()   ret x * 10 end")
}

func TestShellStopsOnExit(t *testing.T) {
	var out, errOut bytes.Buffer
	cfg := config.Default()
	cfg.Color = config.ColorNever
	a := &app{cfg: cfg, stdin: strings.NewReader(""), stdout: &out, stderr: &errOut}

	s, err := a.newSession()
	require.NoError(t, err)

	err = a.shell(s, &scriptedLines{lines: []string{"exit(2)", "emitln(1)"}})
	assert.Equal(t, 2, ExitCode(err))
	assert.Empty(t, out.String())
}

func TestShellEndOfInput(t *testing.T) {
	var out bytes.Buffer
	cfg := config.Default()
	a := &app{cfg: cfg, stdin: strings.NewReader(""), stdout: &out, stderr: io.Discard}

	s, err := a.newSession()
	require.NoError(t, err)

	require.NoError(t, a.shell(s, &scriptedLines{}))
	assert.Equal(t, "\n", out.String())
}
