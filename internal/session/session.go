// Package session runs Eiger programs against one persistent global scope.
// Files run in a single session; the REPL feeds every line to the same one.
package session

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/eigerproject/eiger/internal/config"
	"github.com/eigerproject/eiger/internal/evaluator"
	"github.com/eigerproject/eiger/internal/modules"
	"github.com/eigerproject/eiger/internal/parser"
)

type Session struct {
	ID     string
	Config *config.Config
	Logger *slog.Logger

	// Echo writes the value of every statement that is not nix, the way
	// the interactive shell shows results.
	Echo bool

	// BaseDir is the directory `include "path"` is resolved against.
	BaseDir string

	Globals *evaluator.Scope

	out  io.Writer
	in   io.Reader
	eval *evaluator.Evaluator
}

type Option func(*Session)

func WithConfig(cfg *config.Config) Option {
	return func(s *Session) { s.Config = cfg }
}

func WithOutput(w io.Writer) Option {
	return func(s *Session) { s.out = w }
}

func WithInput(r io.Reader) Option {
	return func(s *Session) { s.in = r }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.Logger = l }
}

func WithEcho(echo bool) Option {
	return func(s *Session) { s.Echo = echo }
}

func WithBaseDir(dir string) Option {
	return func(s *Session) { s.BaseDir = dir }
}

// New creates a session with a freshly seeded global scope.
func New(opts ...Option) (*Session, error) {
	s := &Session{
		ID:  uuid.NewString(),
		out: os.Stdout,
		in:  os.Stdin,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.Config == nil {
		s.Config = config.Default()
	}
	// Shared by every evaluator this session builds, so Reset keeps
	// buffered input.
	s.in = bufio.NewReader(s.in)
	if s.Logger == nil {
		level, err := config.ParseLogLevel(s.Config.LogLevel)
		if err != nil {
			return nil, err
		}
		s.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	}
	s.Logger = s.Logger.With("session", s.ID)

	s.seed()
	s.Logger.Info("session started", "stdlib", s.Config.StdlibPath, "max_depth", s.Config.MaxDepth)
	return s, nil
}

// seed builds a new evaluator and global scope. Include bookkeeping and
// console colors start over with them.
func (s *Session) seed() {
	eval := evaluator.New(s.out, s.in)
	eval.MaxDepth = s.Config.MaxDepth
	eval.Loader = modules.NewLoader(s.Config.StdlibPath, s.BaseDir)
	eval.Terminal = evaluator.NewTerminal(s.out, s.Config.Color)
	eval.Logger = s.Logger

	s.Globals = evaluator.NewScope()
	evaluator.SeedGlobals(s.Globals)
	eval.Globals = s.Globals
	s.eval = eval
}

// Reset discards every user binding. Builtins and host constants are
// restored to their initial values; the session id is kept.
func (s *Session) Reset() {
	s.seed()
	s.Logger.Info("session reset")
}

// Execute parses src and evaluates its top-level statements in order in the
// global scope. The first error stops execution; statements before it stay
// in effect. The value of the last statement is returned.
func (s *Session) Execute(src, file string) (evaluator.Value, error) {
	root, err := parser.ParseSource(src, file)
	if err != nil {
		return nil, err
	}

	var last evaluator.Value = evaluator.NIX
	for _, stmt := range root.Children {
		res, err := s.eval.Eval(stmt, s.Globals)
		if err != nil {
			return nil, err
		}
		last = res.Value
		if s.Echo && last != evaluator.NIX {
			if _, err := fmt.Fprintln(s.out, last.String()); err != nil {
				return nil, fmt.Errorf("writing result: %w", err)
			}
		}
	}
	return last, nil
}

// IsSourceFile reports whether path has the Eiger source extension.
func IsSourceFile(path string) bool {
	return filepath.Ext(path) == config.SourceFileExt
}

// RunFile reads and executes a source file. Only .ei files are accepted.
func (s *Session) RunFile(path string) error {
	if !IsSourceFile(path) {
		return fmt.Errorf("not a %s file: %s", config.SourceFileExt, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	s.Logger.Debug("run started", "file", path)
	_, err = s.Execute(string(data), path)
	s.Logger.Debug("run finished", "file", path, "ok", err == nil)
	return err
}
