// Package cli implements the eiger command line: running files, the
// interactive shell and a few inspection commands.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/eigerproject/eiger/internal/config"
	"github.com/eigerproject/eiger/internal/evaluator"
	"github.com/eigerproject/eiger/internal/session"
)

// EnvFile is loaded, when present, before the configuration is read.
const EnvFile = ".env"

type app struct {
	configPath string
	cfg        *config.Config

	stdin          io.Reader
	stdout, stderr io.Writer
}

// NewRootCommand builds the eiger command tree writing to the given streams.
func NewRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}

	rootCmd := &cobra.Command{
		Use:   "eiger [file]",
		Short: "Eigerlang interpreter",
		Long: fmt.Sprintf(`%s %s

Runs a %s file, or starts the interactive shell when no file is given.
Documentation: %s`, config.LangName, config.LangVersion, config.SourceFileExt, config.DocURL),
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.loadConfig,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return a.runFile(args[0])
			}
			return a.repl()
		},
	}
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "path to the configuration file (default ./"+config.ConfigFileName+")")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "run <file>",
			Short: "Run a " + config.SourceFileExt + " file",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.runFile(args[0])
			},
		},
		&cobra.Command{
			Use:   "repl",
			Short: "Start the interactive shell",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.repl()
			},
		},
		&cobra.Command{
			Use:   "parse <file>",
			Short: "Print the syntax tree of a file",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.parseFile(args[0])
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the language version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				_, err := fmt.Fprintf(a.stdout, "%s %s\nDocumentation: %s\n", config.LangName, config.LangVersion, config.DocURL)
				return err
			},
		},
	)
	return rootCmd
}

// Execute runs the command line and exits with the program's status.
func Execute() {
	rootCmd := NewRootCommand(os.Stdin, os.Stdout, os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		var reported *reportedError
		var exit *evaluator.ExitError
		if !errors.As(err, &reported) && !errors.As(err, &exit) {
			fmt.Fprintln(os.Stderr, errorText(err))
		}
		os.Exit(ExitCode(err))
	}
}

// ExitCode maps an error returned by a command to a process status.
func ExitCode(err error) int {
	var exit *evaluator.ExitError
	if errors.As(err, &exit) {
		return exit.Code
	}
	if err != nil {
		return 1
	}
	return 0
}

func (a *app) loadConfig(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(EnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", EnvFile, err)
	}
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

func (a *app) newSession(opts ...session.Option) (*session.Session, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolving working directory: %w", err)
	}
	base := []session.Option{
		session.WithConfig(a.cfg),
		session.WithInput(a.stdin),
		session.WithOutput(a.stdout),
		session.WithBaseDir(wd),
	}
	return session.New(append(base, opts...)...)
}

// runFile runs a script. A program error is printed and returned so the
// process exits non-zero; exit(code) ends quietly with that code.
func (a *app) runFile(path string) error {
	if !session.IsSourceFile(path) {
		return a.fail(fmt.Errorf("not an %s file: %s", config.SourceFileExt, path))
	}
	s, err := a.newSession()
	if err != nil {
		return a.fail(err)
	}
	if err := s.RunFile(path); err != nil {
		var exit *evaluator.ExitError
		if errors.As(err, &exit) {
			return err
		}
		return a.fail(err)
	}
	return nil
}

// reportedError marks an error that was already shown to the user.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func (a *app) fail(err error) error {
	a.printError(err)
	return &reportedError{err: err}
}
