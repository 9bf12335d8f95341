package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/eigerproject/eiger/internal/config"
	"github.com/eigerproject/eiger/internal/diagnostics"
	"github.com/eigerproject/eiger/internal/evaluator"
	"github.com/eigerproject/eiger/internal/parser"
	"github.com/eigerproject/eiger/internal/prettyprinter"
)

// errorText is the user-facing form of err: interpreter errors carry their
// kind tag, anything else is printed as is.
func errorText(err error) string {
	var de *diagnostics.Error
	if errors.As(err, &de) {
		return de.Tagged()
	}
	return err.Error()
}

func (a *app) printError(err error) {
	mode := config.ColorAuto
	if a.cfg != nil {
		mode = a.cfg.Color
	}
	c := color.New(color.FgRed)
	if evaluator.ColorEnabled(a.stderr, mode) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	_, _ = c.Fprintln(a.stderr, errorText(err))
}

func (a *app) parseFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return a.fail(fmt.Errorf("reading %s: %w", path, err))
	}
	root, err := parser.ParseSource(string(data), path)
	if err != nil {
		return a.fail(err)
	}
	_, err = io.WriteString(a.stdout, prettyprinter.Tree(root))
	return err
}
