package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/eigerproject/eiger/internal/config"
	"github.com/eigerproject/eiger/internal/evaluator"
	"github.com/eigerproject/eiger/internal/parser"
	"github.com/eigerproject/eiger/internal/session"
)

const continuationPrompt = "... "

// Shell commands, recognized only as the whole input line.
const (
	quitCommand  = ":quit"
	resetCommand = ":reset"
)

// lineReader is the part of liner the shell loop needs.
type lineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

func (a *app) repl() error {
	s, err := a.newSession(session.WithEcho(true))
	if err != nil {
		return a.fail(err)
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := a.cfg.HistoryPath()
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	fmt.Fprintf(a.stdout, "%s %s\nDocumentation: %s\n\n", config.LangName, config.LangVersion, config.DocURL)
	return a.shell(s, ln)
}

// shell reads and executes input until end of input or :quit. Errors are
// printed and the session goes on; exit(code) ends the shell.
func (a *app) shell(s *session.Session, lr lineReader) error {
	for {
		src, ok := readInput(lr, a.cfg.Prompt)
		if !ok {
			fmt.Fprintln(a.stdout)
			return nil
		}

		switch strings.TrimSpace(src) {
		case "":
			continue
		case quitCommand:
			return nil
		case resetCommand:
			s.Reset()
			continue
		}
		lr.AppendHistory(strings.ReplaceAll(src, "\n", " "))

		if _, err := s.Execute(src, config.StdinFileName); err != nil {
			var exit *evaluator.ExitError
			if errors.As(err, &exit) {
				return err
			}
			a.printError(err)
		}
	}
}

// readInput reads one unit of input, asking for more lines while the parser
// reports that the input ended too early. ok is false at end of input.
func readInput(lr lineReader, prompt string) (src string, ok bool) {
	var b strings.Builder
	for {
		p := prompt
		if b.Len() > 0 {
			p = continuationPrompt
		}
		line, err := lr.Prompt(p)
		if errors.Is(err, liner.ErrPromptAborted) {
			b.Reset()
			continue
		}
		if err != nil {
			if errors.Is(err, io.EOF) && b.Len() > 0 {
				return b.String(), true
			}
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		if strings.HasPrefix(strings.TrimSpace(b.String()), ":") {
			return b.String(), true
		}
		if _, err := parser.ParseSource(b.String(), config.StdinFileName); parser.IsIncomplete(err) {
			continue
		}
		return b.String(), true
	}
}
