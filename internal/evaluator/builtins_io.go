package evaluator

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/eigerproject/eiger/internal/diagnostics"
)

// in reads one line without its line terminator. At end of input it returns
// whatever was read, possibly an empty string.
func builtinIn(e *Evaluator, args []Value) (Value, error) {
	line, err := e.In.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, newError(diagnostics.IOError, "Failed to read input: %v", err)
	}
	return str(strings.TrimRight(line, "\r\n")), nil
}

func builtinInchar(e *Evaluator, args []Value) (Value, error) {
	r, _, err := e.In.ReadRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return str(""), nil
		}
		return nil, newError(diagnostics.IOError, "Failed to read input: %v", err)
	}
	return str(string(r)), nil
}

func builtinFread(e *Evaluator, args []Value) (Value, error) {
	path, ok := args[0].(*String)
	if !ok {
		return nil, argumentError("fread path must be a string")
	}
	data, err := os.ReadFile(path.Value)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, newError(diagnostics.IOError, "File doesn't exist")
		}
		return nil, newError(diagnostics.IOError, "Cannot read file %s", path.Value)
	}
	return str(string(data)), nil
}
