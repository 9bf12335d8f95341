package evaluator

import (
	"strings"
)

// formatTemplate replaces %1..%9 with the matching argument and %% with a
// percent sign. Placeholders without an argument are kept as written.
func formatTemplate(format string, args []Value) string {
	var out strings.Builder
	runes := []rune(format)
	for i := 0; i < len(runes); i++ {
		if runes[i] != '%' || i+1 >= len(runes) {
			out.WriteRune(runes[i])
			continue
		}
		next := runes[i+1]
		switch {
		case next == '%':
			out.WriteRune('%')
			i++
		case next >= '0' && next <= '9':
			idx := int(next - '0')
			if idx > 0 && idx <= len(args) {
				out.WriteString(args[idx-1].String())
			} else {
				out.WriteRune('%')
				out.WriteRune(next)
			}
			i++
		default:
			out.WriteRune('%')
		}
	}
	return out.String()
}

func builtinFmt(e *Evaluator, args []Value) (Value, error) {
	format, ok := args[0].(*String)
	if !ok {
		return nil, argumentError("format is not string")
	}
	rest := args[1].(*Array)
	return str(formatTemplate(format.Value, rest.Elements)), nil
}
