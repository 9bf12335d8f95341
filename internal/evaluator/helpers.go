package evaluator

import (
	"github.com/eigerproject/eiger/internal/ast"
	"github.com/eigerproject/eiger/internal/config"
	"github.com/eigerproject/eiger/internal/diagnostics"
)

func newError(kind diagnostics.Kind, format string, a ...interface{}) *diagnostics.Error {
	return diagnostics.New(kind, format, a...)
}

func runtimeError(format string, a ...interface{}) *diagnostics.Error {
	return diagnostics.New(diagnostics.RuntimeError, format, a...)
}

func argumentError(format string, a ...interface{}) *diagnostics.Error {
	return diagnostics.New(diagnostics.ArgumentError, config.ArgumentErrorStr+": "+format, a...)
}

func invalidOperation(left Value, op string, right Value) *diagnostics.Error {
	if right == nil {
		return diagnostics.New(diagnostics.InvalidOperationError, "%s: %s %s", config.InvalidOperationStr, op, left.TypeName())
	}
	return diagnostics.New(diagnostics.InvalidOperationError, "%s: %s %s %s",
		config.InvalidOperationStr, left.TypeName(), op, right.TypeName())
}

// locate attaches the node position to err if it is a diagnostics error
// without one.
func locate(err error, node *ast.Node) error {
	if de, ok := err.(*diagnostics.Error); ok && node != nil {
		de.Locate(node.Token)
	}
	return err
}

func isTruthy(v Value) (bool, bool) {
	b, ok := v.(*Boolean)
	if !ok {
		return false, false
	}
	return b.Value, true
}

// toIndex converts an index value to an int, truncating fractions.
func toIndex(v Value) (int, error) {
	n, ok := v.(*Number)
	if !ok {
		return 0, runtimeError("Index must be a number, got %s", v.TypeName())
	}
	return int(n.Value), nil
}
