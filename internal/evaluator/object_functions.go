package evaluator

import (
	"github.com/eigerproject/eiger/internal/ast"
	"github.com/eigerproject/eiger/internal/config"
)

// Function is a closure with a block body. Env is the scope it was defined
// in, shared rather than copied.
type Function struct {
	Name     string
	Params   []string // the variadic parameter, if any, is last and has no + prefix
	Variadic bool
	Body     *ast.Node
	Env      *Scope
}

func (f *Function) TypeName() string { return config.FunctionTypeName }
func (f *Function) String() string {
	if f.Name == "" {
		return "[function]"
	}
	return "[function " + f.Name + "]"
}
func (f *Function) value()               {}
func (f *Function) callableName() string { return f.Name }

// InlineFunction is a closure whose body is one expression; its value is
// the call result.
type InlineFunction struct {
	Name     string
	Params   []string
	Variadic bool
	Body     *ast.Node
	Env      *Scope
}

func (f *InlineFunction) TypeName() string { return config.FunctionTypeName }
func (f *InlineFunction) String() string {
	if f.Name == "" {
		return "[function]"
	}
	return "[function " + f.Name + "]"
}
func (f *InlineFunction) value()               {}
func (f *InlineFunction) callableName() string { return f.Name }

// BuiltinFunction receives arguments already bound by the call protocol: for
// a variadic builtin the last element is an *Array of the remaining values.
type BuiltinFunction func(e *Evaluator, args []Value) (Value, error)

type Builtin struct {
	Name     string
	Params   []string
	Variadic bool
	Fn       BuiltinFunction
}

func (b *Builtin) TypeName() string     { return config.FunctionTypeName }
func (b *Builtin) String() string       { return "[built-in function " + b.Name + "]" }
func (b *Builtin) value()               {}
func (b *Builtin) callableName() string { return b.Name }
