package evaluator

import (
	"math"

	"github.com/eigerproject/eiger/internal/ast"
)

// nativeModule declares a host-implemented module into scope.
type nativeModule func(e *Evaluator, scope *Scope) error

var nativeModules = map[string]nativeModule{
	"math": loadMathModule,
}

func unaryMath(name string, f func(float64) float64) *Builtin {
	return &Builtin{
		Name:   name,
		Params: []string{"x"},
		Fn: func(e *Evaluator, args []Value) (Value, error) {
			x, ok := args[0].(*Number)
			if !ok {
				return nil, argumentError("%s expects a number, got %s", name, args[0].TypeName())
			}
			return num(f(x.Value)), nil
		},
	}
}

func binaryMath(name, op string) *Builtin {
	return &Builtin{
		Name:   name,
		Params: []string{"a", "b"},
		Fn: func(e *Evaluator, args []Value) (Value, error) {
			return arithmetic(op, args[0], args[1])
		},
	}
}

func mathFactorial(e *Evaluator, args []Value) (Value, error) {
	n, ok := args[0].(*Number)
	if !ok || n.Value < 0 || n.Value != math.Trunc(n.Value) {
		return nil, argumentError("factorial expects a non-negative integer")
	}
	result := 1.0
	for i := 2.0; i <= n.Value; i++ {
		result *= i
	}
	return num(result), nil
}

// loadMathModule declares the namespace math.
func loadMathModule(e *Evaluator, scope *Scope) error {
	ns := &Namespace{Name: "math", Scope: NewEnclosedScope(scope)}

	members := []*Builtin{
		unaryMath("abs", math.Abs),
		unaryMath("sqrt", math.Sqrt),
		unaryMath("sin", math.Sin),
		unaryMath("cos", math.Cos),
		unaryMath("tan", math.Tan),
		unaryMath("floor", math.Floor),
		unaryMath("ceil", math.Ceil),
		unaryMath("round", math.Round),
		binaryMath("pow", opPow),
		binaryMath("mod", opMod),
		{Name: "factorial", Params: []string{"n"}, Fn: mathFactorial},
	}
	for _, b := range members {
		ns.Scope.Bind(b.Name, b, 0)
	}
	ns.Scope.Bind("pi", num(math.Pi), ast.Readonly)

	return scope.Declare(ns.Name, ns, 0)
}
