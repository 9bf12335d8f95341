package evaluator

import (
	"github.com/eigerproject/eiger/internal/ast"
	"github.com/eigerproject/eiger/internal/config"
	"github.com/eigerproject/eiger/internal/diagnostics"
)

// signature returns the parameter list of a callable. Classes have none of
// their own: their arity is that of the constructor found after the body ran.
func signature(fn Value) (params []string, variadic bool, ok bool) {
	switch fn := fn.(type) {
	case *Function:
		return fn.Params, fn.Variadic, true
	case *InlineFunction:
		return fn.Params, fn.Variadic, true
	case *Builtin:
		return fn.Params, fn.Variadic, true
	}
	return nil, false, false
}

func checkArity(name string, params []string, variadic bool, got int) error {
	if variadic {
		fixed := len(params) - 1
		if got < fixed {
			return diagnostics.New(diagnostics.ArgumentError, "Function %s takes at least %d arguments, got %d", name, fixed, got)
		}
		return nil
	}
	if got != len(params) {
		return diagnostics.New(diagnostics.ArgumentError, "Function %s takes %d arguments, got %d", name, len(params), got)
	}
	return nil
}

// callNodes checks arity against the argument expressions, evaluates them in
// the caller scope, then applies fn.
func (e *Evaluator) callNodes(fn Value, name string, argNodes []*ast.Node, scope *Scope) (Value, error) {
	if _, ok := fn.(Callable); !ok {
		return nil, runtimeError("%s is not a function", name)
	}
	if params, variadic, ok := signature(fn); ok {
		if err := checkArity(name, params, variadic, len(argNodes)); err != nil {
			return nil, err
		}
	}

	args := make([]Value, 0, len(argNodes))
	for _, a := range argNodes {
		v, err := e.evalValue(a, scope)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	return e.Apply(fn, args)
}

// Apply invokes a callable with evaluated arguments.
func (e *Evaluator) Apply(fn Value, args []Value) (Value, error) {
	switch fn := fn.(type) {
	case *Function:
		callScope, err := bindArguments(fn.Name, fn.Params, fn.Variadic, args, fn.Env)
		if err != nil {
			return nil, err
		}
		res, err := e.evalBlock(fn.Body, callScope)
		if err != nil {
			return nil, err
		}
		// Falling off the end, or a stray brk/cont, yields nix.
		if res.Signal == SignalReturn {
			return res.Value, nil
		}
		return NIX, nil

	case *InlineFunction:
		callScope, err := bindArguments(fn.Name, fn.Params, fn.Variadic, args, fn.Env)
		if err != nil {
			return nil, err
		}
		return e.evalValue(fn.Body, callScope)

	case *Builtin:
		if err := checkArity(fn.Name, fn.Params, fn.Variadic, len(args)); err != nil {
			return nil, err
		}
		return fn.Fn(e, packVariadic(fn.Params, fn.Variadic, args))

	case *Class:
		return e.construct(fn, args)
	}

	return nil, runtimeError("%s is not a function", fn.String())
}

// packVariadic collects the arguments past the fixed parameters into one array.
func packVariadic(params []string, variadic bool, args []Value) []Value {
	if !variadic {
		return args
	}
	fixed := len(params) - 1
	bound := make([]Value, 0, len(params))
	bound = append(bound, args[:fixed]...)
	rest := make([]Value, len(args)-fixed)
	copy(rest, args[fixed:])
	return append(bound, newArray(rest))
}

// bindArguments creates the call scope as a child of the closure's scope and
// declares each parameter without modifiers.
func bindArguments(name string, params []string, variadic bool, args []Value, env *Scope) (*Scope, error) {
	if err := checkArity(name, params, variadic, len(args)); err != nil {
		return nil, err
	}
	callScope := NewEnclosedScope(env)
	for i, v := range packVariadic(params, variadic, args) {
		if err := callScope.Declare(params[i], v, 0); err != nil {
			return nil, err
		}
	}
	return callScope, nil
}

// construct builds an instance: the class body runs in the new instance
// scope with `this` bound, then the constructor, if any, gets the arguments.
func (e *Evaluator) construct(class *Class, args []Value) (Value, error) {
	inst := &Instance{Class: class, Scope: NewEnclosedScope(class.Env)}
	if err := inst.Scope.Declare(config.ThisName, inst, ast.Readonly); err != nil {
		return nil, err
	}

	if _, err := e.evalBlock(class.Body, inst.Scope); err != nil {
		return nil, err
	}

	ctor := constructorOf(inst.Scope, class.Name)
	if ctor == nil {
		if len(args) > 0 {
			return nil, diagnostics.New(diagnostics.ArgumentError, "Class %s takes 0 arguments, got %d", class.Name, len(args))
		}
		return inst, nil
	}

	if _, err := e.Apply(ctor, args); err != nil {
		return nil, err
	}
	return inst, nil
}

// constructorOf finds `new` in the instance scope, or a function named after
// the class.
func constructorOf(scope *Scope, className string) Value {
	for _, name := range []string{config.ConstructorName, className} {
		v, _, ok := scope.Local(name)
		if !ok {
			continue
		}
		switch v.(type) {
		case *Function, *InlineFunction:
			return v
		}
	}
	return nil
}
