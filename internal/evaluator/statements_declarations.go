package evaluator

import (
	"strings"

	"github.com/eigerproject/eiger/internal/ast"
)

func (e *Evaluator) evalFuncDef(node *ast.Node, scope *Scope) (Result, error) {
	decl := node.Decl()
	body := node.Children[0]

	var params []string
	variadic := false
	for _, p := range node.Children[1:] {
		name := p.Name()
		if strings.HasPrefix(name, ast.VariadicPrefix) {
			name = strings.TrimPrefix(name, ast.VariadicPrefix)
			variadic = true
		}
		params = append(params, name)
	}

	var fn Value
	if node.Kind == ast.FuncDefInline {
		fn = &InlineFunction{Name: decl.Name, Params: params, Variadic: variadic, Body: body, Env: scope}
	} else {
		fn = &Function{Name: decl.Name, Params: params, Variadic: variadic, Body: body, Env: scope}
	}

	if decl.Name != "" {
		if err := scope.Declare(decl.Name, fn, decl.Modifiers); err != nil {
			return Result{}, err
		}
	}
	return normal(fn), nil
}

func (e *Evaluator) evalClass(node *ast.Node, scope *Scope) (Result, error) {
	class := &Class{Name: node.Name(), Body: node.Children[0], Env: scope}
	if err := scope.Declare(class.Name, class, 0); err != nil {
		return Result{}, err
	}
	return normal(class), nil
}

// evalNamespace creates a namespace, or runs the body into the existing one
// when this scope already declares a namespace of that name.
func (e *Evaluator) evalNamespace(node *ast.Node, scope *Scope) (Result, error) {
	name := node.Name()

	var ns *Namespace
	if existing, _, ok := scope.Local(name); ok {
		reopened, isNamespace := existing.(*Namespace)
		if !isNamespace {
			return Result{}, runtimeError("%s is already declared", name)
		}
		ns = reopened
	} else {
		ns = &Namespace{Name: name, Scope: NewEnclosedScope(scope)}
		if err := scope.Declare(name, ns, 0); err != nil {
			return Result{}, err
		}
	}

	if _, err := e.evalBlock(node.Children[0], ns.Scope); err != nil {
		return Result{}, err
	}
	return normal(ns), nil
}

func (e *Evaluator) evalDataclass(node *ast.Node, scope *Scope) (Result, error) {
	dc := &Dataclass{Name: node.Name(), Scope: NewEnclosedScope(scope)}
	if err := scope.Declare(dc.Name, dc, 0); err != nil {
		return Result{}, err
	}
	if _, err := e.evalBlock(node.Children[0], dc.Scope); err != nil {
		return Result{}, err
	}
	return normal(dc), nil
}
