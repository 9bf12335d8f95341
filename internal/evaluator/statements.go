package evaluator

import (
	"github.com/eigerproject/eiger/internal/ast"
)

// evalBlock runs statements in the scope given by the caller and stops at
// the first control-flow signal.
func (e *Evaluator) evalBlock(block *ast.Node, scope *Scope) (Result, error) {
	result := normal(NIX)
	for _, stmt := range block.Children {
		res, err := e.Eval(stmt, scope)
		if err != nil {
			return Result{}, err
		}
		if res.Signal != SignalNone {
			return res, nil
		}
		result = res
	}
	return result, nil
}

func (e *Evaluator) evalLet(node *ast.Node, scope *Scope) (Result, error) {
	decl := node.Decl()

	var val Value = NIX
	if init := node.Child(0); init != nil {
		v, err := e.evalValue(init, scope)
		if err != nil {
			return Result{}, err
		}
		val = v
	}

	if err := scope.Declare(decl.Name, val, decl.Modifiers); err != nil {
		return Result{}, err
	}
	return normal(NIX), nil
}

func (e *Evaluator) evalIf(node *ast.Node, scope *Scope) (Result, error) {
	n := len(node.Children)
	for i := 0; i+1 < n; i += 2 {
		cond, err := e.evalCondition(node.Children[i], scope)
		if err != nil {
			return Result{}, err
		}
		if cond {
			return e.evalBranch(node.Children[i+1], scope)
		}
	}
	if n%2 == 1 {
		return e.evalBranch(node.Children[n-1], scope)
	}
	return normal(NIX), nil
}

// evalBranch runs an if arm in a fresh scope. Only signals escape it.
func (e *Evaluator) evalBranch(block *ast.Node, scope *Scope) (Result, error) {
	res, err := e.evalBlock(block, NewEnclosedScope(scope))
	if err != nil {
		return Result{}, err
	}
	if res.Signal == SignalNone {
		return normal(NIX), nil
	}
	return res, nil
}

func (e *Evaluator) evalCondition(node *ast.Node, scope *Scope) (bool, error) {
	v, err := e.evalValue(node, scope)
	if err != nil {
		return false, err
	}
	b, ok := isTruthy(v)
	if !ok {
		return false, locate(runtimeError("Condition must be a boolean, got %s", v.TypeName()), node)
	}
	return b, nil
}

func (e *Evaluator) evalReturn(node *ast.Node, scope *Scope) (Result, error) {
	var val Value = NIX
	if expr := node.Child(0); expr != nil {
		v, err := e.evalValue(expr, scope)
		if err != nil {
			return Result{}, err
		}
		val = v
	}
	return Result{Value: val, Signal: SignalReturn}, nil
}
