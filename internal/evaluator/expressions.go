package evaluator

import (
	"github.com/eigerproject/eiger/internal/ast"
	"github.com/eigerproject/eiger/internal/config"
	"github.com/eigerproject/eiger/internal/diagnostics"
)

func (e *Evaluator) evalLiteral(node *ast.Node) (Result, error) {
	switch v := node.Value.(type) {
	case float64:
		return normal(num(v)), nil
	case string:
		// A fresh value per evaluation: strings can be mutated by index assignment.
		return normal(str(v)), nil
	case ast.Keyword:
		switch v {
		case ast.True:
			return normal(TRUE), nil
		case ast.False:
			return normal(FALSE), nil
		case ast.Nix:
			return normal(NIX), nil
		}
	}
	return Result{}, runtimeError("Invalid literal %v", node.Value)
}

func (e *Evaluator) evalArray(node *ast.Node, scope *Scope) (Result, error) {
	elements := make([]Value, 0, len(node.Children))
	for _, child := range node.Children {
		v, err := e.evalValue(child, scope)
		if err != nil {
			return Result{}, err
		}
		elements = append(elements, v)
	}
	return normal(newArray(elements)), nil
}

func (e *Evaluator) evalElementAccess(node *ast.Node, scope *Scope) (Result, error) {
	target, err := e.evalValue(node.Children[0], scope)
	if err != nil {
		return Result{}, err
	}
	idxVal, err := e.evalValue(node.Children[1], scope)
	if err != nil {
		return Result{}, err
	}
	idx, err := toIndex(idxVal)
	if err != nil {
		return Result{}, err
	}
	v, err := getIndex(target, idx)
	return normal(v), err
}

func (e *Evaluator) evalUnaryOp(node *ast.Node, scope *Scope) (Result, error) {
	operand, err := e.evalValue(node.Children[0], scope)
	if err != nil {
		return Result{}, err
	}
	v, err := unaryOp(node.Name(), operand)
	return normal(v), err
}

func (e *Evaluator) evalBinOp(node *ast.Node, scope *Scope) (Result, error) {
	op := node.Name()
	left, right := node.Children[0], node.Children[1]

	if op == "=" {
		return e.evalAssign(left, right, scope)
	}
	if base, ok := compoundOps[op]; ok {
		return e.evalCompoundAssign(base, left, right, scope)
	}
	if op == opAnd || op == opOr {
		return e.evalLogical(op, left, right, scope)
	}

	l, err := e.evalValue(left, scope)
	if err != nil {
		return Result{}, err
	}
	r, err := e.evalValue(right, scope)
	if err != nil {
		return Result{}, err
	}
	v, err := binaryOp(op, l, r)
	return normal(v), err
}

// evalLogical short-circuits: the right operand is only evaluated when the
// left one does not decide the result.
func (e *Evaluator) evalLogical(op string, left, right *ast.Node, scope *Scope) (Result, error) {
	l, err := e.evalValue(left, scope)
	if err != nil {
		return Result{}, err
	}
	lb, ok := l.(*Boolean)
	if !ok {
		return Result{}, diagnostics.New(diagnostics.InvalidOperationError, "%s: %s %s", config.InvalidOperationStr, l.TypeName(), op)
	}
	if (op == opAnd && !lb.Value) || (op == opOr && lb.Value) {
		return normal(lb), nil
	}

	r, err := e.evalValue(right, scope)
	if err != nil {
		return Result{}, err
	}
	rb, ok := r.(*Boolean)
	if !ok {
		return Result{}, invalidOperation(l, op, r)
	}
	return normal(rb), nil
}

func (e *Evaluator) evalAssign(target, valueNode *ast.Node, scope *Scope) (Result, error) {
	val, err := e.evalValue(valueNode, scope)
	if err != nil {
		return Result{}, err
	}
	if err := e.assignTo(target, val, scope); err != nil {
		return Result{}, err
	}
	return normal(val), nil
}

// evalCompoundAssign applies target = target <op> value. A read-only
// variable is rejected before anything is evaluated.
func (e *Evaluator) evalCompoundAssign(op string, target, valueNode *ast.Node, scope *Scope) (Result, error) {
	if target.Kind == ast.Identifier {
		if _, mods, ok := scope.Lookup(target.Name()); ok && mods.Has(ast.Readonly) {
			return Result{}, locate(runtimeError("%s is read-only", target.Name()), target)
		}
	}

	cur, err := e.evalValue(target, scope)
	if err != nil {
		return Result{}, err
	}
	rhs, err := e.evalValue(valueNode, scope)
	if err != nil {
		return Result{}, err
	}
	val, err := binaryOp(op, cur, rhs)
	if err != nil {
		return Result{}, err
	}
	if err := e.assignTo(target, val, scope); err != nil {
		return Result{}, err
	}
	return normal(val), nil
}

// assignTo stores val into an assignment target: a variable, an element or
// an attribute.
func (e *Evaluator) assignTo(target *ast.Node, val Value, scope *Scope) error {
	switch target.Kind {
	case ast.Identifier:
		return locate(scope.Set(target.Name(), val), target)
	case ast.ElementAccess:
		container, err := e.evalValue(target.Children[0], scope)
		if err != nil {
			return err
		}
		idxVal, err := e.evalValue(target.Children[1], scope)
		if err != nil {
			return err
		}
		idx, err := toIndex(idxVal)
		if err != nil {
			return locate(err, target)
		}
		return locate(setIndex(container, idx, val), target)
	case ast.AttrAccess:
		return e.setAttr(target, val, scope)
	default:
		return locate(runtimeError("Left side of assignment is invalid node of type %s", target.Kind), target)
	}
}
