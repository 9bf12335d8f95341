package evaluator

import (
	"github.com/eigerproject/eiger/internal/ast"
)

// loopControl interprets the signal of one loop body pass. stop reports that
// the loop must end; the returned result is what the loop yields then.
func loopControl(res Result) (Result, bool) {
	switch res.Signal {
	case SignalBreak:
		return normal(NIX), true
	case SignalReturn:
		return res, true
	default:
		return Result{}, false
	}
}

func (e *Evaluator) evalWhile(node *ast.Node, scope *Scope) (Result, error) {
	condNode, body := node.Children[0], node.Children[1]

	for {
		cond, err := e.evalCondition(condNode, scope)
		if err != nil {
			return Result{}, err
		}
		if !cond {
			break
		}

		res, err := e.evalBlock(body, NewEnclosedScope(scope))
		if err != nil {
			return Result{}, err
		}
		if out, stop := loopControl(res); stop {
			return out, nil
		}
	}

	return normal(NIX), nil
}

// evalForTo counts from start towards end, excluding end. Each pass gets its
// own scope holding the loop variable, so closures see their own value.
func (e *Evaluator) evalForTo(node *ast.Node, scope *Scope) (Result, error) {
	name := node.Name()
	start, err := e.evalBound(node.Children[0], scope)
	if err != nil {
		return Result{}, err
	}
	end, err := e.evalBound(node.Children[1], scope)
	if err != nil {
		return Result{}, err
	}
	body := node.Children[2]

	step := 1.0
	if start > end {
		step = -1
	}

	for cur := start; (step > 0 && cur < end) || (step < 0 && cur > end); cur += step {
		iter := NewEnclosedScope(scope)
		if err := iter.Declare(name, num(cur), 0); err != nil {
			return Result{}, err
		}

		res, err := e.evalBlock(body, iter)
		if err != nil {
			return Result{}, err
		}
		if out, stop := loopControl(res); stop {
			return out, nil
		}
	}

	return normal(NIX), nil
}

func (e *Evaluator) evalBound(node *ast.Node, scope *Scope) (float64, error) {
	v, err := e.evalValue(node, scope)
	if err != nil {
		return 0, err
	}
	n, ok := v.(*Number)
	if !ok {
		return 0, locate(runtimeError("For loop bound must be a number, got %s", v.TypeName()), node)
	}
	return n.Value, nil
}
