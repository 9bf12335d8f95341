package evaluator

import (
	"github.com/eigerproject/eiger/internal/ast"
	"github.com/eigerproject/eiger/internal/config"
)

// thisRooted reports whether an attribute chain starts at the identifier
// `this`. Private members are only reachable through such chains.
func thisRooted(node *ast.Node) bool {
	for node.Kind == ast.AttrAccess {
		node = node.Children[0]
	}
	return node.Kind == ast.Identifier && node.Name() == config.ThisName
}

func (e *Evaluator) evalAttrAccess(node *ast.Node, scope *Scope) (Result, error) {
	obj, err := e.evalValue(node.Children[0], scope)
	if err != nil {
		return Result{}, err
	}
	v, err := e.member(obj, node.Children[1], thisRooted(node), scope)
	return normal(v), err
}

// member resolves the right side of an attribute access against obj. A call
// on the right side is evaluated with arguments taken from the caller scope.
func (e *Evaluator) member(obj Value, right *ast.Node, private bool, scope *Scope) (Value, error) {
	switch right.Kind {
	case ast.Identifier:
		v, err := e.getAttr(obj, right.Name(), private)
		return v, locate(err, right)
	case ast.FuncCall:
		callee := right.Children[0]
		if callee.Kind != ast.Identifier {
			return nil, locate(runtimeError("Invalid attribute call"), right)
		}
		fn, err := e.getAttr(obj, callee.Name(), private)
		if err != nil {
			return nil, locate(err, callee)
		}
		v, err := e.callNodes(fn, callee.Name(), right.Children[1:], scope)
		return v, locate(err, right)
	case ast.AttrAccess:
		inner, err := e.member(obj, right.Children[0], private, scope)
		if err != nil {
			return nil, err
		}
		return e.member(inner, right.Children[1], private, scope)
	default:
		return nil, locate(runtimeError("Invalid attribute %s", right.Kind), right)
	}
}

// getAttr looks up name on obj. Members of aggregates shadow the synthetic
// attributes.
func (e *Evaluator) getAttr(obj Value, name string, private bool) (Value, error) {
	if members, ok := memberScope(obj); ok {
		if v, mods, found := members.Local(name); found {
			if mods.Has(ast.Private) && !private {
				return nil, runtimeError("%s is private", name)
			}
			return v, nil
		}
	}

	switch name {
	case config.TypeAttr:
		return str(obj.TypeName()), nil
	case config.LengthAttr:
		n, err := length(obj)
		if err != nil {
			return nil, err
		}
		return num(float64(n)), nil
	case config.AsStringAttr:
		return str(obj.String()), nil
	case config.BaseClassAttr:
		if inst, ok := obj.(*Instance); ok {
			return inst.Class, nil
		}
	}

	if _, ok := memberScope(obj); ok {
		return nil, runtimeError("%s is undefined", name)
	}
	return nil, runtimeError("%s has no attribute %s", obj.TypeName(), name)
}

// setAttr assigns to obj.name, creating the member in the object's own scope
// when it does not exist yet.
func (e *Evaluator) setAttr(target *ast.Node, val Value, scope *Scope) error {
	left, right := target.Children[0], target.Children[1]
	obj, err := e.evalValue(left, scope)
	if err != nil {
		return err
	}
	private := thisRooted(target)

	// obj.a.b written with a nested right side
	for right.Kind == ast.AttrAccess {
		obj, err = e.member(obj, right.Children[0], private, scope)
		if err != nil {
			return err
		}
		right = right.Children[1]
	}
	if right.Kind != ast.Identifier {
		return locate(runtimeError("Left side of assignment is invalid node of type %s", right.Kind), right)
	}
	name := right.Name()

	members, ok := memberScope(obj)
	if !ok {
		return locate(runtimeError("Cannot set attribute %s of %s", name, obj.TypeName()), right)
	}
	if _, mods, found := members.Local(name); found {
		if mods.Has(ast.Private) && !private {
			return locate(runtimeError("%s is private", name), right)
		}
		return locate(members.SetLocal(name, val), right)
	}
	return locate(members.Declare(name, val, 0), right)
}

func (e *Evaluator) evalFuncCall(node *ast.Node, scope *Scope) (Result, error) {
	calleeNode := node.Children[0]
	callee, err := e.evalValue(calleeNode, scope)
	if err != nil {
		return Result{}, err
	}

	name := callee.String()
	if calleeNode.Kind == ast.Identifier {
		name = calleeNode.Name()
	}
	v, err := e.callNodes(callee, name, node.Children[1:], scope)
	return normal(v), err
}
