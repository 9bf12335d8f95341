package evaluator

import (
	"math"
	"strings"

	"github.com/eigerproject/eiger/internal/config"
	"github.com/eigerproject/eiger/internal/diagnostics"
)

// Operator symbols
const (
	opAdd   = "+"
	opSub   = "-"
	opMul   = "*"
	opDiv   = "/"
	opMod   = "%"
	opPow   = "^"
	opEq    = "?="
	opNotEq = "!="
	opLt    = "<"
	opGt    = ">"
	opLte   = "<="
	opGte   = ">="
	opAnd   = "and"
	opOr    = "or"
	opNot   = "not"
)

// compoundOps maps a compound assignment to the operator it applies.
var compoundOps = map[string]string{
	"+=": opAdd,
	"-=": opSub,
	"*=": opMul,
	"/=": opDiv,
}

// binaryOp applies a non-logical binary operator. Operands are never mutated.
func binaryOp(op string, left, right Value) (Value, error) {
	switch op {
	case opAdd:
		return add(left, right)
	case opSub, opDiv, opMod, opPow:
		return arithmetic(op, left, right)
	case opMul:
		return multiply(left, right)
	case opEq, opNotEq:
		eq, err := equals(left, right)
		if err != nil {
			return nil, invalidOperation(left, op, right)
		}
		return nativeBool(eq == (op == opEq)), nil
	case opLt, opGt, opLte, opGte:
		return compare(op, left, right)
	default:
		return nil, invalidOperation(left, op, right)
	}
}

func add(left, right Value) (Value, error) {
	switch l := left.(type) {
	case *Number:
		if r, ok := right.(*Number); ok {
			return num(l.Value + r.Value), nil
		}
	case *String:
		if r, ok := right.(*String); ok {
			return str(l.Value + r.Value), nil
		}
	case *Array:
		elements := make([]Value, len(l.Elements), len(l.Elements)+1)
		copy(elements, l.Elements)
		if r, ok := right.(*Array); ok {
			return newArray(append(elements, r.Elements...)), nil
		}
		return newArray(append(elements, right)), nil
	case *Boolean, *Nix, *Function, *InlineFunction, *Builtin, *Class, *Instance, *Namespace, *Dataclass:
	}
	return nil, invalidOperation(left, opAdd, right)
}

func arithmetic(op string, left, right Value) (Value, error) {
	l, ok := left.(*Number)
	if !ok {
		return nil, invalidOperation(left, op, right)
	}
	r, ok := right.(*Number)
	if !ok {
		return nil, invalidOperation(left, op, right)
	}

	switch op {
	case opSub:
		return num(l.Value - r.Value), nil
	case opDiv:
		if r.Value == 0 {
			return nil, newError(diagnostics.ZeroDivisionError, config.ZeroDivisionStr)
		}
		return num(l.Value / r.Value), nil
	case opMod:
		if r.Value == 0 {
			return nil, newError(diagnostics.ZeroDivisionError, config.ZeroDivisionStr)
		}
		return num(math.Mod(l.Value, r.Value)), nil
	case opPow:
		return num(math.Pow(l.Value, r.Value)), nil
	}
	return nil, invalidOperation(left, op, right)
}

func multiply(left, right Value) (Value, error) {
	switch l := left.(type) {
	case *Number:
		if r, ok := right.(*Number); ok {
			return num(l.Value * r.Value), nil
		}
	case *String:
		if r, ok := right.(*Number); ok {
			n := int(math.Floor(r.Value))
			if n < 0 {
				n = 0
			}
			return str(strings.Repeat(l.Value, n)), nil
		}
	case *Boolean, *Nix, *Array, *Function, *InlineFunction, *Builtin, *Class, *Instance, *Namespace, *Dataclass:
	}
	return nil, invalidOperation(left, opMul, right)
}

// equals compares payloads. Nix equals only Nix and may be compared with
// anything. Reference values compare by identity. An error means the two
// kinds cannot be compared.
func equals(left, right Value) (bool, error) {
	_, leftNix := left.(*Nix)
	_, rightNix := right.(*Nix)
	if leftNix || rightNix {
		return leftNix && rightNix, nil
	}

	switch l := left.(type) {
	case *Number:
		if r, ok := right.(*Number); ok {
			return l.Value == r.Value, nil
		}
	case *String:
		if r, ok := right.(*String); ok {
			return l.Value == r.Value, nil
		}
	case *Boolean:
		if r, ok := right.(*Boolean); ok {
			return l.Value == r.Value, nil
		}
	case *Array:
		r, ok := right.(*Array)
		if !ok {
			break
		}
		if len(l.Elements) != len(r.Elements) {
			return false, nil
		}
		for i := range l.Elements {
			eq, err := equals(l.Elements[i], r.Elements[i])
			if err != nil || !eq {
				return false, nil
			}
		}
		return true, nil
	case *Function, *InlineFunction, *Builtin, *Class, *Instance, *Namespace, *Dataclass:
		return left == right, nil
	case *Nix:
	}
	return false, invalidOperation(left, opEq, right)
}

func compare(op string, left, right Value) (Value, error) {
	var c int
	switch l := left.(type) {
	case *Number:
		r, ok := right.(*Number)
		if !ok {
			return nil, invalidOperation(left, op, right)
		}
		switch {
		case l.Value < r.Value:
			c = -1
		case l.Value > r.Value:
			c = 1
		}
	case *String:
		r, ok := right.(*String)
		if !ok {
			return nil, invalidOperation(left, op, right)
		}
		c = strings.Compare(l.Value, r.Value)
	default:
		return nil, invalidOperation(left, op, right)
	}

	switch op {
	case opLt:
		return nativeBool(c < 0), nil
	case opGt:
		return nativeBool(c > 0), nil
	case opLte:
		return nativeBool(c <= 0), nil
	default:
		return nativeBool(c >= 0), nil
	}
}

func unaryOp(op string, operand Value) (Value, error) {
	switch op {
	case opSub:
		if n, ok := operand.(*Number); ok {
			return num(-n.Value), nil
		}
	case opNot:
		if b, ok := operand.(*Boolean); ok {
			return nativeBool(!b.Value), nil
		}
	}
	return nil, diagnostics.New(diagnostics.InvalidOperationError, "%s: %s %s", config.InvalidOperationStr, op, operand.TypeName())
}

func getIndex(target Value, idx int) (Value, error) {
	switch t := target.(type) {
	case *Array:
		if idx < 0 || idx >= len(t.Elements) {
			return nil, newError(diagnostics.IndexError, config.IndexErrorStr)
		}
		return t.Elements[idx], nil
	case *String:
		runes := t.runes()
		if idx < 0 || idx >= len(runes) {
			return nil, newError(diagnostics.IndexError, config.IndexErrorStr)
		}
		return str(string(runes[idx])), nil
	}
	return nil, diagnostics.New(diagnostics.InvalidOperationError, "%s: %s is not indexable", config.InvalidOperationStr, target.TypeName())
}

// setIndex mutates target in place.
func setIndex(target Value, idx int, val Value) error {
	switch t := target.(type) {
	case *Array:
		if idx < 0 || idx >= len(t.Elements) {
			return newError(diagnostics.IndexError, config.IndexErrorStr)
		}
		t.Elements[idx] = val
		return nil
	case *String:
		runes := t.runes()
		if idx < 0 || idx >= len(runes) {
			return newError(diagnostics.IndexError, config.IndexErrorStr)
		}
		s, ok := val.(*String)
		if !ok {
			return invalidOperation(target, "[]=", val)
		}
		t.Value = string(runes[:idx]) + s.Value + string(runes[idx+1:])
		return nil
	}
	return diagnostics.New(diagnostics.InvalidOperationError, "%s: %s is not indexable", config.InvalidOperationStr, target.TypeName())
}

func length(v Value) (int, error) {
	switch v := v.(type) {
	case *Array:
		return len(v.Elements), nil
	case *String:
		return len(v.runes()), nil
	}
	return 0, diagnostics.New(diagnostics.InvalidOperationError, "%s: %s has no length", config.InvalidOperationStr, v.TypeName())
}
