package evaluator

// Value is any runtime value. The set of implementations is closed: every
// variant lives in this package and operators switch over all of them.
type Value interface {
	// TypeName is the name reported by the type attribute.
	TypeName() string
	// String is the canonical text form used by emit and REPL echo.
	String() string
	value()
}

// Callable is implemented by values that can appear as the callee of a call.
type Callable interface {
	Value
	callableName() string
}

var (
	_ Value = (*Number)(nil)
	_ Value = (*String)(nil)
	_ Value = (*Boolean)(nil)
	_ Value = (*Nix)(nil)
	_ Value = (*Array)(nil)
	_ Value = (*Function)(nil)
	_ Value = (*InlineFunction)(nil)
	_ Value = (*Builtin)(nil)
	_ Value = (*Class)(nil)
	_ Value = (*Instance)(nil)
	_ Value = (*Namespace)(nil)
	_ Value = (*Dataclass)(nil)

	_ Callable = (*Function)(nil)
	_ Callable = (*InlineFunction)(nil)
	_ Callable = (*Builtin)(nil)
	_ Callable = (*Class)(nil)
)

// Signal is the control-flow outcome attached to every evaluation result.
type Signal int

const (
	SignalNone Signal = iota
	SignalReturn
	SignalBreak
	SignalContinue
)

func (s Signal) String() string {
	switch s {
	case SignalReturn:
		return "return"
	case SignalBreak:
		return "break"
	case SignalContinue:
		return "continue"
	default:
		return "none"
	}
}

// Result pairs a value with the signal produced while computing it.
type Result struct {
	Value  Value
	Signal Signal
}

func normal(v Value) Result {
	return Result{Value: v}
}
