package evaluator

import (
	"strings"

	"github.com/eigerproject/eiger/internal/config"
)

type Array struct {
	Elements []Value
}

func (a *Array) TypeName() string { return config.ArrayTypeName }
func (a *Array) String() string {
	var out strings.Builder
	out.WriteString("[")
	for i, el := range a.Elements {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(el.String())
	}
	out.WriteString("]")
	return out.String()
}
func (a *Array) value() {}

func newArray(elements []Value) *Array {
	if elements == nil {
		elements = []Value{}
	}
	return &Array{Elements: elements}
}
