package evaluator

import (
	"math"
	"strconv"

	"github.com/eigerproject/eiger/internal/config"
)

type Number struct {
	Value float64
}

func (n *Number) TypeName() string { return config.NumberTypeName }
func (n *Number) String() string   { return formatNumber(n.Value) }
func (n *Number) value()           {}

// formatNumber prints integral values without a fractional part.
func formatNumber(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// String values are mutable through SetIndex, so operators always build new ones.
type String struct {
	Value string
}

func (s *String) TypeName() string { return config.StringTypeName }
func (s *String) String() string   { return s.Value }
func (s *String) value()           {}

func (s *String) runes() []rune { return []rune(s.Value) }

type Boolean struct {
	Value bool
}

func (b *Boolean) TypeName() string { return config.BooleanTypeName }
func (b *Boolean) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}
func (b *Boolean) value() {}

type Nix struct{}

func (n *Nix) TypeName() string { return config.NixTypeName }
func (n *Nix) String() string   { return "nix" }
func (n *Nix) value()           {}

var (
	TRUE  = &Boolean{Value: true}
	FALSE = &Boolean{Value: false}
	NIX   = &Nix{}
)

func nativeBool(b bool) *Boolean {
	if b {
		return TRUE
	}
	return FALSE
}

func num(f float64) *Number {
	return &Number{Value: f}
}

func str(s string) *String {
	return &String{Value: s}
}
