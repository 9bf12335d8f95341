package ast

import (
	"github.com/eigerproject/eiger/internal/token"
)

// Kind tags a Node. The meaning of Value and Children depends on it.
type Kind int

const (
	Block Kind = iota
	Let
	If
	While
	ForTo
	Return
	Break
	Continue
	FuncCall
	FuncDef
	FuncDefInline
	Class
	Namespace
	Dataclass
	BinOp
	UnaryOp
	Literal
	Identifier
	Array
	ElementAccess
	AttrAccess
	Include
)

var kindNames = [...]string{
	Block:         "Block",
	Let:           "Let",
	If:            "If",
	While:         "While",
	ForTo:         "ForTo",
	Return:        "Return",
	Break:         "Break",
	Continue:      "Continue",
	FuncCall:      "FuncCall",
	FuncDef:       "FuncDef",
	FuncDefInline: "FuncDefInline",
	Class:         "Class",
	Namespace:     "Namespace",
	Dataclass:     "Dataclass",
	BinOp:         "BinOp",
	UnaryOp:       "UnaryOp",
	Literal:       "Literal",
	Identifier:    "Identifier",
	Array:         "Array",
	ElementAccess: "ElementAccess",
	AttrAccess:    "AttrAccess",
	Include:       "Include",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Modifiers is a bit set of binding modifiers.
type Modifiers uint8

const (
	Readonly Modifiers = 1 << iota
	Private
)

func (m Modifiers) Has(flag Modifiers) bool { return m&flag != 0 }

func (m Modifiers) String() string {
	switch {
	case m.Has(Readonly) && m.Has(Private):
		return "readonly private"
	case m.Has(Readonly):
		return "readonly"
	case m.Has(Private):
		return "private"
	}
	return ""
}

// Decl is the payload of Let and FuncDef nodes. An empty Name on a function
// definition means the function is anonymous.
type Decl struct {
	Modifiers Modifiers
	Name      string
}

// Keyword is the payload of a Literal written as true, false or nix.
type Keyword string

const (
	True  Keyword = "true"
	False Keyword = "false"
	Nix   Keyword = "nix"
)

// VariadicPrefix marks the parameter that collects the remaining arguments.
const VariadicPrefix = "+"

// Node is a single AST node. Token is the token the node starts at and is
// used for error positions.
type Node struct {
	Kind     Kind
	Value    any
	Children []*Node
	Token    token.Token
}

func New(kind Kind, tok token.Token, value any, children ...*Node) *Node {
	return &Node{Kind: kind, Value: value, Children: children, Token: tok}
}

// Name returns Value as a string for nodes whose payload is a name or
// operator symbol, or the declared name for Let and FuncDef nodes.
func (n *Node) Name() string {
	switch v := n.Value.(type) {
	case string:
		return v
	case Decl:
		return v.Name
	}
	return ""
}

// Decl returns the declaration payload of a Let or FuncDef node.
func (n *Node) Decl() Decl {
	d, _ := n.Value.(Decl)
	return d
}

func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}
