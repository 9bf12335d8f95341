package prettyprinter

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/eigerproject/eiger/internal/ast"
)

// TreePrinter renders an AST as an indented outline, one node per line.
type TreePrinter struct {
	buf    bytes.Buffer
	indent int
}

func NewTreePrinter() *TreePrinter {
	return &TreePrinter{}
}

func (p *TreePrinter) String() string {
	return p.buf.String()
}

func (p *TreePrinter) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString("  ")
	}
}

// Print appends node and its subtree.
func (p *TreePrinter) Print(node *ast.Node) {
	if node == nil {
		return
	}
	p.writeIndent()
	p.buf.WriteString(node.Kind.String())
	if label := describe(node); label != "" {
		p.buf.WriteString(" ")
		p.buf.WriteString(label)
	}
	p.buf.WriteString("\n")

	p.indent++
	for _, child := range node.Children {
		p.Print(child)
	}
	p.indent--
}

func describe(node *ast.Node) string {
	switch v := node.Value.(type) {
	case nil:
		return ""
	case ast.Decl:
		name := v.Name
		if name == "" {
			name = "<anonymous>"
		}
		if v.Modifiers != 0 {
			return fmt.Sprintf("%s (%s)", name, v.Modifiers)
		}
		return name
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case string:
		if node.Kind == ast.Literal {
			return strconv.Quote(v)
		}
		return v
	case ast.Keyword:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}

// Tree is a convenience wrapper returning the outline of node.
func Tree(node *ast.Node) string {
	p := NewTreePrinter()
	p.Print(node)
	return p.String()
}
