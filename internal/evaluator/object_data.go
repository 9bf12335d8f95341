package evaluator

import (
	"github.com/eigerproject/eiger/internal/ast"
	"github.com/eigerproject/eiger/internal/config"
)

// Class is a blueprint. Each call runs Body in a fresh instance scope whose
// parent is Env, the scope the class was defined in.
type Class struct {
	Name string
	Body *ast.Node
	Env  *Scope
}

func (c *Class) TypeName() string     { return config.ClassTypeName }
func (c *Class) String() string       { return "[class " + c.Name + "]" }
func (c *Class) value()               {}
func (c *Class) callableName() string { return c.Name }

type Instance struct {
	Class *Class
	Scope *Scope
}

func (i *Instance) TypeName() string { return config.InstanceTypeName }
func (i *Instance) String() string   { return "[instance of class " + i.Class.Name + "]" }
func (i *Instance) value()           {}

// Namespace can be reopened: a second definition with the same name runs its
// body into the existing scope.
type Namespace struct {
	Name  string
	Scope *Scope
}

func (n *Namespace) TypeName() string { return config.NamespaceTypeName }
func (n *Namespace) String() string   { return "[namespace " + n.Name + "]" }
func (n *Namespace) value()           {}

// Dataclass is a singleton aggregate built by running its body once.
type Dataclass struct {
	Name  string
	Scope *Scope
}

func (d *Dataclass) TypeName() string { return config.DataclassTypeName }
func (d *Dataclass) String() string   { return "[dataclass " + d.Name + "]" }
func (d *Dataclass) value()           {}

// memberScope returns the scope holding the members of an aggregate value.
func memberScope(v Value) (*Scope, bool) {
	switch v := v.(type) {
	case *Instance:
		return v.Scope, true
	case *Namespace:
		return v.Scope, true
	case *Dataclass:
		return v.Scope, true
	default:
		return nil, false
	}
}
