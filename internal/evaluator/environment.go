package evaluator

import (
	"sort"

	"github.com/eigerproject/eiger/internal/ast"
)

type binding struct {
	value Value
	mods  ast.Modifiers
}

// Scope maps names to values and delegates misses to its outer scope.
// Modifiers belong to the binding, not to the value.
type Scope struct {
	store map[string]*binding
	outer *Scope
}

func NewScope() *Scope {
	return &Scope{store: make(map[string]*binding)}
}

func NewEnclosedScope(outer *Scope) *Scope {
	s := NewScope()
	s.outer = outer
	return s
}

func (s *Scope) Outer() *Scope {
	return s.outer
}

// Declare adds a binding to this scope. Shadowing an outer name is allowed;
// redeclaring a name of this scope is not.
func (s *Scope) Declare(name string, val Value, mods ast.Modifiers) error {
	if _, ok := s.store[name]; ok {
		return runtimeError("%s is already declared", name)
	}
	s.store[name] = &binding{value: val, mods: mods}
	return nil
}

// Get resolves name through the scope chain.
func (s *Scope) Get(name string) (Value, error) {
	if b := s.resolve(name); b != nil {
		return b.value, nil
	}
	return nil, runtimeError("%s is undefined", name)
}

// Lookup is Get with the binding's modifiers and no error.
func (s *Scope) Lookup(name string) (Value, ast.Modifiers, bool) {
	if b := s.resolve(name); b != nil {
		return b.value, b.mods, true
	}
	return nil, 0, false
}

// Local looks name up in this scope only.
func (s *Scope) Local(name string) (Value, ast.Modifiers, bool) {
	if b, ok := s.store[name]; ok {
		return b.value, b.mods, true
	}
	return nil, 0, false
}

// Set overwrites an existing binding in the scope that owns it, keeping its
// modifiers. It never declares.
func (s *Scope) Set(name string, val Value) error {
	b := s.resolve(name)
	if b == nil {
		return runtimeError("Setting to undefined symbol %s", name)
	}
	if b.mods.Has(ast.Readonly) {
		return runtimeError("%s is read-only", name)
	}
	b.value = val
	return nil
}

// SetLocal is Set restricted to this scope.
func (s *Scope) SetLocal(name string, val Value) error {
	b, ok := s.store[name]
	if !ok {
		return runtimeError("Setting to undefined symbol %s", name)
	}
	if b.mods.Has(ast.Readonly) {
		return runtimeError("%s is read-only", name)
	}
	b.value = val
	return nil
}

// Has reports whether name is bound in this scope, ignoring outer scopes.
func (s *Scope) Has(name string) bool {
	_, ok := s.store[name]
	return ok
}

// Bind creates or replaces a binding in this scope regardless of readonly.
// It is meant for host-owned values such as the console color constants.
func (s *Scope) Bind(name string, val Value, mods ast.Modifiers) {
	s.store[name] = &binding{value: val, mods: mods}
}

// Names returns the names bound in this scope, sorted.
func (s *Scope) Names() []string {
	names := make([]string, 0, len(s.store))
	for name := range s.store {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Scope) resolve(name string) *binding {
	for cur := s; cur != nil; cur = cur.outer {
		if b, ok := cur.store[name]; ok {
			return b
		}
	}
	return nil
}
