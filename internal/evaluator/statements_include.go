package evaluator

import (
	"github.com/eigerproject/eiger/internal/ast"
	"github.com/eigerproject/eiger/internal/modules"
	"github.com/eigerproject/eiger/internal/parser"
)

// evalInclude runs a module's top-level statements in the including scope.
// Statements that ran before a failing one stay in effect.
func (e *Evaluator) evalInclude(node *ast.Node, scope *Scope) (Result, error) {
	target := node.Children[0]

	var (
		src *modules.Source
		err error
	)
	if target.Kind == ast.Identifier {
		name := target.Name()
		if native, ok := nativeModules[name]; ok {
			key := includeKey{scope: scope, path: "native:" + name}
			if e.included[key] {
				return normal(NIX), nil
			}
			if err := native(e, scope); err != nil {
				return Result{}, err
			}
			e.included[key] = true
			e.Logger.Debug("include", "module", name, "source", "native")
			return normal(NIX), nil
		}
		src, err = e.Loader.ResolveName(name)
	} else {
		path, _ := target.Value.(string)
		src, err = e.Loader.ResolvePath(path)
	}
	if err != nil {
		return Result{}, err
	}

	// Marked before running so a module including itself stops there.
	key := includeKey{scope: scope, path: src.Path}
	if e.included[key] {
		return normal(NIX), nil
	}
	e.included[key] = true

	source := "file"
	if src.Embedded {
		source = "embedded"
	}
	e.Logger.Debug("include", "module", src.Name, "source", source, "path", src.Path)

	root, err := parser.ParseSource(src.Code, src.Path)
	if err != nil {
		delete(e.included, key)
		return Result{}, err
	}
	for _, stmt := range root.Children {
		if _, err := e.Eval(stmt, scope); err != nil {
			delete(e.included, key)
			return Result{}, err
		}
	}
	return normal(NIX), nil
}
