package evaluator

import (
	"bufio"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/eigerproject/eiger/internal/ast"
	"github.com/eigerproject/eiger/internal/config"
	"github.com/eigerproject/eiger/internal/modules"
)

type includeKey struct {
	scope *Scope
	path  string
}

type Evaluator struct {
	Out io.Writer
	In  *bufio.Reader

	// Terminal renders emitted text in the current console colors.
	Terminal *Terminal

	// Globals is the scope host constants such as fgcolor live in.
	Globals *Scope

	// Loader resolves include targets.
	Loader *modules.Loader

	Logger *slog.Logger

	// MaxDepth bounds the nesting of Eval calls. 0 disables the check.
	MaxDepth int

	rng       *rand.Rand
	included  map[includeKey]bool
	evalDepth int
}

func New(out io.Writer, in io.Reader) *Evaluator {
	if out == nil {
		out = os.Stdout
	}
	if in == nil {
		in = os.Stdin
	}
	return &Evaluator{
		Out:      out,
		In:       bufio.NewReader(in),
		Terminal: NewTerminal(out, config.ColorAuto),
		Loader:   modules.NewLoader("", ""),
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		MaxDepth: config.Default().MaxDepth,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		included: make(map[includeKey]bool),
	}
}

// Eval evaluates node in scope. Errors leaving Eval always carry a source
// position: the innermost node that raised them.
func (e *Evaluator) Eval(node *ast.Node, scope *Scope) (Result, error) {
	e.evalDepth++
	defer func() { e.evalDepth-- }()
	if e.MaxDepth > 0 && e.evalDepth > e.MaxDepth {
		return Result{}, locate(runtimeError("maximum recursion depth exceeded"), node)
	}

	res, err := e.evalCore(node, scope)
	if err != nil {
		return Result{}, locate(err, node)
	}
	if res.Value == nil {
		res.Value = NIX
	}
	return res, nil
}

func (e *Evaluator) evalCore(node *ast.Node, scope *Scope) (Result, error) {
	switch node.Kind {
	// Statements
	case ast.Block:
		return e.evalBlock(node, scope)
	case ast.Let:
		return e.evalLet(node, scope)
	case ast.If:
		return e.evalIf(node, scope)
	case ast.While:
		return e.evalWhile(node, scope)
	case ast.ForTo:
		return e.evalForTo(node, scope)
	case ast.Return:
		return e.evalReturn(node, scope)
	case ast.Break:
		return Result{Value: NIX, Signal: SignalBreak}, nil
	case ast.Continue:
		return Result{Value: NIX, Signal: SignalContinue}, nil
	case ast.FuncDef, ast.FuncDefInline:
		return e.evalFuncDef(node, scope)
	case ast.Class:
		return e.evalClass(node, scope)
	case ast.Namespace:
		return e.evalNamespace(node, scope)
	case ast.Dataclass:
		return e.evalDataclass(node, scope)
	case ast.Include:
		return e.evalInclude(node, scope)

	// Expressions
	case ast.FuncCall:
		return e.evalFuncCall(node, scope)
	case ast.BinOp:
		return e.evalBinOp(node, scope)
	case ast.UnaryOp:
		return e.evalUnaryOp(node, scope)
	case ast.Literal:
		return e.evalLiteral(node)
	case ast.Identifier:
		v, err := scope.Get(node.Name())
		return normal(v), err
	case ast.Array:
		return e.evalArray(node, scope)
	case ast.ElementAccess:
		return e.evalElementAccess(node, scope)
	case ast.AttrAccess:
		return e.evalAttrAccess(node, scope)
	}
	return Result{}, runtimeError("Invalid node %s", node.Kind)
}

// evalValue evaluates an expression node and drops its signal.
func (e *Evaluator) evalValue(node *ast.Node, scope *Scope) (Value, error) {
	res, err := e.Eval(node, scope)
	if err != nil {
		return nil, err
	}
	return res.Value, nil
}
