package evaluator

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/eigerproject/eiger/internal/ast"
	"github.com/eigerproject/eiger/internal/config"
	"github.com/eigerproject/eiger/internal/diagnostics"
)

// ExitError is returned when a program calls exit(code). Hosts stop
// evaluating and exit with Code.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return "exit status " + strconv.Itoa(e.Code)
}

// Builtins are the functions every global scope starts with.
var Builtins = []*Builtin{
	{Name: config.EmitFuncName, Params: []string{"value"}, Fn: builtinEmit},
	{Name: config.EmitlnFuncName, Params: []string{"value"}, Fn: builtinEmitln},
	{Name: config.InFuncName, Fn: builtinIn},
	{Name: config.IncharFuncName, Fn: builtinInchar},
	{Name: config.IntFuncName, Params: []string{"value"}, Fn: builtinInt},
	{Name: config.DoubleFuncName, Params: []string{"value"}, Fn: builtinDouble},
	{Name: config.ClsFuncName, Fn: builtinCls},
	{Name: config.FmtFuncName, Params: []string{"format", "args"}, Variadic: true, Fn: builtinFmt},
	{Name: config.MapFuncName, Params: []string{"array", "callback"}, Fn: builtinMap},
	{Name: config.FilterFuncName, Params: []string{"array", "callback"}, Fn: builtinFilter},
	{Name: config.TimeFuncName, Fn: builtinTime},
	{Name: config.RandFuncName, Fn: builtinRand},
	{Name: config.AsciiFuncName, Params: []string{"chr"}, Fn: builtinAscii},
	{Name: config.ExitFuncName, Params: []string{"code"}, Fn: builtinExit},
	{Name: config.ColorFuncName, Params: []string{"fg", "bg"}, Fn: builtinColor},
	{Name: config.FreadFuncName, Params: []string{"path"}, Fn: builtinFread},
}

// SeedGlobals declares the builtins and the read-only console color
// constants in scope.
func SeedGlobals(scope *Scope) {
	for _, b := range Builtins {
		scope.Bind(b.Name, b, 0)
	}
	scope.Bind(config.FgColorName, num(config.DefaultFgColor), ast.Readonly)
	scope.Bind(config.BgColorName, num(config.DefaultBgColor), ast.Readonly)
}

func builtinEmit(e *Evaluator, args []Value) (Value, error) {
	e.Terminal.Write(args[0].String())
	return NIX, nil
}

func builtinEmitln(e *Evaluator, args []Value) (Value, error) {
	e.Terminal.Write(args[0].String() + "\n")
	return NIX, nil
}

func builtinCls(e *Evaluator, args []Value) (Value, error) {
	e.Terminal.Clear()
	return NIX, nil
}

// int rounds to the nearest integer, halves away from zero.
func builtinInt(e *Evaluator, args []Value) (Value, error) {
	f, err := toFloat(args[0])
	if err != nil {
		return nil, argumentError("Failed to convert to int")
	}
	return num(math.Round(f)), nil
}

func builtinDouble(e *Evaluator, args []Value) (Value, error) {
	f, err := toFloat(args[0])
	if err != nil {
		return nil, argumentError("Failed to convert to double")
	}
	return num(f), nil
}

func toFloat(v Value) (float64, error) {
	switch v := v.(type) {
	case *Number:
		return v.Value, nil
	case *String:
		return strconv.ParseFloat(strings.TrimSpace(v.Value), 64)
	}
	return 0, strconv.ErrSyntax
}

func builtinMap(e *Evaluator, args []Value) (Value, error) {
	arr, fn, err := arrayAndCallback(config.MapFuncName, args)
	if err != nil {
		return nil, err
	}
	out := make([]Value, 0, len(arr.Elements))
	for _, el := range arr.Elements {
		v, err := e.Apply(fn, []Value{el})
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return newArray(out), nil
}

// filter keeps the elements for which the callback returns true.
func builtinFilter(e *Evaluator, args []Value) (Value, error) {
	arr, fn, err := arrayAndCallback(config.FilterFuncName, args)
	if err != nil {
		return nil, err
	}
	out := make([]Value, 0, len(arr.Elements))
	for _, el := range arr.Elements {
		v, err := e.Apply(fn, []Value{el})
		if err != nil {
			return nil, err
		}
		if keep, _ := isTruthy(v); keep {
			out = append(out, el)
		}
	}
	return newArray(out), nil
}

func arrayAndCallback(name string, args []Value) (*Array, Value, error) {
	arr, ok := args[0].(*Array)
	if !ok {
		return nil, nil, argumentError("%s array is not an array", name)
	}
	switch args[1].(type) {
	case *Function, *InlineFunction, *Builtin:
	default:
		return nil, nil, argumentError("%s callback is not a function", name)
	}
	return arr, args[1], nil
}

// time returns seconds since the Unix epoch with sub-second precision.
func builtinTime(e *Evaluator, args []Value) (Value, error) {
	return num(float64(time.Now().UnixNano()) / 1e9), nil
}

func builtinRand(e *Evaluator, args []Value) (Value, error) {
	return num(e.rng.Float64()), nil
}

func builtinAscii(e *Evaluator, args []Value) (Value, error) {
	s, ok := args[0].(*String)
	if !ok || s.Value == "" {
		return nil, argumentError("ascii expects a non-empty string")
	}
	return num(float64(s.runes()[0])), nil
}

func builtinExit(e *Evaluator, args []Value) (Value, error) {
	n, ok := args[0].(*Number)
	if !ok {
		return nil, argumentError("exit code must be a number")
	}
	return nil, &ExitError{Code: int(n.Value)}
}

// color sets the console colors and mirrors them into fgcolor and bgcolor.
func builtinColor(e *Evaluator, args []Value) (Value, error) {
	fg, ok1 := args[0].(*Number)
	bg, ok2 := args[1].(*Number)
	if !ok1 || !ok2 || !validColor(fg.Value) || !validColor(bg.Value) {
		return nil, newError(diagnostics.ArgumentError, "%s: colors must be numbers from 0 to 15", config.ArgumentErrorStr)
	}
	e.Terminal.SetColors(int(fg.Value), int(bg.Value))
	if e.Globals != nil {
		e.Globals.Bind(config.FgColorName, num(math.Trunc(fg.Value)), ast.Readonly)
		e.Globals.Bind(config.BgColorName, num(math.Trunc(bg.Value)), ast.Readonly)
	}
	return NIX, nil
}

func validColor(f float64) bool {
	return f >= 0 && f < 16
}
