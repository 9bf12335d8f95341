package parser_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eigerproject/eiger/internal/ast"
	"github.com/eigerproject/eiger/internal/diagnostics"
	"github.com/eigerproject/eiger/internal/lexer"
	"github.com/eigerproject/eiger/internal/parser"
	"github.com/eigerproject/eiger/internal/pipeline"
	"github.com/eigerproject/eiger/internal/prettyprinter"
)

func tree(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

func TestParser(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{
			"precedence",
			"a = 5 + 2 * 10",
			tree(
				"Block",
				"  BinOp =",
				"    Identifier a",
				"    BinOp +",
				"      Literal 5",
				"      BinOp *",
				"        Literal 2",
				"        Literal 10",
			),
		},
		{
			"unary_minus_and_power",
			"let readonly x = -2 ^ 2",
			tree(
				"Block",
				"  Let x (readonly)",
				"    UnaryOp -",
				"      BinOp ^",
				"        Literal 2",
				"        Literal 2",
			),
		},
		{
			"postfix_chain",
			"obj.method(1, 2).field[0]",
			tree(
				"Block",
				"  ElementAccess",
				"    AttrAccess",
				"      AttrAccess",
				"        Identifier obj",
				"        FuncCall",
				"          Identifier method",
				"          Literal 1",
				"          Literal 2",
				"      Identifier field",
				"    Literal 0",
			),
		},
		{
			"inline_function",
			"func sq(a) > a * a",
			tree(
				"Block",
				"  FuncDefInline sq",
				"    BinOp *",
				"      Identifier a",
				"      Identifier a",
				"    Identifier a",
			),
		},
		{
			"variadic_private_function",
			"private func f(a, +rest)\n  ret rest\nend",
			tree(
				"Block",
				"  FuncDef f (private)",
				"    Block",
				"      Return",
				"        Identifier rest",
				"    Identifier a",
				"    Identifier +rest",
			),
		},
		{
			"bare_return",
			"func f()\n  ret\nend",
			tree(
				"Block",
				"  FuncDef f",
				"    Block",
				"      Return",
			),
		},
		{
			"if_elif_else",
			"if x ?= 1 then emit(1) elif x ?= 2 then emit(2) else emit(3) end",
			tree(
				"Block",
				"  If",
				"    BinOp ?=",
				"      Identifier x",
				"      Literal 1",
				"    Block",
				"      FuncCall",
				"        Identifier emit",
				"        Literal 1",
				"    BinOp ?=",
				"      Identifier x",
				"      Literal 2",
				"    Block",
				"      FuncCall",
				"        Identifier emit",
				"        Literal 2",
				"    Block",
				"      FuncCall",
				"        Identifier emit",
				"        Literal 3",
			),
		},
		{
			"for_to",
			"for i = 0 to 3 do brk end",
			tree(
				"Block",
				"  ForTo i",
				"    Literal 0",
				"    Literal 3",
				"    Block",
				"      Break",
			),
		},
		{
			"call_does_not_cross_lines",
			"f\n(1)",
			tree(
				"Block",
				"  Identifier f",
				"  Literal 1",
			),
		},
		{
			"include",
			"include math\ninclude \"lib/x\"",
			tree(
				"Block",
				"  Include",
				"    Identifier math",
				"  Include",
				"    Literal \"lib/x\"",
			),
		},
		{
			"logical_operators",
			"not a and b or c",
			tree(
				"Block",
				"  BinOp or",
				"    BinOp and",
				"      UnaryOp not",
				"        Identifier a",
				"      Identifier b",
				"    Identifier c",
			),
		},
		{
			"class_with_constructor",
			"class P\n  let name\n  func new(n)\n    this.name = n\n  end\nend",
			tree(
				"Block",
				"  Class P",
				"    Block",
				"      Let name",
				"      FuncDef new",
				"        Block",
				"          BinOp =",
				"            AttrAccess",
				"              Identifier this",
				"              Identifier name",
				"            Identifier n",
				"        Identifier n",
			),
		},
		{
			"array_literals",
			`[1, "two", true, nix]`,
			tree(
				"Block",
				"  Array",
				"    Literal 1",
				"    Literal \"two\"",
				"    Literal true",
				"    Literal nix",
			),
		},
		{
			"anonymous_function_argument",
			"map(xs, func(x) > x * 2)",
			tree(
				"Block",
				"  FuncCall",
				"    Identifier map",
				"    Identifier xs",
				"    FuncDefInline <anonymous>",
				"      BinOp *",
				"        Identifier x",
				"        Literal 2",
				"      Identifier x",
			),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := &pipeline.PipelineContext{SourceCode: tc.input, FilePath: "test.ei"}

			lexerProcessor := &lexer.LexerProcessor{}
			ctx = lexerProcessor.Process(ctx)

			parserProcessor := &parser.ParserProcessor{}
			ctx = parserProcessor.Process(ctx)

			require.Empty(t, ctx.Errors)
			assert.Equal(t, tc.want, prettyprinter.Tree(ctx.AstRoot))
		})
	}
}

func TestParserErrors(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		message    string
		line, col  int
		incomplete bool
	}{
		{"missing let name", "let = 5", "Unexpected token `=`", 1, 5, false},
		{"stray paren", ")", "Unexpected token `)`", 1, 1, false},
		{"unfinished if", "if x then", "Unexpected End of Input", 1, 10, true},
		{"dangling operator", "1 +", "Unexpected End of Input", 1, 4, true},
		{"variadic not last", "func f(+a, b) end", "Variadic parameter +a must be the last parameter", 1, 10, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.ParseSource(tt.input, "test.ei")
			require.Error(t, err)

			var de *diagnostics.Error
			require.ErrorAs(t, err, &de)
			assert.Equal(t, diagnostics.ParserError, de.Kind)
			assert.Equal(t, tt.message, de.Message)
			assert.Equal(t, tt.line, de.Line)
			assert.Equal(t, tt.col, de.Column)
			assert.Equal(t, "test.ei", de.File)
			assert.Equal(t, tt.incomplete, parser.IsIncomplete(err))
		})
	}
}

func TestParseSourcePositions(t *testing.T) {
	root, err := parser.ParseSource("let a = 1\n  emitln(a)", "pos.ei")
	require.NoError(t, err)
	require.Len(t, root.Children, 2)

	call := root.Children[1]
	assert.Equal(t, ast.FuncCall, call.Kind)
	assert.Equal(t, 2, call.Token.Line)
	assert.Equal(t, 3, call.Token.Column)
	assert.Equal(t, "pos.ei", call.Token.File)
}

func TestUnterminatedStringIsIncomplete(t *testing.T) {
	_, err := parser.ParseSource(`emitln("abc`, "<stdin>")
	require.Error(t, err)
	assert.True(t, parser.IsIncomplete(err))
}
