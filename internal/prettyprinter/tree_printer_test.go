package prettyprinter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eigerproject/eiger/internal/parser"
	"github.com/eigerproject/eiger/internal/prettyprinter"
)

func TestTree(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{
			"literals",
			`emit("a", 1.5, nix)`,
			"Block\n  FuncCall\n    Identifier emit\n    Literal \"a\"\n    Literal 1.5\n    Literal nix\n",
		},
		{
			"anonymous_function",
			"let readonly f = func(x) > x",
			"Block\n  Let f (readonly)\n    FuncDefInline <anonymous>\n      Identifier x\n      Identifier x\n",
		},
		{
			"include",
			"include math",
			"Block\n  Include\n    Identifier math\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			root, err := parser.ParseSource(tc.input, "test.ei")
			require.NoError(t, err)
			assert.Equal(t, tc.want, prettyprinter.Tree(root))
		})
	}
}

func TestTreeNil(t *testing.T) {
	assert.Equal(t, "", prettyprinter.Tree(nil))
}
