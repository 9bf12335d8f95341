package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eigerproject/eiger/internal/diagnostics"
)

type recordingProcessor struct {
	name string
	fail bool
	seen *[]string
}

func (p *recordingProcessor) Process(ctx *PipelineContext) *PipelineContext {
	*p.seen = append(*p.seen, p.name)
	if p.fail {
		ctx.Errors = append(ctx.Errors, diagnostics.New(diagnostics.ParserError, "%s failed", p.name))
	}
	return ctx
}

func TestPipelineStopsAtFirstFailingStage(t *testing.T) {
	var seen []string
	p := New(
		&recordingProcessor{name: "lex", seen: &seen},
		&recordingProcessor{name: "parse", fail: true, seen: &seen},
		&recordingProcessor{name: "never", seen: &seen},
	)

	ctx := p.Run(&PipelineContext{SourceCode: "x", FilePath: "a.ei"})
	assert.Equal(t, []string{"lex", "parse"}, seen)

	err := ctx.Err()
	require.Error(t, err)
	assert.True(t, diagnostics.Is(err, diagnostics.ParserError))
}

func TestPipelineWithoutErrors(t *testing.T) {
	var seen []string
	ctx := New(&recordingProcessor{name: "only", seen: &seen}).Run(&PipelineContext{})
	assert.NoError(t, ctx.Err())
	assert.Equal(t, []string{"only"}, seen)
}
