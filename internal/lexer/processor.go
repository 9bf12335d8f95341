package lexer

import (
	"errors"

	"github.com/eigerproject/eiger/internal/diagnostics"
	"github.com/eigerproject/eiger/internal/pipeline"
)

type LexerProcessor struct{}

func (lp *LexerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	tokens, err := New(ctx.SourceCode, ctx.FilePath).Tokenize()
	if err != nil {
		var de *diagnostics.Error
		if errors.As(err, &de) {
			ctx.Errors = append(ctx.Errors, de)
		} else {
			ctx.Errors = append(ctx.Errors, diagnostics.New(diagnostics.LexerError, "%s", err.Error()))
		}
		return ctx
	}
	ctx.Tokens = tokens
	return ctx
}
