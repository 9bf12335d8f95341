package parser

import (
	"github.com/eigerproject/eiger/internal/diagnostics"
	"github.com/eigerproject/eiger/internal/pipeline"
)

type ParserProcessor struct{}

func (pp *ParserProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Tokens == nil {
		ctx.Errors = append(ctx.Errors, diagnostics.New(diagnostics.ParserError, "parser: token stream is nil"))
		return ctx
	}

	parser := New(ctx.Tokens, ctx)
	ctx.AstRoot = parser.ParseProgram()

	for _, err := range ctx.Errors {
		if err.File == "" {
			err.File = ctx.FilePath
		}
	}

	return ctx
}
