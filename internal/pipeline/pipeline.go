package pipeline

import (
	"github.com/eigerproject/eiger/internal/ast"
	"github.com/eigerproject/eiger/internal/diagnostics"
	"github.com/eigerproject/eiger/internal/token"
)

// PipelineContext carries source code through the front-end stages.
type PipelineContext struct {
	SourceCode string
	FilePath   string
	Tokens     []token.Token
	AstRoot    *ast.Node
	Errors     []*diagnostics.Error
}

// Processor is a single pipeline stage.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline. A stage that records errors stops the run; later
// stages would only report follow-up noise.
func (p *Pipeline) Run(initialCtx *PipelineContext) *PipelineContext {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
		if len(ctx.Errors) > 0 {
			break
		}
	}
	return ctx
}

// Err returns the first recorded error, or nil.
func (ctx *PipelineContext) Err() error {
	if len(ctx.Errors) == 0 {
		return nil
	}
	return ctx.Errors[0]
}
