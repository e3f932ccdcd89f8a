package pipeline

import (
	"github.com/Ondrekk12/pyright/internal/diagnostics"
	"github.com/Ondrekk12/pyright/internal/params"
	"github.com/Ondrekk12/pyright/internal/token"
	"github.com/Ondrekk12/pyright/internal/typesystem"
)

// PipelineContext carries one signature through the stages: notation text
// in, token stream, parsed signature, and normalized details out.
type PipelineContext struct {
	FilePath string
	Source   string
	IsStatic bool

	TokenStream []token.Token
	Signature   *typesystem.Signature
	Details     *params.ParameterListDetails

	Errors []*diagnostics.DiagnosticError
}

// HasErrors reports whether any stage produced diagnostics.
func (ctx *PipelineContext) HasErrors() bool {
	return len(ctx.Errors) > 0
}

// Processor is one processing stage.
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

// Run executes the pipeline.
func (p *Pipeline) Run(initialCtx *PipelineContext) *PipelineContext {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
		// Continue on errors so every stage's diagnostics get collected.
	}
	return ctx
}
