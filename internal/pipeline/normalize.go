package pipeline

import "github.com/Ondrekk12/pyright/internal/params"

// NormalizeProcessor runs parameter-list normalization on the parsed
// signature. It lives here rather than in params because the params package
// stays free of pipeline concerns.
type NormalizeProcessor struct{}

func (np *NormalizeProcessor) Process(ctx *PipelineContext) *PipelineContext {
	// Normalization assumes a well-formed signature; skip it when earlier
	// stages reported problems.
	if ctx.Signature == nil || ctx.HasErrors() {
		return ctx
	}
	ctx.Details = params.GetParameterListDetails(ctx.Signature)
	return ctx
}
