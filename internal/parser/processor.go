package parser

import (
	"github.com/Ondrekk12/pyright/internal/diagnostics"
	"github.com/Ondrekk12/pyright/internal/pipeline"
	"github.com/Ondrekk12/pyright/internal/token"
)

type ParserProcessor struct {
	Env *TypeEnv
}

func (pp *ParserProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.TokenStream == nil {
		// This case should ideally not be hit if lexer runs first, but as a safeguard:
		err := diagnostics.NewError("P000", token.Token{}, "parser: token stream is nil")
		ctx.Errors = append(ctx.Errors, err)
		return ctx
	}

	env := pp.Env
	if env == nil {
		env = NewTypeEnv()
	}

	parser := New(ctx.TokenStream, env)
	sig := parser.Parse()
	sig.IsStatic = ctx.IsStatic
	ctx.Signature = sig

	for _, err := range parser.Errors() {
		if err.File == "" {
			err.File = ctx.FilePath
		}
		ctx.Errors = append(ctx.Errors, err)
	}
	return ctx
}
