package pipeline_test

import (
	"testing"

	"github.com/Ondrekk12/pyright/internal/lexer"
	"github.com/Ondrekk12/pyright/internal/params"
	"github.com/Ondrekk12/pyright/internal/parser"
	"github.com/Ondrekk12/pyright/internal/pipeline"
	"github.com/Ondrekk12/pyright/internal/typesystem"
)

// run pushes a signature in source notation through all three stages.
func run(t *testing.T, source string, env *parser.TypeEnv, isStatic bool) *pipeline.PipelineContext {
	t.Helper()
	ctx := &pipeline.PipelineContext{Source: source, IsStatic: isStatic}
	p := pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{Env: env},
		&pipeline.NormalizeProcessor{},
	)
	return p.Run(ctx)
}

func TestEndToEndPlainSignature(t *testing.T) {
	ctx := run(t, "(a: int, b: str = ...)", parser.NewTypeEnv(), false)
	if ctx.HasErrors() {
		t.Fatalf("unexpected errors: %v", ctx.Errors)
	}
	if ctx.Details == nil {
		t.Fatal("normalization did not run")
	}

	d := ctx.Details
	if len(d.Params) != 2 {
		t.Fatalf("got %d virtual parameters, want 2", len(d.Params))
	}
	if d.PositionParamCount != 2 || d.PositionOnlyParamCount != 0 {
		t.Errorf("counts = (%d position, %d position-only), want (2, 0)",
			d.PositionParamCount, d.PositionOnlyParamCount)
	}
	if d.Params[0].Kind != params.ParamKindStandard || d.Params[1].Kind != params.ParamKindStandard {
		t.Errorf("plain parameters should be standard kind")
	}
	if d.Params[1].DefaultType == nil {
		t.Errorf("defaulted parameter should carry its default type")
	}
}

func TestEndToEndSeparators(t *testing.T) {
	ctx := run(t, "(a, b, /, c, *, d)", parser.NewTypeEnv(), false)
	if ctx.HasErrors() {
		t.Fatalf("unexpected errors: %v", ctx.Errors)
	}

	d := ctx.Details
	if len(d.Params) != 4 {
		t.Fatalf("separators must not produce virtual parameters, got %d", len(d.Params))
	}
	if d.PositionOnlyParamCount != 2 {
		t.Errorf("PositionOnlyParamCount = %d, want 2", d.PositionOnlyParamCount)
	}
	if d.PositionParamCount != 3 {
		t.Errorf("PositionParamCount = %d, want 3", d.PositionParamCount)
	}
	if d.FirstKeywordOnlyIndex != 3 {
		t.Errorf("FirstKeywordOnlyIndex = %d, want 3", d.FirstKeywordOnlyIndex)
	}
	if d.FirstPositionOrKeywordIndex != 2 {
		t.Errorf("FirstPositionOrKeywordIndex = %d, want 2", d.FirstPositionOrKeywordIndex)
	}
}

func TestEndToEndStaticFlagReachesNormalization(t *testing.T) {
	// With an implicit first parameter, a "__"-prefixed run starting at
	// index 1 forms a legacy positional-only prefix; a static method gets
	// no such exemption.
	source := "(self, __a, __b, c)"

	instance := run(t, source, parser.NewTypeEnv(), false)
	if instance.Details.PositionOnlyParamCount != 3 {
		t.Errorf("instance method: PositionOnlyParamCount = %d, want 3",
			instance.Details.PositionOnlyParamCount)
	}

	static := run(t, source, parser.NewTypeEnv(), true)
	if static.Details.PositionOnlyParamCount != 0 {
		t.Errorf("static method: PositionOnlyParamCount = %d, want 0",
			static.Details.PositionOnlyParamCount)
	}
}

func TestEndToEndUnpackedTuple(t *testing.T) {
	env := parser.NewTypeEnv()
	ctx := run(t, "(*args: *tuple[int, str])", env, false)
	if ctx.HasErrors() {
		t.Fatalf("unexpected errors: %v", ctx.Errors)
	}

	d := ctx.Details
	if len(d.Params) != 2 {
		t.Fatalf("got %d virtual parameters, want 2", len(d.Params))
	}
	for i, want := range []string{"args[0]", "args[1]"} {
		if d.Params[i].Param.Name != want {
			t.Errorf("virtual param[%d] name = %q, want %q", i, d.Params[i].Param.Name, want)
		}
		if !d.Params[i].Param.NameSynthesized {
			t.Errorf("virtual param[%d] should be marked synthesized", i)
		}
		if d.Params[i].Kind != params.ParamKindPositional {
			t.Errorf("virtual param[%d] should bind by position only", i)
		}
	}
	if d.ArgsIndex != -1 {
		t.Errorf("a fully expanded tuple leaves no variadic entry, ArgsIndex = %d", d.ArgsIndex)
	}
}

func TestEndToEndUnpackedTypedDict(t *testing.T) {
	env := parser.NewTypeEnv()
	env.DeclareTypedDict("Movie", []typesystem.TypedDictEntry{
		{Name: "name", ValueType: typesystem.NewClassInstance("str"), Required: true},
		{Name: "year", ValueType: typesystem.NewClassInstance("int"), Required: false},
	}, nil)
	ctx := run(t, "(**kwargs: **Movie)", env, false)
	if ctx.HasErrors() {
		t.Fatalf("unexpected errors: %v", ctx.Errors)
	}

	d := ctx.Details
	if !d.HasUnpackedTypedDict || d.UnpackedKwargsTypedDict == nil {
		t.Fatal("TypedDict expansion flags not set")
	}
	if len(d.Params) != 2 {
		t.Fatalf("got %d virtual parameters, want 2", len(d.Params))
	}
	if d.Params[0].Param.Name != "name" || d.Params[0].Kind != params.ParamKindKeyword {
		t.Errorf("entry 0 = (%q, %s), want (name, keyword)", d.Params[0].Param.Name, d.Params[0].Kind)
	}
	if d.Params[1].DefaultType == nil {
		t.Errorf("a non-required entry should carry a default type")
	}
}

func TestEndToEndParamSpecCapture(t *testing.T) {
	env := parser.NewTypeEnv()
	env.DeclareParamSpec("P")
	ctx := run(t, "(x: int, *args: P.args, **kwargs: P.kwargs)", env, false)
	if ctx.HasErrors() {
		t.Fatalf("unexpected errors: %v", ctx.Errors)
	}
	if ps := ctx.Details.ParamSpec; ps == nil || ps.Name != "P" {
		t.Errorf("ParamSpec = %v, want captured P", ctx.Details.ParamSpec)
	}
}

func TestNormalizationSkippedOnParseErrors(t *testing.T) {
	ctx := run(t, "(x: Widget)", parser.NewTypeEnv(), false)
	if !ctx.HasErrors() {
		t.Fatal("expected a diagnostic for the unknown type name")
	}
	if ctx.Details != nil {
		t.Errorf("normalization must not run on a signature with diagnostics")
	}
}

func TestDiagnosticsCarryFilePath(t *testing.T) {
	ctx := &pipeline.PipelineContext{FilePath: "suite.yaml", Source: "(a;)"}
	p := pipeline.New(&lexer.LexerProcessor{}, &parser.ParserProcessor{})
	ctx = p.Run(ctx)
	if !ctx.HasErrors() {
		t.Fatal("expected a lexer diagnostic")
	}
	if ctx.Errors[0].File != "suite.yaml" {
		t.Errorf("diagnostic file = %q, want %q", ctx.Errors[0].File, "suite.yaml")
	}
}
