package prettyprinter

import (
	"strings"
	"testing"

	"github.com/Ondrekk12/pyright/internal/params"
	"github.com/Ondrekk12/pyright/internal/typesystem"
)

func TestPrintDetails(t *testing.T) {
	intType := typesystem.NewClassInstance("int")
	sig := &typesystem.Signature{Params: []typesystem.Parameter{
		{Category: typesystem.ParamCategorySimple, Name: "a", DeclaredType: intType, HasDeclaredType: true},
		{Category: typesystem.ParamCategorySeparator},
		{Category: typesystem.ParamCategorySimple, Name: "b", DeclaredType: intType, HasDeclaredType: true, HasDefault: true, DefaultType: intType},
	}}
	details := params.GetParameterListDetails(sig)

	out := NewDetailsPrinter().Print(sig, details)

	for _, want := range []string{
		"(a: int, /, b: int = ...)",
		"[0] a: int",
		"[1] b: int",
		"default=int",
		"positionOnlyParamCount=1 positionParamCount=2",
		"argsIndex=- kwargsIndex=- firstKeywordOnlyIndex=-",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintDetailsParamSpec(t *testing.T) {
	p := &typesystem.TypeVarType{Name: "P", IsParamSpec: true}
	sig := &typesystem.Signature{Params: []typesystem.Parameter{
		{Category: typesystem.ParamCategoryArgsList, Name: "args", DeclaredType: p.WithAccess(typesystem.AccessArgs), HasDeclaredType: true},
		{Category: typesystem.ParamCategoryKwargsDict, Name: "kwargs", DeclaredType: p.WithAccess(typesystem.AccessKwargs), HasDeclaredType: true},
	}}
	details := params.GetParameterListDetails(sig)

	out := NewDetailsPrinter().Print(sig, details)
	if !strings.Contains(out, "paramSpec=P") {
		t.Errorf("output missing captured ParamSpec:\n%s", out)
	}
}

func TestPrinterIsReusable(t *testing.T) {
	sig := &typesystem.Signature{Params: []typesystem.Parameter{
		{Category: typesystem.ParamCategorySimple, Name: "a"},
	}}
	details := params.GetParameterListDetails(sig)

	printer := NewDetailsPrinter()
	first := printer.Print(sig, details)
	second := printer.Print(sig, details)
	if first != second {
		t.Errorf("printer output should not accumulate across calls")
	}
}
