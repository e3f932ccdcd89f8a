package prettyprinter

import (
	"bytes"
	"fmt"

	"github.com/Ondrekk12/pyright/internal/params"
	"github.com/Ondrekk12/pyright/internal/typesystem"
)

// --- Details Printer (renders a normalized parameter list for humans) ---

type DetailsPrinter struct {
	buf bytes.Buffer
}

func NewDetailsPrinter() *DetailsPrinter {
	return &DetailsPrinter{}
}

// Print renders the signature and its normalized details as a small report.
func (p *DetailsPrinter) Print(sig *typesystem.Signature, details *params.ParameterListDetails) string {
	p.buf.Reset()

	fmt.Fprintf(&p.buf, "%s\n", sig.String())

	for i := range details.Params {
		vp := &details.Params[i]
		fmt.Fprintf(&p.buf, "  [%d] %-24s %-10s decl=%d", vp.Index, p.virtualName(vp), vp.Kind, vp.DeclIndex)
		if vp.DefaultType != nil {
			fmt.Fprintf(&p.buf, " default=%s", vp.DefaultType.String())
		}
		p.buf.WriteString("\n")
	}

	fmt.Fprintf(&p.buf, "  positionOnlyParamCount=%d positionParamCount=%d\n",
		details.PositionOnlyParamCount, details.PositionParamCount)
	fmt.Fprintf(&p.buf, "  argsIndex=%s kwargsIndex=%s firstKeywordOnlyIndex=%s firstPositionOrKeywordIndex=%d\n",
		formatIndex(details.ArgsIndex), formatIndex(details.KwargsIndex),
		formatIndex(details.FirstKeywordOnlyIndex), details.FirstPositionOrKeywordIndex)

	if details.HasUnpackedVariadicTypeVar {
		p.buf.WriteString("  hasUnpackedVariadicTypeVar\n")
	}
	if details.HasUnpackedTypedDict {
		fmt.Fprintf(&p.buf, "  hasUnpackedTypedDict (%s)\n", details.UnpackedKwargsTypedDict.Name)
	}
	if details.ParamSpec != nil {
		fmt.Fprintf(&p.buf, "  paramSpec=%s\n", details.ParamSpec.Name)
	}

	return p.buf.String()
}

func (p *DetailsPrinter) virtualName(vp *params.VirtualParameter) string {
	name := vp.Param.Name
	if name == "" {
		name = "<anonymous>"
	}
	return fmt.Sprintf("%s: %s", name, vp.Type.String())
}

func formatIndex(index int) string {
	if index < 0 {
		return "-"
	}
	return fmt.Sprintf("%d", index)
}
