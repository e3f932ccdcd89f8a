package params

import (
	"strings"

	"github.com/Ondrekk12/pyright/internal/config"
	"github.com/Ondrekk12/pyright/internal/symbols"
	"github.com/Ondrekk12/pyright/internal/typesystem"
)

// positionOnlyBoundary determines where positional-only parameters end.
// Declared parameters at indices strictly below the returned boundary are
// positional-only. Returns -1 when the signature has no positional-only
// region.
//
// An explicit "/" separator wins. Without one, the legacy convention
// applies: a leading run of ordinary parameters whose names start with "__"
// (and are not dunder names) is positional-only. The first parameter is
// exempt from terminating the scan when its name fails the prefix test,
// modeling the implicit self/cls parameter; static methods get no such
// exemption.
func positionOnlyBoundary(sig *typesystem.Signature) int {
	for i := range sig.Params {
		if sig.Params[i].Category == typesystem.ParamCategorySeparator {
			return i
		}
	}

	boundary := -1
	for i := range sig.Params {
		p := &sig.Params[i]
		if p.Category != typesystem.ParamCategorySimple {
			break
		}
		if p.Name == "" {
			break
		}
		if symbols.IsDunderName(p.Name) || !strings.HasPrefix(p.Name, config.PositionOnlyPrefix) {
			if i > 0 || sig.IsStatic {
				break
			}
			continue
		}
		boundary = i + 1
	}
	return boundary
}
