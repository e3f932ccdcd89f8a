package params

import (
	"fmt"

	"github.com/Ondrekk12/pyright/internal/typesystem"
)

// ParameterKind is the effective binding kind of a virtual parameter.
type ParameterKind int

const (
	// ParamKindPositional parameters bind by position only. This covers
	// positional-only parameters and every expansion of a variadic
	// positional collector.
	ParamKindPositional ParameterKind = iota
	// ParamKindStandard parameters bind by position or by name.
	ParamKindStandard
	// ParamKindKeyword parameters bind by name only.
	ParamKindKeyword
)

func (k ParameterKind) String() string {
	switch k {
	case ParamKindPositional:
		return "positional"
	case ParamKindStandard:
		return "standard"
	case ParamKindKeyword:
		return "keyword"
	}
	return "unknown"
}

// VirtualParameter is one entry of the normalized parameter list. It may be
// a declared parameter verbatim or one element of a collector expansion.
type VirtualParameter struct {
	// Param is the originating declared parameter, or a synthesized one for
	// collector expansions.
	Param *typesystem.Parameter
	// Type is the resolved type of this entry, which for expansions is an
	// element type rather than the declared parameter's own type.
	Type typesystem.Type
	// DefaultType is the default argument type, nil if the entry has none.
	DefaultType typesystem.Type
	// Index is the 0-based position within the virtual list.
	Index int
	// DeclIndex is the index of the originating declared parameter.
	DeclIndex int
	Kind      ParameterKind
}

// ParameterListDetails is the normalized view of a signature's parameter
// list. Index fields hold -1 when the corresponding entry is absent, which
// is a normal outcome, not an error.
type ParameterListDetails struct {
	Params []VirtualParameter

	// PositionOnlyParamCount is the number of leading parameters callers
	// may only bind by position. A default value inside the positional-only
	// prefix truncates the count at that point.
	PositionOnlyParamCount int
	// PositionParamCount is the number of parameters bindable by position.
	PositionParamCount int

	// ArgsIndex is the position of the first variadic positional virtual
	// parameter, or -1.
	ArgsIndex int
	// KwargsIndex is the position of the first variadic keyword virtual
	// parameter, or -1.
	KwargsIndex int
	// FirstKeywordOnlyIndex is the position where the keyword-only region
	// begins, or -1 when the signature has none.
	FirstKeywordOnlyIndex int
	// FirstPositionOrKeywordIndex is the position of the first virtual
	// parameter that is not positional-only; equals len(Params) when every
	// entry binds by position only.
	FirstPositionOrKeywordIndex int

	HasUnpackedVariadicTypeVar bool
	HasUnpackedTypedDict       bool

	// UnpackedKwargsTypedDict is the TypedDict class an unpacked "**kwargs"
	// was expanded from, or nil.
	UnpackedKwargsTypedDict *typesystem.ClassType
	// ParamSpec is the captured parameter specification when the signature
	// ends in a "*args: P.args, **kwargs: P.kwargs" pair, or nil.
	ParamSpec *typesystem.TypeVarType
}

// GetParameterListDetails normalizes sig's declared parameter list into a
// flat virtual parameter list. The input signature is never mutated; calling
// this twice on the same signature yields structurally identical results.
func GetParameterListDetails(sig *typesystem.Signature) *ParameterListDetails {
	details := &ParameterListDetails{
		ArgsIndex:             -1,
		KwargsIndex:           -1,
		FirstKeywordOnlyIndex: -1,
	}
	acc := &accumulator{
		sig:             sig,
		details:         details,
		posOnlyBoundary: positionOnlyBoundary(sig),
	}

	acc.seedPositionOnlyCount()

	for i := range sig.Params {
		p := &sig.Params[i]
		switch p.Category {
		case typesystem.ParamCategorySimple:
			acc.addSimple(i, p)
		case typesystem.ParamCategoryArgsList:
			acc.addArgsList(i, p)
		case typesystem.ParamCategoryKwargsDict:
			acc.addKwargsDict(i, p)
		case typesystem.ParamCategorySeparator:
			// Consumed by the boundary resolver; emits no virtual entry.
		}
	}

	acc.finalize()
	return details
}

// accumulator carries the walk state of one normalization pass.
type accumulator struct {
	sig     *typesystem.Signature
	details *ParameterListDetails

	// posOnlyBoundary is the declared index where positional-only
	// parameters end, -1 when absent.
	posOnlyBoundary int
	// sawKeywordOnlySeparator is set once the keyword-only region opens,
	// whether by a bare "*", a "*args" collector, or a "**kwargs" collector.
	sawKeywordOnlySeparator bool
}

func (a *accumulator) append(vp VirtualParameter) {
	vp.Index = len(a.details.Params)
	a.details.Params = append(a.details.Params, vp)
}

func (a *accumulator) withinPositionOnlyPrefix(declIndex int) bool {
	return a.posOnlyBoundary >= 0 && declIndex < a.posOnlyBoundary
}

func (a *accumulator) atOrPastPositionOnlyBoundary(declIndex int) bool {
	return a.posOnlyBoundary < 0 || declIndex >= a.posOnlyBoundary
}

// seedPositionOnlyCount counts the positional-only prefix. The count stops
// at the first defaulted parameter: a caller who omits that argument could
// not bind anything after it by position either.
func (a *accumulator) seedPositionOnlyCount() {
	for i := 0; i < a.posOnlyBoundary; i++ {
		if a.sig.Params[i].HasDefault {
			break
		}
		a.details.PositionOnlyParamCount++
	}
}

func (a *accumulator) addSimple(declIndex int, p *typesystem.Parameter) {
	if !a.sawKeywordOnlySeparator {
		a.details.PositionParamCount++
	}

	kind := ParamKindStandard
	if a.withinPositionOnlyPrefix(declIndex) {
		kind = ParamKindPositional
	} else if a.sawKeywordOnlySeparator {
		kind = ParamKindKeyword
	}

	defaultType := a.sig.DefaultArgTypeOverride(declIndex)
	if defaultType == nil {
		defaultType = p.DefaultType
	}

	a.append(VirtualParameter{
		Param:       p,
		Type:        a.sig.ParamType(declIndex),
		DefaultType: defaultType,
		DeclIndex:   declIndex,
		Kind:        kind,
	})
}

func (a *accumulator) addArgsList(declIndex int, p *typesystem.Parameter) {
	paramType := a.sig.ParamType(declIndex)

	if tuple, ok := typesystem.AsUnpackedTuple(paramType); ok && p.Name != "" {
		a.expandUnpackedTuple(declIndex, p, tuple)
		return
	}

	if p.Name != "" && a.details.ArgsIndex < 0 {
		a.details.ArgsIndex = len(a.details.Params)
		if typesystem.IsVariadicTypeVar(p.DeclaredType) {
			a.details.HasUnpackedVariadicTypeVar = true
		}
	}

	// A "*args" collector, named or bare, opens the keyword-only region.
	if a.details.FirstKeywordOnlyIndex < 0 && a.atOrPastPositionOnlyBoundary(declIndex) {
		index := len(a.details.Params)
		if p.Name != "" {
			// Land just past the collector itself.
			index++
		}
		a.details.FirstKeywordOnlyIndex = index
		a.sawKeywordOnlySeparator = true
	}

	if p.Name != "" {
		a.append(VirtualParameter{
			Param:     p,
			Type:      paramType,
			DeclIndex: declIndex,
			Kind:      ParamKindPositional,
		})
	}
}

// expandUnpackedTuple flattens "*args: *tuple[...]" into one virtual
// parameter per element descriptor.
func (a *accumulator) expandUnpackedTuple(declIndex int, p *typesystem.Parameter, tuple *typesystem.ClassType) {
	for elemIndex, elem := range tuple.TupleElements {
		isUnboundedTail := elem.IsUnbounded || typesystem.IsVariadicTypeVar(elem.Type)

		category := typesystem.ParamCategorySimple
		if isUnboundedTail {
			category = typesystem.ParamCategoryArgsList
			if a.details.ArgsIndex < 0 {
				a.details.ArgsIndex = len(a.details.Params)
			}
			if typesystem.IsVariadicTypeVar(p.DeclaredType) {
				a.details.HasUnpackedVariadicTypeVar = true
			}
		}

		// Each element past the first widens a positional-only prefix the
		// collector was declared inside.
		if elemIndex > 0 && a.withinPositionOnlyPrefix(declIndex) {
			a.details.PositionOnlyParamCount++
		}

		a.append(VirtualParameter{
			Param: &typesystem.Parameter{
				Category:        category,
				Name:            fmt.Sprintf("%s[%d]", p.Name, elemIndex),
				NameSynthesized: true,
				DeclaredType:    elem.Type,
				HasDeclaredType: true,
			},
			Type:      elem.Type,
			DeclIndex: declIndex,
			Kind:      ParamKindPositional,
		})

		if !isUnboundedTail {
			a.details.PositionParamCount++
		}
	}

	// The expansion behaves as positional parameters followed by a
	// keyword-only separator.
	if a.details.FirstKeywordOnlyIndex < 0 && a.atOrPastPositionOnlyBoundary(declIndex) {
		a.details.FirstKeywordOnlyIndex = len(a.details.Params)
		a.sawKeywordOnlySeparator = true
	}
}

func (a *accumulator) addKwargsDict(declIndex int, p *typesystem.Parameter) {
	a.sawKeywordOnlySeparator = true
	paramType := a.sig.ParamType(declIndex)

	if td, ok := typesystem.AsUnpackedTypedDict(paramType); ok && len(td.TypedDictEntries) > 0 {
		a.expandUnpackedTypedDict(declIndex, p, td)
		return
	}

	if p.Name == "" {
		return
	}
	if a.details.KwargsIndex < 0 {
		a.details.KwargsIndex = len(a.details.Params)
	}
	if a.details.FirstKeywordOnlyIndex < 0 {
		a.details.FirstKeywordOnlyIndex = len(a.details.Params)
	}
	a.append(VirtualParameter{
		Param:     p,
		Type:      paramType,
		DeclIndex: declIndex,
		Kind:      ParamKindKeyword,
	})
}

// expandUnpackedTypedDict flattens "**kwargs: **TD" into one keyword virtual
// parameter per known TypedDict entry, plus a catch-all collector when the
// dict declares one.
func (a *accumulator) expandUnpackedTypedDict(declIndex int, p *typesystem.Parameter, td *typesystem.ClassType) {
	if a.details.FirstKeywordOnlyIndex < 0 {
		a.details.FirstKeywordOnlyIndex = len(a.details.Params)
	}

	for _, entry := range td.TypedDictEntries {
		valueType := typesystem.PartiallySpecialize(entry.ValueType, td)

		// An optional entry behaves like a keyword parameter with a default
		// of its own type; a required entry has no default.
		var defaultType typesystem.Type
		if !entry.Required {
			defaultType = valueType
		}

		a.append(VirtualParameter{
			Param: &typesystem.Parameter{
				Category:        typesystem.ParamCategorySimple,
				Name:            entry.Name,
				DeclaredType:    valueType,
				HasDeclaredType: true,
			},
			Type:        valueType,
			DefaultType: defaultType,
			DeclIndex:   declIndex,
			Kind:        ParamKindKeyword,
		})
	}

	if td.ExtraItems != nil {
		extraType := typesystem.PartiallySpecialize(td.ExtraItems, td)
		if a.details.KwargsIndex < 0 {
			a.details.KwargsIndex = len(a.details.Params)
		}
		a.append(VirtualParameter{
			Param: &typesystem.Parameter{
				Category:        typesystem.ParamCategoryKwargsDict,
				Name:            p.Name,
				NameSynthesized: p.Name != "" && p.NameSynthesized,
				DeclaredType:    extraType,
				HasDeclaredType: true,
			},
			Type:      extraType,
			DeclIndex: declIndex,
			Kind:      ParamKindKeyword,
		})
	}

	a.details.HasUnpackedTypedDict = true
	a.details.UnpackedKwargsTypedDict = td
}

func (a *accumulator) finalize() {
	a.details.ParamSpec = a.sig.ParamSpecFromArgsKwargs()

	a.details.FirstPositionOrKeywordIndex = len(a.details.Params)
	for i := range a.details.Params {
		if a.details.Params[i].Kind != ParamKindPositional {
			a.details.FirstPositionOrKeywordIndex = i
			break
		}
	}
}
