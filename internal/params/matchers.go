package params

import "github.com/Ondrekk12/pyright/internal/typesystem"

// IsParamSpecArgsArgument reports whether argType is an acceptable argument
// for a "*args: P.args" parameter capturing paramSpec. Every union member
// must be the same ParamSpec's ".args" projection, a "tuple[Any, ...]", or
// the dynamic type itself.
func IsParamSpecArgsArgument(paramSpec *typesystem.TypeVarType, argType typesystem.Type) bool {
	matches := true
	typesystem.DoForEachSubtype(argType, func(subtype typesystem.Type) {
		if !isParamSpecArgsSubtype(paramSpec, subtype) {
			matches = false
		}
	})
	return matches
}

func isParamSpecArgsSubtype(paramSpec *typesystem.TypeVarType, subtype typesystem.Type) bool {
	if typesystem.IsAnyOrUnknown(subtype) {
		return true
	}
	if tv, ok := subtype.(*typesystem.TypeVarType); ok {
		return tv.Access == typesystem.AccessArgs && typesystem.IsSameParamSpec(paramSpec, tv)
	}
	if tuple, ok := typesystem.AsTupleInstance(subtype); ok && len(tuple.TupleElements) == 1 {
		elem := tuple.TupleElements[0]
		return elem.IsUnbounded && typesystem.IsAnyOrUnknown(elem.Type)
	}
	return false
}

// IsParamSpecKwargsArgument reports whether argType is an acceptable
// argument for a "**kwargs: P.kwargs" parameter capturing paramSpec. Every
// union member must be the same ParamSpec's ".kwargs" projection, a
// "dict[str, Any]", or the dynamic type itself.
func IsParamSpecKwargsArgument(paramSpec *typesystem.TypeVarType, argType typesystem.Type) bool {
	matches := true
	typesystem.DoForEachSubtype(argType, func(subtype typesystem.Type) {
		if !isParamSpecKwargsSubtype(paramSpec, subtype) {
			matches = false
		}
	})
	return matches
}

func isParamSpecKwargsSubtype(paramSpec *typesystem.TypeVarType, subtype typesystem.Type) bool {
	if typesystem.IsAnyOrUnknown(subtype) {
		return true
	}
	if tv, ok := subtype.(*typesystem.TypeVarType); ok {
		return tv.Access == typesystem.AccessKwargs && typesystem.IsSameParamSpec(paramSpec, tv)
	}
	if dict, ok := typesystem.AsDictInstance(subtype); ok && len(dict.TypeArgs) == 2 {
		return typesystem.IsStrInstance(dict.TypeArgs[0]) && typesystem.IsAnyOrUnknown(dict.TypeArgs[1])
	}
	return false
}

// IsTypedKwargs reports whether param is a variadic keyword collector whose
// resolved type is an unpacked TypedDict with known entries. Binding logic
// uses this to apply per-entry matching instead of generic mapping matching.
func IsTypedKwargs(param *typesystem.Parameter, paramType typesystem.Type) bool {
	if param.Category != typesystem.ParamCategoryKwargsDict {
		return false
	}
	td, ok := typesystem.AsUnpackedTypedDict(paramType)
	return ok && len(td.TypedDictEntries) > 0
}
