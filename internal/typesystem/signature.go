package typesystem

import "strings"

// ParameterCategory classifies a declared parameter.
type ParameterCategory int

const (
	// ParamCategorySimple is an ordinary parameter, bound by position or name.
	ParamCategorySimple ParameterCategory = iota
	// ParamCategoryArgsList is a variadic positional collector ("*args").
	// Unnamed, it is the bare "*" keyword-only marker.
	ParamCategoryArgsList
	// ParamCategoryKwargsDict is a variadic keyword collector ("**kwargs").
	ParamCategoryKwargsDict
	// ParamCategorySeparator is the "/" position-only marker. It never has
	// a name or a type.
	ParamCategorySeparator
)

func (c ParameterCategory) String() string {
	switch c {
	case ParamCategorySimple:
		return "simple"
	case ParamCategoryArgsList:
		return "argsList"
	case ParamCategoryKwargsDict:
		return "kwargsDict"
	case ParamCategorySeparator:
		return "separator"
	}
	return "unknown"
}

// Parameter is one declared parameter of a signature. Parameters are
// immutable once constructed; normalization never writes back into them.
type Parameter struct {
	Category        ParameterCategory
	Name            string // "" for separators
	DeclaredType    Type   // nil if no annotation
	DefaultType     Type   // nil if no default
	HasDefault      bool
	HasDeclaredType bool
	NameSynthesized bool
}

// SpecializedTypes carries per-call-site specializations of a signature's
// parameter types and default argument types. A nil slot falls back to the
// declared type.
type SpecializedTypes struct {
	ParamTypes           []Type
	ParamDefaultArgTypes []Type
}

// Signature is a callable's declared parameter list plus the context needed
// to normalize it.
type Signature struct {
	Params      []Parameter
	IsStatic    bool
	Specialized *SpecializedTypes
}

// ParamType resolves the effective type of the parameter at index, honoring
// a per-call specialization when one is present. Parameters with no
// annotation resolve to Unknown.
func (s *Signature) ParamType(index int) Type {
	if s.Specialized != nil && index < len(s.Specialized.ParamTypes) {
		if t := s.Specialized.ParamTypes[index]; t != nil {
			return t
		}
	}
	if t := s.Params[index].DeclaredType; t != nil {
		return t
	}
	return Unknown
}

// DefaultArgTypeOverride returns the specialized default argument type for
// the parameter at index, or nil when no override applies.
func (s *Signature) DefaultArgTypeOverride(index int) Type {
	if s.Specialized != nil && index < len(s.Specialized.ParamDefaultArgTypes) {
		return s.Specialized.ParamDefaultArgTypes[index]
	}
	return nil
}

// ParamSpecFromArgsKwargs detects a trailing "*args: P.args, **kwargs: P.kwargs"
// pair that jointly captures a ParamSpec, and returns that ParamSpec without
// its projection. Returns nil when the signature does not end in such a pair.
func (s *Signature) ParamSpecFromArgsKwargs() *TypeVarType {
	n := len(s.Params)
	if n < 2 {
		return nil
	}
	argsParam, kwargsParam := &s.Params[n-2], &s.Params[n-1]
	if argsParam.Category != ParamCategoryArgsList || kwargsParam.Category != ParamCategoryKwargsDict {
		return nil
	}
	argsType, ok := argsParam.DeclaredType.(*TypeVarType)
	if !ok || !argsType.IsParamSpec || argsType.Access != AccessArgs {
		return nil
	}
	kwargsType, ok := kwargsParam.DeclaredType.(*TypeVarType)
	if !ok || !kwargsType.IsParamSpec || kwargsType.Access != AccessKwargs {
		return nil
	}
	if argsType.Name != kwargsType.Name {
		return nil
	}
	paramSpec := *argsType
	paramSpec.Access = AccessNone
	return &paramSpec
}

// String renders the signature in source-like notation, for diagnostics.
func (s *Signature) String() string {
	var sb strings.Builder
	sb.WriteString("(")
	for i := range s.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		p := &s.Params[i]
		switch p.Category {
		case ParamCategorySeparator:
			sb.WriteString("/")
			continue
		case ParamCategoryArgsList:
			sb.WriteString("*")
		case ParamCategoryKwargsDict:
			sb.WriteString("**")
		}
		sb.WriteString(p.Name)
		if p.HasDeclaredType && p.DeclaredType != nil {
			sb.WriteString(": ")
			sb.WriteString(p.DeclaredType.String())
		}
		if p.HasDefault {
			sb.WriteString(" = ...")
		}
	}
	sb.WriteString(")")
	return sb.String()
}
