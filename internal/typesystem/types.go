package typesystem

import (
	"fmt"
	"strings"

	"github.com/Ondrekk12/pyright/internal/config"
)

// Type is the interface for all types in our system.
type Type interface {
	String() string
	Apply(Subst) Type
}

// Subst maps type variable names to replacement types.
type Subst map[string]Type

// Variance of a type variable. Only affects assignability direction, never
// structural identity.
type Variance int

const (
	VarianceInvariant Variance = iota
	VarianceCovariant
	VarianceContravariant
)

// ParamSpecAccess identifies a ".args" or ".kwargs" projection of a ParamSpec.
type ParamSpecAccess string

const (
	AccessNone   ParamSpecAccess = ""
	AccessArgs   ParamSpecAccess = ParamSpecAccess(config.ParamSpecArgsMember)
	AccessKwargs ParamSpecAccess = ParamSpecAccess(config.ParamSpecKwargsMember)
)

// AnyType is the dynamic type. The Unknown form is an implicit Any produced
// when no annotation was given; the two behave identically in matching.
type AnyType struct {
	IsUnknown bool
}

// Pre-defined instances for the dynamic types
var (
	Any     = &AnyType{}
	Unknown = &AnyType{IsUnknown: true}
)

func (t *AnyType) String() string {
	if t.IsUnknown {
		return config.UnknownTypeName
	}
	return config.AnyTypeName
}

func (t *AnyType) Apply(Subst) Type { return t }

// TypeVarType represents a type variable: a plain TypeVar, a TypeVarTuple
// (IsVariadic), or a ParamSpec, possibly viewed through its .args/.kwargs
// projection.
type TypeVarType struct {
	Name        string
	IsVariadic  bool
	IsParamSpec bool
	Access      ParamSpecAccess
	Unpacked    bool
	Variance    Variance
}

func (t *TypeVarType) String() string {
	s := t.Name
	if t.Access != AccessNone {
		s = s + "." + string(t.Access)
	}
	if t.Unpacked {
		s = "*" + s
	}
	return s
}

func (t *TypeVarType) Apply(s Subst) Type {
	if replacement, ok := s[t.Name]; ok {
		return replacement
	}
	return t
}

// WithAccess returns a copy of the ParamSpec projected through member.
func (t *TypeVarType) WithAccess(access ParamSpecAccess) *TypeVarType {
	projected := *t
	projected.Access = access
	return &projected
}

// WithUnpacked returns an unpacked copy (the "*Ts" form).
func (t *TypeVarType) WithUnpacked() *TypeVarType {
	unpacked := *t
	unpacked.Unpacked = true
	return &unpacked
}

// TupleElement is one element descriptor of a specialized tuple type.
// IsUnbounded marks a "T, ..." element standing for zero or more values.
type TupleElement struct {
	Type        Type
	IsUnbounded bool
}

// TypedDictEntry is one known item of a TypedDict class.
type TypedDictEntry struct {
	Name      string
	ValueType Type
	Required  bool
}

// ClassType represents an instance of a named class. Tuple instances may
// carry known element descriptors; TypedDict classes carry known entries and
// an optional catch-all value type for unlisted keys.
type ClassType struct {
	Name             string
	TypeParams       []*TypeVarType
	TypeArgs         []Type
	TupleElements    []TupleElement // non-nil only for tuples with known elements
	IsTypedDict      bool
	TypedDictEntries []TypedDictEntry
	ExtraItems       Type // catch-all value type; nil if the dict is closed
	Unpacked         bool
}

// NewClassInstance creates an instance of a plain (non-tuple, non-TypedDict)
// class, optionally specialized with type arguments.
func NewClassInstance(name string, typeArgs ...Type) *ClassType {
	return &ClassType{Name: name, TypeArgs: typeArgs}
}

// NewTupleInstance creates a tuple instance with known element descriptors.
func NewTupleInstance(elements []TupleElement) *ClassType {
	if elements == nil {
		elements = []TupleElement{}
	}
	return &ClassType{Name: config.TupleTypeName, TupleElements: elements}
}

// NewTypedDict creates a TypedDict class instance with known entries.
func NewTypedDict(name string, typeParams []*TypeVarType, entries []TypedDictEntry, extraItems Type) *ClassType {
	return &ClassType{
		Name:             name,
		TypeParams:       typeParams,
		IsTypedDict:      true,
		TypedDictEntries: entries,
		ExtraItems:       extraItems,
	}
}

func (t *ClassType) String() string {
	var sb strings.Builder
	if t.Unpacked {
		sb.WriteString("*")
	}
	sb.WriteString(t.Name)
	if t.TupleElements != nil {
		sb.WriteString("[")
		for i, elem := range t.TupleElements {
			if i > 0 {
				sb.WriteString(", ")
			}
			if elem.IsUnbounded && len(t.TupleElements) == 1 {
				fmt.Fprintf(&sb, "%s, ...", elem.Type.String())
			} else if elem.IsUnbounded {
				fmt.Fprintf(&sb, "*%s", elem.Type.String())
			} else {
				sb.WriteString(elem.Type.String())
			}
		}
		sb.WriteString("]")
	} else if len(t.TypeArgs) > 0 {
		sb.WriteString("[")
		for i, arg := range t.TypeArgs {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(arg.String())
		}
		sb.WriteString("]")
	}
	return sb.String()
}

func (t *ClassType) Apply(s Subst) Type {
	applied := *t
	if t.TypeArgs != nil {
		applied.TypeArgs = make([]Type, len(t.TypeArgs))
		for i, arg := range t.TypeArgs {
			applied.TypeArgs[i] = arg.Apply(s)
		}
	}
	if t.TupleElements != nil {
		applied.TupleElements = make([]TupleElement, len(t.TupleElements))
		for i, elem := range t.TupleElements {
			applied.TupleElements[i] = TupleElement{Type: elem.Type.Apply(s), IsUnbounded: elem.IsUnbounded}
		}
	}
	if t.ExtraItems != nil {
		applied.ExtraItems = t.ExtraItems.Apply(s)
	}
	return &applied
}

// WithTypeArgs returns a copy specialized with the given type arguments.
func (t *ClassType) WithTypeArgs(typeArgs []Type) *ClassType {
	specialized := *t
	specialized.TypeArgs = typeArgs
	return &specialized
}

// WithUnpacked returns an unpacked copy (the "*tuple[...]"/"**TD" form).
func (t *ClassType) WithUnpacked() *ClassType {
	unpacked := *t
	unpacked.Unpacked = true
	return &unpacked
}

// UnionType represents a union of two or more subtypes.
type UnionType struct {
	Subtypes []Type
}

// NewUnion builds a union from subtypes, flattening nested unions. A single
// subtype is returned as itself.
func NewUnion(subtypes ...Type) Type {
	flat := make([]Type, 0, len(subtypes))
	for _, sub := range subtypes {
		if union, ok := sub.(*UnionType); ok {
			flat = append(flat, union.Subtypes...)
		} else {
			flat = append(flat, sub)
		}
	}
	if len(flat) == 1 {
		return flat[0]
	}
	return &UnionType{Subtypes: flat}
}

func (t *UnionType) String() string {
	parts := make([]string, len(t.Subtypes))
	for i, sub := range t.Subtypes {
		parts[i] = sub.String()
	}
	return strings.Join(parts, " | ")
}

func (t *UnionType) Apply(s Subst) Type {
	applied := make([]Type, len(t.Subtypes))
	for i, sub := range t.Subtypes {
		applied[i] = sub.Apply(s)
	}
	return &UnionType{Subtypes: applied}
}
