package typesystem

import "github.com/Ondrekk12/pyright/internal/config"

// IsAnyOrUnknown reports whether t is the dynamic type in either form.
func IsAnyOrUnknown(t Type) bool {
	_, ok := t.(*AnyType)
	return ok
}

// IsVariadicTypeVar reports whether t is a TypeVarTuple.
func IsVariadicTypeVar(t Type) bool {
	tv, ok := t.(*TypeVarType)
	return ok && tv.IsVariadic && !tv.IsParamSpec
}

// IsParamSpecProjection reports whether t is a ".args" or ".kwargs" access
// of a ParamSpec.
func IsParamSpecProjection(t Type) bool {
	tv, ok := t.(*TypeVarType)
	return ok && tv.IsParamSpec && tv.Access != AccessNone
}

// AsUnpackedTuple returns t as an unpacked tuple instance with known element
// descriptors, or false.
func AsUnpackedTuple(t Type) (*ClassType, bool) {
	cls, ok := t.(*ClassType)
	if !ok || !cls.Unpacked || cls.Name != config.TupleTypeName || cls.TupleElements == nil {
		return nil, false
	}
	return cls, true
}

// AsUnpackedTypedDict returns t as an unpacked TypedDict instance, or false.
func AsUnpackedTypedDict(t Type) (*ClassType, bool) {
	cls, ok := t.(*ClassType)
	if !ok || !cls.Unpacked || !cls.IsTypedDict {
		return nil, false
	}
	return cls, true
}

// AsTupleInstance returns t as a tuple instance, or false.
func AsTupleInstance(t Type) (*ClassType, bool) {
	cls, ok := t.(*ClassType)
	if !ok || cls.Name != config.TupleTypeName {
		return nil, false
	}
	return cls, true
}

// AsDictInstance returns t as a dict instance, or false.
func AsDictInstance(t Type) (*ClassType, bool) {
	cls, ok := t.(*ClassType)
	if !ok || cls.Name != config.DictTypeName {
		return nil, false
	}
	return cls, true
}

// IsStrInstance reports whether t is an instance of the builtin str class.
func IsStrInstance(t Type) bool {
	cls, ok := t.(*ClassType)
	return ok && cls.Name == config.StrTypeName
}

// DoForEachSubtype invokes fn once per union member, or once with t itself
// if t is not a union.
func DoForEachSubtype(t Type, fn func(subtype Type)) {
	if union, ok := t.(*UnionType); ok {
		for _, sub := range union.Subtypes {
			fn(sub)
		}
		return
	}
	fn(t)
}

// IsTypeSame performs a structural identity comparison. Variance is ignored:
// it affects assignability, not identity. Any and Unknown compare equal.
func IsTypeSame(a, b Type) bool {
	if a == nil || b == nil {
		return a == b
	}
	switch at := a.(type) {
	case *AnyType:
		_, ok := b.(*AnyType)
		return ok
	case *TypeVarType:
		bt, ok := b.(*TypeVarType)
		if !ok {
			return false
		}
		return at.Name == bt.Name &&
			at.IsVariadic == bt.IsVariadic &&
			at.IsParamSpec == bt.IsParamSpec &&
			at.Access == bt.Access &&
			at.Unpacked == bt.Unpacked
	case *ClassType:
		bt, ok := b.(*ClassType)
		if !ok {
			return false
		}
		return isClassSame(at, bt)
	case *UnionType:
		bt, ok := b.(*UnionType)
		if !ok || len(at.Subtypes) != len(bt.Subtypes) {
			return false
		}
		for i := range at.Subtypes {
			if !IsTypeSame(at.Subtypes[i], bt.Subtypes[i]) {
				return false
			}
		}
		return true
	}
	return false
}

func isClassSame(a, b *ClassType) bool {
	if a.Name != b.Name || a.Unpacked != b.Unpacked || a.IsTypedDict != b.IsTypedDict {
		return false
	}
	if len(a.TypeArgs) != len(b.TypeArgs) {
		return false
	}
	for i := range a.TypeArgs {
		if !IsTypeSame(a.TypeArgs[i], b.TypeArgs[i]) {
			return false
		}
	}
	if (a.TupleElements == nil) != (b.TupleElements == nil) || len(a.TupleElements) != len(b.TupleElements) {
		return false
	}
	for i := range a.TupleElements {
		if a.TupleElements[i].IsUnbounded != b.TupleElements[i].IsUnbounded {
			return false
		}
		if !IsTypeSame(a.TupleElements[i].Type, b.TupleElements[i].Type) {
			return false
		}
	}
	if len(a.TypedDictEntries) != len(b.TypedDictEntries) {
		return false
	}
	for i := range a.TypedDictEntries {
		ae, be := a.TypedDictEntries[i], b.TypedDictEntries[i]
		if ae.Name != be.Name || ae.Required != be.Required || !IsTypeSame(ae.ValueType, be.ValueType) {
			return false
		}
	}
	if (a.ExtraItems == nil) != (b.ExtraItems == nil) {
		return false
	}
	if a.ExtraItems != nil && !IsTypeSame(a.ExtraItems, b.ExtraItems) {
		return false
	}
	return true
}

// IsSameParamSpec reports whether a and b refer to the same ParamSpec,
// ignoring access projections and variance.
func IsSameParamSpec(a, b *TypeVarType) bool {
	return a != nil && b != nil && a.IsParamSpec && b.IsParamSpec && a.Name == b.Name
}

// PartiallySpecialize substitutes owner's own type parameters with its
// concrete type arguments inside t. Unspecialized parameters are left alone.
func PartiallySpecialize(t Type, owner *ClassType) Type {
	if t == nil || owner == nil || len(owner.TypeParams) == 0 {
		return t
	}
	s := Subst{}
	for i, param := range owner.TypeParams {
		if i < len(owner.TypeArgs) && owner.TypeArgs[i] != nil {
			s[param.Name] = owner.TypeArgs[i]
		}
	}
	if len(s) == 0 {
		return t
	}
	return t.Apply(s)
}
