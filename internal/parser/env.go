package parser

import (
	"github.com/Ondrekk12/pyright/internal/config"
	"github.com/Ondrekk12/pyright/internal/typesystem"
)

// TypeEnv resolves names in signature notation to types. Builtins are
// registered up front; TypeVars, ParamSpecs, TypedDicts and user classes
// are declared by the caller before parsing.
type TypeEnv struct {
	types map[string]typesystem.Type
}

func NewTypeEnv() *TypeEnv {
	env := &TypeEnv{types: make(map[string]typesystem.Type)}

	for _, name := range []string{
		config.IntTypeName,
		config.StrTypeName,
		config.FloatTypeName,
		config.BoolTypeName,
		config.BytesTypeName,
		config.NoneTypeName,
	} {
		env.types[name] = typesystem.NewClassInstance(name)
	}
	env.types[config.TupleTypeName] = &typesystem.ClassType{Name: config.TupleTypeName}
	env.types[config.DictTypeName] = &typesystem.ClassType{Name: config.DictTypeName}
	env.types[config.AnyTypeName] = typesystem.Any
	env.types[config.UnknownTypeName] = typesystem.Unknown

	return env
}

func (e *TypeEnv) Lookup(name string) (typesystem.Type, bool) {
	t, ok := e.types[name]
	return t, ok
}

func (e *TypeEnv) Declare(name string, t typesystem.Type) {
	e.types[name] = t
}

func (e *TypeEnv) DeclareClass(name string) *typesystem.ClassType {
	cls := typesystem.NewClassInstance(name)
	e.types[name] = cls
	return cls
}

func (e *TypeEnv) DeclareTypeVar(name string) *typesystem.TypeVarType {
	tv := &typesystem.TypeVarType{Name: name}
	e.types[name] = tv
	return tv
}

func (e *TypeEnv) DeclareTypeVarTuple(name string) *typesystem.TypeVarType {
	tv := &typesystem.TypeVarType{Name: name, IsVariadic: true}
	e.types[name] = tv
	return tv
}

func (e *TypeEnv) DeclareParamSpec(name string) *typesystem.TypeVarType {
	tv := &typesystem.TypeVarType{Name: name, IsParamSpec: true}
	e.types[name] = tv
	return tv
}

func (e *TypeEnv) DeclareTypedDict(name string, entries []typesystem.TypedDictEntry, extraItems typesystem.Type) *typesystem.ClassType {
	td := typesystem.NewTypedDict(name, nil, entries, extraItems)
	e.types[name] = td
	return td
}

func (e *TypeEnv) DeclareGenericTypedDict(name string, typeParams []*typesystem.TypeVarType, entries []typesystem.TypedDictEntry, extraItems typesystem.Type) *typesystem.ClassType {
	td := typesystem.NewTypedDict(name, typeParams, entries, extraItems)
	e.types[name] = td
	return td
}
