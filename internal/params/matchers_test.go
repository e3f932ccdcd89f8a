package params

import (
	"testing"

	"github.com/Ondrekk12/pyright/internal/typesystem"
)

func anyTuple() typesystem.Type {
	return typesystem.NewTupleInstance([]typesystem.TupleElement{
		{Type: typesystem.Any, IsUnbounded: true},
	})
}

func strAnyDict() typesystem.Type {
	return typesystem.NewClassInstance("dict", typesystem.NewClassInstance("str"), typesystem.Any)
}

func TestIsParamSpecArgsArgument(t *testing.T) {
	p := &typesystem.TypeVarType{Name: "P", IsParamSpec: true}
	q := &typesystem.TypeVarType{Name: "Q", IsParamSpec: true}

	tests := []struct {
		name    string
		argType typesystem.Type
		want    bool
	}{
		{"Any", typesystem.Any, true},
		{"Unknown", typesystem.Unknown, true},
		{"own args projection", p.WithAccess(typesystem.AccessArgs), true},
		{"other spec projection", q.WithAccess(typesystem.AccessArgs), false},
		{"kwargs projection of own spec", p.WithAccess(typesystem.AccessKwargs), false},
		{"tuple of Any unbounded", anyTuple(), true},
		{
			"tuple of int unbounded",
			typesystem.NewTupleInstance([]typesystem.TupleElement{{Type: intType, IsUnbounded: true}}),
			false,
		},
		{
			"bounded tuple of Any",
			typesystem.NewTupleInstance([]typesystem.TupleElement{{Type: typesystem.Any}}),
			false,
		},
		{"plain int", intType, false},
		{"union of matching members", typesystem.NewUnion(p.WithAccess(typesystem.AccessArgs), typesystem.Any), true},
		{"union with one failing member", typesystem.NewUnion(p.WithAccess(typesystem.AccessArgs), intType), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsParamSpecArgsArgument(p, tt.argType); got != tt.want {
				t.Errorf("IsParamSpecArgsArgument(P, %s) = %v, want %v", tt.argType, got, tt.want)
			}
		})
	}
}

func TestIsParamSpecArgsArgumentIgnoresVariance(t *testing.T) {
	p := &typesystem.TypeVarType{Name: "P", IsParamSpec: true}
	contravariant := &typesystem.TypeVarType{
		Name:        "P",
		IsParamSpec: true,
		Access:      typesystem.AccessArgs,
		Variance:    typesystem.VarianceContravariant,
	}
	if !IsParamSpecArgsArgument(p, contravariant) {
		t.Errorf("variance must not affect ParamSpec identity")
	}
}

func TestIsParamSpecKwargsArgument(t *testing.T) {
	p := &typesystem.TypeVarType{Name: "P", IsParamSpec: true}
	q := &typesystem.TypeVarType{Name: "Q", IsParamSpec: true}

	tests := []struct {
		name    string
		argType typesystem.Type
		want    bool
	}{
		{"Any", typesystem.Any, true},
		{"own kwargs projection", p.WithAccess(typesystem.AccessKwargs), true},
		{"other spec projection", q.WithAccess(typesystem.AccessKwargs), false},
		{"args projection of own spec", p.WithAccess(typesystem.AccessArgs), false},
		{"dict str Any", strAnyDict(), true},
		{"dict int Any", typesystem.NewClassInstance("dict", intType, typesystem.Any), false},
		{"dict str int", typesystem.NewClassInstance("dict", typesystem.NewClassInstance("str"), intType), false},
		{"unparameterized dict", typesystem.NewClassInstance("dict"), false},
		{"plain str", typesystem.NewClassInstance("str"), false},
		{"union of matching members", typesystem.NewUnion(p.WithAccess(typesystem.AccessKwargs), strAnyDict()), true},
		{"union with one failing member", typesystem.NewUnion(strAnyDict(), intType), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsParamSpecKwargsArgument(p, tt.argType); got != tt.want {
				t.Errorf("IsParamSpecKwargsArgument(P, %s) = %v, want %v", tt.argType, got, tt.want)
			}
		})
	}
}

func TestIsTypedKwargs(t *testing.T) {
	movie := typesystem.NewTypedDict("Movie", nil, []typesystem.TypedDictEntry{
		{Name: "title", ValueType: typesystem.NewClassInstance("str"), Required: true},
	}, nil)
	empty := typesystem.NewTypedDict("Empty", nil, nil, nil)

	typedParam := kwargsDict("kwargs", movie.WithUnpacked())
	if !IsTypedKwargs(&typedParam, movie.WithUnpacked()) {
		t.Errorf("unpacked TypedDict with entries should be typed kwargs")
	}

	plainParam := kwargsDict("kwargs", strAnyDict())
	if IsTypedKwargs(&plainParam, strAnyDict()) {
		t.Errorf("ordinary dict kwargs is not typed kwargs")
	}

	emptyParam := kwargsDict("kwargs", empty.WithUnpacked())
	if IsTypedKwargs(&emptyParam, empty.WithUnpacked()) {
		t.Errorf("TypedDict without known entries is not typed kwargs")
	}

	notPacked := kwargsDict("kwargs", movie)
	if IsTypedKwargs(&notPacked, movie) {
		t.Errorf("non-unpacked TypedDict is not typed kwargs")
	}

	simpleParam := simple("a", movie.WithUnpacked())
	if IsTypedKwargs(&simpleParam, movie.WithUnpacked()) {
		t.Errorf("only kwargsDict parameters can be typed kwargs")
	}
}
