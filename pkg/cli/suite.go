package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Ondrekk12/pyright/internal/diagnostics"
	"github.com/Ondrekk12/pyright/internal/parser"
	"github.com/Ondrekk12/pyright/internal/typesystem"
)

// Suite is a YAML file declaring named types and the signatures to
// normalize against them.
type Suite struct {
	Types      SuiteTypes       `yaml:"types"`
	Signatures []SuiteSignature `yaml:"signatures"`
}

type SuiteTypes struct {
	TypeVars      []string         `yaml:"typevars"`
	TypeVarTuples []string         `yaml:"typevartuples"`
	ParamSpecs    []string         `yaml:"paramspecs"`
	Classes       []string         `yaml:"classes"`
	TypedDicts    []SuiteTypedDict `yaml:"typeddicts"`
}

type SuiteTypedDict struct {
	Name    string       `yaml:"name"`
	Params  []string     `yaml:"params"`
	Entries []SuiteEntry `yaml:"entries"`
	Extra   string       `yaml:"extra"`
}

type SuiteEntry struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Required bool   `yaml:"required"`
}

type SuiteSignature struct {
	Name   string `yaml:"name"`
	Static bool   `yaml:"static"`
	Params string `yaml:"params"`
}

// LoadSuite reads and decodes a suite file.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var suite Suite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &suite, nil
}

// BuildEnv declares the suite's named types into a fresh type environment.
func (s *Suite) BuildEnv() (*parser.TypeEnv, []*diagnostics.DiagnosticError) {
	env := parser.NewTypeEnv()
	var errs []*diagnostics.DiagnosticError

	for _, name := range s.Types.TypeVars {
		env.DeclareTypeVar(name)
	}
	for _, name := range s.Types.TypeVarTuples {
		env.DeclareTypeVarTuple(name)
	}
	for _, name := range s.Types.ParamSpecs {
		env.DeclareParamSpec(name)
	}
	for _, name := range s.Types.Classes {
		env.DeclareClass(name)
	}

	for _, td := range s.Types.TypedDicts {
		var typeParams []*typesystem.TypeVarType
		for _, paramName := range td.Params {
			typeParams = append(typeParams, env.DeclareTypeVar(paramName))
		}

		var entries []typesystem.TypedDictEntry
		for _, entry := range td.Entries {
			valueType, entryErrs := parser.ParseTypeExpr(entry.Type, env)
			errs = append(errs, entryErrs...)
			entries = append(entries, typesystem.TypedDictEntry{
				Name:      entry.Name,
				ValueType: valueType,
				Required:  entry.Required,
			})
		}

		var extraItems typesystem.Type
		if td.Extra != "" {
			extraType, extraErrs := parser.ParseTypeExpr(td.Extra, env)
			errs = append(errs, extraErrs...)
			extraItems = extraType
		}

		env.DeclareGenericTypedDict(td.Name, typeParams, entries, extraItems)
	}

	return env, errs
}
