package config

const SuiteFileExt = ".yaml"

// SuiteFileExtensions are all recognized signature suite file extensions
var SuiteFileExtensions = []string{".yaml", ".yml"}

// HasSuiteExt reports whether path ends in a recognized suite extension.
func HasSuiteExt(path string) bool {
	for _, ext := range SuiteFileExtensions {
		if len(path) > len(ext) && path[len(path)-len(ext):] == ext {
			return true
		}
	}
	return false
}

// TrimSuiteExt removes a recognized suite extension from name, if present.
func TrimSuiteExt(name string) string {
	for _, ext := range SuiteFileExtensions {
		if len(name) > len(ext) && name[len(name)-len(ext):] == ext {
			return name[:len(name)-len(ext)]
		}
	}
	return name
}

// Built-in class names
const (
	TupleTypeName = "tuple"
	DictTypeName  = "dict"
	StrTypeName   = "str"
	IntTypeName   = "int"
	FloatTypeName = "float"
	BoolTypeName  = "bool"
	BytesTypeName = "bytes"
	NoneTypeName  = "None"
)

// Special form names
const (
	AnyTypeName     = "Any"
	UnknownTypeName = "Unknown"
)

// ParamSpec projection member names
const (
	ParamSpecArgsMember   = "args"
	ParamSpecKwargsMember = "kwargs"
)

// PositionOnlyPrefix is the legacy double-underscore prefix that marks a
// parameter as positional-only in signatures predating the "/" separator.
const PositionOnlyPrefix = "__"
