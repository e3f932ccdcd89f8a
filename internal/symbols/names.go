package symbols

import (
	"strings"

	"github.com/Ondrekk12/pyright/internal/config"
)

// IsDunderName reports whether name has the reserved double-underscore form
// (leading and trailing "__" around a non-empty body, e.g. "__init__").
func IsDunderName(name string) bool {
	return len(name) > 4 &&
		strings.HasPrefix(name, "__") &&
		strings.HasSuffix(name, "__")
}

// IsPositionOnlyName reports whether name uses the legacy naming convention
// for positional-only parameters: a "__" prefix that is not a dunder name.
func IsPositionOnlyName(name string) bool {
	return strings.HasPrefix(name, config.PositionOnlyPrefix) && !IsDunderName(name)
}

// IsPrivateName reports whether name is private to its declaring scope
// (single leading underscore, not a dunder name).
func IsPrivateName(name string) bool {
	return strings.HasPrefix(name, "_") && !IsDunderName(name)
}
