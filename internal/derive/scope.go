package derive

import (
	"strings"
	"unicode"
)

// scopeName derives the identifier wrapping one derivation's declarations.
// Uniqueness is structural: the (capability, type) pair fully determines the
// name, and the host compiler's duplicate-declaration check catches repeated
// derivations. No randomness is involved.
func scopeName(capability Capability, typeName string) string {
	return "_implNumconv" + capability.String() + "For" + typeName
}

// fileName places each derivation in a file of its own, which is what keeps
// the support-package alias file-scoped and invisible to the rest of the
// package.
func fileName(capability Capability, typeName string) string {
	return snake(typeName) + "_" + snake(capability.String()) + "_numconv.go"
}

// snake converts a CamelCase identifier to lower snake_case.
func snake(s string) string {
	var b strings.Builder

	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}

			r = unicode.ToLower(r)
		}

		b.WriteRune(r)
	}

	return b.String()
}
