// Package derive generates integer conversion capabilities for enum types.
//
// One call to Derive handles exactly one (capability, type) pair: it
// validates the extracted definition, resolves every variant's discriminant,
// builds the implementation as go/ast declarations, and wraps them in a
// mangled module scope. Derivation is a pure function of its input; there is
// no cache, counter, or other state shared between invocations.
package derive

import (
	"go/ast"

	"github.com/cockroachdb/errors"

	"numconv-generator/internal/common"
	"numconv-generator/internal/typedesc"
)

// SupportPath is the import path of the capability support package. Generated
// files reference it through a file-scoped alias so the caller's own
// namespace is never touched.
const SupportPath = "numconv-generator/numconv"

// supportAlias is the alias generated files bind SupportPath to.
const supportAlias = "_numconv"

// Capability names one derivable conversion capability.
type Capability int

const (
	// FromInt64 derives the fallible integer-to-value constructors.
	FromInt64 Capability = iota
	// Int64 derives the value-to-integer accessor methods.
	Int64
)

// String returns the capability's directive spelling.
func (c Capability) String() string {
	switch c {
	case FromInt64:
		return "FromInt64"
	case Int64:
		return "Int64"
	default:
		return common.UnknownStr
	}
}

// Capabilities lists every derivable capability in a stable order.
func Capabilities() []Capability {
	return []Capability{FromInt64, Int64}
}

// ParseCapability maps a directive argument to a Capability.
func ParseCapability(s string) (Capability, error) {
	for _, c := range Capabilities() {
		if s == c.String() {
			return c, nil
		}
	}

	return 0, errors.Newf("unknown capability %q (want FromInt64 or Int64)", s)
}

// Decl pairs one generated declaration with its doc comment.
type Decl struct {
	Doc  string
	Node ast.Decl
}

// Module is the result of one derivation invocation.
type Module struct {
	TypeName   string
	Capability Capability
	// Scope is the mangled identifier wrapping this derivation. It is
	// structural (capability + type name), never random; deriving the
	// same pair twice collides on it at compile time.
	Scope string
	// Filename is where the driver should place the emitted file.
	Filename string
	// Decls are the generated declarations, guard first.
	Decls []Decl
	// Variants holds the resolved discriminants in declaration order,
	// including blank numbering slots.
	Variants []ResolvedVariant
}

// Derive runs one derivation invocation for def. Validation completes before
// any generation starts, so an unsupported shape never produces partial
// output.
func Derive(def typedesc.Definition, capability Capability) (*Module, error) {
	enum, err := validate(def, capability)
	if err != nil {
		return nil, err
	}

	variants, err := resolveDiscriminants(enum)
	if err != nil {
		return nil, err
	}

	mod := &Module{
		TypeName:   enum.Name,
		Capability: capability,
		Scope:      scopeName(capability, enum.Name),
		Filename:   fileName(capability, enum.Name),
		Variants:   variants,
	}

	mod.Decls = append(mod.Decls, guardDecl(mod.Scope, capability, enum.Name))

	switch capability {
	case FromInt64:
		mod.Decls = append(mod.Decls, genFromInt64(enum.Name, variants)...)
	case Int64:
		mod.Decls = append(mod.Decls, genInt64(enum.Name, variants)...)
	}

	return mod, nil
}
