// Package typedesc describes the shape of an annotated type declaration.
//
// It normalizes a Go syntax tree into a small tagged union of definitions
// (enum, struct, union) that the derive pipeline can reason about without
// touching go/ast again. Extraction is purely structural: no validation
// happens here.
package typedesc

import "go/ast"

//go:generate go tool stringer -type=Kind -output=kind_string.go
//go:generate go tool stringer -type=FieldKind -output=fieldkind_string.go

// Kind tags the shape of a Definition.
type Kind int

const (
	KindEnum Kind = iota
	KindStruct
	KindUnion
)

// FieldKind classifies the payload carried by an enum variant.
type FieldKind int

const (
	// FieldsUnit marks a variant with no payload, optionally carrying an
	// explicit discriminant expression.
	FieldsUnit FieldKind = iota
	// FieldsPositional marks a variant declared with an unkeyed composite
	// literal or a constructor call.
	FieldsPositional
	// FieldsNamed marks a variant declared with a keyed composite literal.
	FieldsNamed
)

// Definition is the tagged union of type shapes the generator understands.
// The concrete shapes are EnumDefinition, StructDefinition, and
// UnionDefinition; consumers dispatch with a type switch.
type Definition interface {
	// DefName returns the declared type name.
	DefName() string
	// Kind returns the shape tag.
	Kind() Kind
}

// Variant is a single enum variant in declaration order.
type Variant struct {
	// Name is the declared constant name. Blank ("_") variants hold a
	// numbering slot but never appear in generated code.
	Name string
	// Fields classifies the variant's payload shape.
	Fields FieldKind
	// Value is the explicit discriminant expression, or nil when the
	// variant takes the implicit previous+1 numbering.
	Value ast.Expr
	// Iota is the variant's spec ordinal within its const block, used to
	// resolve iota references in Value.
	Iota int
}

// Blank reports whether the variant occupies a numbering slot without
// declaring a named constant.
func (v Variant) Blank() bool { return v.Name == "_" }

// EnumDefinition is an integer-backed type with ordered constant variants.
type EnumDefinition struct {
	Name     string
	Variants []Variant
}

func (d *EnumDefinition) DefName() string { return d.Name }

func (d *EnumDefinition) Kind() Kind { return KindEnum }

// StructDefinition is a type whose declared underlying type is a struct.
// The generators reject it; only the name is needed for diagnostics.
type StructDefinition struct {
	Name string
}

func (d *StructDefinition) DefName() string { return d.Name }

func (d *StructDefinition) Kind() Kind { return KindStruct }

// UnionDefinition is a type whose declared underlying type is an interface,
// the Go rendition of a sum type. Rejected by the generators.
type UnionDefinition struct {
	Name string
}

func (d *UnionDefinition) DefName() string { return d.Name }

func (d *UnionDefinition) Kind() Kind { return KindUnion }
