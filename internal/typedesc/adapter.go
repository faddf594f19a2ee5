package typedesc

import (
	"go/ast"
	"go/token"
)

// Extract normalizes an annotated type declaration into a Definition.
//
// spec is the type spec carrying the derive directive; file is the file that
// declares it, scanned for the const blocks holding the enum's variants.
// Only that file participates: constants of the same type declared in sibling
// files of the package are not collected and hold no numbering slot.
// Extraction preserves declaration order exactly and never judges whether the
// shape is derivable; that is the validator's job.
func Extract(spec *ast.TypeSpec, file *ast.File) Definition {
	name := spec.Name.Name

	switch spec.Type.(type) {
	case *ast.StructType:
		return &StructDefinition{Name: name}
	case *ast.InterfaceType:
		return &UnionDefinition{Name: name}
	}

	return &EnumDefinition{
		Name:     name,
		Variants: collectVariants(name, file),
	}
}

// collectVariants walks the file's const blocks and gathers every constant
// declared with the enum's type, in source order.
func collectVariants(enumName string, file *ast.File) []Variant {
	var variants []Variant

	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.CONST {
			continue
		}

		// Within one const block a bare spec (no type, no values)
		// continues the previous spec's type, so membership is tracked
		// per block.
		active := false

		for ord, s := range gd.Specs {
			vs, ok := s.(*ast.ValueSpec)
			if !ok {
				continue
			}

			switch {
			case vs.Type != nil:
				ident, ok := vs.Type.(*ast.Ident)
				active = ok && ident.Name == enumName
			case len(vs.Values) > 0:
				// An untyped const spec breaks the inheritance
				// chain.
				active = false
			}

			if !active {
				continue
			}

			variants = append(variants, specVariants(enumName, vs, ord)...)
		}
	}

	return variants
}

// specVariants expands one const spec into variants, one per declared name.
func specVariants(enumName string, vs *ast.ValueSpec, ord int) []Variant {
	variants := make([]Variant, 0, len(vs.Names))

	for i, name := range vs.Names {
		v := Variant{
			Name:   name.Name,
			Fields: FieldsUnit,
			Iota:   ord,
		}

		if i < len(vs.Values) {
			v.Fields, v.Value = classifyValue(enumName, vs.Values[i])
		}

		variants = append(variants, v)
	}

	return variants
}

// classifyValue determines the payload shape of one variant's value
// expression and, for unit variants, its explicit discriminant expression.
func classifyValue(enumName string, expr ast.Expr) (FieldKind, ast.Expr) {
	switch e := expr.(type) {
	case *ast.CompositeLit:
		for _, elt := range e.Elts {
			if _, ok := elt.(*ast.KeyValueExpr); ok {
				return FieldsNamed, nil
			}
		}

		return FieldsPositional, nil

	case *ast.CallExpr:
		// A conversion to the enum's own type is just an explicit
		// discriminant in disguise: Red Color = Color(7).
		if ident, ok := e.Fun.(*ast.Ident); ok && ident.Name == enumName && len(e.Args) == 1 {
			return FieldsUnit, e.Args[0]
		}

		return FieldsPositional, nil
	}

	return FieldsUnit, expr
}
