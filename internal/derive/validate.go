package derive

import (
	"github.com/cockroachdb/errors"

	"numconv-generator/internal/typedesc"
)

// validate checks that def is a shape the generators can handle: an enum
// whose variants are all unit variants. It runs to completion before either
// generator executes; a failure aborts the whole invocation.
func validate(def typedesc.Definition, capability Capability) (*typedesc.EnumDefinition, error) {
	enum, ok := def.(*typedesc.EnumDefinition)
	if !ok {
		return nil, errors.WithHint(
			errors.Newf("%s can be applied only to enums; %s is not an enum (%s)",
				capability, def.DefName(), shapeWord(def)),
			"declare the type with an integer underlying type and const variants")
	}

	for _, v := range enum.Variants {
		if v.Fields == typedesc.FieldsUnit {
			continue
		}

		return nil, errors.WithHint(
			errors.Newf("%s can be applied only to unit variants; %s.%s carries data (%s)",
				capability, enum.Name, v.Name, v.Fields),
			"variants with payloads cannot be numbered; remove the payload or drop the directive")
	}

	return enum, nil
}

// shapeWord names the rejected shape for diagnostics.
func shapeWord(def typedesc.Definition) string {
	switch def.Kind() {
	case typedesc.KindStruct:
		return "a struct"
	case typedesc.KindUnion:
		return "a union"
	default:
		return def.Kind().String()
	}
}
