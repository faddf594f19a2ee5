package derive

import (
	"go/format"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitProducesFormattedFile(t *testing.T) {
	t.Parallel()

	mod, err := Derive(parseDef(t, colorSrc, "Color"), FromInt64)
	require.NoError(t, err)

	file, err := Emit("sample", mod)
	require.NoError(t, err)

	assert.Equal(t, "color_from_int64_numconv.go", file.Filename)

	src := string(file.Content)
	assert.Contains(t, src, "// Code generated by numconv-generator. DO NOT EDIT.")
	assert.Contains(t, src, "package sample")

	// Already gofmt-clean: formatting again changes nothing.
	again, err := format.Source(file.Content)
	require.NoError(t, err)
	assert.Equal(t, file.Content, again)
}

func TestEmitFormatFallback(t *testing.T) {
	t.Parallel()

	// A declaration the formatter rejects still yields the raw print so
	// the caller can inspect what went wrong.
	mod := &Module{
		TypeName:   "Broken",
		Capability: Int64,
		Filename:   "broken_int64_numconv.go",
		Decls: []Decl{{
			Node: conformanceVar(ident("1not-a-type"), intLit(0)),
		}},
	}

	file, err := Emit("sample", mod)
	require.Error(t, err)
	require.NotNil(t, file)
	assert.Contains(t, string(file.Content), "1not-a-type")
}
