package derive

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolve(t *testing.T, src, typeName string) []ResolvedVariant {
	t.Helper()

	resolved, err := resolveDiscriminants(parseEnum(t, src, typeName))
	require.NoError(t, err)
	return resolved
}

func values(resolved []ResolvedVariant) []int64 {
	vs := make([]int64, len(resolved))
	for i, v := range resolved {
		vs[i] = v.Value
	}

	return vs
}

func TestResolveImplicitNumbering(t *testing.T) {
	t.Parallel()

	resolved := resolve(t, `
package sample

type Color int

const (
	Red Color = iota
	Blue
	Green
)
`, "Color")

	assert.Equal(t, []int64{0, 1, 2}, values(resolved))
}

func TestResolveExplicitThenImplicit(t *testing.T) {
	t.Parallel()

	// An implicit variant continues from the previous resolved value,
	// explicit or not.
	resolved := resolve(t, `
package sample

type Color int

const (
	Red   Color = iota
	Blue  Color = 42
	Green Color = iota
	Last  Color = 100
	After Color = iota
)
`, "Color")

	assert.Equal(t, []int64{0, 42, 2, 100, 4}, values(resolved))
}

func TestResolveExpressionForms(t *testing.T) {
	t.Parallel()

	t.Run("iota arithmetic", func(t *testing.T) {
		t.Parallel()

		resolved := resolve(t, `
package sample

type Kind int

const (
	KindA Kind = iota + 1
	KindB Kind = iota + 1
	KindC Kind = iota + 1
)
`, "Kind")

		assert.Equal(t, []int64{1, 2, 3}, values(resolved))
	})

	t.Run("shifts", func(t *testing.T) {
		t.Parallel()

		resolved := resolve(t, `
package sample

type Flag int

const (
	FlagA Flag = 1 << iota
	FlagB Flag = 1 << iota
	FlagC Flag = 1 << iota
)
`, "Flag")

		assert.Equal(t, []int64{1, 2, 4}, values(resolved))
	})

	t.Run("negative and hex", func(t *testing.T) {
		t.Parallel()

		resolved := resolve(t, `
package sample

type Code int

const (
	CodeNeg Code = -5
	CodeNext
	CodeHex Code = 0x10
)
`, "Code")

		assert.Equal(t, []int64{-5, -4, 16}, values(resolved))
	})

	t.Run("reference to earlier variant", func(t *testing.T) {
		t.Parallel()

		resolved := resolve(t, `
package sample

type Code int

const (
	CodeA Code = 3
	CodeB Code = CodeA * 10
	CodeC Code = CodeA + CodeB
)
`, "Code")

		assert.Equal(t, []int64{3, 30, 33}, values(resolved))
	})

	t.Run("bitwise complement", func(t *testing.T) {
		t.Parallel()

		// ^x is the untyped-constant complement -x-1, the value the
		// host compiler assigns.
		resolved := resolve(t, `
package sample

type Mode int

const (
	ModeAll  Mode = ^0
	ModeMask Mode = ^5
)
`, "Mode")

		assert.Equal(t, []int64{-1, -6}, values(resolved))
	})

	t.Run("parenthesized", func(t *testing.T) {
		t.Parallel()

		resolved := resolve(t, `
package sample

type Code int

const CodeA Code = (2 + 3) * 4
`, "Code")

		assert.Equal(t, []int64{20}, values(resolved))
	})
}

func TestResolveBlankSlotAdvancesNumbering(t *testing.T) {
	t.Parallel()

	resolved := resolve(t, `
package sample

type Kind int

const (
	_ Kind = iota
	KindA
	KindB
)
`, "Kind")

	require.Len(t, resolved, 3)
	assert.True(t, resolved[0].Blank)
	assert.Equal(t, []int64{0, 1, 2}, values(resolved))
}

func TestResolveDuplicatesArePermitted(t *testing.T) {
	t.Parallel()

	// Shared discriminants are an accepted ambiguity, not a failure.
	resolved := resolve(t, `
package sample

type Mode int

const (
	ModeA Mode = 5
	ModeB Mode = 5
)
`, "Mode")

	assert.Equal(t, []int64{5, 5}, values(resolved))
}

func TestResolveUnsignedRangeWraps(t *testing.T) {
	t.Parallel()

	// A constant in [2^63, 2^64) is legal on an unsigned enum. It
	// resolves to the reinterpreted negative bit pattern instead of
	// failing, and the wrap is marked so the generators avoid the
	// overflowing constant conversion.
	resolved := resolve(t, `
package sample

type Flag uint64

const (
	FlagNone Flag = 0
	FlagBig  Flag = 1 << 63
	FlagAll  Flag = 18446744073709551615
)
`, "Flag")

	assert.Equal(t, []int64{0, math.MinInt64, -1}, values(resolved))
	assert.False(t, resolved[0].Wrapped)
	assert.True(t, resolved[1].Wrapped)
	assert.True(t, resolved[2].Wrapped)
}

func TestResolveFailures(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "string literal",
			src: `
package sample

type Code int

const CodeA Code = "nope"
`,
			want: "not an integer",
		},
		{
			name: "unknown identifier",
			src: `
package sample

type Code int

const CodeA Code = maxCode
`,
			want: "previously declared variant",
		},
		{
			name: "out of int64 range",
			src: `
package sample

type Code int

const CodeA Code = 1 << 70
`,
			want: "shift count",
		},
		{
			name: "overflowing literal",
			src: `
package sample

type Code int

const CodeA Code = 18446744073709551616
`,
			want: "does not fit in 64 bits",
		},
		{
			name: "division by zero",
			src: `
package sample

type Code int

const CodeA Code = 1 / 0
`,
			want: "division by zero",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := resolveDiscriminants(parseEnum(t, tc.src, "Code"))
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.want)
			assert.ErrorContains(t, err, "CodeA", "failure names the variant")
		})
	}
}
