package numconv_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"numconv-generator/numconv"
)

// level mimics the code the generator emits for a two-variant enum with a
// negative discriminant, pinning down the contracts generated files assert
// against.
type level int

const (
	levelLow  level = -1
	levelHigh level = 7
)

func levelFromInt64(n int64) (level, bool) {
	if n == int64(levelLow) {
		return levelLow, true
	} else if n == int64(levelHigh) {
		return levelHigh, true
	}
	var zero level
	return zero, false
}

func levelFromUint64(n uint64) (level, bool) {
	return levelFromInt64(int64(n))
}

func (v level) Int64() (int64, bool) {
	switch {
	case v == levelLow:
		return int64(levelLow), true
	case v == levelHigh:
		return int64(levelHigh), true
	}
	return 0, false
}

func (v level) Uint64() (uint64, bool) {
	n, ok := v.Int64()
	return uint64(n), ok
}

var (
	_ numconv.FromInt64Func[level]  = levelFromInt64
	_ numconv.FromUint64Func[level] = levelFromUint64
	_ numconv.Int64Extractor        = level(0)
)

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	for _, v := range []level{levelLow, levelHigh} {
		n, ok := v.Int64()
		require.True(t, ok)

		got, ok := levelFromInt64(n)
		require.True(t, ok)
		assert.Equal(t, v, got)
	}
}

func TestMiss(t *testing.T) {
	t.Parallel()

	_, ok := levelFromInt64(3)
	assert.False(t, ok)

	n, ok := level(3).Int64()
	assert.False(t, ok)
	assert.Zero(t, n)
}

func TestUnsignedReinterpretation(t *testing.T) {
	t.Parallel()

	// Within the int64 range the unsigned constructor agrees with the
	// signed one.
	got, ok := levelFromUint64(7)
	require.True(t, ok)
	assert.Equal(t, levelHigh, got)

	// Beyond it, the bit pattern wraps instead of failing: MaxUint64
	// reinterprets to -1.
	got, ok = levelFromUint64(math.MaxUint64)
	require.True(t, ok)
	assert.Equal(t, levelLow, got)

	// And a negative discriminant surfaces as a large unsigned value.
	u, ok := levelLow.Uint64()
	require.True(t, ok)
	assert.Equal(t, uint64(math.MaxUint64), u)
}
