// Package numconv defines the contracts implemented by generated integer
// conversion code.
//
// For an annotated enum type T the generator produces constructors matching
// FromInt64Func[T] and FromUint64Func[T], and methods satisfying
// Int64Extractor. Generated files import this package under a file-scoped
// alias, so user packages never see the import unless they want it.
//
// Both unsigned entry points are reinterpreting, not range-checked: a uint64
// above math.MaxInt64 wraps to a negative signed value on the way in, and a
// negative discriminant surfaces as a large uint64 on the way out.
package numconv

// Int64Extractor is implemented by enum values whose discriminant can be
// read back as an integer. The bool result reports whether the value matches
// a declared variant; an enum with no variants always reports false.
type Int64Extractor interface {
	Int64() (int64, bool)
	Uint64() (uint64, bool)
}

// FromInt64Func is the signature of a generated signed constructor: it
// returns the first-declared variant whose discriminant equals n, or false.
type FromInt64Func[T any] func(n int64) (T, bool)

// FromUint64Func is the signature of a generated unsigned constructor. It
// reinterprets n as signed before matching.
type FromUint64Func[T any] func(n uint64) (T, bool)
