package bits

import (
	"github.com/calebcase/bitpart/coerce"
)

// Field is one bit field of a typed descriptor: how many bits it takes and
// how its raw value becomes a T.
type Field[T any] struct {
	Width int

	// Coerce turns the extracted bits into the caller's value.
	Coerce coerce.Func[T]

	// Raw is the inverse of Coerce, used when joining fields back into a
	// value. A nil Raw joins as zero.
	Raw func(T) uint64
}

func (f Field[T]) raw(v T) uint64 {
	if f.Raw == nil {
		return 0
	}

	return f.Raw(v)
}

// Uint is a field read as the unsigned type T.
func Uint[T coerce.Unsigned](width int) Field[T] {
	return Field[T]{
		Width:  width,
		Coerce: coerce.Uint[T],
		Raw:    coerce.RawUint[T],
	}
}

// Int is a field holding a width bit two's complement number.
func Int[T coerce.Signed](width int) Field[T] {
	return Field[T]{
		Width:  width,
		Coerce: coerce.Int[T](width),
		Raw:    coerce.RawInt[T](width),
	}
}

// Zigzag is a field with the sign in its lowest bit.
func Zigzag[T coerce.Signed](width int) Field[T] {
	return Field[T]{
		Width:  width,
		Coerce: coerce.Zigzag[T],
		Raw:    coerce.RawZigzag[T],
	}
}

// Bool is a flag. Any nonzero value is true.
func Bool(width int) Field[bool] {
	return Field[bool]{
		Width:  width,
		Coerce: coerce.Bool,
		Raw:    coerce.RawBool,
	}
}

// Reserved consumes width bits and discards them. They join as zero.
func Reserved(width int) Field[coerce.Void] {
	return Field[coerce.Void]{
		Width:  width,
		Coerce: coerce.Discard,
	}
}

// Custom is a field decoded by *T's UnmarshalRaw. If T also implements
// coerce.Marshaler it can be joined back.
func Custom[T any, P interface {
	*T
	coerce.Unmarshaler
}](width int) Field[T] {
	return Field[T]{
		Width:  width,
		Coerce: coerce.Into[T, P],
		Raw:    coerce.Raw[T],
	}
}

// Map is a field decoded by dec and encoded by enc. enc may be nil.
func Map[T any](width int, dec coerce.Func[T], enc func(T) uint64) Field[T] {
	return Field[T]{
		Width:  width,
		Coerce: dec,
		Raw:    enc,
	}
}
