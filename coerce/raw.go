package coerce

import "math"

// Unmarshaler is implemented by types that set themselves from a raw field
// value.
type Unmarshaler interface {
	UnmarshalRaw(raw uint64)
}

// Marshaler is implemented by types that can report their raw field value.
type Marshaler interface {
	MarshalRaw() uint64
}

// Into decodes raw into a T through *T's UnmarshalRaw.
func Into[T any, P interface {
	*T
	Unmarshaler
}](raw uint64) T {
	var v T
	P(&v).UnmarshalRaw(raw)

	return v
}

// Raw returns the raw value of v if T or *T implements Marshaler and zero
// otherwise.
func Raw[T any](v T) uint64 {
	switch m := any(v).(type) {
	case Marshaler:
		return m.MarshalRaw()
	}

	if m, ok := any(&v).(Marshaler); ok {
		return m.MarshalRaw()
	}

	return 0
}

// RawBool is the inverse of Bool.
func RawBool(b bool) uint64 {
	if b {
		return 1
	}

	return 0
}

// RawUint is the inverse of Uint.
func RawUint[T Unsigned](v T) uint64 {
	return uint64(v)
}

// RawInt is the inverse of Int: v truncated to width bits.
func RawInt[T Signed](width int) func(T) uint64 {
	return func(v T) uint64 {
		raw := uint64(int64(v))
		if width >= 64 {
			return raw
		}

		return raw & (1<<width - 1)
	}
}

// RawZigzag is the inverse of Zigzag. The magnitude has 63 bits, so the
// minimum int64 saturates to -math.MaxInt64.
func RawZigzag[T Signed](v T) uint64 {
	if v < 0 {
		m := uint64(math.MaxInt64)
		if int64(v) != math.MinInt64 {
			m = uint64(-int64(v))
		}

		return m<<1 | 1
	}

	return uint64(v) << 1
}
