package coerce

// Unsigned is the set of types a raw field value can be narrowed to.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Signed is the set of types a two's complement field can be widened to.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Func converts a raw field value into T.
type Func[T any] func(raw uint64) T

// Void is the value of a discarded field. It has no size.
type Void struct{}

// Bool is true for any nonzero value.
func Bool(raw uint64) bool {
	return raw != 0
}

// Uint narrows or widens raw into T.
func Uint[T Unsigned](raw uint64) T {
	return T(raw)
}

// Discard drops the value.
func Discard(uint64) Void {
	return Void{}
}

// Int returns a Func reading raw as a width bit two's complement number.
func Int[T Signed](width int) Func[T] {
	return func(raw uint64) T {
		return T(SignExtend(raw, width))
	}
}

// SignExtend interprets the low width bits of raw as two's complement.
func SignExtend(raw uint64, width int) int64 {
	if width <= 0 {
		return 0
	}
	if width >= 64 {
		return int64(raw)
	}

	shift := 64 - width

	return int64(raw<<shift) >> shift
}

// Zigzag reads raw with the sign in bit 0 and the magnitude in the bits
// above it. A set sign with zero magnitude (raw 1) reads as 0.
func Zigzag[T Signed](raw uint64) T {
	v := T(raw >> 1)
	if raw&1 == 1 {
		v = -v
	}

	return v
}

// FromBool adapts a constructor taking a bool (a two state enumeration, say)
// into a Func.
func FromBool[T any](fn func(bool) T) Func[T] {
	return func(raw uint64) T {
		return fn(Bool(raw))
	}
}

// Map chains fn after f.
func Map[T, U any](f Func[T], fn func(T) U) Func[U] {
	return func(raw uint64) U {
		return fn(f(raw))
	}
}
