package chunk

import (
	"github.com/calebcase/bitpart"
)

// Field is one byte field of a typed descriptor.
type Field[T any] struct {
	Size int

	// Decode turns exactly Size bytes into the caller's value. The slice
	// aliases the input.
	Decode func(b []byte) T

	// Encode writes v into exactly Size bytes, which are zero on entry. A
	// nil Encode leaves them zero.
	Encode func(b []byte, v T)
}

func (f Field[T]) encode(b []byte, v T) {
	if f.Encode == nil {
		return
	}

	f.Encode(b, v)
}

// Bytes is a field returned as a sub-slice of the input. It is not copied
// and is only valid as long as the input is.
func Bytes(n int) Field[[]byte] {
	return Field[[]byte]{
		Size: n,
		Decode: func(b []byte) []byte {
			return b
		},
		Encode: func(b []byte, v []byte) {
			copy(b, v)
		},
	}
}

// Copy is a field returned as a newly allocated copy.
func Copy(n int) Field[[]byte] {
	return Field[[]byte]{
		Size: n,
		Decode: func(b []byte) []byte {
			return append([]byte(nil), b...)
		},
		Encode: func(b []byte, v []byte) {
			copy(b, v)
		},
	}
}

// Fixed is a field copied into the byte array A.
func Fixed[A ByteArray]() Field[A] {
	var a A

	return Field[A]{
		Size:   len(a),
		Decode: Array[A],
		Encode: func(b []byte, v A) {
			for i := 0; i < len(b); i++ {
				b[i] = v[i]
			}
		},
	}
}

// Byte is a single byte field.
func Byte() Field[byte] {
	return Field[byte]{
		Size: 1,
		Decode: func(b []byte) byte {
			return b[0]
		},
		Encode: func(b []byte, v byte) {
			b[0] = v
		},
	}
}

// Skip consumes n bytes and discards them. They encode as zero.
func Skip(n int) Field[struct{}] {
	return Field[struct{}]{
		Size: n,
		Decode: func([]byte) struct{} {
			return struct{}{}
		},
	}
}

// Map is a field of n bytes decoded by dec and encoded by enc. enc may be
// nil.
func Map[T any](n int, dec func([]byte) T, enc func([]byte, T)) Field[T] {
	return Field[T]{
		Size:   n,
		Decode: dec,
		Encode: enc,
	}
}

// shape is what a typed descriptor validates about one of its fields.
type shape struct {
	size   int
	decode bool
}

func (f Field[T]) shape() shape {
	return shape{size: f.Size, decode: f.Decode != nil}
}

// check validates a typed descriptor before it is built.
func check(size int, shapes ...shape) (err error) {
	sizes := make([]int, len(shapes))

	for i, s := range shapes {
		if !s.decode {
			return bitpart.Error.New("field %d: no Decode func", i+1)
		}

		sizes[i] = s.size
	}

	return bitpart.Check(size, sizes...)
}
