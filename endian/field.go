package endian

import (
	"github.com/calebcase/bitpart"
	"github.com/calebcase/bitpart/chunk"
)

// Field is a chunk field holding a T in order o.
func Field[T Unsigned](o Order) chunk.Field[T] {
	size := Size[T]()

	return chunk.Field[T]{
		Size: size,
		Decode: func(b []byte) T {
			return T(o.Uint(b))
		},
		Encode: func(b []byte, v T) {
			o.PutUint(b, uint64(v))
		},
	}
}

// Le is a little endian T.
func Le[T Unsigned]() chunk.Field[T] {
	return Field[T](Little)
}

// Be is a big endian T.
func Be[T Unsigned]() chunk.Field[T] {
	return Field[T](Big)
}

// Map is a T in order o passed through fn, for types built from an integer
// (an enumeration stored as a uint16, say). It cannot be encoded.
func Map[T Unsigned, U any](o Order, fn func(T) U) chunk.Field[U] {
	f := Field[T](o)

	return chunk.Map(f.Size, func(b []byte) U {
		return fn(f.Decode(b))
	}, nil)
}

// LeMap is Map in little endian order.
func LeMap[T Unsigned, U any](fn func(T) U) chunk.Field[U] {
	return Map(Little, fn)
}

// BeMap is Map in big endian order.
func BeMap[T Unsigned, U any](fn func(T) U) chunk.Field[U] {
	return Map(Big, fn)
}

// Elems is a field of n consecutive Ts in order o. Decode allocates the
// slice.
func Elems[T Unsigned](o Order, n int) chunk.Field[[]T] {
	size := Size[T]()

	return chunk.Field[[]T]{
		Size: n * size,
		Decode: func(b []byte) []T {
			dst := make([]T, n)
			bitpart.Must(Fill(o, dst, b))

			return dst
		},
		Encode: func(b []byte, v []T) {
			for i := 0; i < n && i < len(v); i++ {
				o.PutUint(b[i*size:(i+1)*size], uint64(v[i]))
			}
		},
	}
}
