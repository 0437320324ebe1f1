package endian

import (
	mathbits "math/bits"

	"github.com/calebcase/bitpart"
	"github.com/calebcase/bitpart/chunk"
	"github.com/calebcase/bitpart/coerce"
)

// Unsigned is the set of integer types this package decodes.
type Unsigned = coerce.Unsigned

// Size returns the size of T in bytes.
func Size[T Unsigned]() int {
	return mathbits.OnesCount64(uint64(^T(0))) / 8
}

// Decode reads b as a T. b must be exactly Size[T] bytes; anything else is a
// layout error and panics.
func Decode[T Unsigned](o Order, b []byte) T {
	if len(b) != Size[T]() {
		panic(bitpart.WidthError.New("%d bytes for a %d byte integer", len(b), Size[T]()))
	}

	return T(o.Uint(b))
}

// Take reads a T from the front of s and returns the rest of s as the tail.
func Take[T Unsigned](o Order, s []byte) (seq bitpart.Seq[T], err error) {
	head, err := chunk.Cut(s, Size[T]())
	if err != nil {
		return seq, err
	}

	seq.Head = T(o.Uint(head.Head))
	seq.Tail = head.Tail

	return seq, nil
}

// Fill decodes src into consecutive elements of dst. src must be exactly
// len(dst) elements long; on mismatch dst is left untouched.
func Fill[T Unsigned](o Order, dst []T, src []byte) (err error) {
	size := Size[T]()

	if len(src) != len(dst)*size {
		return bitpart.WidthError.New(
			"%d bytes for %d elements of %d bytes",
			len(src),
			len(dst),
			size,
		)
	}

	for i := range dst {
		dst[i] = T(o.Uint(src[i*size : (i+1)*size]))
	}

	return nil
}

// Raw copies b into the byte array A. Byte arrays are the same in either
// order, so o only documents the call site.
func Raw[A chunk.ByteArray](o Order, b []byte) A {
	return chunk.Array[A](b)
}

// Append appends v to dst in order o.
func Append[T Unsigned](o Order, dst []byte, v T) []byte {
	size := Size[T]()
	l := len(dst)

	dst = append(dst, make([]byte, size)...)
	o.PutUint(dst[l:], uint64(v))

	return dst
}
