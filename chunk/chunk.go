package chunk

import (
	"github.com/calebcase/bitpart"
)

// Cut returns the first n bytes of s as the head and the rest as the tail.
// Neither is copied.
func Cut(s []byte, n int) (seq bitpart.Seq[[]byte], err error) {
	head, tail, err := cut(s, n)
	if err != nil {
		return seq, err
	}

	seq.Head = head
	seq.Tail = tail

	return seq, nil
}

// Head copies the first len(A) bytes of s into an array. s may be longer;
// the remainder is the tail.
func Head[A ByteArray](s []byte) (seq bitpart.Seq[A], err error) {
	n := len(seq.Head)

	head, tail, err := cut(s, n)
	if err != nil {
		return seq, err
	}

	seq.Head = A(head)
	seq.Tail = tail

	return seq, nil
}

// Array copies b into an array. b must be exactly len(A) bytes; anything else
// is a layout error and panics.
func Array[A ByteArray](b []byte) (a A) {
	bitpart.Must(exact(len(a), len(b)))

	return A(b)
}

func cut(s []byte, n int) (head, tail []byte, err error) {
	if n < 0 {
		return nil, s, bitpart.WidthError.New("negative size %d", n)
	}
	if len(s) < n {
		return nil, s, bitpart.LengthError.New("need %d bytes, have %d", n, len(s))
	}

	return s[:n:n], s[n:], nil
}

// exact checks a buffer of length have against a declared size.
func exact(size, have int) error {
	switch {
	case have < size:
		return bitpart.LengthError.New("need %d bytes, have %d", size, have)
	case have > size:
		return bitpart.WidthError.New("buffer of %d bytes, layout covers %d", have, size)
	}

	return nil
}

// grow extends dst by n zero bytes and returns the extended slice and the
// new bytes.
func grow(dst []byte, n int) (all, added []byte) {
	l := len(dst)
	dst = append(dst, make([]byte, n)...)

	return dst, dst[l:]
}

// reader hands out consecutive sub-slices of b.
type reader struct {
	b   []byte
	off int
}

func (r *reader) next(n int) []byte {
	p := r.b[r.off : r.off+n : r.off+n]
	r.off += n

	return p
}
