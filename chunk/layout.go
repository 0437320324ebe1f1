package chunk

import (
	"github.com/calebcase/bitpart"
)

// Layout splits a buffer by a list of sizes chosen at run time. Results are
// sub-slices of the input.
type Layout struct {
	size  int
	sizes []int
}

// NewLayout validates that sizes add up to size.
func NewLayout(size int, sizes ...int) (_ *Layout, err error) {
	err = bitpart.CheckArity(len(sizes))
	if err != nil {
		return nil, err
	}

	err = bitpart.Check(size, sizes...)
	if err != nil {
		return nil, err
	}

	return &Layout{
		size:  size,
		sizes: append([]int(nil), sizes...),
	}, nil
}

// MustLayout is NewLayout that panics on an invalid layout.
func MustLayout(size int, sizes ...int) *Layout {
	l, err := NewLayout(size, sizes...)
	bitpart.Must(err)

	return l
}

// Size returns the total number of bytes l covers.
func (l *Layout) Size() int {
	return l.size
}

// Sizes returns a copy of the field sizes.
func (l *Layout) Sizes() []int {
	return append([]int(nil), l.sizes...)
}

// Split splits b, which must be exactly Size bytes long.
func (l *Layout) Split(b []byte) (_ [][]byte, err error) {
	err = exact(l.size, len(b))
	if err != nil {
		return nil, err
	}

	return l.split(b), nil
}

// Take splits the first Size bytes of s and returns the rest as the tail.
func (l *Layout) Take(s []byte) (seq bitpart.Seq[[][]byte], err error) {
	head, tail, err := cut(s, l.size)
	if err != nil {
		return seq, err
	}

	seq.Head = l.split(head)
	seq.Tail = tail

	return seq, nil
}

func (l *Layout) split(b []byte) [][]byte {
	out := make([][]byte, len(l.sizes))
	r := reader{b: b}

	for i, n := range l.sizes {
		out[i] = r.next(n)
	}

	return out
}
