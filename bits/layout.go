package bits

import (
	"github.com/calebcase/bitpart"
)

// Span declares one field of a Layout.
type Span struct {
	Width    int
	Reserved bool
}

// W is a value field of width bits.
func W(width int) Span {
	return Span{Width: width}
}

// R is a reserved field of width bits.
func R(width int) Span {
	return Span{Width: width, Reserved: true}
}

// Layout splits values of type S by a list of spans chosen at run time. It
// returns raw values; use a Part when the fields need their own types.
type Layout[S Source] struct {
	n      Numbering
	spans  []Span
	fields int
}

// NewLayout validates spans against the width of S.
func NewLayout[S Source](n Numbering, spans ...Span) (_ *Layout[S], err error) {
	if !n.Valid() {
		return nil, Error.New("invalid numbering %d", uint8(n))
	}

	err = bitpart.CheckArity(len(spans))
	if err != nil {
		return nil, err
	}

	widths := make([]int, len(spans))
	fields := 0

	for i, s := range spans {
		widths[i] = s.Width
		if !s.Reserved {
			fields++
		}
	}

	err = bitpart.Check(Width[S](), widths...)
	if err != nil {
		return nil, err
	}

	return &Layout[S]{
		n:      n,
		spans:  append([]Span(nil), spans...),
		fields: fields,
	}, nil
}

// MustLayout is NewLayout that panics on an invalid layout.
func MustLayout[S Source](n Numbering, spans ...Span) *Layout[S] {
	l, err := NewLayout[S](n, spans...)
	bitpart.Must(err)

	return l
}

// Numbering returns the layout's bit numbering.
func (l *Layout[S]) Numbering() Numbering {
	return l.n
}

// Spans returns a copy of the declared spans.
func (l *Layout[S]) Spans() []Span {
	return append([]Span(nil), l.spans...)
}

// Fields returns how many values Split produces (reserved spans excluded).
func (l *Layout[S]) Fields() int {
	return l.fields
}

// Split returns the value of every non reserved span in declared order.
func (l *Layout[S]) Split(v S) []uint64 {
	dst := make([]uint64, l.fields)
	l.SplitInto(v, dst)

	return dst
}

// SplitInto is Split writing into dst. It returns the number of values
// written, which is less than Fields if dst is too short.
func (l *Layout[S]) SplitInto(v S, dst []uint64) (n int) {
	r := reader[S]{n: l.n, v: v}

	for _, s := range l.spans {
		raw := r.next(s.Width)
		if s.Reserved {
			continue
		}

		if n == len(dst) {
			return n
		}

		dst[n] = raw
		n++
	}

	return n
}

// Join is the inverse of Split. Reserved spans are zero.
func (l *Layout[S]) Join(fields []uint64) (v S, err error) {
	if len(fields) != l.fields {
		return 0, Error.New("join: %d values for %d fields", len(fields), l.fields)
	}

	w := writer[S]{n: l.n}
	i := 0

	for _, s := range l.spans {
		if s.Reserved {
			w.put(s.Width, 0)
			continue
		}

		if !w.put(s.Width, fields[i]) {
			return 0, Error.New("join: field %d value %#x overflows %d bits", i, fields[i], s.Width)
		}

		i++
	}

	return w.v, nil
}

// Split splits v by widths in one call. Prefer a Layout kept in a variable
// when the same widths are used repeatedly.
func Split[S Source](n Numbering, v S, widths ...int) (_ []uint64, err error) {
	spans := make([]Span, len(widths))
	for i, w := range widths {
		spans[i] = W(w)
	}

	l, err := NewLayout[S](n, spans...)
	if err != nil {
		return nil, err
	}

	return l.Split(v), nil
}
