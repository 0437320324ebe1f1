package bits

import "github.com/calebcase/bitpart"

// shape is what a typed descriptor validates about one of its fields.
type shape struct {
	width  int
	coerce bool
}

func (f Field[T]) shape() shape {
	return shape{width: f.Width, coerce: f.Coerce != nil}
}

// check validates a typed descriptor before it is built.
func check[S Source](n Numbering, shapes ...shape) (err error) {
	if !n.Valid() {
		return Error.New("invalid numbering %d", uint8(n))
	}

	widths := make([]int, len(shapes))

	for i, s := range shapes {
		if !s.coerce {
			return Error.New("field %d: no Coerce func", i+1)
		}

		widths[i] = s.width
	}

	return bitpart.Check(Width[S](), widths...)
}
