package bits

// reader walks a value field by field.
type reader[S Source] struct {
	n Numbering
	v S
}

func (r *reader[S]) next(width int) uint64 {
	var f S

	if r.n == MSB0 {
		f, r.v = MsbSplit(r.v, width)
	} else {
		f, r.v = LsbSplit(r.v, width)
	}

	return uint64(f)
}

// writer is the inverse of reader.
type writer[S Source] struct {
	n   Numbering
	v   S
	off int
}

// put places the low width bits of raw at the next position. It reports
// false if raw has bits set above width.
func (w *writer[S]) put(width int, raw uint64) bool {
	f := S(raw) & mask[S](width)
	fits := uint64(f) == raw

	if w.n == MSB0 {
		w.off += width
		if shift := Width[S]() - w.off; shift > 0 {
			f <<= shift
		}
	} else {
		f <<= w.off
		w.off += width
	}

	w.v |= f

	return fits
}
