package bitpart

// MaxArity is the largest number of fields one descriptor accepts. Longer
// layouts are split across chained descriptors.
const MaxArity = 26

// Sum returns the total of widths. Every width must be positive.
func Sum(widths ...int) (total int, err error) {
	for i, w := range widths {
		if w <= 0 {
			return 0, WidthError.New("field %d: width %d is not positive", i, w)
		}

		total += w
	}

	return total, nil
}

// Check verifies that widths add up to exactly n.
func Check(n int, widths ...int) (err error) {
	if n <= 0 {
		return WidthError.New("source width %d is not positive", n)
	}

	v, err := Sum(widths...)
	if err != nil {
		return err
	}

	// Both differences are kept so the message says which way it is off.
	short, over := n-v, v-n

	switch {
	case short > 0:
		return WidthError.New("fields %v sum to %d, %d short of %d", widths, v, short, n)
	case over > 0:
		return WidthError.New("fields %v sum to %d, %d past %d", widths, v, over, n)
	}

	return nil
}

// CheckArity verifies that k fields fit in one descriptor.
func CheckArity(k int) (err error) {
	if k < 1 || k > MaxArity {
		return WidthError.New("arity %d outside 1..%d", k, MaxArity)
	}

	return nil
}
