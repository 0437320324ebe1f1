package bitpart

// Seq is the result of a fallible slice operation: the decoded Head and the
// Tail of the input that was not consumed.
//
// Tail aliases the input. It is only valid as long as the input is and it
// changes if the input is written to.
type Seq[H any] struct {
	Head H
	Tail []byte
}

// Consumed returns how many bytes of an input of length total went into
// Head.
func (s Seq[H]) Consumed(total int) int {
	return total - len(s.Tail)
}
