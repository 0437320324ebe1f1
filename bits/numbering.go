package bits

import (
	"fmt"
	mathbits "math/bits"
)

// Source is the set of integer types that can be split.
type Source interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Width returns the size of S in bits.
func Width[S Source]() int {
	return mathbits.OnesCount64(uint64(^S(0)))
}

// Numbering is the bit numbering a descriptor uses.
type Numbering uint8

// Bit numberings.
const (
	// LSB0 takes the first field from the least significant bits.
	LSB0 Numbering = iota
	// MSB0 takes the first field from the most significant bits.
	MSB0
)

func (n Numbering) String() string {
	switch n {
	case LSB0:
		return "lsb0"
	case MSB0:
		return "msb0"
	}

	return fmt.Sprintf("Numbering(%d)", uint8(n))
}

// Valid reports whether n is LSB0 or MSB0.
func (n Numbering) Valid() bool {
	return n == LSB0 || n == MSB0
}

// ParseNumbering is the inverse of Numbering.String.
func ParseNumbering(s string) (n Numbering, err error) {
	switch s {
	case "lsb0", "lsb", "LSB0", "LSB":
		return LSB0, nil
	case "msb0", "msb", "MSB0", "MSB":
		return MSB0, nil
	}

	return 0, Error.New("unknown numbering %q", s)
}

// mask returns the low n bits set.
func mask[S Source](n int) S {
	if n >= Width[S]() {
		return ^S(0)
	}

	return ^(^S(0) << n)
}

// LsbSplit splits off the n least significant bits of v. rest is v shifted
// down past them.
func LsbSplit[S Source](v S, n int) (field, rest S) {
	switch {
	case n <= 0:
		return 0, v
	case n >= Width[S]():
		return v, 0
	}

	return v & mask[S](n), v >> n
}

// MsbSplit splits off the n most significant bits of v. rest is v shifted up
// past them, so the next field again starts at the top bit.
func MsbSplit[S Source](v S, n int) (field, rest S) {
	w := Width[S]()

	switch {
	case n <= 0:
		return 0, v
	case n >= w:
		return v, 0
	}

	low := ^S(0) >> n

	return (v &^ low) >> (w - n), (v & low) << n
}
