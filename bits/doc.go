// Package bits splits an unsigned integer into ordered bit fields.
//
// Bit Numbering
//
// The numbering decides which end of the value the first declared field
// comes from. For a uint16 split as 7, 1, 8:
//
//	| 15 . . . . . . 8 | 7 | 6 . . . . . 0 |
//	|------------------|---|---------------|
//	| third (8 bits)   | 2 | first (7 bits)|   LSB0
//
//	| 0 . . . . . 6 | 7 | 8 . . . . . . 15 |
//	|---------------|---|------------------|
//	| first (7 bits)| 2 | third (8 bits)   |   MSB0 (bit 0 is the top bit)
//
// Results always come back in declared order, whichever end each field was
// taken from.
//
// Descriptors
//
// Layout is built from a runtime list of spans and returns raw values. Part1
// through Part26 carry a Field per position, so every result has its own type:
//
//	var status = bits.MustPart3[uint16](bits.LSB0,
//		bits.Uint[uint8](7),
//		bits.Bool(1),
//		bits.Uint[uint8](8),
//	)
//
//	a, b, c := status.Split(0b1111_0000_1100_1010) // 0b100_1010, true, 0xf0
//
// Reserved bits are declared with Reserved. They are consumed like any other
// field; Part returns coerce.Void for them and Layout leaves them out.
package bits

//go:generate go run ../cmd/bitpartgen -kind bits -pkg bits -o part.gen.go
