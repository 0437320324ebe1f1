// Package chunk splits byte buffers into ordered sub-buffers.
//
// A fixed size buffer is split with Decode (or Layout.Split); its length must
// match the declared total exactly. A longer slice is split with Take, Head
// or Cut, which read a fixed size prefix and return the rest of the slice as
// the tail of a bitpart.Seq:
//
//	input  | 00 11 22 33 44 55 66 |
//	         ^^^^^^^^ head (3)
//	                  ^^^^^^^^^^^ tail (4, same backing array)
//
// Heads are never short: if fewer bytes are left than requested the call
// fails with a bitpart.LengthError and returns no partial data.
//
// Fields
//
// A Field says how many bytes a position takes and how they become a value.
// Bytes, Copy, Fixed, Byte and Skip are order independent; package endian
// provides integer fields in little or big endian order. Part1 through
// Part26 combine fields into one typed descriptor.
package chunk

//go:generate go run ../cmd/bitpartgen -kind chunk -pkg chunk -o part.gen.go
//go:generate go run ../cmd/bitpartgen -kind array -pkg chunk -max 64 -o array.gen.go
