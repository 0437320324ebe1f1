// Package bitpart partitions fixed-width values and byte buffers into ordered,
// typed fields.
//
// The root package holds what every partitioner shares: width validation,
// the error classes, the Seq head/tail pair returned by fallible slice
// operations and the tuple types T1 through T26 used as Seq heads.
//
// Subpackages:
//
//	coerce  raw field value to caller type (bool, sized unsigned, discard, ...)
//	bits    LSB0/MSB0 bit fields of an unsigned integer
//	chunk   byte sub-buffers of a fixed size buffer or a longer slice
//	endian  little/big endian integers inside byte fields
//
// Validation
//
// A descriptor is checked once, when it is constructed. The declared widths
// must add up to exactly the width of the source:
//
//	source width N, declared widths summing to V
//
//	  V < N  -> WidthError (N-V bits or bytes undeclared)
//	  V > N  -> WidthError (V-N bits or bytes past the end)
//	  V == N -> descriptor usable, splits cannot fail
//
// Constructors return the error; the MustX variants panic with it and are
// meant for package level variables so that a bad layout stops the program
// at startup.
//
// Chaining
//
// Slice operations return a Seq. Its Tail is the unconsumed part of the
// input (a subslice, never a copy), so parsing continues by handing Tail to
// the next descriptor. Layouts with more than MaxArity fields are written as
// two or more chained descriptors.
package bitpart

//go:generate go run ./cmd/bitpartgen -kind tuple -pkg bitpart -o tuple.gen.go
