// Package coerce converts raw field values into the types callers declare
// for them.
//
// Every partitioner extracts a field as a raw uint64 and hands it to a Func.
// The built in targets are:
//
//	Bool     nonzero is true
//	Uint[T]  any unsigned type, including named ones (type Mode uint8)
//	Int[T]   two's complement of a given width, sign extended
//	Zigzag   sign in the lowest bit, magnitude above it
//	Discard  reserved bits, the result is Void
//
// Other types take part by implementing Unmarshaler on their pointer and
// being passed to Into. Dispatch happens through type parameters at the call
// site, not through reflection.
package coerce
