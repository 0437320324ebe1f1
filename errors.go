package bitpart

import "github.com/zeebo/errs"

// Error classes.
var (
	// Error is the general class for failures outside the two partition
	// failure kinds (for example a value that does not fit its field when
	// composing).
	Error = errs.Class("bitpart")

	// WidthError is a declared field list that does not cover its source
	// exactly. It is raised when a descriptor is constructed, never while
	// splitting.
	WidthError = errs.Class("width mismatch")

	// LengthError is an input slice shorter than the fixed size requested
	// from it.
	LengthError = errs.Class("insufficient length")
)

// Must panics if err is non-nil.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}
