package bits

import "github.com/zeebo/errs"

// Error is the class of errors from this package that are not width
// mismatches.
var Error = errs.Class("bits")
