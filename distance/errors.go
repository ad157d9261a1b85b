package distance

import "errors"

// ErrLengthMismatch is returned by Hamming/SimdHamming when the two
// sequences have different lengths.
var ErrLengthMismatch = errors.New("distance: sequence length mismatch")
