package distance

// Hamming returns the number of positions at which x and y differ. x
// and y must have equal length; otherwise Hamming returns
// ErrLengthMismatch.
func Hamming(x, y []byte) (uint, error) {
	if len(x) != len(y) {
		return 0, ErrLengthMismatch
	}
	var n uint
	for i := range x {
		if x[i] != y[i] {
			n++
		}
	}
	return n, nil
}

// SimdHamming is observably equivalent to Hamming; it delegates to the
// scalar implementation rather than hand-rolling a SIMD kernel.
func SimdHamming(x, y []byte) (uint, error) {
	return Hamming(x, y)
}
