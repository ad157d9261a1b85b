package distance

// Levenshtein returns the edit distance between x and y: the minimum
// number of single-byte insertions, deletions and substitutions needed
// to turn x into y. It runs in O(len(x)*len(y)) time using two rolling
// rows, O(min(len(x),len(y))) space.
func Levenshtein(x, y []byte) uint {
	if len(x) < len(y) {
		x, y = y, x
	}
	if len(y) == 0 {
		return uint(len(x))
	}

	prev := make([]uint, len(y)+1)
	curr := make([]uint, len(y)+1)
	for j := range prev {
		prev[j] = uint(j)
	}

	for i := 1; i <= len(x); i++ {
		curr[0] = uint(i)
		for j := 1; j <= len(y); j++ {
			if x[i-1] == y[j-1] {
				curr[j] = prev[j-1]
				continue
			}
			del := prev[j] + 1
			ins := curr[j-1] + 1
			sub := prev[j-1] + 1
			curr[j] = minOf3(del, ins, sub)
		}
		prev, curr = curr, prev
	}
	return prev[len(y)]
}

// SimdLevenshtein is observably equivalent to Levenshtein; it delegates
// to the scalar implementation rather than hand-rolling a SIMD kernel.
func SimdLevenshtein(x, y []byte) uint {
	return Levenshtein(x, y)
}

// SimdBoundedLevenshtein returns the edit distance between x and y if
// it is at most bound, and false otherwise. As with SimdLevenshtein,
// this delegates to the scalar kernel; the bound only affects the
// reported result, not the work performed.
func SimdBoundedLevenshtein(x, y []byte, bound uint) (uint, bool) {
	d := Levenshtein(x, y)
	if d > bound {
		return 0, false
	}
	return d, true
}

func minOf3(a, b, c uint) uint {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
