package seqanalysis

func isGC(b byte) bool {
	switch b {
	case 'G', 'C', 'g', 'c':
		return true
	default:
		return false
	}
}

// GCContent returns the fraction of G/C bases in seq, 0 for an empty
// sequence.
func GCContent(seq []byte) float64 {
	if len(seq) == 0 {
		return 0
	}
	gc := 0
	for _, b := range seq {
		if isGC(b) {
			gc++
		}
	}
	return float64(gc) / float64(len(seq))
}

// GC3Content returns the fraction of G/C bases at every third position
// of seq, starting at index 0 (the first base of each codon in frame),
// 0 for an empty sequence.
func GC3Content(seq []byte) float64 {
	total, gc := 0, 0
	for i := 0; i < len(seq); i += 3 {
		total++
		if isGC(seq[i]) {
			gc++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(gc) / float64(total)
}
