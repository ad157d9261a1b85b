package seqanalysis

import (
	"fmt"
	"sort"

	"github.com/go-bio/bioalign/align"
)

// Orf is a single open reading frame: the half-open byte range
// [Start, End) in the scanned sequence, and the reading-frame Offset
// (0, 1 or 2) it was found in.
type Orf struct {
	Start, End, Offset int
}

// String renders the Orf as "<Orf: start=3, end=12, offset=0>".
func (o Orf) String() string {
	return fmt.Sprintf("<Orf: start=%d, end=%d, offset=%d>", o.Start, o.End, o.Offset)
}

// Finder scans a sequence for open reading frames bounded by a fixed
// set of start and stop codons, all the same length.
type Finder struct {
	start    map[string]bool
	stop     map[string]bool
	codonLen int
	minLen   int
}

// NewFinder builds a Finder. startCodons and stopCodons must both be
// non-empty and every codon (start or stop) must share the same
// length, or NewFinder fails with align.ErrEmptyArgument or
// align.ErrInvalidConfiguration respectively. minLen is the minimum
// nucleotide length (End-Start) an Orf must have to be reported.
func NewFinder(startCodons, stopCodons [][]byte, minLen int) (*Finder, error) {
	if len(startCodons) == 0 || len(stopCodons) == 0 {
		return nil, align.ErrEmptyArgument
	}
	codonLen := len(startCodons[0])
	for _, c := range startCodons {
		if len(c) != codonLen {
			return nil, align.ErrInvalidConfiguration
		}
	}
	for _, c := range stopCodons {
		if len(c) != codonLen {
			return nil, align.ErrInvalidConfiguration
		}
	}

	f := &Finder{
		start:    make(map[string]bool, len(startCodons)),
		stop:     make(map[string]bool, len(stopCodons)),
		codonLen: codonLen,
		minLen:   minLen,
	}
	for _, c := range startCodons {
		f.start[string(c)] = true
	}
	for _, c := range stopCodons {
		f.stop[string(c)] = true
	}
	return f, nil
}

// FindAll scans seq in all codonLen reading frames and returns every
// Orf running from a start codon to the next in-frame stop codon, at
// least minLen bases long, sorted by (End, Start).
func (f *Finder) FindAll(seq []byte) []Orf {
	var out []Orf
	n := f.codonLen

	for offset := 0; offset < n; offset++ {
		var opens []int
		for i := offset; i+n <= len(seq); i += n {
			codon := string(seq[i : i+n])
			switch {
			case f.stop[codon]:
				end := i + n
				for _, s := range opens {
					if end-s >= f.minLen {
						out = append(out, Orf{Start: s, End: end, Offset: offset})
					}
				}
				opens = opens[:0]
			case f.start[codon]:
				opens = append(opens, i)
			}
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].End != out[j].End {
			return out[i].End < out[j].End
		}
		return out[i].Start < out[j].Start
	})
	return out
}
