package alphabet

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/go-bio/bioalign/align"
)

// RankTransform maps an Alphabet's symbols onto the dense integer range
// [0, N), sorted by byte value, so they can be packed into fixed-width
// q-gram codes.
type RankTransform struct {
	symbols []byte
	ranks   map[byte]int
}

// NewRankTransform builds a RankTransform over a's symbols.
func NewRankTransform(a *Alphabet) *RankTransform {
	sorted := a.sortedSymbols()
	rt := &RankTransform{symbols: sorted, ranks: make(map[byte]int, len(sorted))}
	for i, s := range sorted {
		rt.ranks[s] = i
	}
	return rt
}

// Get returns b's rank, and false if b is not in the underlying
// alphabet.
func (rt *RankTransform) Get(b byte) (int, bool) {
	r, ok := rt.ranks[b]
	return r, ok
}

// Ranks returns a copy of the symbol-to-rank map.
func (rt *RankTransform) Ranks() map[byte]int {
	out := make(map[byte]int, len(rt.ranks))
	for k, v := range rt.ranks {
		out[k] = v
	}
	return out
}

// Transform maps every byte of seq to its rank, failing with
// align.ErrUnknownSymbol on the first byte outside the alphabet.
func (rt *RankTransform) Transform(seq []byte) ([]int, error) {
	out := make([]int, len(seq))
	for i, b := range seq {
		r, ok := rt.ranks[b]
		if !ok {
			return nil, align.ErrUnknownSymbol
		}
		out[i] = r
	}
	return out, nil
}

// GetWidth returns the number of bits required to hold a single rank:
// ceil(log2(n)) for an n-symbol alphabet.
func (rt *RankTransform) GetWidth() int {
	return ceilLog2(len(rt.symbols))
}

// QGrams returns, for every width-q sliding window of seq, the integer
// code obtained by packing the window's ranks MSB-first at GetWidth
// bits per symbol. It fails with align.ErrUnknownSymbol if seq contains
// a byte outside the alphabet, and returns nil if seq is shorter than q.
func (rt *RankTransform) QGrams(q int, seq []byte) ([]int, error) {
	if len(seq) < q {
		return nil, nil
	}
	ranks, err := rt.Transform(seq)
	if err != nil {
		return nil, err
	}
	width := uint(rt.GetWidth())
	out := make([]int, 0, len(ranks)-q+1)
	for i := 0; i+q <= len(ranks); i++ {
		code := 0
		for j := 0; j < q; j++ {
			code = (code << width) | ranks[i+j]
		}
		out = append(out, code)
	}
	return out, nil
}

// String renders the transform as "<RankTransform: A-0, C-1, ...>" in
// rank order.
func (rt *RankTransform) String() string {
	var b strings.Builder
	b.WriteString("<RankTransform: ")
	for i, s := range rt.symbols {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%c-%d", s, rt.ranks[s])
	}
	b.WriteString(">")
	return b.String()
}

// ceilLog2 returns the smallest w such that 2^w >= n, for n >= 1; 0 for
// n <= 1.
func ceilLog2(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}
