package alphabet

import "sort"

// Alphabet is a set of legal byte symbols. The zero value is the empty
// alphabet.
type Alphabet struct {
	symbols []byte
	set     map[byte]bool
}

// New builds an Alphabet from the given symbols, deduplicating while
// keeping the first occurrence's position.
func New(symbols []byte) *Alphabet {
	a := &Alphabet{set: make(map[byte]bool, len(symbols))}
	for _, s := range symbols {
		if !a.set[s] {
			a.set[s] = true
			a.symbols = append(a.symbols, s)
		}
	}
	return a
}

// Symbols returns the alphabet's symbols in insertion order.
func (a *Alphabet) Symbols() []byte {
	out := make([]byte, len(a.symbols))
	copy(out, a.symbols)
	return out
}

// Len returns the number of distinct symbols.
func (a *Alphabet) Len() int { return len(a.symbols) }

// Contains reports whether b belongs to the alphabet.
func (a *Alphabet) Contains(b byte) bool { return a.set[b] }

// IsWord reports whether every byte of seq belongs to the alphabet.
func (a *Alphabet) IsWord(seq []byte) bool {
	for _, b := range seq {
		if !a.set[b] {
			return false
		}
	}
	return true
}

// Intersection returns a new Alphabet holding the symbols present in
// both a and other, in a's order.
func (a *Alphabet) Intersection(other *Alphabet) *Alphabet {
	out := &Alphabet{set: make(map[byte]bool)}
	for _, s := range a.symbols {
		if other.set[s] {
			out.set[s] = true
			out.symbols = append(out.symbols, s)
		}
	}
	return out
}

// Union returns a new Alphabet holding every symbol of a followed by
// any symbol of other not already present.
func (a *Alphabet) Union(other *Alphabet) *Alphabet {
	out := &Alphabet{set: make(map[byte]bool)}
	for _, s := range a.symbols {
		out.set[s] = true
		out.symbols = append(out.symbols, s)
	}
	for _, s := range other.symbols {
		if !out.set[s] {
			out.set[s] = true
			out.symbols = append(out.symbols, s)
		}
	}
	return out
}

// And is an operator-style alias for Intersection.
func (a *Alphabet) And(other *Alphabet) *Alphabet { return a.Intersection(other) }

// Or is an operator-style alias for Union.
func (a *Alphabet) Or(other *Alphabet) *Alphabet { return a.Union(other) }

// String renders the alphabet as "<Alphabet: ACGT>".
func (a *Alphabet) String() string {
	return "<Alphabet: " + string(a.symbols) + ">"
}

// sortedSymbols returns a's symbols sorted by byte value, used to
// assign stable ranks regardless of construction order.
func (a *Alphabet) sortedSymbols() []byte {
	out := a.Symbols()
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
