package alphabet

import "github.com/go-bio/bioalign/align"

// MakeDNAAlphabet returns the plain DNA alphabet {A,C,G,T} in both
// cases.
func MakeDNAAlphabet() *Alphabet { return New([]byte("ACGTacgt")) }

// MakeDNANAlphabet adds the "unknown base" symbol N to MakeDNAAlphabet.
func MakeDNANAlphabet() *Alphabet { return New([]byte("ACGTNacgtn")) }

// MakeDNAIUPACAlphabet returns the full IUPAC DNA ambiguity alphabet.
func MakeDNAIUPACAlphabet() *Alphabet { return New([]byte("ACGTRYSWKMBDHVNZacgtryswkmbdhvnz")) }

var dnaComplement = map[byte]byte{
	'A': 'T', 'T': 'A', 'C': 'G', 'G': 'C',
	'R': 'Y', 'Y': 'R', 'S': 'S', 'W': 'W',
	'K': 'M', 'M': 'K', 'B': 'V', 'V': 'B',
	'D': 'H', 'H': 'D', 'N': 'N', 'Z': 'Z',
	'a': 't', 't': 'a', 'c': 'g', 'g': 'c',
	'r': 'y', 'y': 'r', 's': 's', 'w': 'w',
	'k': 'm', 'm': 'k', 'b': 'v', 'v': 'b',
	'd': 'h', 'h': 'd', 'n': 'n', 'z': 'z',
}

// GetDNASymbolComplement returns the single-byte Watson-Crick (or
// IUPAC-ambiguity) complement of sym, which must be exactly one byte
// long.
func GetDNASymbolComplement(sym []byte) ([]byte, error) {
	if len(sym) != 1 {
		return nil, align.ErrLengthMismatch
	}
	c, ok := dnaComplement[sym[0]]
	if !ok {
		return nil, align.ErrUnknownSymbol
	}
	return []byte{c}, nil
}

// GetDNAComplement returns the reverse complement of seq.
func GetDNAComplement(seq []byte) ([]byte, error) {
	out := make([]byte, len(seq))
	for i, b := range seq {
		c, ok := dnaComplement[b]
		if !ok {
			return nil, align.ErrUnknownSymbol
		}
		out[len(seq)-1-i] = c
	}
	return out, nil
}
