package alphabet

import "github.com/go-bio/bioalign/align"

// MakeRNAAlphabet returns the plain RNA alphabet {A,C,G,U} in both
// cases.
func MakeRNAAlphabet() *Alphabet { return New([]byte("ACGUacgu")) }

// MakeRNANAlphabet adds the "unknown base" symbol N to MakeRNAAlphabet.
func MakeRNANAlphabet() *Alphabet { return New([]byte("ACGUNacgun")) }

// MakeRNAIUPACAlphabet returns the full IUPAC RNA ambiguity alphabet.
func MakeRNAIUPACAlphabet() *Alphabet { return New([]byte("ACGURYSWKMBDHVNZacguryswkmbdhvnz")) }

var rnaComplement = map[byte]byte{
	'A': 'U', 'U': 'A', 'C': 'G', 'G': 'C',
	'R': 'Y', 'Y': 'R', 'S': 'S', 'W': 'W',
	'K': 'M', 'M': 'K', 'B': 'V', 'V': 'B',
	'D': 'H', 'H': 'D', 'N': 'N', 'Z': 'Z',
	'a': 'u', 'u': 'a', 'c': 'g', 'g': 'c',
	'r': 'y', 'y': 'r', 's': 's', 'w': 'w',
	'k': 'm', 'm': 'k', 'b': 'v', 'v': 'b',
	'd': 'h', 'h': 'd', 'n': 'n', 'z': 'z',
}

// GetRNASymbolComplement returns the single-byte complement of sym,
// which must be exactly one byte long.
func GetRNASymbolComplement(sym []byte) ([]byte, error) {
	if len(sym) != 1 {
		return nil, align.ErrLengthMismatch
	}
	c, ok := rnaComplement[sym[0]]
	if !ok {
		return nil, align.ErrUnknownSymbol
	}
	return []byte{c}, nil
}

// GetRNAComplement returns the reverse complement of seq.
func GetRNAComplement(seq []byte) ([]byte, error) {
	out := make([]byte, len(seq))
	for i, b := range seq {
		c, ok := rnaComplement[b]
		if !ok {
			return nil, align.ErrUnknownSymbol
		}
		out[len(seq)-1-i] = c
	}
	return out, nil
}
