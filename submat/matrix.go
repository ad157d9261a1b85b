package submat

import (
	"github.com/go-bio/bioalign/align"
)

// aaOrder is the residue order the flat score tables are laid out in.
const aaOrder = "ARNDCQEGHILKMFPSTWYV"

// Matrix is a 20-amino-acid substitution table extended with the
// ambiguity/placeholder symbols B, Z, X and *, matching the alphabet
// test_scores.py exercises.
type Matrix struct {
	name  string
	table [400]int // aaOrder x aaOrder, row-major
	pos   [256]int8
}

func newMatrix(name string, table [400]int) *Matrix {
	m := &Matrix{name: name, table: table}
	for i := range m.pos {
		m.pos[i] = -1
	}
	for i, c := range aaOrder {
		m.pos[c] = int8(i)
	}
	return m
}

// Score returns the substitution score for symbols a, b. The ambiguity
// placeholder X and the stop/gap placeholder * are handled uniformly
// across every Matrix: X (and O) scores -1 against any symbol other than
// * (including itself), * scores 1 against itself and -4 against
// anything else.
// Symbols outside aaOrder+"BZX*O" fail with align.ErrUnknownSymbol.
func (m *Matrix) Score(a, b byte) (int, error) {
	if a == '*' || b == '*' {
		if a == '*' && b == '*' {
			return 1, nil
		}
		if !validSymbol(a) || !validSymbol(b) {
			return 0, align.ErrUnknownSymbol
		}
		return -4, nil
	}
	if a == 'X' || a == 'O' || b == 'X' || b == 'O' {
		if !validSymbol(a) || !validSymbol(b) {
			return 0, align.ErrUnknownSymbol
		}
		return -1, nil
	}
	pa, pb := m.resolve(a), m.resolve(b)
	if pa < 0 || pb < 0 {
		return 0, align.ErrUnknownSymbol
	}
	return m.table[int(pa)*20+int(pb)], nil
}

// resolve maps a to a column in aaOrder, aliasing the ambiguity codes B
// (Asx, aliased to D) and Z (Glx, aliased to E).
func (m *Matrix) resolve(c byte) int8 {
	switch c {
	case 'B':
		return m.pos['D']
	case 'Z':
		return m.pos['E']
	default:
		return m.pos[c]
	}
}

func validSymbol(c byte) bool {
	switch c {
	case '*', 'X', 'O', 'B', 'Z':
		return true
	default:
		return isAAChar(c)
	}
}

func isAAChar(c byte) bool {
	for _, a := range aaOrder {
		if byte(a) == c {
			return true
		}
	}
	return false
}

// Func adapts m to an align.SubstitutionFunc for use in a Scoring: an
// unrecognized symbol pair scores align.MinScore rather than erroring,
// since SubstitutionFunc has no error channel.
func (m *Matrix) Func() align.SubstitutionFunc {
	return func(a, b byte) int {
		s, err := m.Score(a, b)
		if err != nil {
			return align.MinScore
		}
		return s
	}
}
