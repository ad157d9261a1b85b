package submat

import (
	"math"

	"github.com/go-bio/bioalign/internal/linalg"
)

// pamMutability is the per-PAM-unit probability that a residue has
// mutated: M1's diagonal is 1-pamMutability, and its off-diagonal row is
// derived from Blosum62's relative substitution preferences so that
// distant-PAM matrices still favour biologically plausible swaps over
// arbitrary ones, rather than mutating uniformly at random.
const pamMutability = 0.01

// pamLogOddsScale converts the PAM probability ratio into an integer
// score on roughly the same scale as Blosum62 and the reference PAM
// tables (tenths of a bit).
const pamLogOddsScale = 10.0

// buildPAM derives a PAMk named Matrix: it builds a one-PAM-unit mutation
// probability matrix from Blosum62 (internal/linalg.Matrix), raises it
// to the k-th power by repeated squaring, and converts the resulting
// probabilities to log-odds scores. This is the standard way a PAMk
// matrix of arbitrary evolutionary distance k is derived from a PAM1
// model; it will not reproduce a hand-curated reference PAM table
// value-for-value, since it starts from Blosum62's preferences rather
// than the original Dayhoff substitution counts.
func buildPAM(name string, k int) *Matrix {
	const n = 20
	m1, _ := linalg.NewMatrix(n)

	for i := 0; i < n; i++ {
		rowSum := 0.0
		weights := make([]float64, n)
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			// exp() of Blosum62's log-odds score turns "more favoured
			// substitution" into "relatively more likely mutation".
			weights[j] = math.Exp(float64(Blosum62.table[i*n+j]) / 3.0)
			rowSum += weights[j]
		}
		for j := 0; j < n; j++ {
			if i == j {
				m1.Set(i, j, 1-pamMutability)
				continue
			}
			m1.Set(i, j, pamMutability*weights[j]/rowSum)
		}
	}

	pamK, err := m1.Pow(k)
	if err != nil {
		panic("submat: " + name + ": " + err.Error())
	}

	var table [400]int
	const backgroundFreq = 1.0 / n
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			ratio := pamK.At(i, j) / backgroundFreq
			if ratio <= 0 {
				table[i*n+j] = -128
				continue
			}
			table[i*n+j] = int(math.Round(pamLogOddsScale * math.Log2(ratio)))
		}
	}
	return newMatrix(name, table)
}

// Pam40, Pam120, Pam200 and Pam250 are the PAM family members named in
// Scoring's matrix_name argument, generated by buildPAM.
var (
	Pam40  = buildPAM("pam40", 40)
	Pam120 = buildPAM("pam120", 120)
	Pam200 = buildPAM("pam200", 200)
	Pam250 = buildPAM("pam250", 250)
)
