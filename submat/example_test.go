package submat_test

import (
	"fmt"

	"github.com/go-bio/bioalign/submat"
)

// ExampleMatrix_Score looks up single-symbol pairs in BLOSUM62,
// including the stop/placeholder symbol '*'.
func ExampleMatrix_Score() {
	aa, _ := submat.Blosum62.Score('A', 'A')
	stop, _ := submat.Blosum62.Score('*', '*')
	fmt.Println(aa, stop)
	// Output: 4 1
}

// ExampleScoring resolves a matrix by name and wires it into an
// align.Scoring ready for a pairwise aligner.
func ExampleScoring() {
	s, err := submat.Scoring(-10, -1, "blosum62")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(s.GapOpen, s.Substitution('W', 'W'))
	// Output: -10 11
}
