package alphabet_test

import (
	"fmt"

	"github.com/go-bio/bioalign/alphabet"
)

// ExampleRankTransform_QGrams packs each 2-symbol window of the
// sequence into one integer code at GetWidth bits per rank.
func ExampleRankTransform_QGrams() {
	rt := alphabet.NewRankTransform(alphabet.MakeDNAAlphabet())
	codes, err := rt.QGrams(2, []byte("ACGT"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(codes)
	// Output: [1 10 19]
}

// ExampleGetDNAComplement reverse-complements a sequence, mapping the
// ambiguity code N onto itself.
func ExampleGetDNAComplement() {
	rc, err := alphabet.GetDNAComplement([]byte("ACGTN"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%s\n", rc)
	// Output: NACGT
}
