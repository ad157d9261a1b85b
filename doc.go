// Package bioalign is a pure-Go pairwise sequence alignment library.
//
// What is bioalign?
//
//	A thread-safe-by-construction (aligners are single-owner, values are
//	immutable) toolkit built around five pieces:
//
//	  • align/     - the Alignment value, AlignmentOperation variants,
//	                 and the Scoring policy
//	  • pairwise/  - the Gotoh affine-gap dynamic programmer: global,
//	                 semiglobal, local, and custom-clip alignment
//	  • distance/  - Hamming and Levenshtein edit-distance kernels,
//	                 including a bounded Levenshtein variant
//	  • submat/    - fixed substitution matrices (BLOSUM62, PAM40/120/200/250)
//	  • alphabet/  - DNA/RNA/protein symbol tables, complements, and
//	                 rank transforms
//
// Under the hood, everything is organized under independent subpackages:
//
//	align/      - Alignment, AlignmentOperation, Scoring, CIGAR/pretty/path
//	pairwise/   - PairwiseAligner, the Gotoh DP engine with traceback
//	distance/   - hamming, levenshtein, bounded levenshtein
//	submat/     - named substitution matrix lookup
//	alphabet/   - alphabets, complements, rank transforms, q-grams
//	seqanalysis/- GC content and ORF scanning (uses align's byte conventions
//	              but is not consulted by the aligner)
//
// Quick usage:
//
//	scoring, _ := submat.Scoring(-5, -1, "blosum62")
//	aligner := pairwise.NewAligner(scoring)
//	aln := aligner.Global(x, y)
//	fmt.Print(aln.CIGAR(false))
//
//	go get github.com/go-bio/bioalign
package bioalign
