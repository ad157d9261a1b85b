package submat

import "github.com/go-bio/bioalign/align"

// Lookup resolves a matrix name — "blosum62", "pam40", "pam120",
// "pam200" or "pam250" — to its Matrix. Any other name fails with
// align.ErrInvalidConfiguration.
func Lookup(name string) (*Matrix, error) {
	switch name {
	case "blosum62":
		return Blosum62, nil
	case "pam40":
		return Pam40, nil
	case "pam120":
		return Pam120, nil
	case "pam200":
		return Pam200, nil
	case "pam250":
		return Pam250, nil
	default:
		return nil, align.ErrInvalidConfiguration
	}
}

// Scoring builds an align.Scoring using the named substitution matrix
// (see Lookup) in place of a flat match/mismatch function.
func Scoring(gapOpen, gapExtend int, matrixName string) (*align.Scoring, error) {
	m, err := Lookup(matrixName)
	if err != nil {
		return nil, err
	}
	return align.NewScoring(gapOpen, gapExtend, m.Func()), nil
}
