package align

import "math"

// MinScore is the effective "disallowed" penalty used as the default for
// the four clip costs. It is large enough in magnitude that no traceback
// will ever choose a clip transition unless the caller opts in by raising
// one of the XclipPrefix/XclipSuffix/YclipPrefix/YclipSuffix fields, but
// small enough that repeated addition during DP fill does not overflow.
const MinScore = math.MinInt32 / 2

// SubstitutionFunc scores aligning symbol a against symbol b. It is the
// sole interface the pairwise DP engine requires of a substitution
// matrix; package submat implements concrete matrices but is not
// imported by align or pairwise.
type SubstitutionFunc func(a, b byte) int

// Scoring bundles the affine gap costs and substitution function a
// PairwiseAligner needs. GapOpen and GapExtend are conventionally <= 0;
// the cost of a gap run of length k >= 1 is GapOpen + k*GapExtend.
//
// The four clip penalties default to MinScore ("disallowed"), which
// keeps clips out of every mode except Custom, where a caller sets them
// to finite values to enable free or cheap end-clipping.
type Scoring struct {
	GapOpen      int
	GapExtend    int
	Substitution SubstitutionFunc

	XclipPrefix int
	XclipSuffix int
	YclipPrefix int
	YclipSuffix int
}

// NewScoring builds a Scoring from explicit affine gap costs and a
// substitution function, with all four clip penalties disabled.
func NewScoring(gapOpen, gapExtend int, sub SubstitutionFunc) *Scoring {
	return &Scoring{
		GapOpen:      gapOpen,
		GapExtend:    gapExtend,
		Substitution: sub,
		XclipPrefix:  MinScore,
		XclipSuffix:  MinScore,
		YclipPrefix:  MinScore,
		YclipSuffix:  MinScore,
	}
}

// FromScores builds a Scoring from a flat match/mismatch substitution
// function: Substitution(a, b) is matchScore when a == b, else
// mismatchScore.
func FromScores(gapOpen, gapExtend, matchScore, mismatchScore int) *Scoring {
	return NewScoring(gapOpen, gapExtend, func(a, b byte) int {
		if a == b {
			return matchScore
		}
		return mismatchScore
	})
}

// ClipsEnabled reports whether any of the four clip penalties has been
// raised above MinScore, i.e. whether this Scoring actually allows a
// Custom-mode aligner to emit clip operations.
func (s *Scoring) ClipsEnabled() bool {
	return s.XclipPrefix > MinScore || s.XclipSuffix > MinScore ||
		s.YclipPrefix > MinScore || s.YclipSuffix > MinScore
}

// SetXclipPrefix sets the x-prefix clip penalty and returns s for chaining.
func (s *Scoring) SetXclipPrefix(p int) *Scoring { s.XclipPrefix = p; return s }

// SetXclipSuffix sets the x-suffix clip penalty and returns s for chaining.
func (s *Scoring) SetXclipSuffix(p int) *Scoring { s.XclipSuffix = p; return s }

// SetYclipPrefix sets the y-prefix clip penalty and returns s for chaining.
func (s *Scoring) SetYclipPrefix(p int) *Scoring { s.YclipPrefix = p; return s }

// SetYclipSuffix sets the y-suffix clip penalty and returns s for chaining.
func (s *Scoring) SetYclipSuffix(p int) *Scoring { s.YclipSuffix = p; return s }

// SetXclip sets both x clip penalties to the same value.
func (s *Scoring) SetXclip(p int) *Scoring {
	s.XclipPrefix, s.XclipSuffix = p, p
	return s
}

// SetYclip sets both y clip penalties to the same value.
func (s *Scoring) SetYclip(p int) *Scoring {
	s.YclipPrefix, s.YclipSuffix = p, p
	return s
}

// GapCost returns the affine cost of a gap run of length k >= 1.
func (s *Scoring) GapCost(k int) int {
	if k <= 0 {
		return 0
	}
	return s.GapOpen + k*s.GapExtend
}
