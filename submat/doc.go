// Package submat provides the substitution-matrix external collaborators
// PairwiseAligner scoring policies name by string: blosum62 and the
// pam40/120/200/250 family. Each matrix exposes a Score method returning
// (int, error) so unrecognized symbols surface as align.ErrUnknownSymbol,
// plus a Func() adapter producing the align.SubstitutionFunc a Scoring
// needs (unrecognized symbols there fall back to a large penalty, since
// the DP fill has no channel to propagate an error mid-scan).
//
// BLOSUM62 is transcribed directly from the published table into a
// flat score array. The PAM
// matrices are derived by raising a point-accepted-mutation probability
// matrix to the family's characteristic power via internal/linalg and
// converting the result to log-odds scores — the standard way PAM
// matrices of arbitrary evolutionary distance are generated — rather
// than transcribed from a published table, so exact values will not
// match the hand-curated Dayhoff tables bit for bit.
package submat
