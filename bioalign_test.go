package bioalign_test

import (
	"testing"

	"github.com/go-bio/bioalign/align"
	"github.com/go-bio/bioalign/pairwise"
	"github.com/go-bio/bioalign/submat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLocalBlosum62 exercises the full stack end to end: a named matrix
// resolved through submat, fed into a PairwiseAligner as a plain
// align.SubstitutionFunc, with no import in the other direction.
func TestLocalBlosum62(t *testing.T) {
	scoring, err := submat.Scoring(-10, -1, "blosum62")
	require.NoError(t, err)

	aligner := pairwise.NewAligner(scoring)
	a := aligner.Local([]byte("LSPADKTNVKAA"), []byte("PEEKSAV"))

	assert.Equal(t, align.ModeLocal, a.Mode)
	assert.Equal(t, 16, a.Score)
	assert.Equal(t, 2, a.XStart)
	assert.Equal(t, 0, a.YStart)
	assert.Equal(t, 9, a.XEnd)
	assert.Equal(t, 7, a.YEnd)
	assert.Equal(t, []align.Operation{
		align.Match(), align.Subst(), align.Subst(),
		align.Match(), align.Subst(), align.Subst(),
		align.Match(),
	}, a.Operations)

	for _, op := range a.Operations {
		assert.False(t, op.IsClip())
	}
}
