package pairwise_test

import (
	"testing"

	"github.com/go-bio/bioalign/align"
	"github.com/go-bio/bioalign/pairwise"
	"github.com/stretchr/testify/assert"
)

func ops(os ...align.Operation) []align.Operation { return os }

func TestSemiglobal(t *testing.T) {
	x := []byte("ACCGTGGAT")
	y := []byte("AAAAACCGTTGAT")
	scoring := align.FromScores(-5, -1, 1, -1)
	aligner := pairwise.NewAligner(scoring, len(x), len(y))

	a := aligner.Semiglobal(x, y)
	assert.Equal(t, 0, a.XStart)
	assert.Equal(t, 4, a.YStart)
	assert.Equal(t, ops(
		align.Match(), align.Match(), align.Match(), align.Match(), align.Match(),
		align.Subst(),
		align.Match(), align.Match(), align.Match(),
	), a.Operations)
}

func TestSemiglobalGapOpenLessThanMismatch(t *testing.T) {
	x := []byte("ACCGTGGAT")
	y := []byte("AAAAACCGTTGAT")
	scoring := align.FromScores(-1, -1, 1, -5)
	aligner := pairwise.NewAligner(scoring, len(x), len(y))

	a := aligner.Semiglobal(x, y)
	assert.Equal(t, 0, a.XStart)
	assert.Equal(t, 4, a.YStart)
	assert.Equal(t, ops(
		align.Match(), align.Match(), align.Match(), align.Match(),
		align.Del(), align.Match(), align.Ins(),
		align.Match(), align.Match(), align.Match(),
	), a.Operations)
}

func TestGlobalAffineIns(t *testing.T) {
	x := []byte("ACGAGAACA")
	y := []byte("ACGACA")
	scoring := align.FromScores(-5, -1, 1, -3)
	aligner := pairwise.NewAligner(scoring, len(x), len(y))

	a := aligner.Global(x, y)
	assert.Equal(t, ops(
		align.Match(), align.Match(), align.Match(),
		align.Ins(), align.Ins(), align.Ins(),
		align.Match(), align.Match(), align.Match(),
	), a.Operations)
}

func TestLocal(t *testing.T) {
	x := []byte("ACCGTGGAT")
	y := []byte("AAAAACCGTTGAT")
	scoring := align.FromScores(-5, -1, 1, -1)
	aligner := pairwise.NewAligner(scoring, len(x), len(y))

	a := aligner.Local(x, y)
	assert.Equal(t, 0, a.XStart)
	assert.Equal(t, 4, a.YStart)
	assert.Equal(t, ops(
		align.Match(), align.Match(), align.Match(), align.Match(), align.Match(),
		align.Subst(),
		align.Match(), align.Match(), align.Match(),
	), a.Operations)
}

func TestGlobal(t *testing.T) {
	x := []byte("ACCGTGGAT")
	y := []byte("AAAAACCGTTGAT")
	scoring := align.FromScores(-5, -1, 1, -1)
	aligner := pairwise.NewAligner(scoring, len(x), len(y))

	a := aligner.Global(x, y)
	assert.Equal(t, 0, a.XStart)
	assert.Equal(t, 0, a.YStart)
	assert.Equal(t, ops(
		align.Del(), align.Del(), align.Del(), align.Del(),
		align.Match(), align.Match(), align.Match(), align.Match(), align.Match(),
		align.Subst(),
		align.Match(), align.Match(), align.Match(),
	), a.Operations)
}

func TestLeftAlignedDel(t *testing.T) {
	x := []byte("GTGCATCATGTG")
	y := []byte("GTGCATCATCATGTG")
	scoring := align.FromScores(-5, -1, 1, -1)
	aligner := pairwise.NewAligner(scoring, len(x), len(y))

	a := aligner.Global(x, y)
	assert.Equal(t, 0, a.XStart)
	assert.Equal(t, 0, a.YStart)
	assert.Equal(t, ops(
		align.Match(), align.Match(), align.Match(),
		align.Del(), align.Del(), align.Del(),
		align.Match(), align.Match(), align.Match(), align.Match(), align.Match(),
		align.Match(), align.Match(), align.Match(), align.Match(),
	), a.Operations)
}

func TestLeftAlignedIns(t *testing.T) {
	x := []byte("GTGCATCATCATGTG")
	y := []byte("GTGCATCATGTG")
	scoring := align.FromScores(-5, -1, 1, -1)
	aligner := pairwise.NewAligner(scoring, len(x), len(y))

	a := aligner.Global(x, y)
	assert.Equal(t, 0, a.XStart)
	assert.Equal(t, 0, a.YStart)
	assert.Equal(t, ops(
		align.Match(), align.Match(), align.Match(),
		align.Ins(), align.Ins(), align.Ins(),
		align.Match(), align.Match(), align.Match(), align.Match(), align.Match(),
		align.Match(), align.Match(), align.Match(), align.Match(),
	), a.Operations)
}

func TestGlobalRightDel(t *testing.T) {
	x := []byte("AACCACGTACGTGGGGGGA")
	y := []byte("CCACGTACGT")
	scoring := align.FromScores(-5, -1, 1, -1)
	aligner := pairwise.NewAligner(scoring, len(x), len(y))

	a := aligner.Global(x, y)
	assert.Equal(t, 0, a.XStart)
	assert.Equal(t, 0, a.YStart)
	assert.Equal(t, -9, a.Score)
}

func TestIssue11(t *testing.T) {
	y := []byte("TACC")
	x := []byte("AAAAACC")
	scoring := align.FromScores(-5, -1, 1, -1)
	aligner := pairwise.NewAligner(scoring, len(x), len(y))

	a := aligner.Global(x, y)
	assert.Equal(t, 0, a.XStart)
	assert.Equal(t, 0, a.YStart)
	assert.Equal(t, ops(
		align.Ins(), align.Ins(), align.Ins(),
		align.Subst(),
		align.Match(), align.Match(), align.Match(),
	), a.Operations)
}

func TestIssue12_1(t *testing.T) {
	x := []byte("CCGGCA")
	y := []byte("ACCGTTGACGC")
	scoring := align.FromScores(-5, -1, 1, -1)
	aligner := pairwise.NewAligner(scoring, len(x), len(y))

	a := aligner.Semiglobal(x, y)
	assert.Equal(t, 0, a.XStart)
	assert.Equal(t, 1, a.YStart)
	assert.Equal(t, ops(
		align.Match(), align.Match(), align.Match(),
		align.Subst(), align.Subst(), align.Subst(),
	), a.Operations)
}

func TestAlignerDefaultCapacity(t *testing.T) {
	x := []byte("ACCGTGGAT")
	y := []byte("AAAAACCGTTGAT")
	scoring := align.FromScores(-5, -1, 1, -1)
	aligner := pairwise.NewAligner(scoring)

	a := aligner.Semiglobal(x, y)
	assert.Equal(t, 0, a.XStart)
	assert.Equal(t, 4, a.YStart)

	b := aligner.Global(x, y)
	assert.Equal(t, 0, b.XStart)
	assert.Equal(t, 0, b.YStart)
}

func TestCustomClips(t *testing.T) {
	x := []byte("AAAAA")
	y := []byte("TTAAATT")
	scoring := align.FromScores(-5, -1, 1, -1).SetXclip(0).SetYclip(0)
	aligner := pairwise.NewAligner(scoring, len(x), len(y))

	a := aligner.Custom(x, y)
	assert.Equal(t, align.ModeCustom, a.Mode)
	assert.True(t, a.Score >= 3) // at least the 3 middle matches, clips free
}
