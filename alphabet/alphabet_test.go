package alphabet_test

import (
	"testing"

	"github.com/go-bio/bioalign/alphabet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlphabet(t *testing.T) {
	a := alphabet.New([]byte("ACGT"))
	assert.Equal(t, []byte("ACGT"), a.Symbols())
	assert.Equal(t, 4, a.Len())
	assert.Equal(t, "<Alphabet: ACGT>", a.String())
	assert.True(t, a.IsWord([]byte("GATTACA")))
	assert.False(t, a.IsWord([]byte("42")))

	b := alphabet.New([]byte("ATX"))
	assert.Equal(t, []byte("AT"), a.And(b).Symbols())
	assert.Equal(t, []byte("ACGTX"), a.Or(b).Symbols())
}

func TestRankTransform(t *testing.T) {
	a := alphabet.New([]byte("ACGTacgt"))
	rt := alphabet.NewRankTransform(a)

	r, ok := rt.Get('A')
	require.True(t, ok)
	assert.Equal(t, 0, r)

	r, ok = rt.Get('t')
	require.True(t, ok)
	assert.Equal(t, 7, r)

	got, err := rt.Transform([]byte("aAcCgGtT"))
	require.NoError(t, err)
	assert.Equal(t, []int{4, 0, 5, 1, 6, 2, 7, 3}, got)

	assert.Equal(t, "<RankTransform: A-0, C-1, G-2, T-3, a-4, c-5, g-6, t-7>", rt.String())

	_, err = rt.Transform([]byte("acxben"))
	assert.Error(t, err)

	qg, err := rt.QGrams(2, []byte("ACGT"))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 10, 19}, qg)

	assert.Equal(t, 2, alphabet.NewRankTransform(alphabet.New([]byte("ACGT"))).GetWidth())
	assert.Equal(t, 3, alphabet.NewRankTransform(alphabet.New([]byte("ACGTN"))).GetWidth())
}

func TestDNA(t *testing.T) {
	assert.Equal(t, []byte("ACGTacgt"), alphabet.MakeDNAAlphabet().Symbols())

	c, err := alphabet.GetDNASymbolComplement([]byte("A"))
	require.NoError(t, err)
	assert.Equal(t, []byte("T"), c)

	c, err = alphabet.GetDNASymbolComplement([]byte("c"))
	require.NoError(t, err)
	assert.Equal(t, []byte("g"), c)

	c, err = alphabet.GetDNASymbolComplement([]byte("N"))
	require.NoError(t, err)
	assert.Equal(t, []byte("N"), c)

	c, err = alphabet.GetDNASymbolComplement([]byte("Y"))
	require.NoError(t, err)
	assert.Equal(t, []byte("R"), c)

	c, err = alphabet.GetDNASymbolComplement([]byte("s"))
	require.NoError(t, err)
	assert.Equal(t, []byte("s"), c)

	_, err = alphabet.GetDNASymbolComplement([]byte("AA"))
	assert.Error(t, err)

	rc, err := alphabet.GetDNAComplement([]byte("ACGTN"))
	require.NoError(t, err)
	assert.Equal(t, []byte("NACGT"), rc)

	rc, err = alphabet.GetDNAComplement([]byte("GaTtaCA"))
	require.NoError(t, err)
	assert.Equal(t, []byte("TGtaAtC"), rc)

	rc, err = alphabet.GetDNAComplement([]byte("AGCTYRWSKMDVHBN"))
	require.NoError(t, err)
	assert.Equal(t, []byte("NVDBHKMSWYRAGCT"), rc)
}

func TestRNA(t *testing.T) {
	assert.Equal(t, []byte("ACGUacgu"), alphabet.MakeRNAAlphabet().Symbols())

	c, err := alphabet.GetRNASymbolComplement([]byte("A"))
	require.NoError(t, err)
	assert.Equal(t, []byte("U"), c)

	c, err = alphabet.GetRNASymbolComplement([]byte("g"))
	require.NoError(t, err)
	assert.Equal(t, []byte("c"), c)

	_, err = alphabet.GetRNASymbolComplement([]byte("AA"))
	assert.Error(t, err)

	rc, err := alphabet.GetRNAComplement([]byte("ACGUN"))
	require.NoError(t, err)
	assert.Equal(t, []byte("NACGU"), rc)

	rc, err = alphabet.GetRNAComplement([]byte("GaUuaCA"))
	require.NoError(t, err)
	assert.Equal(t, []byte("UGuaAuC"), rc)

	rc, err = alphabet.GetRNAComplement([]byte("AGCUYRWSKMDVHBNZ"))
	require.NoError(t, err)
	assert.Equal(t, []byte("ZNVDBHKMSWYRAGCU"), rc)
}

func TestProtein(t *testing.T) {
	want := map[byte]bool{}
	for _, b := range []byte("ARNDCEQGHILKMFPSTWYVarndceqghilkmfpstwyv") {
		want[b] = true
	}
	for _, b := range alphabet.MakeProteinAlphabet().Symbols() {
		assert.True(t, want[b])
	}
}
