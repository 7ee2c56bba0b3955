package corpus_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/iterlex/corpus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `chain,generation,string,error
A,0,aabab,0.5
A,0,babba,0.25
A,1,abab,0
B,0,bbbaa,1.5
`

// TestLoad_GroupsByChainAndGeneration verifies header-addressed loading and
// (chain, generation) grouping.
func TestLoad_GroupsByChainAndGeneration(t *testing.T) {
	c, err := corpus.Load(strings.NewReader(sampleCSV))
	require.NoError(t, err, "well-formed CSV must load")

	assert.Equal(t, 4, c.Len(), "one trial per data row")

	keys := c.Keys()
	require.Len(t, keys, 3, "three populated groups")
	assert.Equal(t, corpus.GroupKey{Chain: "A", Generation: 0}, keys[0])
	assert.Equal(t, corpus.GroupKey{Chain: "A", Generation: 1}, keys[1])
	assert.Equal(t, corpus.GroupKey{Chain: "B", Generation: 0}, keys[2])

	groupA0 := c.Group(corpus.GroupKey{Chain: "A", Generation: 0})
	require.Len(t, groupA0, 2)
	assert.Equal(t, []string{"a", "a", "b", "a", "b"}, groupA0[0].Seq, "string column split per rune")
	assert.Equal(t, 0.5, groupA0[0].Err)
}

// TestLoad_ColumnOrderIrrelevant ensures columns are matched by header name,
// not position, and extra columns are ignored.
func TestLoad_ColumnOrderIrrelevant(t *testing.T) {
	shuffled := `error,string,participant,generation,chain
0.5,abc,p07,2,X
`
	c, err := corpus.Load(strings.NewReader(shuffled))
	require.NoError(t, err)

	trials := c.Group(corpus.GroupKey{Chain: "X", Generation: 2})
	require.Len(t, trials, 1)
	assert.Equal(t, []string{"a", "b", "c"}, trials[0].Seq)
}

// TestLoad_MissingColumn checks ErrMissingColumn for an incomplete header.
func TestLoad_MissingColumn(t *testing.T) {
	_, err := corpus.Load(strings.NewReader("chain,generation,string\nA,0,ab\n"))
	assert.ErrorIs(t, err, corpus.ErrMissingColumn, "header without error column must fail")
}

// TestLoad_BadRecords checks ErrBadRecord for unparseable rows.
func TestLoad_BadRecords(t *testing.T) {
	cases := map[string]string{
		"negative generation": "chain,generation,string,error\nA,-1,ab,0\n",
		"non-integer gen":     "chain,generation,string,error\nA,x,ab,0\n",
		"negative error":      "chain,generation,string,error\nA,0,ab,-2\n",
		"empty sequence":      "chain,generation,string,error\nA,0,,0\n",
	}
	for name, csv := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := corpus.Load(strings.NewReader(csv))
			assert.ErrorIs(t, err, corpus.ErrBadRecord)
		})
	}
}

// TestLoad_Empty checks ErrEmptyCorpus for a header-only file.
func TestLoad_Empty(t *testing.T) {
	_, err := corpus.Load(strings.NewReader("chain,generation,string,error\n"))
	assert.ErrorIs(t, err, corpus.ErrEmptyCorpus)
}

// TestNew_Validation checks the in-memory constructor mirrors Load's checks.
func TestNew_Validation(t *testing.T) {
	_, err := corpus.New(nil)
	assert.ErrorIs(t, err, corpus.ErrEmptyCorpus)

	_, err = corpus.New([]corpus.Trial{{Chain: "A", Generation: 0, Seq: nil, Err: 0}})
	assert.ErrorIs(t, err, corpus.ErrBadRecord, "empty sequence must be rejected")
}

// TestSequences_SharesGroupOrder verifies Sequences aligns with Group.
func TestSequences_SharesGroupOrder(t *testing.T) {
	c, err := corpus.Load(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	key := corpus.GroupKey{Chain: "A", Generation: 0}
	seqs := c.Sequences(key)
	trials := c.Group(key)
	require.Len(t, seqs, len(trials))
	for i := range seqs {
		assert.Equal(t, trials[i].Seq, seqs[i])
	}

	assert.Nil(t, c.Sequences(corpus.GroupKey{Chain: "Z", Generation: 9}), "absent group yields nil")
}

// TestSplitJoinSymbols_RoundTrip exercises the symbol helpers, including
// multi-byte runes.
func TestSplitJoinSymbols_RoundTrip(t *testing.T) {
	for _, s := range []string{"aabab", "αβγ", "a"} {
		assert.Equal(t, s, corpus.JoinSymbols(corpus.SplitSymbols(s)))
	}
}

// TestGenerate_Deterministic verifies the same seed yields the same corpus
// and that the design dimensions are honored.
func TestGenerate_Deterministic(t *testing.T) {
	opts := corpus.DefaultGenOptions()
	a, err := corpus.Generate(opts)
	require.NoError(t, err)
	b, err := corpus.Generate(opts)
	require.NoError(t, err)

	assert.Equal(t, a.Trials(), b.Trials(), "same seed, same corpus")
	assert.Equal(t, opts.Chains*opts.Generations*opts.TrialsPerGroup, a.Len())

	keys := a.Keys()
	assert.Len(t, keys, opts.Chains*opts.Generations)
	assert.Len(t, a.GenerationKeys(0), opts.Chains, "one baseline group per chain")
}

// TestGenerate_LexiconStructure verifies structured generations concatenate
// lexicon items while generation 0 stays over the raw alphabet.
func TestGenerate_LexiconStructure(t *testing.T) {
	opts := corpus.DefaultGenOptions()
	opts.Lexicon = [][]string{{"a", "b"}, {"c", "d", "a"}}
	c, err := corpus.Generate(opts)
	require.NoError(t, err)

	for _, tr := range c.Trials() {
		if tr.Generation == 0 {
			assert.GreaterOrEqual(t, len(tr.Seq), opts.MinLen)
			continue
		}
		// Structured sequences decompose greedily into lexicon items.
		assert.True(t, decomposes(tr.Seq, opts.Lexicon), "generation %d sequence %v must be lexicon-built", tr.Generation, tr.Seq)
	}
}

// TestGenerate_BadConfig checks ErrBadGenConfig on degenerate designs.
func TestGenerate_BadConfig(t *testing.T) {
	opts := corpus.DefaultGenOptions()
	opts.MaxLen = opts.MinLen - 1
	_, err := corpus.Generate(opts)
	assert.ErrorIs(t, err, corpus.ErrBadGenConfig)

	opts = corpus.DefaultGenOptions()
	opts.Alphabet = nil
	_, err = corpus.Generate(opts)
	assert.ErrorIs(t, err, corpus.ErrBadGenConfig)
}

// decomposes reports whether seq can be tiled left-to-right by lexicon items.
func decomposes(seq []string, lexicon [][]string) bool {
	if len(seq) == 0 {
		return true
	}
	for _, item := range lexicon {
		if len(item) <= len(seq) && equalSymbols(seq[:len(item)], item) && decomposes(seq[len(item):], lexicon) {
			return true
		}
	}
	return false
}

func equalSymbols(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
