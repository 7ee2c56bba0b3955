package analysis_test

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/iterlex/analysis"
	"github.com/katalvlaran/iterlex/corpus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testCorpus builds a small deterministic design with word structure
// planted from generation 1 on, so segmentation has something to find.
func testCorpus(t *testing.T) *corpus.Corpus {
	t.Helper()
	opts := corpus.DefaultGenOptions()
	opts.Lexicon = [][]string{
		{"a", "b"},
		{"c", "d", "a"},
		{"b", "c"},
	}
	c, err := corpus.Generate(opts)
	require.NoError(t, err)
	return c
}

// TestRun_CoversEveryGroup: each (chain, generation) cell yields exactly one
// entropy row per level and one fit row per level.
func TestRun_CoversEveryGroup(t *testing.T) {
	c := testCorpus(t)
	report, err := analysis.Run(c, analysis.DefaultOptions())
	require.NoError(t, err)

	groups := len(c.Keys())
	assert.Len(t, report.Entropy, 2*groups, "char + word entropy per group")
	assert.Len(t, report.Fits, 2*groups)
	assert.Len(t, report.Words, groups)

	perLevel := map[string]int{}
	for _, row := range report.Entropy {
		perLevel[row.Level]++
		assert.GreaterOrEqual(t, row.Entropy, 0.0)
	}
	assert.Equal(t, groups, perLevel[analysis.LevelChar])
	assert.Equal(t, groups, perLevel[analysis.LevelWord])
}

// TestRun_CalibratedRatioUsable: the calibrated ratio lands in (0,1) and is
// echoed in the report.
func TestRun_CalibratedRatioUsable(t *testing.T) {
	report, err := analysis.Run(testCorpus(t), analysis.DefaultOptions())
	require.NoError(t, err)

	assert.Greater(t, report.Ratio, 0.0)
	assert.Less(t, report.Ratio, 1.0)
}

// TestRun_WordsRoundTrip: concatenating each group's words rebuilds the
// original sequences, and word lengths pool consistently.
func TestRun_WordsRoundTrip(t *testing.T) {
	c := testCorpus(t)
	report, err := analysis.Run(c, analysis.DefaultOptions())
	require.NoError(t, err)

	totalWords := 0
	for _, key := range c.Keys() {
		trials := c.Group(key)
		words := report.Words[key]
		require.Len(t, words, len(trials))
		for i, sw := range words {
			var joined []string
			for _, w := range sw.Words {
				joined = append(joined, w...)
			}
			assert.Equal(t, trials[i].Seq, joined)
			assert.Equal(t, trials[i].Err, sw.Err, "words inherit the trial's recall error")
			totalWords += len(sw.Words)
		}
	}
	assert.Len(t, report.WordLengths, totalWords, "one length row per word")
}

// TestRun_TransitionRowsClassified: every TP row is within or across, and
// within+across counts match the series positions of the corpus.
func TestRun_TransitionRowsClassified(t *testing.T) {
	c := testCorpus(t)
	report, err := analysis.Run(c, analysis.DefaultOptions())
	require.NoError(t, err)

	positions := 0
	for _, tr := range c.Trials() {
		if len(tr.Seq) >= 2 {
			positions += len(tr.Seq) - 1
		}
	}
	require.Len(t, report.Transitions, positions)
	for _, row := range report.Transitions {
		assert.Contains(t, []string{analysis.KindWithin, analysis.KindAcross}, row.Kind)
		assert.Greater(t, row.TP, 0.0)
	}
}

// TestRun_RankFrequencyDescending: within each (group, level), counts are
// non-increasing in rank.
func TestRun_RankFrequencyDescending(t *testing.T) {
	report, err := analysis.Run(testCorpus(t), analysis.DefaultOptions())
	require.NoError(t, err)
	require.NotEmpty(t, report.RankFrequency)

	type cell struct {
		chain string
		gen   int
		level string
	}
	last := map[cell]int{}
	for _, row := range report.RankFrequency {
		k := cell{row.Chain, row.Generation, row.Level}
		if prev, ok := last[k]; ok {
			assert.LessOrEqual(t, row.Count, prev, "descending within %v", k)
		}
		last[k] = row.Count
	}
}

// TestRun_FixedRatioSkipsCalibration: a fixed ratio is used as-is, even
// when no baseline generation exists.
func TestRun_FixedRatioSkipsCalibration(t *testing.T) {
	trials := []corpus.Trial{
		{Chain: "A", Generation: 3, Seq: corpus.SplitSymbols("aababab"), Err: 0.5},
		{Chain: "A", Generation: 3, Seq: corpus.SplitSymbols("babaab"), Err: 0.5},
	}
	c, err := corpus.New(trials)
	require.NoError(t, err)

	opts := analysis.DefaultOptions()
	opts.Ratio = 0.3
	report, err := analysis.Run(c, opts)
	require.NoError(t, err)
	assert.Equal(t, 0.3, report.Ratio)
}

// TestRun_NoBaseline: calibration without a baseline generation fails the
// run with ErrNoBaseline.
func TestRun_NoBaseline(t *testing.T) {
	trials := []corpus.Trial{
		{Chain: "A", Generation: 3, Seq: corpus.SplitSymbols("abab"), Err: 0},
	}
	c, err := corpus.New(trials)
	require.NoError(t, err)

	_, err = analysis.Run(c, analysis.DefaultOptions())
	assert.ErrorIs(t, err, analysis.ErrNoBaseline)
}

// TestRun_BadOptions covers the option validation sentinels.
func TestRun_BadOptions(t *testing.T) {
	c := testCorpus(t)
	for name, mutate := range map[string]func(*analysis.Options){
		"order too low":      func(o *analysis.Options) { o.Order = 1 },
		"ratio out of range": func(o *analysis.Options) { o.Ratio = 1.5 },
		"bad percentile":     func(o *analysis.Options) { o.Percentile = 0 },
		"negative baseline":  func(o *analysis.Options) { o.BaselineGeneration = -1 },
	} {
		t.Run(name, func(t *testing.T) {
			opts := analysis.DefaultOptions()
			mutate(&opts)
			_, err := analysis.Run(c, opts)
			assert.ErrorIs(t, err, analysis.ErrBadOptions)
		})
	}
}

// TestWriteTables_EmitsEveryFile: the export writes one CSV per table with
// the documented headers and one data row per report row.
func TestWriteTables_EmitsEveryFile(t *testing.T) {
	report, err := analysis.Run(testCorpus(t), analysis.DefaultOptions())
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, analysis.WriteTables(dir, report))

	cases := []struct {
		file   string
		header []string
		rows   int
	}{
		{analysis.EntropyFile, []string{"chain", "generation", "level", "entropy"}, len(report.Entropy)},
		{analysis.TransitionsFile, []string{"chain", "generation", "kind", "tp"}, len(report.Transitions)},
		{analysis.WordLengthsFile, []string{"chain", "generation", "length"}, len(report.WordLengths)},
		{analysis.RankFrequencyFile, []string{"chain", "generation", "level", "rank", "count", "log_rank", "log_count"}, len(report.RankFrequency)},
		{analysis.FitsFile, []string{"chain", "generation", "level", "slope", "intercept", "r2"}, len(report.Fits)},
	}
	for _, tc := range cases {
		f, err := os.Open(filepath.Join(dir, tc.file))
		require.NoError(t, err, tc.file)
		records, err := csv.NewReader(f).ReadAll()
		f.Close()
		require.NoError(t, err, tc.file)

		require.NotEmpty(t, records, tc.file)
		assert.Equal(t, tc.header, records[0], tc.file)
		assert.Len(t, records[1:], tc.rows, tc.file)
	}
}
