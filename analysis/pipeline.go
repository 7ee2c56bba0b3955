package analysis

import (
	"fmt"

	"github.com/katalvlaran/iterlex/corpus"
	"github.com/katalvlaran/iterlex/ngram"
	"github.com/katalvlaran/iterlex/segment"
	"github.com/katalvlaran/iterlex/transition"
	"github.com/katalvlaran/iterlex/zipf"
)

// Run executes one pipeline pass over the whole corpus.
//
// Stages, per group (deterministic key order):
//   - character n-gram table at opts.Order → entropy, rank-frequency, fit
//   - TP series (group-pooled) → segmentation at the calibrated ratio
//   - word store → unigram table → entropy, rank-frequency, fit
//
// Every table is computed once per group and shared by the stages that
// need it; nothing is recomputed inside nested loops.
//
// Errors are not recovered: the first malformed group (empty, too sparse
// to fit, missing baseline) fails the run, wrapped with its group key.
func Run(c *corpus.Corpus, opts Options) (*Report, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	ratio := opts.Ratio
	if ratio == 0 {
		r, err := calibrate(c, opts)
		if err != nil {
			return nil, err
		}
		ratio = r
	}

	report := &Report{
		Ratio: ratio,
		Words: make(map[corpus.GroupKey][]segment.SequenceWords),
	}
	for _, key := range c.Keys() {
		if err := runGroup(c, key, ratio, opts, report); err != nil {
			return nil, fmt.Errorf("analysis: group %s/%d: %w", key.Chain, key.Generation, err)
		}
	}
	return report, nil
}

// calibrate derives the cut ratio from the baseline generation, pooling
// consecutive-TP ratios across every chain's baseline group.
func calibrate(c *corpus.Corpus, opts Options) (float64, error) {
	keys := c.GenerationKeys(opts.BaselineGeneration)
	if len(keys) == 0 {
		return 0, ErrNoBaseline
	}

	var baseline []transition.Series
	for _, key := range keys {
		series, err := transition.Build(c.Sequences(key), opts.Order)
		if err != nil {
			return 0, fmt.Errorf("analysis: baseline %s/%d: %w", key.Chain, key.Generation, err)
		}
		baseline = append(baseline, series...)
	}
	ratio, err := segment.CalibrateRatio(baseline, opts.Percentile)
	if err != nil {
		return 0, fmt.Errorf("analysis: calibration: %w", err)
	}
	return ratio, nil
}

// runGroup computes every per-group statistic and appends its rows.
func runGroup(c *corpus.Corpus, key corpus.GroupKey, ratio float64, opts Options, report *Report) error {
	trials := c.Group(key)
	seqs := c.Sequences(key)

	// Character level: one table serves entropy and rank-frequency alike.
	charTable, err := ngram.Count(seqs, opts.Order)
	if err != nil {
		return err
	}
	if err := appendLevel(report, key, LevelChar, charTable); err != nil {
		return err
	}

	// Segmentation.
	series, err := transition.Build(seqs, opts.Order)
	if err != nil {
		return err
	}
	group, err := segment.Group(trials, series, opts.Order, ratio)
	if err != nil {
		return err
	}
	report.Words[key] = group.Sequences
	for _, tp := range group.Within {
		report.Transitions = append(report.Transitions, TPRow{
			Chain: key.Chain, Generation: key.Generation, Kind: KindWithin, TP: tp,
		})
	}
	for _, tp := range group.Across {
		report.Transitions = append(report.Transitions, TPRow{
			Chain: key.Chain, Generation: key.Generation, Kind: KindAcross, TP: tp,
		})
	}
	for _, length := range group.Lengths {
		report.WordLengths = append(report.WordLengths, WordLengthRow{
			Chain: key.Chain, Generation: key.Generation, Length: length,
		})
	}

	// Word level: segmented words become atomic unit-length-1 tokens.
	wordTable, err := ngram.Count(group.WordSequences(), 1)
	if err != nil {
		return err
	}
	return appendLevel(report, key, LevelWord, wordTable)
}

// appendLevel adds the entropy, rank-frequency, and fit rows of one table.
func appendLevel(report *Report, key corpus.GroupKey, level string, table *ngram.Table) error {
	h, err := table.Entropy()
	if err != nil {
		return err
	}
	report.Entropy = append(report.Entropy, EntropyRow{
		Chain: key.Chain, Generation: key.Generation, Level: level, Entropy: h,
	})

	entries, err := zipf.RankFrequency(table)
	if err != nil {
		return err
	}
	for _, e := range entries {
		report.RankFrequency = append(report.RankFrequency, ZipfRow{
			Chain: key.Chain, Generation: key.Generation, Level: level,
			Rank: e.Rank, Count: e.Count, LogRank: e.LogRank, LogCount: e.LogCount,
		})
	}

	fit, err := zipf.FitLogLog(entries)
	if err != nil {
		return err
	}
	report.Fits = append(report.Fits, FitRow{
		Chain: key.Chain, Generation: key.Generation, Level: level,
		Slope: fit.Slope, Intercept: fit.Intercept, R2: fit.R2,
	})
	return nil
}
