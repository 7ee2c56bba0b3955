// Package segment defines result records and sentinel errors for the
// segment subpackage of github.com/katalvlaran/iterlex.
package segment

import "errors"

// Sentinel errors for segment operations.
var (
	// ErrOrderTooLow indicates order n < 2; segmentation needs a TP series.
	ErrOrderTooLow = errors.New("segment: order must be at least 2")
	// ErrBadRatio indicates a cut ratio outside the open interval (0,1).
	ErrBadRatio = errors.New("segment: ratio must lie in (0,1)")
	// ErrSeriesLength indicates a TP series whose length does not match
	// the sequence at the given order.
	ErrSeriesLength = errors.New("segment: series length does not match sequence")
	// ErrSeriesCount indicates a group segmentation with a series count
	// different from its trial count.
	ErrSeriesCount = errors.New("segment: one series required per trial")
	// ErrNoRatios indicates a calibration baseline with no consecutive
	// TP pairs to form ratios from.
	ErrNoRatios = errors.New("segment: baseline yields no consecutive TP ratios")
	// ErrBadPercentile indicates a calibration percentile outside (0,1).
	ErrBadPercentile = errors.New("segment: percentile must lie in (0,1)")
)

// DefaultPercentile is the calibration cutoff used by the reference
// analysis: the 5th percentile of the baseline ratio distribution.
const DefaultPercentile = 0.05

// Result is the segmentation of one sequence.
type Result struct {
	// Words partition the input sequence, in order.
	Words [][]string
	// Within holds TP values classified as word-internal transitions.
	Within []float64
	// Across holds TP values that triggered a boundary.
	Across []float64
}

// Lengths returns the word-length multiset of the result, in word order.
func (r Result) Lengths() []int {
	lengths := make([]int, len(r.Words))
	for i, w := range r.Words {
		lengths[i] = len(w)
	}
	return lengths
}

// SequenceWords pairs one trial's segmented words with the recall error of
// the parent sequence; the error is inherited by every word.
type SequenceWords struct {
	Words [][]string
	Err   float64
}

// GroupResult aggregates segmentation over one (chain, generation) group.
type GroupResult struct {
	// Sequences holds one entry per trial, in group order.
	Sequences []SequenceWords
	// Lengths is the pooled word-length multiset of the group.
	Lengths []int
	// Within and Across pool the classified TP values of the group.
	Within []float64
	Across []float64
}

// WordSequences returns each trial's words as a sequence of atomic tokens
// (one token per word), ready for unigram counting and rank-frequency
// analysis at the word level.
func (g GroupResult) WordSequences() [][]string {
	seqs := make([][]string, len(g.Sequences))
	for i, sw := range g.Sequences {
		tokens := make([]string, len(sw.Words))
		for j, w := range sw.Words {
			tokens[j] = join(w)
		}
		seqs[i] = tokens
	}
	return seqs
}

// join concatenates the symbols of one word into its token form.
func join(word []string) string {
	switch len(word) {
	case 0:
		return ""
	case 1:
		return word[0]
	}
	n := 0
	for _, s := range word {
		n += len(s)
	}
	b := make([]byte, 0, n)
	for _, s := range word {
		b = append(b, s...)
	}
	return string(b)
}
