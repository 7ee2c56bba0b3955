// Package segment cuts sequences into word-like units at sharp dips in
// transitional probability, and calibrates the dip threshold from the
// unstructured generation-0 baseline.
//
// 🚀 What is the dip detector?
//
//	Walking a sequence's TP series left to right, a boundary is declared
//	wherever the current value falls below a fixed fraction r of the
//	previous one: TP[j] < lastTP·r. The comparison is self-referential —
//	each value is judged against its own predecessor — so the same ratio
//	works across sequences of very different absolute probability.
//
//	The first transition can never cut: lastTP starts at 0, and no
//	probability is below 0·r. A word therefore always has at least one
//	symbol before a boundary can be recognized.
//
// ✨ Guarantees:
//
//   - Round trip: concatenating the output words reproduces the input
//     sequence exactly — no gaps, no overlaps.
//   - Word count = boundaries + 1 (for a non-empty sequence).
//   - Raising r can only add boundaries; word counts are monotone in r.
//
// ⚙️ Usage:
//
//	series, _ := transition.Build(seqs, 2)
//	r, _ := segment.CalibrateRatio(baselineSeries, segment.DefaultPercentile)
//	res, _ := segment.Sequence(seqs[0], series[0], 2, r)
//	// res.Words, res.Within, res.Across
//
// Calibration ties r to the empirical noise floor: the 5th percentile of
// consecutive TP ratios in the generation-0 (unlearned) data, pooled across
// chains. Applying that one cutoff uniformly to later generations turns
// segmentation into a test for emergent structure rather than an arbitrary
// constant.
package segment
