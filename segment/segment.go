package segment

import (
	"github.com/katalvlaran/iterlex/corpus"
	"github.com/katalvlaran/iterlex/transition"
)

// Sequence segments one sequence by its transitional-probability series.
//
// Algorithm (dip detector):
//  1. Seed the current word with the first n−1 symbols — the prefix no TP
//     value covers. Set lastTP = 0.
//  2. For each series position j = 0..m−1:
//     – boundary iff tp[j] < lastTP·ratio: close the current word, record
//     tp[j] as an across-boundary transition, start a new word;
//     – otherwise record tp[j] as a within-word transition.
//     Append the symbol at position j+(n−1) to the current word, then set
//     lastTP = tp[j] regardless of branch.
//  3. Close the final word after the loop.
//
// lastTP = 0 only before the first comparison, so the first transition is
// always classified within-word: a boundary needs at least one preceding
// symbol.
//
// Invariants:
//   - concatenating Words reproduces seq exactly;
//   - len(Words) = boundaries + 1;
//   - len(Within) + len(Across) = len(tp).
//
// Errors:
//   - ErrOrderTooLow  — n < 2.
//   - ErrBadRatio     — ratio outside (0,1).
//   - ErrSeriesLength — len(tp) ≠ max(0, len(seq)−(n−1)).
//
// Complexity: O(len(seq)) time and memory.
func Sequence(seq []string, tp transition.Series, n int, ratio float64) (Result, error) {
	if n < 2 {
		return Result{}, ErrOrderTooLow
	}
	if ratio <= 0 || ratio >= 1 {
		return Result{}, ErrBadRatio
	}
	want := len(seq) - (n - 1)
	if want < 0 {
		want = 0
	}
	if len(tp) != want {
		return Result{}, ErrSeriesLength
	}

	var res Result
	prefix := n - 1
	if prefix > len(seq) {
		prefix = len(seq)
	}
	word := append([]string(nil), seq[:prefix]...)

	lastTP := 0.0
	for j, p := range tp {
		if p < lastTP*ratio {
			res.Words = append(res.Words, word)
			res.Across = append(res.Across, p)
			word = nil
		} else {
			res.Within = append(res.Within, p)
		}
		word = append(word, seq[j+n-1])
		lastTP = p
	}
	if len(word) > 0 {
		res.Words = append(res.Words, word)
	}
	return res, nil
}

// Group segments every trial of one (chain, generation) group, pooling the
// word-length multiset and the classified TP values. series must hold one
// entry per trial, index-aligned (as transition.Build returns them).
//
// Errors:
//   - ErrSeriesCount — len(series) ≠ len(trials).
//   - Everything Sequence can return, on the first offending trial.
func Group(trials []corpus.Trial, series []transition.Series, n int, ratio float64) (GroupResult, error) {
	if len(series) != len(trials) {
		return GroupResult{}, ErrSeriesCount
	}

	g := GroupResult{Sequences: make([]SequenceWords, len(trials))}
	for i, t := range trials {
		res, err := Sequence(t.Seq, series[i], n, ratio)
		if err != nil {
			return GroupResult{}, err
		}
		g.Sequences[i] = SequenceWords{Words: res.Words, Err: t.Err}
		g.Lengths = append(g.Lengths, res.Lengths()...)
		g.Within = append(g.Within, res.Within...)
		g.Across = append(g.Across, res.Across...)
	}
	return g, nil
}
