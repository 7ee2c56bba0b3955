// Package transition defines the Series type, sentinel errors, and the
// group-pooled transitional-probability builder for
// github.com/katalvlaran/iterlex.
package transition

import (
	"errors"

	"github.com/katalvlaran/iterlex/ngram"
)

// Sentinel errors for transition operations.
var (
	// ErrOrderTooLow indicates a requested order n < 2; a transition needs
	// at least one symbol of context.
	ErrOrderTooLow = errors.New("transition: order must be at least 2")
	// ErrEmptyGroup indicates a group with no n-grams at the requested
	// order — malformed input under the pipeline's assumptions.
	ErrEmptyGroup = errors.New("transition: group holds no n-grams at this order")
	// ErrMissingContext indicates a context (n−1)-gram with zero recorded
	// count. Impossible when the tables derive from the same corpus; kept
	// as a guard against mismatched inputs.
	ErrMissingContext = errors.New("transition: context n-gram has zero count")
)

// Series is the transitional-probability values of one sequence, one per
// symbol position from n−1 to L−1. Index 0 aligns with symbol position n−1.
type Series []float64

// Build computes one Series per sequence in seqs, at order n.
//
// Algorithm:
//  1. Count the order-n and order-(n−1) tables once over the pooled group.
//  2. For each sequence and each position j = n−1 .. L−1:
//     TP(j) = (countₙ(window j)/totalₙ) / (countₙ₋₁(context j−1)/totalₙ₋₁)
//     where window j is seq[j−n+1 .. j] and context j−1 is seq[j−n+1 .. j−1].
//
// The tables are built exactly once per group and reused across all of its
// sequences; the pooled semantics are deliberate and must not be replaced
// by per-sequence frequencies.
//
// Errors:
//   - ErrOrderTooLow     — n < 2.
//   - ErrEmptyGroup      — no sequence reaches length n.
//   - ErrMissingContext  — a denominator count of 0 (mismatched tables).
//
// Complexity: O(Σ len(seq) × n) time, O(distinct grams) memory.
func Build(seqs [][]string, n int) ([]Series, error) {
	if n < 2 {
		return nil, ErrOrderTooLow
	}

	grams, err := ngram.Count(seqs, n)
	if err != nil {
		return nil, err
	}
	if grams.Total() == 0 {
		return nil, ErrEmptyGroup
	}
	contexts, err := ngram.Count(seqs, n-1)
	if err != nil {
		return nil, err
	}

	gramTotal := float64(grams.Total())
	contextTotal := float64(contexts.Total())

	series := make([]Series, len(seqs))
	for i, seq := range seqs {
		if len(seq) < n {
			series[i] = Series{}
			continue
		}
		s := make(Series, 0, len(seq)-n+1)
		for j := n - 1; j < len(seq); j++ {
			window := seq[j-n+1 : j+1]
			context := seq[j-n+1 : j]

			contextCount := contexts.Count(context)
			if contextCount == 0 {
				return nil, ErrMissingContext
			}
			pGram := float64(grams.Count(window)) / gramTotal
			pContext := float64(contextCount) / contextTotal
			s = append(s, pGram/pContext)
		}
		series[i] = s
	}
	return series, nil
}
