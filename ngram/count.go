package ngram

import "strings"

// Count tallies every contiguous n-gram across seqs into one Table.
//
// Description:
//
//	Sequences are the trials of a single (chain, generation) group; counts
//	are pooled over the whole group, which is what makes the downstream
//	transition probabilities group-level statistics.
//
// Behavior:
//   - A sequence of length L contributes max(0, L−n+1) grams.
//   - Sequences shorter than n contribute nothing; this is not an error.
//   - Symbols compare by exact value, so the same code paths serve
//     single-rune characters and multi-rune word tokens.
//
// Errors:
//   - ErrOrderTooLow — n < 1.
//
// Complexity: O(Σ len(seq) × n) time, O(distinct grams) memory.
func Count(seqs [][]string, n int) (*Table, error) {
	if n < 1 {
		return nil, ErrOrderTooLow
	}
	t := &Table{n: n, counts: make(map[string]int)}
	for _, seq := range seqs {
		for i := 0; i+n <= len(seq); i++ {
			t.counts[strings.Join(seq[i:i+n], sep)]++
			t.total++
		}
	}
	return t, nil
}
