// Package ngram counts contiguous n-grams within a group of sequences and
// derives Shannon entropy from the resulting count tables.
//
// 🚀 What is an n-gram table?
//
//	For a fixed order n ≥ 1, every contiguous window of n symbols in every
//	sequence of a (chain, generation) group is tallied into one Table.
//	Sequences shorter than n simply contribute nothing — that is an empty
//	range, never an error. The table is the shared substrate for the
//	entropy, transition-probability and rank-frequency stages.
//
// ⚙️ Usage:
//
//	seqs := [][]string{{"a", "a", "b", "a", "b"}}
//	tab, err := ngram.Count(seqs, 2)
//	// tab: {aa:1, ab:2, ba:1}, tab.Total() == 4
//
//	h, err := tab.Entropy() // 1.5 bits
//
// Invariant: Total() equals Σ over sequences of max(0, len−n+1).
//
// Complexity: counting is O(total symbols × n); entropy is O(distinct grams).
package ngram
