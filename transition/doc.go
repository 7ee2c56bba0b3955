// Package transition computes transitional-probability series: the
// conditional likelihood of each symbol given its n−1 predecessors,
// estimated from group-pooled n-gram counts.
//
// 🚀 What is a TP series?
//
//	For order n and a sequence of length L, one value per symbol position
//	j = n−1 .. L−1:
//
//	    TP(j) = P(n-gram ending at j) / P((n−1)-gram ending at j−1)
//
//	Both probabilities are relative frequencies within the whole
//	(chain, generation) group — count over total count at that order —
//	NOT within the single sequence. TP is therefore a group-level
//	statistic shared by every sequence of the group: two identical
//	sequences in one group always get identical series. This pooling is
//	what makes a single calibrated cutoff meaningful across a group.
//
// ⚙️ Usage:
//
//	series, err := transition.Build(c.Sequences(key), 2)
//	// series[i][0] aligns with symbol position n−1 of sequence i
//
// Alignment: series index 0 corresponds to symbol position n−1; a sequence
// of length L yields a series of length L−(n−1), empty when L < n.
package transition
