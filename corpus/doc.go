// Package corpus holds the experimental trial table: one immutable record
// per observed trial, grouped by (chain, generation).
//
// A Trial is a single transmission event — one participant's reproduction of
// a symbol sequence — carrying the chain it belongs to, its generation index
// within that chain, the sequence itself, and the recall error measured
// against the sequence it was copied from.
//
// ⚙️ Usage:
//
//	f, _ := os.Open("trials.csv")
//	c, err := corpus.Load(f)
//	if err != nil { ... }
//
//	for _, key := range c.Keys() {
//	    trials := c.Group(key)
//	    // key.Chain, key.Generation, trials[i].Seq ...
//	}
//
// The expected CSV shape is one header row naming at least the columns
// "chain", "generation", "string" and "error", then one row per trial.
// The "string" column is split into single-rune symbols; downstream stages
// treat symbols as opaque tokens, so word-level corpora built from segmented
// output reuse the same types with multi-rune symbols.
//
// Synthetic corpora for tests and demos come from Generate, which is fully
// deterministic under a fixed seed.
package corpus
