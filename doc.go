// Package iterlex analyzes sequence-transmission data from iterated-learning
// experiments — chains of participants copying symbol strings generation
// after generation — and tests whether word-like segmentation and Zipfian
// frequency structure emerge along the way.
//
// 🚀 What is iterlex?
//
//	A batch, in-memory analysis toolkit that brings together:
//		• Corpus loading: trials keyed by (chain, generation), straight from CSV
//		• N-gram statistics: contiguous n-gram counts & Shannon entropy
//		• Transitional probabilities: group-pooled P(symbol | context)
//		• Dip-detector segmentation: cut sequences into words where TP drops
//		• Threshold calibration: cutoff from the generation-0 noise floor
//		• Zipf diagnostics: rank-frequency tables & log-log least-squares fits
//
// ✨ Why iterlex?
//
//   - Deterministic – every stage is a pure function of its inputs
//   - Typed group records – no ad hoc dictionary plumbing between stages
//   - Flat output tables – ready for external mixed-effects modeling
//   - Pure Go core – gonum only where statistics genuinely need it
//
// Everything is organized under focused subpackages:
//
//	corpus/     — Trial records, CSV loading, (chain, generation) groups
//	ngram/      — n-gram count tables & Shannon entropy
//	transition/ — group-pooled transitional-probability series
//	segment/    — boundary segmentation & threshold calibration
//	zipf/       — rank-frequency tables & log-log fits
//	analysis/   — the one-shot pipeline & exported tables
//	plotx/      — PNG rendering of the derived curves
//
// Data flows strictly forward:
//
//	corpus → ngram → transition → segment → corpus(words) → ngram(n=1)
//	       → entropy / zipf → analysis tables → plots & external regression
//
// Start with analysis.Run for the whole pipeline, or use the subpackages
// directly when you only need one stage.
//
//	go get github.com/katalvlaran/iterlex
package iterlex
