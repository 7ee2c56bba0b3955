// Package analysis runs the full iterated-learning pipeline over a corpus
// and flattens the results into tables for plotting and external
// mixed-effects regression.
//
// 🚀 What does Run do?
//
//	One synchronous batch pass, strictly forward:
//
//	 1. Calibrate the segmentation ratio from the generation-0 baseline,
//	    pooled across chains (unless a fixed ratio is supplied).
//	 2. Per (chain, generation) group, in deterministic key order:
//	    character n-gram table → entropy → TP series → segmentation →
//	    word store → word unigram table → word entropy, rank-frequency
//	    table and log-log fit. Each table is computed once per group and
//	    reused by every stage that needs it.
//	 3. Flatten everything into Report's row slices.
//
// ⚙️ Usage:
//
//	c, _ := corpus.Load(f)
//	report, err := analysis.Run(c, analysis.DefaultOptions())
//	if err != nil { ... }
//	err = analysis.WriteTables(outDir, report)
//
// The pipeline assumes well-formed, complete input — every chain has every
// generation, every sequence is non-empty — and fails the run on the first
// violation. No retries, no partial results.
package analysis
