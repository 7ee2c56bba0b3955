// Package plotx renders the pipeline's derived tables as PNG images:
// log-log rank-frequency curves, entropy-by-generation curves, and
// within/across transitional-probability curves.
//
// The renderers are pure functions from Report rows to image files built
// on gonum.org/v1/plot; they hold no process-wide theme state, so the
// analysis core stays independent of presentation concerns.
//
// ⚙️ Usage:
//
//	report, _ := analysis.Run(c, analysis.DefaultOptions())
//	err := plotx.EntropyByGeneration(report.Entropy, analysis.LevelWord,
//	    filepath.Join(dir, "entropy_word.png"))
//
// Rendering failures are reported, never recovered; plots are side effects
// of a one-shot batch run.
package plotx
