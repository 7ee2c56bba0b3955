package segment

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/iterlex/transition"
)

// CalibrateRatio derives the cut ratio from baseline (generation-0) series.
//
// Description:
//
//	For every baseline series, every consecutive pair contributes one ratio
//	tp[j+1]/tp[j]; the ratios of all series — typically the generation-0
//	groups of every chain, pooled — form an empirical distribution of how
//	much TP fluctuates in data with no learned structure. The returned
//	cutoff is the given low percentile of that distribution, so only dips
//	deeper than almost anything the noise floor produces count as
//	boundaries in later generations.
//
// Errors:
//   - ErrBadPercentile — percentile outside (0,1).
//   - ErrNoRatios      — no series contributes a consecutive pair.
//
// Complexity: O(R log R) for R pooled ratios (sorting for the quantile).
func CalibrateRatio(baseline []transition.Series, percentile float64) (float64, error) {
	if percentile <= 0 || percentile >= 1 {
		return 0, ErrBadPercentile
	}

	var ratios []float64
	for _, s := range baseline {
		for j := 0; j+1 < len(s); j++ {
			ratios = append(ratios, s[j+1]/s[j])
		}
	}
	if len(ratios) == 0 {
		return 0, ErrNoRatios
	}

	sort.Float64s(ratios)
	return stat.Quantile(percentile, stat.Empirical, ratios, nil), nil
}
