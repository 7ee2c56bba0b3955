// Package plotx implements the PNG renderers for
// github.com/katalvlaran/iterlex report tables.
package plotx

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/iterlex/analysis"
)

// ErrNoRows indicates a renderer was handed an empty table.
var ErrNoRows = errors.New("plotx: no rows to plot")

// Default canvas size for every renderer.
const (
	plotWidth  = 6 * vg.Inch
	plotHeight = 4 * vg.Inch
)

// EntropyByGeneration plots mean entropy per generation at one level,
// averaged across chains, as a single line.
func EntropyByGeneration(rows []analysis.EntropyRow, level, path string) error {
	sums := map[int]float64{}
	counts := map[int]int{}
	for _, r := range rows {
		if r.Level != level {
			continue
		}
		sums[r.Generation] += r.Entropy
		counts[r.Generation]++
	}
	pts := meanSeries(sums, counts)
	if len(pts) == 0 {
		return ErrNoRows
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Shannon entropy by generation (%s level)", level)
	p.X.Label.Text = "generation"
	p.Y.Label.Text = "entropy (bits)"

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("plotx: entropy line: %w", err)
	}
	p.Add(plotter.NewGrid(), line)
	return save(p, path)
}

// TPByGeneration plots mean within-word and across-boundary transitional
// probability per generation as two labeled lines.
func TPByGeneration(rows []analysis.TPRow, path string) error {
	sums := map[string]map[int]float64{
		analysis.KindWithin: {},
		analysis.KindAcross: {},
	}
	counts := map[string]map[int]int{
		analysis.KindWithin: {},
		analysis.KindAcross: {},
	}
	for _, r := range rows {
		if _, ok := sums[r.Kind]; !ok {
			continue
		}
		sums[r.Kind][r.Generation] += r.TP
		counts[r.Kind][r.Generation]++
	}

	p := plot.New()
	p.Title.Text = "Transitional probability by generation"
	p.X.Label.Text = "generation"
	p.Y.Label.Text = "mean TP"
	p.Add(plotter.NewGrid())

	plotted := 0
	for _, kind := range []string{analysis.KindWithin, analysis.KindAcross} {
		pts := meanSeries(sums[kind], counts[kind])
		if len(pts) == 0 {
			continue
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("plotx: %s line: %w", kind, err)
		}
		if kind == analysis.KindAcross {
			line.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		}
		p.Add(line)
		p.Legend.Add(kind, line)
		plotted++
	}
	if plotted == 0 {
		return ErrNoRows
	}
	return save(p, path)
}

// RankFrequency plots one group's log-log rank-frequency scatter at one
// level.
func RankFrequency(rows []analysis.ZipfRow, chain string, generation int, level, path string) error {
	var pts plotter.XYs
	for _, r := range rows {
		if r.Chain != chain || r.Generation != generation || r.Level != level {
			continue
		}
		pts = append(pts, plotter.XY{X: r.LogRank, Y: r.LogCount})
	}
	if len(pts) == 0 {
		return ErrNoRows
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Rank-frequency %s/%d (%s level)", chain, generation, level)
	p.X.Label.Text = "log(rank+1)"
	p.Y.Label.Text = "log(count)"

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("plotx: rank-frequency scatter: %w", err)
	}
	p.Add(plotter.NewGrid(), scatter)
	return save(p, path)
}

// RankFrequencyCurve plots one group's raw (rank, count) curve at one
// level — the untransformed companion of the log-log scatter.
func RankFrequencyCurve(rows []analysis.ZipfRow, chain string, generation int, level, path string) error {
	var pts plotter.XYs
	for _, r := range rows {
		if r.Chain != chain || r.Generation != generation || r.Level != level {
			continue
		}
		pts = append(pts, plotter.XY{X: float64(r.Rank), Y: float64(r.Count)})
	}
	if len(pts) == 0 {
		return ErrNoRows
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Rank-frequency curve %s/%d (%s level)", chain, generation, level)
	p.X.Label.Text = "rank"
	p.Y.Label.Text = "count"

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("plotx: rank-frequency curve: %w", err)
	}
	p.Add(plotter.NewGrid(), line)
	return save(p, path)
}

// meanSeries turns per-generation sums and counts into sorted XY points.
func meanSeries(sums map[int]float64, counts map[int]int) plotter.XYs {
	gens := make([]int, 0, len(sums))
	for g := range sums {
		gens = append(gens, g)
	}
	sort.Ints(gens)

	pts := make(plotter.XYs, 0, len(gens))
	for _, g := range gens {
		pts = append(pts, plotter.XY{
			X: float64(g),
			Y: sums[g] / float64(counts[g]),
		})
	}
	return pts
}

// save writes the canvas as PNG.
func save(p *plot.Plot, path string) error {
	if err := p.Save(plotWidth, plotHeight, path); err != nil {
		return fmt.Errorf("plotx: save %s: %w", path, err)
	}
	return nil
}
