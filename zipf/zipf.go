// Package zipf defines rank-frequency entries, fit records, and sentinel
// errors for the zipf subpackage of github.com/katalvlaran/iterlex.
package zipf

import (
	"errors"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/iterlex/ngram"
)

// Sentinel errors for zipf operations.
var (
	// ErrEmptyTable indicates a rank-frequency request over a table with
	// zero total count.
	ErrEmptyTable = errors.New("zipf: table holds no n-grams")
	// ErrTooFewPoints indicates a fit over fewer than two distinct ranks.
	ErrTooFewPoints = errors.New("zipf: need at least two entries to fit")
)

// Entry is one row of a rank-frequency table.
type Entry struct {
	// Rank is 0-indexed, descending by count.
	Rank int
	// Count is the observed occurrence count, ≥ 1.
	Count int
	// LogRank is ln(Rank+1); LogCount is ln(Count).
	LogRank, LogCount float64
}

// Fit summarizes an ordinary least-squares line through the log-log table.
type Fit struct {
	// Slope and Intercept parameterize LogCount ≈ Intercept + Slope·LogRank.
	Slope, Intercept float64
	// R2 is the coefficient of determination of the fit.
	R2 float64
}

// RankFrequency converts a count table into rank order.
//
// Grams sort by count descending; ties break on the gram itself so the
// table is deterministic. Every count comes from an observed table, so it
// is ≥ 1 and ln(count) is finite; rank ≥ 0 keeps ln(rank+1) finite too.
//
// Errors:
//   - ErrEmptyTable — the table's total count is 0.
func RankFrequency(t *ngram.Table) ([]Entry, error) {
	if t.Total() == 0 {
		return nil, ErrEmptyTable
	}

	items := t.Items()
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count != items[j].Count {
			return items[i].Count > items[j].Count
		}
		return strings.Join(items[i].Gram, "\x1f") < strings.Join(items[j].Gram, "\x1f")
	})

	entries := make([]Entry, len(items))
	for rank, it := range items {
		entries[rank] = Entry{
			Rank:     rank,
			Count:    it.Count,
			LogRank:  math.Log(float64(rank + 1)),
			LogCount: math.Log(float64(it.Count)),
		}
	}
	return entries, nil
}

// FitLogLog fits LogCount on LogRank by ordinary least squares and reports
// the slope, intercept, and R² of the line. A Zipfian inventory yields a
// slope near −1 with high R².
//
// Errors:
//   - ErrTooFewPoints — fewer than two entries; a line needs two ranks.
func FitLogLog(entries []Entry) (Fit, error) {
	if len(entries) < 2 {
		return Fit{}, ErrTooFewPoints
	}

	xs := make([]float64, len(entries))
	ys := make([]float64, len(entries))
	for i, e := range entries {
		xs[i] = e.LogRank
		ys[i] = e.LogCount
	}

	intercept, slope := stat.LinearRegression(xs, ys, nil, false)
	return Fit{
		Slope:     slope,
		Intercept: intercept,
		R2:        stat.RSquared(xs, ys, nil, intercept, slope),
	}, nil
}
