package analysis

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// File names WriteTables produces inside the output directory.
const (
	EntropyFile       = "entropy.csv"
	TransitionsFile   = "transitions.csv"
	WordLengthsFile   = "word_lengths.csv"
	RankFrequencyFile = "rank_frequency.csv"
	FitsFile          = "zipf_fits.csv"
)

// WriteTables exports every Report table as CSV into dir, one file per
// table, creating dir if needed. Columns match the row types field for
// field, so the files feed straight into external regression tooling.
func WriteTables(dir string, report *Report) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("analysis: create output dir: %w", err)
	}

	if err := writeCSV(filepath.Join(dir, EntropyFile),
		[]string{"chain", "generation", "level", "entropy"},
		len(report.Entropy), func(i int) []string {
			r := report.Entropy[i]
			return []string{r.Chain, itoa(r.Generation), r.Level, ftoa(r.Entropy)}
		}); err != nil {
		return err
	}

	if err := writeCSV(filepath.Join(dir, TransitionsFile),
		[]string{"chain", "generation", "kind", "tp"},
		len(report.Transitions), func(i int) []string {
			r := report.Transitions[i]
			return []string{r.Chain, itoa(r.Generation), r.Kind, ftoa(r.TP)}
		}); err != nil {
		return err
	}

	if err := writeCSV(filepath.Join(dir, WordLengthsFile),
		[]string{"chain", "generation", "length"},
		len(report.WordLengths), func(i int) []string {
			r := report.WordLengths[i]
			return []string{r.Chain, itoa(r.Generation), itoa(r.Length)}
		}); err != nil {
		return err
	}

	if err := writeCSV(filepath.Join(dir, RankFrequencyFile),
		[]string{"chain", "generation", "level", "rank", "count", "log_rank", "log_count"},
		len(report.RankFrequency), func(i int) []string {
			r := report.RankFrequency[i]
			return []string{
				r.Chain, itoa(r.Generation), r.Level,
				itoa(r.Rank), itoa(r.Count), ftoa(r.LogRank), ftoa(r.LogCount),
			}
		}); err != nil {
		return err
	}

	return writeCSV(filepath.Join(dir, FitsFile),
		[]string{"chain", "generation", "level", "slope", "intercept", "r2"},
		len(report.Fits), func(i int) []string {
			r := report.Fits[i]
			return []string{
				r.Chain, itoa(r.Generation), r.Level,
				ftoa(r.Slope), ftoa(r.Intercept), ftoa(r.R2),
			}
		})
}

// writeCSV streams rows(0..n-1) under a header into path.
func writeCSV(path string, header []string, n int, row func(int) []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("analysis: create %s: %w", filepath.Base(path), err)
	}

	w := csv.NewWriter(f)
	w.Write(header)
	for i := 0; i < n; i++ {
		w.Write(row(i))
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("analysis: write %s: %w", filepath.Base(path), err)
	}
	return f.Close()
}

func itoa(v int) string { return strconv.Itoa(v) }

func ftoa(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
