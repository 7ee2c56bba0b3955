// Package analysis defines pipeline options, output row types, and sentinel
// errors for the analysis subpackage of github.com/katalvlaran/iterlex.
package analysis

import (
	"errors"

	"github.com/katalvlaran/iterlex/corpus"
	"github.com/katalvlaran/iterlex/segment"
)

// Sentinel errors for pipeline configuration.
var (
	// ErrBadOptions indicates an unusable Options combination.
	ErrBadOptions = errors.New("analysis: invalid pipeline options")
	// ErrNoBaseline indicates that ratio calibration found no groups at
	// the baseline generation.
	ErrNoBaseline = errors.New("analysis: no groups at the baseline generation")
)

// Level labels which symbol inventory a row was computed over.
const (
	// LevelChar marks rows over raw character symbols (diagnostic).
	LevelChar = "char"
	// LevelWord marks rows over segmented word tokens (hypothesis test).
	LevelWord = "word"
)

// Kind labels which side of a boundary a TP observation fell on.
const (
	// KindWithin marks word-internal transitions.
	KindWithin = "within"
	// KindAcross marks boundary-triggering transitions.
	KindAcross = "across"
)

// Options configures one pipeline pass.
type Options struct {
	// Order is the n-gram order for counting and transitions, ≥ 2.
	Order int
	// Ratio fixes the segmentation cut ratio. 0 means calibrate it from
	// the baseline generation; otherwise it must lie in (0,1).
	Ratio float64
	// Percentile is the calibration percentile, in (0,1). Ignored when
	// Ratio is fixed.
	Percentile float64
	// BaselineGeneration is the generation treated as the unlearned noise
	// floor, normally 0.
	BaselineGeneration int
}

// DefaultOptions returns the reference configuration: bigrams, calibrated
// ratio at the 5th percentile of generation 0.
func DefaultOptions() Options {
	return Options{
		Order:              2,
		Ratio:              0,
		Percentile:         segment.DefaultPercentile,
		BaselineGeneration: 0,
	}
}

// validate rejects option combinations the pipeline cannot run with.
func (o Options) validate() error {
	if o.Order < 2 {
		return ErrBadOptions
	}
	if o.Ratio != 0 && (o.Ratio <= 0 || o.Ratio >= 1) {
		return ErrBadOptions
	}
	if o.Ratio == 0 && (o.Percentile <= 0 || o.Percentile >= 1) {
		return ErrBadOptions
	}
	if o.BaselineGeneration < 0 {
		return ErrBadOptions
	}
	return nil
}

// EntropyRow is one group's Shannon entropy at one level.
type EntropyRow struct {
	Chain      string
	Generation int
	Level      string
	Entropy    float64
}

// TPRow is one observed transitional probability, classified by kind.
type TPRow struct {
	Chain      string
	Generation int
	Kind       string
	TP         float64
}

// WordLengthRow is one segmented word's length.
type WordLengthRow struct {
	Chain      string
	Generation int
	Length     int
}

// ZipfRow is one rank-frequency entry of one group at one level.
type ZipfRow struct {
	Chain      string
	Generation int
	Level      string
	Rank       int
	Count      int
	LogRank    float64
	LogCount   float64
}

// FitRow is one group's log-log least-squares fit at one level.
type FitRow struct {
	Chain      string
	Generation int
	Level      string
	Slope      float64
	Intercept  float64
	R2         float64
}

// Report is the flattened output of one pipeline pass.
type Report struct {
	// Ratio is the cut ratio the pass actually used (fixed or calibrated).
	Ratio float64
	// Entropy, Transitions, WordLengths, RankFrequency and Fits are the
	// flat tables consumed by plotting and external regression.
	Entropy       []EntropyRow
	Transitions   []TPRow
	WordLengths   []WordLengthRow
	RankFrequency []ZipfRow
	Fits          []FitRow
	// Words keeps each group's segmented sequences, recall errors
	// attached, for callers that need the word store itself.
	Words map[corpus.GroupKey][]segment.SequenceWords
}
