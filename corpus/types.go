// Package corpus defines trial records, group keys, and sentinel errors
// for the corpus subpackage of github.com/katalvlaran/iterlex.
package corpus

import (
	"errors"
	"sort"
	"strings"
)

// Sentinel errors for corpus operations.
var (
	// ErrMissingColumn indicates the CSV header lacks a required column.
	ErrMissingColumn = errors.New("corpus: required column missing from header")
	// ErrBadRecord indicates a row that cannot be parsed into a Trial.
	ErrBadRecord = errors.New("corpus: malformed trial record")
	// ErrEmptyCorpus indicates a corpus with no trials at all.
	ErrEmptyCorpus = errors.New("corpus: no trials")
)

// Trial is one observed transmission event. Immutable once loaded.
type Trial struct {
	// Chain identifies the transmission lineage this trial belongs to.
	Chain string
	// Generation is the ordinal step within the chain; 0 is the
	// unlearned baseline.
	Generation int
	// Seq is the reproduced sequence, one symbol per element.
	Seq []string
	// Err is the recall error of this reproduction, ≥ 0.
	Err float64
}

// GroupKey identifies one (chain, generation) cell of the design.
type GroupKey struct {
	Chain      string
	Generation int
}

// Corpus is the in-memory trial table, indexed by GroupKey.
// Build one with Load, New, or Generate; it is read-only afterwards.
type Corpus struct {
	trials []Trial
	groups map[GroupKey][]Trial
}

// New assembles a Corpus from pre-built trials, grouping them by
// (chain, generation). Returns ErrEmptyCorpus when trials is empty and
// ErrBadRecord when a trial has a negative generation, a negative recall
// error, or an empty sequence.
func New(trials []Trial) (*Corpus, error) {
	if len(trials) == 0 {
		return nil, ErrEmptyCorpus
	}
	c := &Corpus{
		trials: make([]Trial, 0, len(trials)),
		groups: make(map[GroupKey][]Trial),
	}
	for _, t := range trials {
		if t.Generation < 0 || t.Err < 0 || len(t.Seq) == 0 {
			return nil, ErrBadRecord
		}
		c.add(t)
	}
	return c, nil
}

// add appends one trial to the table and its group bucket.
func (c *Corpus) add(t Trial) {
	c.trials = append(c.trials, t)
	key := GroupKey{Chain: t.Chain, Generation: t.Generation}
	c.groups[key] = append(c.groups[key], t)
}

// Len returns the total number of trials.
func (c *Corpus) Len() int { return len(c.trials) }

// Trials returns all trials in load order. The slice is shared; callers
// must not mutate it.
func (c *Corpus) Trials() []Trial { return c.trials }

// Group returns the trials of one (chain, generation) cell, in load order.
// Returns nil when the cell is absent.
func (c *Corpus) Group(key GroupKey) []Trial { return c.groups[key] }

// Sequences returns just the symbol sequences of one group, in load order.
// Convenient for the n-gram and transition stages, which operate on
// sequences alone.
func (c *Corpus) Sequences(key GroupKey) [][]string {
	trials := c.groups[key]
	if trials == nil {
		return nil
	}
	seqs := make([][]string, len(trials))
	for i, t := range trials {
		seqs[i] = t.Seq
	}
	return seqs
}

// Keys returns every populated GroupKey, sorted by chain then generation.
// The order is deterministic so that pipeline output is reproducible.
func (c *Corpus) Keys() []GroupKey {
	keys := make([]GroupKey, 0, len(c.groups))
	for k := range c.groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Chain != keys[j].Chain {
			return keys[i].Chain < keys[j].Chain
		}
		return keys[i].Generation < keys[j].Generation
	})
	return keys
}

// GenerationKeys returns the populated keys of one generation across all
// chains, sorted by chain. Used to pool the calibration baseline.
func (c *Corpus) GenerationKeys(generation int) []GroupKey {
	var keys []GroupKey
	for k := range c.groups {
		if k.Generation == generation {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Chain < keys[j].Chain })
	return keys
}

// SplitSymbols breaks a raw string into single-rune symbols.
func SplitSymbols(s string) []string {
	runes := []rune(s)
	symbols := make([]string, len(runes))
	for i, r := range runes {
		symbols[i] = string(r)
	}
	return symbols
}

// JoinSymbols is the inverse of SplitSymbols: it concatenates symbols back
// into the raw string form. Segmented words round-trip through it.
func JoinSymbols(symbols []string) string {
	return strings.Join(symbols, "")
}
