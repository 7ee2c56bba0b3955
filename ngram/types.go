// Package ngram defines the count table type and sentinel errors for the
// ngram subpackage of github.com/katalvlaran/iterlex.
package ngram

import (
	"errors"
	"strings"
)

// Sentinel errors for ngram operations.
var (
	// ErrOrderTooLow indicates a requested order n < 1.
	ErrOrderTooLow = errors.New("ngram: order must be at least 1")
	// ErrEmptyTable indicates an entropy request over a table with zero
	// total count.
	ErrEmptyTable = errors.New("ngram: table holds no n-grams")
)

// sep joins the symbols of one gram into a map key. The unit separator
// cannot appear in experimental symbol inventories, so joined keys stay
// collision-free even for multi-rune word tokens.
const sep = "\x1f"

// Item is one (gram, count) pair of a Table.
type Item struct {
	// Gram is the symbol tuple of this n-gram.
	Gram []string
	// Count is its total occurrence count within the group, ≥ 1.
	Count int
}

// Table maps every distinct n-gram of one group to its occurrence count.
// Immutable once built by Count.
type Table struct {
	n      int
	counts map[string]int
	total  int
}

// N returns the order the table was counted at.
func (t *Table) N() int { return t.n }

// Total returns the summed count over all grams:
// Σ over sequences of max(0, len−n+1).
func (t *Table) Total() int { return t.total }

// Types returns the number of distinct grams.
func (t *Table) Types() int { return len(t.counts) }

// Count returns the occurrence count of one gram, 0 when unseen.
func (t *Table) Count(gram []string) int {
	return t.counts[strings.Join(gram, sep)]
}

// Items returns every (gram, count) pair. Order is unspecified; callers
// needing determinism sort (the rank-frequency stage does).
func (t *Table) Items() []Item {
	items := make([]Item, 0, len(t.counts))
	for key, count := range t.counts {
		items = append(items, Item{Gram: strings.Split(key, sep), Count: count})
	}
	return items
}
