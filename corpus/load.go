package corpus

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Column names Load expects in the CSV header. Extra columns are ignored.
const (
	colChain      = "chain"
	colGeneration = "generation"
	colString     = "string"
	colError      = "error"
)

// Load reads a trial table from CSV.
//
// The first row is a header; it must contain the columns "chain",
// "generation", "string" and "error" (any order, extra columns ignored).
// Each subsequent row becomes one Trial: the "string" cell is split into
// single-rune symbols, "generation" must parse as a non-negative integer,
// and "error" as a non-negative float.
//
// Errors:
//   - ErrMissingColumn — a required column is absent from the header.
//   - ErrBadRecord     — a row fails to parse; wrapped with its row number.
//   - ErrEmptyCorpus   — the file holds a header but no data rows.
func Load(r io.Reader) (*Corpus, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("corpus: read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyCorpus
	}

	idx, err := headerIndex(records[0])
	if err != nil {
		return nil, err
	}

	c := &Corpus{groups: make(map[GroupKey][]Trial)}
	for row, rec := range records[1:] {
		t, err := parseTrial(rec, idx)
		if err != nil {
			// Rows are reported 1-indexed counting the header.
			return nil, fmt.Errorf("row %d: %w", row+2, err)
		}
		c.add(t)
	}
	if len(c.trials) == 0 {
		return nil, ErrEmptyCorpus
	}
	return c, nil
}

// columnIndex maps each required column name to its header position.
type columnIndex struct {
	chain, generation, str, err int
}

// headerIndex locates the required columns, case-insensitively.
func headerIndex(header []string) (columnIndex, error) {
	idx := columnIndex{chain: -1, generation: -1, str: -1, err: -1}
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case colChain:
			idx.chain = i
		case colGeneration:
			idx.generation = i
		case colString:
			idx.str = i
		case colError:
			idx.err = i
		}
	}
	for _, want := range []struct {
		name string
		pos  int
	}{
		{colChain, idx.chain},
		{colGeneration, idx.generation},
		{colString, idx.str},
		{colError, idx.err},
	} {
		if want.pos < 0 {
			return idx, fmt.Errorf("%w: %q", ErrMissingColumn, want.name)
		}
	}
	return idx, nil
}

// parseTrial converts one CSV record into a Trial.
func parseTrial(rec []string, idx columnIndex) (Trial, error) {
	max := idx.chain
	for _, p := range []int{idx.generation, idx.str, idx.err} {
		if p > max {
			max = p
		}
	}
	if len(rec) <= max {
		return Trial{}, fmt.Errorf("%w: too few fields", ErrBadRecord)
	}

	gen, err := strconv.Atoi(strings.TrimSpace(rec[idx.generation]))
	if err != nil || gen < 0 {
		return Trial{}, fmt.Errorf("%w: generation %q", ErrBadRecord, rec[idx.generation])
	}
	recall, err := strconv.ParseFloat(strings.TrimSpace(rec[idx.err]), 64)
	if err != nil || recall < 0 {
		return Trial{}, fmt.Errorf("%w: error %q", ErrBadRecord, rec[idx.err])
	}
	raw := rec[idx.str]
	if raw == "" {
		return Trial{}, fmt.Errorf("%w: empty sequence", ErrBadRecord)
	}

	return Trial{
		Chain:      strings.TrimSpace(rec[idx.chain]),
		Generation: gen,
		Seq:        SplitSymbols(raw),
		Err:        recall,
	}, nil
}
