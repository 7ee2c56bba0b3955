package ngram

import "math"

// Entropy computes the Shannon entropy of the table's count distribution,
// in bits:
//
//	H = −Σ pᵢ·log2(pᵢ),  pᵢ = countᵢ / Total()
//
// Properties:
//   - H ≥ 0 always.
//   - H = 0 iff exactly one distinct gram type exists.
//   - H = log2(k) when k types occur with equal counts.
//
// Errors:
//   - ErrEmptyTable — Total() is 0; callers must guarantee at least one
//     observed gram (an empty group is malformed input, per the pipeline's
//     no-recovery policy).
func (t *Table) Entropy() (float64, error) {
	if t.total == 0 {
		return 0, ErrEmptyTable
	}
	total := float64(t.total)
	var h float64
	for _, count := range t.counts {
		p := float64(count) / total
		h -= p * math.Log2(p)
	}
	return h, nil
}
