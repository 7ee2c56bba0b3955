package ngram_test

import (
	"fmt"

	"github.com/katalvlaran/iterlex/corpus"
	"github.com/katalvlaran/iterlex/ngram"
)

// ExampleCount demonstrates bigram counting and entropy over one sequence.
// Scenario:
//
//   - "aabab" holds four bigrams: aa, ab, ab, ba
//   - the distribution {1/4, 2/4, 1/4} carries exactly 1.5 bits
func ExampleCount() {
	tab, _ := ngram.Count([][]string{corpus.SplitSymbols("aabab")}, 2)

	fmt.Println("total:", tab.Total())
	fmt.Println("ab count:", tab.Count([]string{"a", "b"}))

	h, _ := tab.Entropy()
	fmt.Println("entropy:", h)
	// Output:
	// total: 4
	// ab count: 2
	// entropy: 1.5
}
