package ngram_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/iterlex/ngram"
)

// benchSeqs builds a reproducible group of 60 sequences of 30 symbols over
// a four-letter inventory, roughly one generation of the reference design.
func benchSeqs() [][]string {
	rng := rand.New(rand.NewSource(42))
	alphabet := []string{"a", "b", "c", "d"}
	seqs := make([][]string, 60)
	for i := range seqs {
		seq := make([]string, 30)
		for j := range seq {
			seq[j] = alphabet[rng.Intn(len(alphabet))]
		}
		seqs[i] = seq
	}
	return seqs
}

func BenchmarkCount_Bigrams(b *testing.B) {
	seqs := benchSeqs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ngram.Count(seqs, 2); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEntropy(b *testing.B) {
	tab, err := ngram.Count(benchSeqs(), 2)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tab.Entropy(); err != nil {
			b.Fatal(err)
		}
	}
}
