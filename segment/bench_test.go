package segment_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/iterlex/segment"
	"github.com/katalvlaran/iterlex/transition"
)

func BenchmarkSequence(b *testing.B) {
	rng := rand.New(rand.NewSource(7))
	alphabet := []string{"a", "b", "c", "d"}
	seq := make([]string, 200)
	for i := range seq {
		seq[i] = alphabet[rng.Intn(len(alphabet))]
	}
	series, err := transition.Build([][]string{seq}, 2)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := segment.Sequence(seq, series[0], 2, 0.2); err != nil {
			b.Fatal(err)
		}
	}
}
