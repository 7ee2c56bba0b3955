package corpus

import (
	"errors"
	"fmt"
	"math/rand"
)

// Sentinel errors for the synthetic generator.
var (
	// ErrBadGenConfig indicates an unusable GenOptions combination.
	ErrBadGenConfig = errors.New("corpus: invalid generator configuration")
)

// GenOptions configures the synthetic corpus generator.
//
// Generation 0 is drawn uniformly from Alphabet (the unlearned baseline).
// When Lexicon is non-empty, later generations are built by concatenating
// lexicon items instead, which plants word-like transitional structure for
// the segmenter to find. All draws come from a rand.Rand seeded with Seed,
// so a fixed configuration always yields the same corpus.
type GenOptions struct {
	// Alphabet is the symbol inventory; each symbol should be one rune.
	Alphabet []string
	// Lexicon optionally lists multi-symbol "words" used from generation 1
	// onward. Empty means every generation stays uniform random.
	Lexicon [][]string
	// Chains and Generations set the design size.
	Chains, Generations int
	// TrialsPerGroup is the number of trials in each (chain, generation).
	TrialsPerGroup int
	// MinLen and MaxLen bound the sequence length (symbols for baseline
	// sequences, lexicon items for structured ones).
	MinLen, MaxLen int
	// Seed drives the deterministic RNG.
	Seed int64
}

// DefaultGenOptions returns a small but non-trivial design: 4 chains,
// 5 generations, 8 trials per group, sequences of 6–12 symbols over a
// four-letter alphabet.
func DefaultGenOptions() GenOptions {
	return GenOptions{
		Alphabet:       []string{"a", "b", "c", "d"},
		Chains:         4,
		Generations:    5,
		TrialsPerGroup: 8,
		MinLen:         6,
		MaxLen:         12,
		Seed:           1,
	}
}

// Generate builds a deterministic synthetic corpus from opts.
// Returns ErrBadGenConfig when the design is empty or the length bounds
// are inverted.
func Generate(opts GenOptions) (*Corpus, error) {
	if len(opts.Alphabet) == 0 ||
		opts.Chains < 1 || opts.Generations < 1 || opts.TrialsPerGroup < 1 ||
		opts.MinLen < 1 || opts.MaxLen < opts.MinLen {
		return nil, ErrBadGenConfig
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	c := &Corpus{groups: make(map[GroupKey][]Trial)}
	for chain := 0; chain < opts.Chains; chain++ {
		name := fmt.Sprintf("c%02d", chain)
		for gen := 0; gen < opts.Generations; gen++ {
			for trial := 0; trial < opts.TrialsPerGroup; trial++ {
				length := opts.MinLen + rng.Intn(opts.MaxLen-opts.MinLen+1)
				var seq []string
				if gen == 0 || len(opts.Lexicon) == 0 {
					seq = randomSequence(rng, opts.Alphabet, length)
				} else {
					seq = lexiconSequence(rng, opts.Lexicon, length)
				}
				c.add(Trial{
					Chain:      name,
					Generation: gen,
					Seq:        seq,
					Err:        rng.Float64(),
				})
			}
		}
	}
	return c, nil
}

// randomSequence draws length symbols uniformly from alphabet.
func randomSequence(rng *rand.Rand, alphabet []string, length int) []string {
	seq := make([]string, length)
	for i := range seq {
		seq[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return seq
}

// lexiconSequence concatenates length lexicon items into one sequence.
func lexiconSequence(rng *rand.Rand, lexicon [][]string, length int) []string {
	var seq []string
	for i := 0; i < length; i++ {
		seq = append(seq, lexicon[rng.Intn(len(lexicon))]...)
	}
	return seq
}
