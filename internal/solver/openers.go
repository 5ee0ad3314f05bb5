package solver

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle/apps/go-solver/internal/strategy"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// Opener scores one word as a first guess over the full answer vocabulary.
type Opener struct {
	Word              words.Word
	ExpectedRemaining float64 // Σ n_p²/N: answers expected to survive the guess.
	Entropy           float64 // bits of information from the guess.
}

// RankOpeners scores every guess as an opening move and returns the n best
// by expected remaining answers (ties by entropy, then lexicographically).
// n <= 0 returns all of them. Scoring is spread over workers goroutines.
func RankOpeners(ctx context.Context, vocab *words.Vocabulary, n, workers int) ([]Opener, error) {
	guesses := vocab.Guesses()
	answers := vocab.Answers()
	out := make([]Opener, len(guesses))

	if workers < 1 {
		workers = 1
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, w := range guesses {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p := strategy.NewPartition(w, answers)
			out[i] = Opener{
				Word:              w,
				ExpectedRemaining: p.ExpectedSize(len(answers)),
				Entropy:           p.Entropy(len(answers)),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.ExpectedRemaining != b.ExpectedRemaining {
			return a.ExpectedRemaining < b.ExpectedRemaining
		}
		if a.Entropy != b.Entropy {
			return a.Entropy > b.Entropy
		}
		return a.Word < b.Word
	})
	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out, nil
}
