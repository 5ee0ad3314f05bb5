package strategy

import (
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// AStar is a one-ply lookahead over belief states.
//
//	g = guesses already made, plus one for the move being scored
//	h(n) = ceil(log n / log b), the guesses still needed for n candidates
//	f(guess) = g + Σ_p (n_p/N) · h(n_p)
//
// The guess with the lowest expected f wins; ties go to the smaller expected
// candidate count, then to candidates, then to lexicographic order.
// h is not admissible, so the result is near-optimal rather than optimal.
//
// h is an integer, so at the default b of 243 it is 1 for every class of 2 to
// 243 candidates. f then reduces to g + 1 + P(class has more than one
// candidate), and the expected candidate count does most of the ranking.
type AStar struct {
	branching float64
	smallPool int
}

func (a *AStar) Name() string { return NameAStar }

// Heuristic returns ceil(log n / log b) computed without floating point
// rounding: the smallest k with b^k >= n. It is 0 for n <= 1.
func Heuristic(n int, b float64) int {
	k := 0
	for reach := 1.0; reach < float64(n); reach *= b {
		k++
	}
	return k
}

// Cost is the expected f of playing guess at round (guesses already made).
func (a *AStar) Cost(round int, guess words.Word, cands []words.Word) float64 {
	var part Partition
	partitionOf(guess, cands, &part)
	return a.cost(round, &part, len(cands))
}

func (a *AStar) cost(round int, part *Partition, n int) float64 {
	N := float64(n)
	exp := 0.0
	for _, c := range part {
		if c == 0 {
			continue
		}
		exp += float64(c) / N * float64(Heuristic(c, a.branching))
	}
	return float64(round+1) + exp
}

func (a *AStar) SelectGuess(ctx Context) (words.Word, error) {
	if w, done, err := single(ctx); done {
		return w, err
	}
	cands := ctx.Candidates.Words()
	pool := searchPool(ctx, cands, a.smallPool)

	var (
		part     Partition
		best     words.Word
		bestF    float64
		bestSize float64
		bestCand bool
	)
	for i, g := range pool {
		partitionOf(g, cands, &part)
		f := a.cost(ctx.Round, &part, len(cands))
		size := part.ExpectedSize(len(cands))
		isCand := ctx.Candidates.Contains(g)

		better := i == 0 ||
			f < bestF-eps ||
			(f < bestF+eps && (size < bestSize-eps ||
				(size < bestSize+eps && isCand && !bestCand)))
		if better {
			best, bestF, bestSize, bestCand = g, f, size, isCand
		}
	}
	return best, nil
}
