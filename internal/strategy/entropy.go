package strategy

import (
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// Entropy picks the guess whose pattern partition of the candidates has the
// highest Shannon entropy. Ties prefer candidates, then lexicographic order.
type Entropy struct {
	smallPool int
}

func (e *Entropy) Name() string { return NameEntropy }

func (e *Entropy) SelectGuess(ctx Context) (words.Word, error) {
	if w, done, err := single(ctx); done {
		return w, err
	}
	cands := ctx.Candidates.Words()
	pool := searchPool(ctx, cands, e.smallPool)
	bound := maxEntropy(len(cands))

	var (
		part     Partition
		best     words.Word
		bestH    = -1.0
		bestCand bool
	)
	// pool is sorted, so the first guess to reach a score keeps it on ties.
	for _, g := range pool {
		partitionOf(g, cands, &part)
		h := part.Entropy(len(cands))
		isCand := ctx.Candidates.Contains(g)
		if h > bestH+eps || (h > bestH-eps && isCand && !bestCand) {
			best, bestH, bestCand = g, h, isCand
		}
		// Nothing later can beat a candidate at the upper bound.
		if bestCand && bestH >= bound-eps {
			break
		}
	}
	return best, nil
}
