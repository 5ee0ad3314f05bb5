package strategy

import (
	"github.com/robalobadob/wordle/apps/go-solver/internal/belief"
	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// Bayesian keeps an explicit posterior P(target = w | evidence) over the
// answer vocabulary, starting uniform. Feedback is deterministic, so the
// likelihood of an observation is 1 for answers that would have produced it
// and 0 otherwise; the posterior is always uniform over the candidate set.
// It is kept explicit because it carries the tie-break below.
//
// The guess is the MAP answer. Answers tied on posterior mass are separated
// by the entropy of their partition of the candidates, then lexicographically.
type Bayesian struct {
	vocab     *words.Vocabulary
	posterior []float64 // indexed like vocab.Answers()
}

// NewBayesian returns a Bayesian strategy with a uniform prior.
func NewBayesian(vocab *words.Vocabulary) *Bayesian {
	n := len(vocab.Answers())
	p := make([]float64, n)
	for i := range p {
		p[i] = 1 / float64(n)
	}
	return &Bayesian{vocab: vocab, posterior: p}
}

func (b *Bayesian) Name() string { return NameBayes }

// Observe applies Bayes' rule for one (guess, pattern) observation.
func (b *Bayesian) Observe(guess words.Word, p feedback.Pattern, _ *belief.CandidateSet) {
	answers := b.vocab.Answers()
	total := 0.0
	for i, w := range answers {
		if b.posterior[i] == 0 {
			continue
		}
		if feedback.Score(guess, w) != p {
			b.posterior[i] = 0
			continue
		}
		total += b.posterior[i]
	}
	if total == 0 {
		return
	}
	for i := range b.posterior {
		b.posterior[i] /= total
	}
}

// Posterior returns a copy of the current posterior, indexed like Answers().
func (b *Bayesian) Posterior() []float64 {
	return append([]float64(nil), b.posterior...)
}

// Probability returns the posterior mass of w (0 for non-answers).
func (b *Bayesian) Probability(w words.Word) float64 {
	i, ok := b.vocab.AnswerIndex(w)
	if !ok {
		return 0
	}
	return b.posterior[i]
}

func (b *Bayesian) SelectGuess(ctx Context) (words.Word, error) {
	if w, done, err := single(ctx); done {
		return w, err
	}

	answers := b.vocab.Answers()
	maxP := 0.0
	for _, p := range b.posterior {
		if p > maxP {
			maxP = p
		}
	}
	if maxP == 0 {
		return "", ErrEmptyBeliefState
	}

	var tied []words.Word
	for i, p := range b.posterior {
		if p >= maxP-eps {
			tied = append(tied, answers[i])
		}
	}
	if len(tied) == 1 {
		return tied[0], nil
	}

	cands := ctx.Candidates.Words()
	var (
		part  Partition
		best  words.Word
		bestH = -1.0
	)
	for _, g := range tied {
		partitionOf(g, cands, &part)
		if h := part.Entropy(len(cands)); h > bestH+eps {
			best, bestH = g, h
		}
	}
	return best, nil
}
