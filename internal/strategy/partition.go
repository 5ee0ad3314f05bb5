package strategy

import (
	"math"

	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// eps absorbs floating point noise when comparing scores.
const eps = 1e-12

// Partition counts, per pattern code, how many candidates guess would
// produce that pattern against.
type Partition [feedback.NumPatterns]int

func partitionOf(guess words.Word, cands []words.Word, p *Partition) {
	*p = Partition{}
	for _, t := range cands {
		p[feedback.ScoreCode(guess, t)]++
	}
}

// Entropy is H = -Σ (n_p/N) log2(n_p/N) over the non-empty classes.
func (p *Partition) Entropy(n int) float64 {
	if n == 0 {
		return 0
	}
	N := float64(n)
	h := 0.0
	for _, c := range p {
		if c == 0 {
			continue
		}
		q := float64(c) / N
		h -= q * math.Log2(q)
	}
	return h
}

// ExpectedSize is the expected number of candidates left, Σ n_p²/N.
func (p *Partition) ExpectedSize(n int) float64 {
	if n == 0 {
		return 0
	}
	s := 0
	for _, c := range p {
		s += c * c
	}
	return float64(s) / float64(n)
}

// NewPartition partitions cands by the pattern guess produces against each.
func NewPartition(guess words.Word, cands []words.Word) *Partition {
	var p Partition
	partitionOf(guess, cands, &p)
	return &p
}

// PartitionEntropy is the information gain of guess over cands.
func PartitionEntropy(guess words.Word, cands []words.Word) float64 {
	return NewPartition(guess, cands).Entropy(len(cands))
}

// maxEntropy is the best entropy any guess can reach over n candidates.
func maxEntropy(n int) float64 {
	if n > feedback.NumPatterns {
		n = feedback.NumPatterns
	}
	return math.Log2(float64(n))
}
