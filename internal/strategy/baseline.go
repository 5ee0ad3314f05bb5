package strategy

import (
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// Intersecting mode applies while the candidate count is strictly between these.
const (
	intersectMin = 2
	intersectMax = 50
)

// Baseline scores words by positional letter frequency over the candidates.
//
// Normally it picks the candidate with the highest frequency score. With a
// handful of candidates left it instead searches the whole guess vocabulary
// for the word covering the most letters that split the candidates (letters
// found in some candidates but not all), which often narrows the set faster
// than guessing one of them.
type Baseline struct {
	intersecting bool
}

func (b *Baseline) Name() string { return NameBaseline }

type positional [words.Length][26]int

func frequencies(cands []words.Word) *positional {
	var f positional
	for _, w := range cands {
		for i := 0; i < words.Length; i++ {
			f[i][w.Letter(i)]++
		}
	}
	return &f
}

// score sums positional frequency over distinct letters; a repeated letter
// counts once, at its best position.
func (f *positional) score(w words.Word) int {
	var best [26]int
	var seen [26]bool
	for i := 0; i < words.Length; i++ {
		l := w.Letter(i)
		seen[l] = true
		if v := f[i][l]; v > best[l] {
			best[l] = v
		}
	}
	s := 0
	for l, ok := range seen {
		if ok {
			s += best[l]
		}
	}
	return s
}

func (b *Baseline) SelectGuess(ctx Context) (words.Word, error) {
	if w, done, err := single(ctx); done {
		return w, err
	}
	cands := ctx.Candidates.Words()
	freq := frequencies(cands)

	if b.intersecting && len(cands) > intersectMin && len(cands) < intersectMax {
		return b.intersect(ctx, cands, freq), nil
	}

	best, bestScore := cands[0], freq.score(cands[0])
	for _, w := range cands[1:] {
		if s := freq.score(w); s > bestScore {
			best, bestScore = w, s
		}
	}
	return best, nil
}

func (b *Baseline) intersect(ctx Context, cands []words.Word, freq *positional) words.Word {
	// contains[l]: number of candidates holding letter l at least once.
	var contains [26]int
	for _, w := range cands {
		var seen [26]bool
		for i := 0; i < words.Length; i++ {
			seen[w.Letter(i)] = true
		}
		for l, ok := range seen {
			if ok {
				contains[l]++
			}
		}
	}
	var weight [26]int
	for l, c := range contains {
		if c > 0 && c < len(cands) {
			weight[l] = c
		}
	}

	var (
		best      words.Word
		bestScore = -1
		bestPos   int
		bestCand  bool
	)
	for _, g := range ctx.Vocab.Guesses() {
		var seen [26]bool
		s := 0
		for i := 0; i < words.Length; i++ {
			l := g.Letter(i)
			if !seen[l] {
				seen[l] = true
				s += weight[l]
			}
		}
		if s < bestScore {
			continue
		}
		pos := freq.score(g)
		isCand := ctx.Candidates.Contains(g)
		if s > bestScore || pos > bestPos || (pos == bestPos && isCand && !bestCand) {
			best, bestScore, bestPos, bestCand = g, s, pos, isCand
		}
	}
	return best
}
