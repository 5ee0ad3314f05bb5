package constraint

import "github.com/robalobadob/wordle/apps/go-solver/internal/words"

// Filter returns the words of vocab consistent with s, in vocab order.
// vocab is not modified.
func Filter(vocab []words.Word, s Set) []words.Word {
	out := make([]words.Word, 0, len(vocab))
	Matches(vocab, s, func(i int) { out = append(out, vocab[i]) })
	return out
}

// Matches calls fn with the index of every word of vocab consistent with s,
// in ascending order. Filter and the bitset candidate sets are both built on it.
func Matches(vocab []words.Word, s Set, fn func(i int)) {
	for i, w := range vocab {
		if s.IsConsistent(w) {
			fn(i)
		}
	}
}
