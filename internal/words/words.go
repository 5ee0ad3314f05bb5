// internal/words/words.go
//
// Word and vocabulary management for the solver.
//
// Responsibilities:
//   - Parse and validate words (exactly 5 letters, A–Z, stored uppercase).
//   - Hold the guess and answer vocabularies as one immutable value.
//   - Supply lookups (IsGuess, IsAnswer, AnswerIndex), Stats and RandomAnswer.
//
// Word Lists:
//   - "answers": words that may be the hidden target.
//   - "guesses": words accepted as guesses (always includes answers).
//
// A Vocabulary is built once at start-up (see Load) and then shared
// read-only by every game, including games running concurrently.

package words

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strings"
)

// Length is the fixed number of letters in every word.
const Length = 5

var (
	ErrInvalidWordLength = errors.New("words: word must be exactly 5 letters")
	ErrInvalidWord       = errors.New("words: word must contain only letters A-Z")
	ErrUnknownWord       = errors.New("words: not in guess vocabulary")
	ErrEmptyVocabulary   = errors.New("words: answers list is empty")
)

// Word is a validated, uppercase, 5-letter word.
type Word string

// Parse trims and uppercases s and checks it is a valid Word.
func Parse(s string) (Word, error) {
	w := strings.ToUpper(strings.TrimSpace(s))
	if len(w) != Length {
		return "", fmt.Errorf("%w: %q", ErrInvalidWordLength, s)
	}
	if !isAlpha(w) {
		return "", fmt.Errorf("%w: %q", ErrInvalidWord, s)
	}
	return Word(w), nil
}

// MustParse is Parse for literals; it panics on invalid input.
func MustParse(s string) Word {
	w, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return w
}

func (w Word) String() string { return string(w) }

// Letter returns the alphabet index (0..25) of the letter at position i.
func (w Word) Letter(i int) int { return int(w[i] - 'A') }

// isAlpha reports whether s is all uppercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// Vocabulary is the immutable pair of word lists a solver works against.
type Vocabulary struct {
	guesses     []Word           // sorted; answers ∪ allowed
	answers     []Word           // sorted
	answerIndex map[Word]int     // answer -> position in answers
	guessSet    map[Word]struct{} // answers ∪ allowed
	fingerprint string
}

// New builds a Vocabulary from already-parsed lists.
// Both lists are de-duplicated and sorted; answers are always added to the
// guess list. Returns ErrEmptyVocabulary if there are no answers.
func New(answers, allowed []Word) (*Vocabulary, error) {
	ans := dedupeSorted(answers)
	if len(ans) == 0 {
		return nil, ErrEmptyVocabulary
	}
	all := dedupeSorted(append(append([]Word{}, ans...), allowed...))

	v := &Vocabulary{
		guesses:     all,
		answers:     ans,
		answerIndex: make(map[Word]int, len(ans)),
		guessSet:    make(map[Word]struct{}, len(all)),
	}
	for i, w := range ans {
		v.answerIndex[w] = i
	}
	for _, w := range all {
		v.guessSet[w] = struct{}{}
	}
	v.fingerprint = fingerprint(ans, all)
	return v, nil
}

// dedupeSorted returns a sorted copy of list without duplicates.
func dedupeSorted(list []Word) []Word {
	out := append([]Word(nil), list...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	n := 0
	for i, w := range out {
		if i > 0 && w == out[n-1] {
			continue
		}
		out[n] = w
		n++
	}
	return out[:n]
}

// Guesses returns the sorted guess vocabulary. The slice is shared; do not modify.
func (v *Vocabulary) Guesses() []Word { return v.guesses }

// Answers returns the sorted answer vocabulary. The slice is shared; do not modify.
func (v *Vocabulary) Answers() []Word { return v.answers }

// AnswerIndex returns the position of w in Answers().
func (v *Vocabulary) AnswerIndex(w Word) (int, bool) {
	i, ok := v.answerIndex[w]
	return i, ok
}

// IsGuess reports whether w is an accepted guess (answers ∪ allowed).
func (v *Vocabulary) IsGuess(w Word) bool {
	_, ok := v.guessSet[w]
	return ok
}

// IsAnswer reports whether w may be a target.
func (v *Vocabulary) IsAnswer(w Word) bool {
	_, ok := v.answerIndex[w]
	return ok
}

// Stats returns counts of loaded words: (answers, guesses).
func (v *Vocabulary) Stats() (answersCount int, guessesCount int) {
	return len(v.answers), len(v.guesses)
}

// Fingerprint identifies the exact word lists; equal lists give equal fingerprints.
func (v *Vocabulary) Fingerprint() string { return v.fingerprint }

// RandomAnswer returns a cryptographically random answer.
func (v *Vocabulary) RandomAnswer() Word {
	nBig, _ := rand.Int(rand.Reader, big.NewInt(int64(len(v.answers))))
	return v.answers[nBig.Int64()]
}
