package constraint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

func w(s string) words.Word { return words.MustParse(s) }

func fold(t *testing.T, s Set, guess, pattern string) Set {
	t.Helper()
	p, err := feedback.ParsePattern(pattern)
	require.NoError(t, err)
	return s.Fold(w(guess), p)
}

func TestEmpty_AcceptsEverything(t *testing.T) {
	s := Empty()
	for _, x := range []string{"AAAAA", "CRANE", "ZZZZZ", "LOYAL"} {
		assert.True(t, s.IsConsistent(w(x)), x)
	}
	assert.Equal(t, 0, s.Folds())
}

func TestFold_DoesNotMutateReceiver(t *testing.T) {
	before := Empty()
	after := fold(t, before, "SLATE", "..g.g")

	assert.True(t, before.IsConsistent(w("SLATE")))
	assert.False(t, after.IsConsistent(w("SLATE")))
	assert.Equal(t, 0, before.Folds())
	assert.Equal(t, 1, after.Folds())
}

func TestFold_ExactAndAbsentSameLetterCapsCount(t *testing.T) {
	// SPEED vs SHRED: first E absent, second E exact.
	s := fold(t, Empty(), "SPEED", "g..gg")

	lo, hi := s.Bounds('E')
	assert.Equal(t, 1, lo)
	assert.Equal(t, 1, hi)
	assert.False(t, s.Excluded('E'), "E is in the target")
	assert.True(t, s.Excluded('P'))

	assert.True(t, s.IsConsistent(w("SHRED")))
	assert.True(t, s.IsConsistent(w("SCOED")), "any single-E word with S...ED fits")
	assert.False(t, s.IsConsistent(w("SEWED")), "a second E is ruled out")
	assert.False(t, s.IsConsistent(w("SPRED")), "P is absent")
}

func TestFold_PresentAndAbsentSameLetter(t *testing.T) {
	// EERIE vs THREE: E present at 0, absent at 1, exact at 4.
	s := fold(t, Empty(), "EERIE", "y.g.g")

	lo, hi := s.Bounds('E')
	assert.Equal(t, 2, lo)
	assert.Equal(t, 2, hi)
	assert.True(t, s.IsConsistent(w("THREE")))
	assert.False(t, s.IsConsistent(w("ERRED")), "E cannot lead and must end the word")
	assert.False(t, s.IsConsistent(w("THRUE")), "needs two E")
}

func TestFold_RepeatedPresentRaisesMinimum(t *testing.T) {
	s := fold(t, Empty(), "ALLOY", "yyyyy")
	lo, hi := s.Bounds('L')
	assert.Equal(t, 2, lo)
	assert.Equal(t, words.Length, hi)
	assert.True(t, s.IsConsistent(w("LOYAL")))
	assert.False(t, s.IsConsistent(w("ROYAL")), "only one L")
}

func TestFold_MatchesScoreForTruthfulFeedback(t *testing.T) {
	vocab, err := words.Load(words.Source{})
	require.NoError(t, err)
	answers := vocab.Answers()

	for gi := 0; gi < len(answers); gi += 37 {
		guess := answers[gi]
		for ti := 0; ti < len(answers); ti += 11 {
			target := answers[ti]
			p := feedback.Score(guess, target)
			s := Empty().Fold(guess, p)

			got := Filter(answers, s)
			var want []words.Word
			for _, x := range answers {
				if feedback.Score(guess, x) == p {
					want = append(want, x)
				}
			}
			require.Equal(t, want, got, "guess %s target %s pattern %s", guess, target, p)
			require.Contains(t, got, target)
		}
	}
}

func TestFilter_MonotoneAcrossFolds(t *testing.T) {
	vocab, err := words.Load(words.Source{})
	require.NoError(t, err)
	answers := vocab.Answers()
	target := w("CRANE")

	s := Empty()
	prev := len(answers)
	for _, g := range []string{"SLATE", "BRICK", "CRAMP", "CRANE"} {
		s = s.Fold(w(g), feedback.Score(w(g), target))
		got := Filter(answers, s)
		assert.LessOrEqual(t, len(got), prev)
		assert.Contains(t, got, target)
		prev = len(got)
	}
	assert.Equal(t, 1, prev)
}

func TestSet_String(t *testing.T) {
	s := fold(t, Empty(), "SLATE", "..g.g")
	assert.Equal(t, "pos=..A.E min=[A1 E1] max=[L0 S0 T0]", s.String())
}

func TestMatches_YieldsIndicesInOrder(t *testing.T) {
	list := []words.Word{w("CRANE"), w("SLATE"), w("GRACE"), w("PLANE")}
	s := fold(t, Empty(), "SLATE", "..g.g")

	var got []int
	Matches(list, s, func(i int) { got = append(got, i) })
	assert.Equal(t, []int{0, 2}, got)
	assert.Equal(t, []words.Word{w("CRANE"), w("GRACE")}, Filter(list, s))
}
