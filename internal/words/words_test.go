package words

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	w, err := Parse("  crane ")
	require.NoError(t, err)
	assert.Equal(t, Word("CRANE"), w)
	assert.Equal(t, 17, w.Letter(1))
}

func TestParse_Rejects(t *testing.T) {
	_, err := Parse("cran")
	assert.ErrorIs(t, err, ErrInvalidWordLength)
	_, err = Parse("cranes")
	assert.ErrorIs(t, err, ErrInvalidWordLength)
	_, err = Parse("cr4ne")
	assert.ErrorIs(t, err, ErrInvalidWord)
	assert.Panics(t, func() { MustParse("no") })
}

func TestNew_SortsDedupesAndMergesAnswers(t *testing.T) {
	v, err := New(
		[]Word{"GRACE", "CRANE", "CRANE"},
		[]Word{"SLATE", "CRANE"},
	)
	require.NoError(t, err)

	assert.Equal(t, []Word{"CRANE", "GRACE"}, v.Answers())
	assert.Equal(t, []Word{"CRANE", "GRACE", "SLATE"}, v.Guesses())
	assert.True(t, v.IsGuess("GRACE"), "answers are always guesses")
	assert.True(t, v.IsGuess("SLATE"))
	assert.False(t, v.IsAnswer("SLATE"))

	i, ok := v.AnswerIndex("GRACE")
	assert.True(t, ok)
	assert.Equal(t, 1, i)
	_, ok = v.AnswerIndex("SLATE")
	assert.False(t, ok)

	a, g := v.Stats()
	assert.Equal(t, 2, a)
	assert.Equal(t, 3, g)
	assert.True(t, v.IsAnswer(v.RandomAnswer()))
}

func TestNew_EmptyAnswers(t *testing.T) {
	_, err := New(nil, []Word{"SLATE"})
	assert.ErrorIs(t, err, ErrEmptyVocabulary)
}

func TestFingerprint(t *testing.T) {
	a, err := New([]Word{"CRANE", "GRACE"}, []Word{"SLATE"})
	require.NoError(t, err)
	b, err := New([]Word{"GRACE", "CRANE"}, []Word{"SLATE", "SLATE"})
	require.NoError(t, err)
	c, err := New([]Word{"CRANE", "GRACE", "SLATE"}, nil)
	require.NoError(t, err)

	assert.Equal(t, a.Fingerprint(), b.Fingerprint(), "order and duplicates do not matter")
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint(), "moving a word into answers does")
	assert.Len(t, a.Fingerprint(), 32)
}

func TestReadWords_SkipsCommentsAndJunk(t *testing.T) {
	got, err := ReadWords(strings.NewReader("# header\ncrane\n\nab\nGrace\nsl4te\n  slate  \n"))
	require.NoError(t, err)
	assert.Equal(t, []Word{"CRANE", "GRACE", "SLATE"}, got)
}

func TestLoad_Embedded(t *testing.T) {
	v, err := Load(Source{})
	require.NoError(t, err)
	a, g := v.Stats()
	assert.Greater(t, a, 100)
	assert.Greater(t, g, a)
	assert.True(t, v.IsGuess("SLATE"))
	assert.True(t, v.IsAnswer("CRANE"))
}

func TestLoad_Files(t *testing.T) {
	dir := t.TempDir()
	answers := filepath.Join(dir, "answers.txt")
	allowed := filepath.Join(dir, "allowed.txt")
	require.NoError(t, os.WriteFile(answers, []byte("crane\ngrace\n"), 0o644))
	require.NoError(t, os.WriteFile(allowed, []byte("slate\nsalet\n"), 0o644))

	v, err := Load(Source{AnswersFile: answers, AllowedFile: allowed})
	require.NoError(t, err)
	assert.Equal(t, []Word{"CRANE", "GRACE"}, v.Answers())
	assert.Equal(t, []Word{"CRANE", "GRACE", "SALET", "SLATE"}, v.Guesses())

	// Only an allowed file: it serves as both lists.
	v, err = Load(Source{AllowedFile: allowed})
	require.NoError(t, err)
	assert.Equal(t, []Word{"SALET", "SLATE"}, v.Answers())

	_, err = Load(Source{AnswersFile: filepath.Join(dir, "missing.txt")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}
