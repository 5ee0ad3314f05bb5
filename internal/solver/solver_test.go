package solver

import (
	"context"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/metrics"
	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
	"github.com/robalobadob/wordle/apps/go-solver/internal/strategy"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

func w(s string) words.Word { return words.MustParse(s) }

func smallVocab(t *testing.T) *words.Vocabulary {
	t.Helper()
	var ans []words.Word
	for _, s := range []string{"CRANE", "CRAZE", "DRONE", "FRAME", "GRACE", "PLANE", "SLATE"} {
		ans = append(ans, w(s))
	}
	v, err := words.New(ans, []words.Word{w("SALET")})
	require.NoError(t, err)
	return v
}

func newSolver(t *testing.T, v *words.Vocabulary, opts Options) *Solver {
	t.Helper()
	if opts.StartingWord == "" {
		opts.StartingWord = w("SLATE")
	}
	opts.Logger = zerolog.Nop()
	s, err := New(v, opts)
	require.NoError(t, err)
	return s
}

func patterns(r *Result) []string {
	out := make([]string, len(r.Trace))
	for i, round := range r.Trace {
		out[i] = round.Pattern.String()
	}
	return out
}

func remaining(r *Result) []int {
	out := make([]int, len(r.Trace))
	for i, round := range r.Trace {
		out[i] = round.Remaining
	}
	return out
}

func TestNew_Validation(t *testing.T) {
	v := smallVocab(t)

	_, err := New(v, Options{Strategy: "greedy"})
	assert.ErrorIs(t, err, strategy.ErrUnknownStrategy)

	_, err = New(v, Options{StartingWord: w("ZZZZZ")})
	assert.ErrorIs(t, err, words.ErrUnknownWord)

	s, err := New(v, Options{})
	require.NoError(t, err)
	assert.Equal(t, strategy.NameEntropy, s.Strategy())
	assert.Equal(t, game.DefaultMaxGuesses, s.MaxGuesses())
}

func TestSimulate_CraneFromSlate(t *testing.T) {
	s := newSolver(t, smallVocab(t), Options{Strategy: strategy.NameEntropy})
	r, err := s.Simulate(context.Background(), w("CRANE"))
	require.NoError(t, err)

	assert.Equal(t, game.StatusSolved, r.Status)
	assert.Equal(t, 2, r.Guesses)
	assert.Equal(t, []string{"..g.g", "ggggg"}, patterns(r))
	assert.Equal(t, []int{4, 1}, remaining(r))
	assert.Equal(t, w("SLATE"), r.Trace[0].Guess)
	assert.Equal(t, w("CRANE"), r.Trace[1].Guess)
}

func TestSimulate_GraceFromSlate(t *testing.T) {
	s := newSolver(t, smallVocab(t), Options{Strategy: strategy.NameEntropy})
	r, err := s.Simulate(context.Background(), w("GRACE"))
	require.NoError(t, err)

	assert.True(t, r.Solved())
	assert.Equal(t, 3, r.Guesses)
	assert.Equal(t, []string{"..g.g", "ygg.g", "ggggg"}, patterns(r))
	assert.Equal(t, []int{4, 1, 1}, remaining(r))
}

func TestSimulate_EveryStrategySolvesSmallVocab(t *testing.T) {
	v := smallVocab(t)
	for _, name := range strategy.Names() {
		s := newSolver(t, v, Options{Strategy: name})
		for _, target := range v.Answers() {
			r, err := s.Simulate(context.Background(), target)
			require.NoError(t, err, "%s/%s", name, target)
			assert.True(t, r.Solved(), "%s/%s", name, target)
			assert.LessOrEqual(t, r.Guesses, 3, "%s/%s", name, target)
			assert.Equal(t, target, r.Trace[len(r.Trace)-1].Guess)
		}
	}
}

func TestSimulate_CandidatesShrinkMonotonically(t *testing.T) {
	v, err := words.Load(words.Source{})
	require.NoError(t, err)
	s := newSolver(t, v, Options{Strategy: strategy.NameEntropy})

	answers := v.Answers()
	for i := 0; i < len(answers); i += 25 {
		target := answers[i]
		r, err := s.Simulate(context.Background(), target)
		require.NoError(t, err, target)
		require.True(t, r.Status.Terminal(), target)

		prev := len(answers)
		for _, round := range r.Trace {
			assert.LessOrEqual(t, round.Remaining, prev, target)
			assert.GreaterOrEqual(t, round.Remaining, 1, target)
			assert.True(t, round.Constraints.IsConsistent(target), target)
			prev = round.Remaining
		}
	}
}

func TestSimulate_BudgetExhaustedIsNotAnError(t *testing.T) {
	s := newSolver(t, smallVocab(t), Options{MaxGuesses: 1})
	r, err := s.Simulate(context.Background(), w("CRANE"))
	require.NoError(t, err)
	assert.Equal(t, game.StatusFailed, r.Status)
	assert.False(t, r.Contradiction)
	assert.Equal(t, 1, r.Guesses)
}

func TestSimulate_TargetOutsideAnswersIsContradiction(t *testing.T) {
	s := newSolver(t, smallVocab(t), Options{})
	r, err := s.Simulate(context.Background(), w("SALET"))
	require.Error(t, err)
	assert.True(t, IsContradiction(err))
	assert.ErrorIs(t, err, strategy.ErrEmptyBeliefState)

	require.NotNil(t, r)
	assert.True(t, r.Contradiction)
	assert.Equal(t, game.StatusInProgress, r.Status)
	assert.Equal(t, []string{"gyyyy"}, patterns(r))
	assert.Equal(t, []int{0}, remaining(r))
}

func TestSimulate_CancelledContext(t *testing.T) {
	s := newSolver(t, smallVocab(t), Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.Simulate(ctx, w("CRANE"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSession_Tutoring(t *testing.T) {
	ctx := context.Background()
	s := newSolver(t, smallVocab(t), Options{Strategy: strategy.NameBayes})
	sess, err := s.NewSession()
	require.NoError(t, err)

	steps := []struct {
		want    string
		pattern string
		left    int
	}{
		{"SLATE", "..g.g", 4},
		{"CRANE", "ygg.g", 1},
		{"GRACE", "ggggg", 1},
	}
	for _, st := range steps {
		g, err := sess.Recommend(ctx)
		require.NoError(t, err)
		require.Equal(t, w(st.want), g)

		p, err := feedback.ParsePattern(st.pattern)
		require.NoError(t, err)
		r, err := sess.Observe(g, p)
		require.NoError(t, err)
		assert.Equal(t, st.left, r.Remaining)
	}
	assert.True(t, sess.Finished())
	assert.Equal(t, []words.Word{w("GRACE")}, sess.Candidates())

	_, err = sess.Recommend(ctx)
	assert.ErrorIs(t, err, game.ErrGameFinished)

	res := sess.Result()
	assert.Empty(t, res.Target)
	assert.Equal(t, game.StatusSolved, res.Status)
}

func TestSession_ContradictoryFeedback(t *testing.T) {
	ctx := context.Background()
	s := newSolver(t, smallVocab(t), Options{})
	sess, err := s.NewSession()
	require.NoError(t, err)

	p, err := feedback.ParsePattern("yyyyy")
	require.NoError(t, err)
	_, err = sess.Observe(w("SLATE"), p)
	require.NoError(t, err)
	assert.Equal(t, 0, sess.Remaining())

	_, err = sess.Recommend(ctx)
	assert.True(t, IsContradiction(err))
	assert.True(t, sess.Result().Contradiction)
	assert.False(t, sess.Finished())
}

type countingStore struct {
	store.Store
	hits atomic.Int32
}

func (c *countingStore) Get(ctx context.Context, key string) (words.Word, error) {
	g, err := c.Store.Get(ctx, key)
	if err == nil {
		c.hits.Add(1)
	}
	return g, err
}

func TestSimulate_UsesDecisionCache(t *testing.T) {
	cache := &countingStore{Store: store.NewMemoryStore()}
	s := newSolver(t, smallVocab(t), Options{Cache: cache, Metrics: metrics.New()})

	r, err := s.Simulate(context.Background(), w("CRANE"))
	require.NoError(t, err)
	require.True(t, r.Solved())
	assert.Equal(t, int32(0), cache.hits.Load())

	// Same post-SLATE candidate set: the second round comes from the cache.
	r, err = s.Simulate(context.Background(), w("GRACE"))
	require.NoError(t, err)
	assert.Equal(t, []string{"..g.g", "ygg.g", "ggggg"}, patterns(r))
	assert.Equal(t, int32(1), cache.hits.Load())
}

func TestRankOpeners(t *testing.T) {
	v := smallVocab(t)
	all, err := RankOpeners(context.Background(), v, 0, 1)
	require.NoError(t, err)
	require.Len(t, all, len(v.Guesses()))

	for i := 1; i < len(all); i++ {
		assert.LessOrEqual(t, all[i-1].ExpectedRemaining, all[i].ExpectedRemaining)
	}
	for _, o := range all {
		p := strategy.NewPartition(o.Word, v.Answers())
		assert.InDelta(t, p.ExpectedSize(len(v.Answers())), o.ExpectedRemaining, 1e-12)
	}

	top, err := RankOpeners(context.Background(), v, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, all[:3], top)
}

func TestSession_LastRoundContradiction(t *testing.T) {
	m := metrics.New()
	s := newSolver(t, smallVocab(t), Options{MaxGuesses: 1, Metrics: m})
	sess, err := s.NewSession()
	require.NoError(t, err)

	p, err := feedback.ParsePattern("yyyyy")
	require.NoError(t, err)
	r, err := sess.Observe(w("SLATE"), p)
	require.NoError(t, err)
	assert.Equal(t, 0, r.Remaining)
	assert.True(t, sess.Finished())

	res := sess.Result()
	assert.True(t, res.Contradiction)
	assert.Equal(t, game.StatusFailed, res.Status)

	const want = `
# HELP solver_games_total Finished games by strategy and outcome
# TYPE solver_games_total counter
solver_games_total{status="contradiction",strategy="entropy"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(m.Registry, strings.NewReader(want), "solver_games_total"))
}

func TestSimulate_LastRoundContradictionIsReported(t *testing.T) {
	s := newSolver(t, smallVocab(t), Options{MaxGuesses: 1})
	r, err := s.Simulate(context.Background(), w("SALET"))
	assert.True(t, IsContradiction(err))
	require.NotNil(t, r)
	assert.True(t, r.Contradiction)
	assert.Equal(t, []int{0}, remaining(r))
}

func TestRecommend_CacheKeyedByTuning(t *testing.T) {
	ctx := context.Background()
	v, err := words.New(
		[]words.Word{w("BATCH"), w("CATCH"), w("HATCH"), w("LATCH"), w("MATCH"), w("PATCH")},
		[]words.Word{w("BLIMP"), w("CLAMP")},
	)
	require.NoError(t, err)
	dsn := filepath.Join(t.TempDir(), "cache.db")

	recommend := func(intersecting bool) words.Word {
		cache, err := store.OpenSQLite(dsn, zerolog.Nop())
		require.NoError(t, err)
		defer cache.Close()

		s, err := New(v, Options{
			Strategy:        strategy.NameBaseline,
			StrategyOptions: strategy.Options{BaselineIntersecting: intersecting},
			Cache:           cache,
			Logger:          zerolog.Nop(),
		})
		require.NoError(t, err)
		sess, err := s.NewSession()
		require.NoError(t, err)
		g, err := sess.Recommend(ctx)
		require.NoError(t, err)
		return g
	}

	assert.Equal(t, w("BLIMP"), recommend(true))

	plain := recommend(false)
	assert.NotEqual(t, w("BLIMP"), plain)
	assert.True(t, v.IsAnswer(plain), "plain baseline guesses a candidate")

	assert.Equal(t, w("BLIMP"), recommend(true), "cached decision for the original tuning")
}
