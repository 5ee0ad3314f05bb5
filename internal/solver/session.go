package solver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
	"github.com/robalobadob/wordle/apps/go-solver/internal/strategy"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// Session is one game in progress. Recommend proposes the next guess and
// Observe folds in the feedback the player actually saw; the two may be
// interleaved freely, and the observed guess need not be the recommended one.
//
// A Session is not safe for concurrent use.
type Session struct {
	solver *Solver
	game   *game.Game
	strat  strategy.Strategy
	log    zerolog.Logger

	contradiction bool
	reported      bool
}

// NewSession starts a tutoring game with no known target.
func (s *Solver) NewSession() (*Session, error) {
	return s.newSession("")
}

func (s *Solver) newSession(target words.Word) (*Session, error) {
	strat, err := strategy.New(s.opts.Strategy, s.vocab, s.opts.StrategyOptions)
	if err != nil {
		return nil, err
	}
	g := game.New(s.vocab, target, s.opts.MaxGuesses)
	return &Session{
		solver: s,
		game:   g,
		strat:  strat,
		log: s.opts.Logger.With().
			Str("game", g.ID).
			Str("strategy", s.opts.Strategy).
			Logger(),
	}, nil
}

// Game exposes the underlying game state. Callers must not modify it.
func (ss *Session) Game() *game.Game { return ss.game }

// Finished reports whether the game is solved or failed.
func (ss *Session) Finished() bool { return ss.game.Finished() }

// Remaining is the current number of candidates.
func (ss *Session) Remaining() int { return ss.game.Candidates.Len() }

// Candidates lists the remaining candidates in sorted order.
func (ss *Session) Candidates() []words.Word { return ss.game.Candidates.Words() }

// Recommend returns the next guess to play.
//
// The first guess is the configured starting word when one is set. After
// that the decision cache is consulted before asking the strategy. If no
// answer is consistent with the evidence, the error wraps
// strategy.ErrEmptyBeliefState.
func (ss *Session) Recommend(ctx context.Context) (words.Word, error) {
	if ss.game.Finished() {
		return "", game.ErrGameFinished
	}
	round := ss.game.Guesses()
	cands := ss.game.Candidates
	if cands.Empty() {
		ss.contradict()
		return "", fmt.Errorf("round %d: %w", round+1, strategy.ErrEmptyBeliefState)
	}
	if round == 0 && ss.solver.opts.StartingWord != "" {
		return ss.solver.opts.StartingWord, nil
	}

	vocab := ss.solver.vocab
	cache := ss.solver.opts.Cache
	m := ss.solver.opts.Metrics
	name := ss.strat.Name()

	var key string
	if cache != nil {
		key = store.Key(name, ss.solver.opts.StrategyOptions.Fingerprint(), vocab.Fingerprint(), cands.Fingerprint())
		g, err := cache.Get(ctx, key)
		switch {
		case err == nil && vocab.IsGuess(g):
			m.CacheHit()
			return g, nil
		case err != nil && !errors.Is(err, store.ErrNotFound):
			ss.log.Warn().Err(err).Msg("decision cache lookup failed")
		}
		m.CacheMiss()
	}

	start := time.Now()
	g, err := ss.strat.SelectGuess(strategy.Context{
		Vocab:      vocab,
		Candidates: cands,
		Round:      round,
	})
	m.ObserveSelect(name, time.Since(start))
	if err != nil {
		if IsContradiction(err) {
			ss.contradict()
		}
		return "", fmt.Errorf("round %d: %w", round+1, err)
	}

	if cache != nil {
		if err := cache.Put(ctx, key, g); err != nil {
			ss.log.Warn().Err(err).Msg("decision cache write failed")
		}
	}
	return g, nil
}

// Observe records the feedback p received for guess.
func (ss *Session) Observe(guess words.Word, p feedback.Pattern) (game.Round, error) {
	return ss.record(ss.game.Apply(guess, p))
}

// play scores guess against the known target.
func (ss *Session) play(guess words.Word) (game.Round, error) {
	return ss.record(ss.game.ApplyGuess(guess))
}

func (ss *Session) record(r game.Round, err error) (game.Round, error) {
	if err != nil {
		return r, err
	}
	if o, ok := ss.strat.(strategy.Observer); ok {
		o.Observe(r.Guess, r.Pattern, ss.game.Candidates)
	}
	ss.log.Debug().
		Int("round", r.Number).
		Str("guess", r.Guess.String()).
		Str("pattern", r.Pattern.String()).
		Int("remaining", r.Remaining).
		Msg("round")

	// Evidence that rules out every answer is reported as a contradiction,
	// even when it arrives on the last allowed round.
	if r.Remaining == 0 && !r.Pattern.Solved() {
		ss.contradict()
	}
	if ss.game.Finished() {
		ss.finish()
	}
	return r, nil
}

func (ss *Session) finish() {
	if ss.reported {
		return
	}
	ss.reported = true
	status := ss.game.Status
	ss.solver.opts.Metrics.GameFinished(ss.strat.Name(), string(status), ss.game.Guesses(), status == game.StatusSolved)
	ss.log.Info().
		Str("status", string(status)).
		Str("target", ss.game.Target.String()).
		Int("guesses", ss.game.Guesses()).
		Msg("game finished")
}

func (ss *Session) contradict() {
	if ss.reported {
		return
	}
	ss.reported = true
	ss.contradiction = true
	ss.solver.opts.Metrics.GameFinished(ss.strat.Name(), "contradiction", ss.game.Guesses(), false)
	ss.log.Warn().
		Int("round", ss.game.Guesses()).
		Str("constraints", ss.game.Constraints.String()).
		Msg("no candidate is consistent with the feedback")
}

// Result snapshots the game as a Result.
func (ss *Session) Result() *Result {
	return &Result{
		GameID:        ss.game.ID,
		Strategy:      ss.strat.Name(),
		Target:        ss.game.Target,
		Status:        ss.game.Status,
		Guesses:       ss.game.Guesses(),
		Contradiction: ss.contradiction,
		Trace:         append([]game.Round(nil), ss.game.Trace...),
	}
}
