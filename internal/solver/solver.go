// internal/solver/solver.go
//
// The solver loop.
// Responsibilities:
//   - Hold the immutable inputs shared by every game: vocabulary, strategy
//     choice, starting word, guess budget, cache and metrics.
//   - Simulate a game against a known target (Simulate).
//   - Drive a live game from external feedback (Session, see session.go).
//
// A Solver is safe for concurrent use; every game gets its own Session,
// strategy instance and game.Game.

package solver

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/metrics"
	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
	"github.com/robalobadob/wordle/apps/go-solver/internal/strategy"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// Options configures a Solver. Zero values select the defaults.
type Options struct {
	Strategy        string           // baseline | entropy | bayes | astar; default entropy.
	StartingWord    words.Word       // First guess of every game; empty lets the strategy choose.
	MaxGuesses      int              // Guess budget; default 6.
	StrategyOptions strategy.Options // Tuning passed to strategy.New.
	Cache           store.Store      // Decision cache; nil disables caching.
	Metrics         *metrics.Metrics // nil records nothing.
	Logger          zerolog.Logger   // Zero value discards everything.
}

// Solver creates and runs games over one vocabulary.
type Solver struct {
	vocab *words.Vocabulary
	opts  Options
}

// Result is the outcome of one game, as consumed by reporting.
type Result struct {
	GameID        string
	Strategy      string
	Target        words.Word // Empty for tutoring games.
	Status        game.Status
	Guesses       int
	Contradiction bool // The evidence ruled out every answer.
	Trace         []game.Round
}

// Solved reports whether the game ended with an all-Exact pattern.
func (r *Result) Solved() bool { return r.Status == game.StatusSolved }

// New validates opts against vocab and returns a Solver.
//
// Errors:
//   - strategy.ErrUnknownStrategy for an unrecognised strategy name.
//   - words.ErrUnknownWord when the starting word is not a valid guess.
func New(vocab *words.Vocabulary, opts Options) (*Solver, error) {
	if opts.Strategy == "" {
		opts.Strategy = strategy.NameEntropy
	}
	if opts.MaxGuesses <= 0 {
		opts.MaxGuesses = game.DefaultMaxGuesses
	}
	if _, err := strategy.New(opts.Strategy, vocab, opts.StrategyOptions); err != nil {
		return nil, err
	}
	if opts.StartingWord != "" && !vocab.IsGuess(opts.StartingWord) {
		return nil, fmt.Errorf("starting word: %w: %s", words.ErrUnknownWord, opts.StartingWord)
	}
	return &Solver{vocab: vocab, opts: opts}, nil
}

// Vocabulary returns the vocabulary the solver plays over.
func (s *Solver) Vocabulary() *words.Vocabulary { return s.vocab }

// Strategy returns the configured strategy name.
func (s *Solver) Strategy() string { return s.opts.Strategy }

// MaxGuesses returns the guess budget per game.
func (s *Solver) MaxGuesses() int { return s.opts.MaxGuesses }

// Simulate plays a full game against target, scoring each guess with the
// feedback engine.
//
// A normal loss is a Result with StatusFailed and a nil error. If the
// evidence eliminates every answer (target outside the answer vocabulary),
// the partial Result is returned together with an error wrapping
// strategy.ErrEmptyBeliefState.
func (s *Solver) Simulate(ctx context.Context, target words.Word) (*Result, error) {
	sess, err := s.newSession(target)
	if err != nil {
		return nil, err
	}
	for !sess.Finished() {
		if err := ctx.Err(); err != nil {
			return sess.Result(), err
		}
		guess, err := sess.Recommend(ctx)
		if err != nil {
			return sess.Result(), err
		}
		if _, err := sess.play(guess); err != nil {
			return sess.Result(), err
		}
	}
	res := sess.Result()
	if res.Contradiction {
		return res, fmt.Errorf("round %d: %w", res.Guesses, strategy.ErrEmptyBeliefState)
	}
	return res, nil
}

// IsContradiction reports whether err came from an empty belief state.
func IsContradiction(err error) bool {
	return errors.Is(err, strategy.ErrEmptyBeliefState)
}
