// internal/game/engine.go
//
// Core game engine for a single solver game.
// Responsibilities:
//   - Create new games with a guess budget and an optional known target.
//   - Validate and apply rounds (guess must be in the guess vocabulary).
//   - Fold feedback into the constraint set and recompute the candidates.
//   - Track state transitions: in_progress → solved/failed.
//
// Notes:
//   - Feedback comes from feedback.Score when the target is known
//     (ApplyGuess), or from outside when tutoring a live game (Apply).
//   - An empty candidate set is not a state here; the solver reports it
//     when it next asks for a guess.
package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/robalobadob/wordle/apps/go-solver/internal/belief"
	"github.com/robalobadob/wordle/apps/go-solver/internal/constraint"
	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// DefaultMaxGuesses is the standard Wordle budget.
const DefaultMaxGuesses = 6

var (
	ErrGameFinished = errors.New("game: game finished")
	ErrNoTarget     = errors.New("game: no known target")
)

// New constructs a new game over vocab.
// target may be empty for a tutoring game; maxGuesses <= 0 means the default.
func New(vocab *words.Vocabulary, target words.Word, maxGuesses int) *Game {
	if maxGuesses <= 0 {
		maxGuesses = DefaultMaxGuesses
	}
	return &Game{
		ID:          uuid.NewString(),
		Target:      target,
		MaxGuesses:  maxGuesses,
		Status:      StatusInProgress,
		Constraints: constraint.Empty(),
		Candidates:  belief.All(vocab),
		Trace:       []Round{},
		vocab:       vocab,
	}
}

// Guesses is the number of rounds applied so far.
func (g *Game) Guesses() int { return len(g.Trace) }

// Finished reports whether the game reached a terminal state.
func (g *Game) Finished() bool { return g.Status.Terminal() }

// Vocabulary returns the vocabulary the game was created with.
func (g *Game) Vocabulary() *words.Vocabulary { return g.vocab }

// ApplyGuess scores guess against the known target and applies the round.
func (g *Game) ApplyGuess(guess words.Word) (Round, error) {
	if g.Target == "" {
		return Round{}, ErrNoTarget
	}
	return g.Apply(guess, feedback.Score(guess, g.Target))
}

// Apply records one round with externally supplied feedback.
//
// Validation rules:
//   - Game must not be finished.
//   - Guess must be present in the guess vocabulary.
//
// State transitions:
//   - If the pattern is all Exact → StatusSolved.
//   - Else if the number of guesses reaches MaxGuesses → StatusFailed.
func (g *Game) Apply(guess words.Word, p feedback.Pattern) (Round, error) {
	if g.Finished() {
		return Round{}, ErrGameFinished
	}
	if !g.vocab.IsGuess(guess) {
		return Round{}, fmt.Errorf("%w: %s", words.ErrUnknownWord, guess)
	}

	g.Constraints = g.Constraints.Fold(guess, p)
	g.Candidates = belief.Refresh(g.vocab, g.Constraints)

	r := Round{
		Number:      len(g.Trace) + 1,
		Guess:       guess,
		Pattern:     p,
		Remaining:   g.Candidates.Len(),
		Constraints: g.Constraints,
	}
	g.Trace = append(g.Trace, r)

	if p.Solved() {
		g.Status = StatusSolved
	} else if len(g.Trace) >= g.MaxGuesses {
		g.Status = StatusFailed
	}
	return r, nil
}

// Last returns the most recent round, if any.
func (g *Game) Last() (Round, bool) {
	if len(g.Trace) == 0 {
		return Round{}, false
	}
	return g.Trace[len(g.Trace)-1], true
}
