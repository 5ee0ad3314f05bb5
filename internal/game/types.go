// internal/game/types.go
//
// Core type definitions for one solver game.
// Defines:
//   - Status: coarse game state (in_progress/solved/failed).
//   - Round: one entry of the per-round trace.
//   - Game: state for a single in-progress or finished game.

package game

import (
	"github.com/robalobadob/wordle/apps/go-solver/internal/belief"
	"github.com/robalobadob/wordle/apps/go-solver/internal/constraint"
	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// Status represents where a game is in its lifecycle.
// Possible values:
//   - "in_progress": more guesses may be applied.
//   - "solved":      the last pattern was all Exact.
//   - "failed":      the guess budget ran out without a solve.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusSolved     Status = "solved"
	StatusFailed     Status = "failed"
)

// Terminal reports whether no further rounds can be applied.
func (s Status) Terminal() bool { return s != StatusInProgress }

// Round is one guess and what it revealed.
type Round struct {
	Number      int              // 1-based.
	Guess       words.Word       // The guess submitted.
	Pattern     feedback.Pattern // Feedback received for it.
	Remaining   int              // Candidates left after folding the pattern.
	Constraints constraint.Set   // Evidence snapshot after this round.
}

// Game holds the state of a single solver game.
type Game struct {
	ID          string               // Unique game identifier (uuid).
	Target      words.Word           // Known target when simulating; empty when tutoring.
	MaxGuesses  int                  // Guess budget (typically 6).
	Status      Status               // Current lifecycle state.
	Constraints constraint.Set       // Evidence so far.
	Candidates  *belief.CandidateSet // Answers still consistent with Constraints.
	Trace       []Round              // One entry per applied guess.

	vocab *words.Vocabulary
}
