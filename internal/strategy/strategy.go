// internal/strategy/strategy.go
//
// Guess-selection strategies.
// Defines:
//   - Strategy: selects the next guess from a read-only Context.
//   - Observer: optional hook for strategies that keep their own per-game state.
//   - New: factory keyed by name (baseline | entropy | bayes | astar).
//
// Every strategy is deterministic for an identical Context. Ties are broken
// by a fixed order that always ends in lexicographic order of the guess.

package strategy

import (
	"errors"
	"fmt"

	"github.com/robalobadob/wordle/apps/go-solver/internal/belief"
	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// Strategy names accepted by New.
const (
	NameBaseline = "baseline"
	NameEntropy  = "entropy"
	NameBayes    = "bayes"
	NameAStar    = "astar"
)

var (
	// ErrEmptyBeliefState means the evidence ruled out every answer.
	ErrEmptyBeliefState = errors.New("strategy: no candidate is consistent with the evidence")
	ErrUnknownStrategy  = errors.New("strategy: unknown strategy")
)

// Context is the read-only snapshot a strategy selects from.
type Context struct {
	Vocab      *words.Vocabulary
	Candidates *belief.CandidateSet
	Round      int // guesses already made
}

// Strategy selects the next guess.
type Strategy interface {
	Name() string
	SelectGuess(ctx Context) (words.Word, error)
}

// Observer is implemented by strategies that update internal state after
// each round. candidates is the belief state after folding the pattern.
type Observer interface {
	Observe(guess words.Word, p feedback.Pattern, candidates *belief.CandidateSet)
}

// Options tunes the strategies. Zero numeric fields fall back to DefaultOptions.
type Options struct {
	// Guess pool is restricted to the candidates once |C| is at most this.
	EntropySmallPool int
	// Branching factor b in the A* heuristic ceil(log n / log b).
	AStarBranching float64
	// Baseline switches to letter-discriminating guesses for 2 < |C| < 50.
	BaselineIntersecting bool
}

// DefaultOptions returns the tuning used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		EntropySmallPool:     3,
		AStarBranching:       feedback.NumPatterns,
		BaselineIntersecting: true,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.EntropySmallPool <= 0 {
		o.EntropySmallPool = d.EntropySmallPool
	}
	if o.AStarBranching <= 1 {
		o.AStarBranching = d.AStarBranching
	}
	return o
}

// Fingerprint encodes the effective tuning, defaults applied. Decisions
// cached under one fingerprint are only valid for the same tuning.
func (o Options) Fingerprint() string {
	o = o.withDefaults()
	return fmt.Sprintf("%d/%g/%t", o.EntropySmallPool, o.AStarBranching, o.BaselineIntersecting)
}

// Names lists the accepted strategy names.
func Names() []string {
	return []string{NameBaseline, NameEntropy, NameBayes, NameAStar}
}

// New builds a fresh strategy instance. Strategies that implement Observer
// carry per-game state, so callers create one instance per game.
func New(name string, vocab *words.Vocabulary, opts Options) (Strategy, error) {
	opts = opts.withDefaults()
	switch name {
	case NameBaseline:
		return &Baseline{intersecting: opts.BaselineIntersecting}, nil
	case NameEntropy:
		return &Entropy{smallPool: opts.EntropySmallPool}, nil
	case NameBayes:
		return NewBayesian(vocab), nil
	case NameAStar:
		return &AStar{branching: opts.AStarBranching, smallPool: opts.EntropySmallPool}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// single handles the trivial belief states shared by every strategy:
// none left is an error, one left is the answer.
func single(ctx Context) (words.Word, bool, error) {
	if ctx.Candidates == nil || ctx.Candidates.Empty() {
		return "", true, ErrEmptyBeliefState
	}
	if ctx.Candidates.Len() == 1 {
		return ctx.Candidates.Words()[0], true, nil
	}
	return "", false, nil
}

// searchPool is the guess pool for partition-scoring strategies: the full
// guess vocabulary, or just the candidates once few remain.
func searchPool(ctx Context, cands []words.Word, smallPool int) []words.Word {
	if len(cands) <= smallPool {
		return cands
	}
	return ctx.Vocab.Guesses()
}
