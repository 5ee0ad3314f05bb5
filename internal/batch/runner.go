// internal/batch/runner.go
//
// Parallel evaluation of a solver over many targets.
// Responsibilities:
//   - Fan independent games out over a bounded errgroup.
//   - Show progress on an optional writer.
//   - Collect per-game results in input order and summarize them.
//
// Games share only the Solver (read-only) and its cache and metrics, which
// are safe for concurrent use.

package batch

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// Runner plays one game per target with a shared Solver.
type Runner struct {
	Solver   *solver.Solver
	Workers  int            // Concurrent games; <= 0 means GOMAXPROCS.
	Progress io.Writer      // Progress bar destination; nil disables it.
	Logger   zerolog.Logger // Batch-level events.
}

// Run simulates every target and returns the aggregate Summary.
//
// A contradiction in one game is recorded in the Summary and does not stop
// the batch. Any other game error, or cancellation of ctx, aborts the run.
func (r *Runner) Run(ctx context.Context, targets []words.Word) (*Summary, error) {
	workers := r.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var bar *progressbar.ProgressBar
	if r.Progress != nil {
		bar = progressbar.NewOptions(len(targets),
			progressbar.OptionSetWriter(r.Progress),
			progressbar.OptionSetDescription(r.Solver.Strategy()),
			progressbar.OptionShowCount(),
			progressbar.OptionThrottle(100*time.Millisecond),
			progressbar.OptionClearOnFinish(),
		)
	}

	r.Logger.Info().
		Str("strategy", r.Solver.Strategy()).
		Int("games", len(targets)).
		Int("workers", workers).
		Msg("batch started")

	results := make([]*solver.Result, len(targets))
	var done atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, target := range targets {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := r.Solver.Simulate(ctx, target)
			if err != nil && !solver.IsContradiction(err) {
				return fmt.Errorf("target %s: %w", target, err)
			}
			results[i] = res
			done.Add(1)
			if bar != nil {
				_ = bar.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		r.Logger.Error().Err(err).Int64("completed", done.Load()).Msg("batch aborted")
		return nil, err
	}
	if bar != nil {
		_ = bar.Finish()
	}

	sum := Summarize(results)
	r.Logger.Info().
		Int("solved", sum.Solved).
		Int("failed", sum.Failed).
		Int("contradictions", sum.Contradictions).
		Float64("mean_guesses", sum.MeanGuesses).
		Msg("batch finished")
	return sum, nil
}
