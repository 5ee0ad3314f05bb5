package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/daily"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

func runSimulate(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	target, err := simulateTarget(cmd, a.vocab)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	color := colorEnabled(out)
	res, simErr := a.solver.Simulate(cmd.Context(), target)
	if res != nil {
		printResult(cmd, res, color)
	}
	if simErr != nil {
		if solver.IsContradiction(simErr) {
			return fmt.Errorf("target %s is not consistent with the answer list: %w", target, simErr)
		}
		return simErr
	}
	return nil
}

// simulateTarget resolves --target, --daily and --date.
func simulateTarget(cmd *cobra.Command, vocab *words.Vocabulary) (words.Word, error) {
	target, _ := cmd.Flags().GetString("target")
	useDaily, _ := cmd.Flags().GetBool("daily")
	date, _ := cmd.Flags().GetString("date")

	switch {
	case target != "" && (useDaily || date != ""):
		return "", fmt.Errorf("--target cannot be combined with --daily or --date")
	case target != "":
		return words.Parse(target)
	case date != "":
		d, err := time.Parse("2006-01-02", date)
		if err != nil {
			return "", fmt.Errorf("--date: %w", err)
		}
		return daily.Target(vocab, d, cfg.DailySalt), nil
	case useDaily:
		return daily.Target(vocab, time.Now(), cfg.DailySalt), nil
	default:
		return vocab.RandomAnswer(), nil
	}
}

func printResult(cmd *cobra.Command, res *solver.Result, color bool) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, title(fmt.Sprintf("%s vs %s", res.Strategy, res.Target), color))
	for _, r := range res.Trace {
		fmt.Fprintf(out, "%d  %s  %s\n", r.Number, renderRow(r.Guess, r.Pattern, color),
			dim(fmt.Sprintf("%d left", r.Remaining), color))
	}
	switch {
	case res.Contradiction:
		fmt.Fprintln(out, "no answer fits the feedback")
	case res.Solved():
		fmt.Fprintf(out, "solved in %d\n", res.Guesses)
	default:
		fmt.Fprintf(out, "failed after %d\n", res.Guesses)
	}
}
