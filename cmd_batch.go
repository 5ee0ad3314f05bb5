package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/batch"
)

func runBatch(cmd *cobra.Command, _ []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	workers, _ := cmd.Flags().GetInt("workers")
	metricsFile, _ := cmd.Flags().GetString("metrics-file")
	progress, _ := cmd.Flags().GetBool("progress")
	listFailures, _ := cmd.Flags().GetBool("failures")

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	targets := a.vocab.Answers()
	if limit > 0 && limit < len(targets) {
		targets = targets[:limit]
	}
	if workers <= 0 {
		workers = cfg.Workers
	}

	r := &batch.Runner{
		Solver:  a.solver,
		Workers: workers,
		Logger:  log.Logger,
	}
	if progress && colorEnabled(os.Stderr) {
		r.Progress = os.Stderr
	}

	sum, err := r.Run(cmd.Context(), targets)
	if err != nil {
		return err
	}
	printSummary(cmd, sum, listFailures)

	if metricsFile != "" {
		if err := a.metrics.WriteTextfile(metricsFile); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		log.Info().Str("file", metricsFile).Msg("metrics written")
	}
	return nil
}

func printSummary(cmd *cobra.Command, s *batch.Summary, listFailures bool) {
	out := cmd.OutOrStdout()
	color := colorEnabled(out)

	fmt.Fprintln(out, title(fmt.Sprintf("strategy %s", s.Strategy), color))
	fmt.Fprintf(out, "games           %d\n", s.Games)
	fmt.Fprintf(out, "solved          %d\n", s.Solved)
	fmt.Fprintf(out, "failed          %d\n", s.Failed)
	if s.Contradictions > 0 {
		fmt.Fprintf(out, "contradictions  %d\n", s.Contradictions)
	}
	fmt.Fprintf(out, "mean guesses    %.3f\n", s.MeanGuesses)
	fmt.Fprintln(out)

	for _, k := range s.Buckets() {
		n := s.Distribution[k]
		fmt.Fprintf(out, "%4s  %5d  %s\n", k, n, renderBar(n, s.Games, 40))
	}

	if listFailures && len(s.FailedTargets) > 0 {
		list := make([]string, len(s.FailedTargets))
		for i, w := range s.FailedTargets {
			list[i] = w.String()
		}
		fmt.Fprintln(out)
		fmt.Fprintf(out, "failed: %s\n", strings.Join(list, " "))
	}
}
