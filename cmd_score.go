package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

func runScore(cmd *cobra.Command, args []string) error {
	guess, err := words.Parse(args[0])
	if err != nil {
		return err
	}
	target, err := words.Parse(args[1])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	p := feedback.Score(guess, target)
	fmt.Fprintf(out, "%s  %s\n", renderRow(guess, p, colorEnabled(out)), dim(fmt.Sprintf("code %d", p.Code()), colorEnabled(out)))
	return nil
}

func runOpeners(cmd *cobra.Command, _ []string) error {
	top, _ := cmd.Flags().GetInt("top")
	v, err := loadVocab()
	if err != nil {
		return err
	}
	ranked, err := solver.RankOpeners(cmd.Context(), v, top, cfg.Workers)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	color := colorEnabled(out)
	fmt.Fprintln(out, title(fmt.Sprintf("%-5s  %9s  %7s", "word", "expected", "bits"), color))
	for _, o := range ranked {
		fmt.Fprintf(out, "%-5s  %9.2f  %7.3f\n", o.Word, o.ExpectedRemaining, o.Entropy)
	}
	return nil
}
