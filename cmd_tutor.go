package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/strategy"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

const tutorHelp = `Enter the feedback for each guess:
  PATTERN         feedback for the suggested guess, e.g. "..g.y" or "00201"
  GUESS PATTERN   feedback for a different guess you played
  ?               list the remaining candidates
  q               quit`

func runTutor(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	sess, err := a.solver.NewSession()
	if err != nil {
		return err
	}
	return tutor(cmd, sess, cmd.InOrStdin(), cmd.OutOrStdout())
}

// tutor runs the prompt loop until the game ends, input ends or the user quits.
func tutor(cmd *cobra.Command, sess *solver.Session, in io.Reader, out io.Writer) error {
	color := colorEnabled(out)
	sc := bufio.NewScanner(in)
	fmt.Fprintln(out, dim(tutorHelp, color))

	for !sess.Finished() {
		suggestion, err := sess.Recommend(cmd.Context())
		if err != nil {
			if solver.IsContradiction(err) {
				fmt.Fprintln(out, "No answer fits that feedback; check what you entered.")
			}
			return err
		}
		fmt.Fprintf(out, "\nTry %s  %s\n> ", title(suggestion.String(), color),
			dim(fmt.Sprintf("(%d candidates)", sess.Remaining()), color))

		if !sc.Scan() {
			return sc.Err()
		}
		line := strings.TrimSpace(sc.Text())
		switch line {
		case "":
			continue
		case "q", "quit":
			return nil
		case "?":
			printCandidates(out, sess.Candidates())
			continue
		}

		guess, p, err := parseTutorLine(line, suggestion)
		if err != nil {
			fmt.Fprintf(out, "%v\n", err)
			continue
		}
		r, err := sess.Observe(guess, p)
		if err != nil {
			fmt.Fprintf(out, "%v\n", err)
			continue
		}
		fmt.Fprintf(out, "%s  %s\n", renderRow(r.Guess, r.Pattern, color),
			dim(fmt.Sprintf("%d left", r.Remaining), color))
	}

	res := sess.Result()
	if res.Contradiction {
		fmt.Fprintln(out, "No answer fits that feedback; check what you entered.")
		return fmt.Errorf("round %d: %w", res.Guesses, strategy.ErrEmptyBeliefState)
	}
	if res.Solved() {
		fmt.Fprintf(out, "\nSolved in %d.\n", res.Guesses)
	} else {
		fmt.Fprintf(out, "\nOut of guesses. %d candidates were left.\n", sess.Remaining())
	}
	return nil
}

// parseTutorLine reads "PATTERN" or "GUESS PATTERN".
func parseTutorLine(line string, suggestion words.Word) (words.Word, feedback.Pattern, error) {
	fields := strings.Fields(line)
	switch len(fields) {
	case 1:
		p, err := feedback.ParsePattern(fields[0])
		return suggestion, p, err
	case 2:
		g, err := words.Parse(fields[0])
		if err != nil {
			return "", feedback.Pattern{}, err
		}
		p, err := feedback.ParsePattern(fields[1])
		return g, p, err
	default:
		return "", feedback.Pattern{}, errors.New(`expected "PATTERN" or "GUESS PATTERN"`)
	}
}

func printCandidates(out io.Writer, list []words.Word) {
	const perLine = 10
	for i, w := range list {
		sep := " "
		if (i+1)%perLine == 0 || i == len(list)-1 {
			sep = "\n"
		}
		fmt.Fprint(out, w.String()+sep)
	}
}
