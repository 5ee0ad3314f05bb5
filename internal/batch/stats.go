package batch

import (
	"sort"
	"strconv"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// FailKey is the distribution bucket for games that ran out of guesses.
const FailKey = "fail"

// Summary aggregates a batch of games.
type Summary struct {
	Strategy       string
	Games          int
	Solved         int
	Failed         int
	Contradictions int
	MeanGuesses    float64        // Over solved games only.
	Distribution   map[string]int // "1".."N" guesses to solve, plus FailKey.
	FailedTargets  []words.Word   // Sorted.
	Results        []*solver.Result
}

// Summarize builds a Summary from per-game results; nil entries are skipped.
func Summarize(results []*solver.Result) *Summary {
	s := &Summary{
		Distribution: map[string]int{},
		Results:      results,
	}
	total := 0
	for _, r := range results {
		if r == nil {
			continue
		}
		s.Games++
		if s.Strategy == "" {
			s.Strategy = r.Strategy
		}
		switch {
		case r.Contradiction:
			s.Contradictions++
		case r.Status == game.StatusSolved:
			s.Solved++
			total += r.Guesses
			s.Distribution[strconv.Itoa(r.Guesses)]++
		default:
			s.Failed++
			s.Distribution[FailKey]++
			s.FailedTargets = append(s.FailedTargets, r.Target)
		}
	}
	if s.Solved > 0 {
		s.MeanGuesses = float64(total) / float64(s.Solved)
	}
	sort.Slice(s.FailedTargets, func(i, j int) bool { return s.FailedTargets[i] < s.FailedTargets[j] })
	return s
}

// Buckets returns the distribution keys in display order: guess counts
// ascending, then FailKey.
func (s *Summary) Buckets() []string {
	var nums []int
	for k := range s.Distribution {
		if n, err := strconv.Atoi(k); err == nil {
			nums = append(nums, n)
		}
	}
	sort.Ints(nums)
	out := make([]string, 0, len(nums)+1)
	for _, n := range nums {
		out = append(out, strconv.Itoa(n))
	}
	if _, ok := s.Distribution[FailKey]; ok {
		out = append(out, FailKey)
	}
	return out
}
