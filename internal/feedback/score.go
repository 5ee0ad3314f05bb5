package feedback

import "github.com/robalobadob/wordle/apps/go-solver/internal/words"

// Score implements the standard Wordle two-pass scoring algorithm.
//
// Pass 1:
//   - Mark exact matches as Exact.
//   - Count remaining (non-exact) target letters by letter index.
//
// Pass 2:
//   - For each non-exact guess letter: if there is remaining count for that
//     letter, mark Present and decrement the count; otherwise Absent.
//
// This ensures correct behavior with repeated letters in both target and guess.
// Score has no side effects and is safe for concurrent use.
func Score(guess, target words.Word) Pattern {
	var res Pattern
	var counts [26]int

	// First pass: mark exact and collect counts for remaining target letters.
	for i := 0; i < words.Length; i++ {
		if guess[i] == target[i] {
			res[i] = Exact
		} else {
			counts[target.Letter(i)]++
		}
	}

	// Second pass: resolve present/absent for non-exact tiles.
	for i := 0; i < words.Length; i++ {
		if res[i] == Exact {
			continue
		}
		j := guess.Letter(i)
		if counts[j] > 0 {
			res[i] = Present
			counts[j]--
		}
	}
	return res
}

// ScoreCode is shorthand for Score(guess, target).Code().
func ScoreCode(guess, target words.Word) int {
	return Score(guess, target).Code()
}
