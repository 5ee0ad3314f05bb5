// internal/constraint/set.go
//
// Accumulated evidence from every (guess, pattern) pair of one game.
//
// Per letter the Set records:
//   - fixed:  positions known to hold the letter (Exact),
//   - notAt:  positions known NOT to hold the letter (Present or Absent there),
//   - minimum and maximum occurrence counts.
//
// A letter is globally absent when its maximum is 0. An Absent mark for a
// letter that is also Exact/Present elsewhere in the same guess caps the count
// at the number of matched occurrences; it does not remove the letter.
//
// Set is a value type: Fold returns a new Set and leaves the receiver
// untouched, so earlier snapshots stay valid.

package constraint

import (
	"fmt"
	"strings"

	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

const unknownMax = words.Length

type letterInfo struct {
	notAt uint8 // bit i: letter is not at position i
	min   uint8
	max   uint8
}

// Set is the ConstraintSet. The zero value is not usable; start from Empty().
type Set struct {
	fixed   [words.Length]byte // 0 if unknown, else 'A'..'Z'
	letters [26]letterInfo
	folds   int
}

// Empty returns a Set with no evidence; every word is consistent with it.
func Empty() Set {
	var s Set
	for i := range s.letters {
		s.letters[i].max = unknownMax
	}
	return s
}

// Fold returns s updated with the evidence of one guess and its pattern.
func (s Set) Fold(guess words.Word, p feedback.Pattern) Set {
	var matched, absent [26]uint8

	for i := 0; i < words.Length; i++ {
		l := guess.Letter(i)
		switch p[i] {
		case feedback.Exact:
			s.fixed[i] = guess[i]
			matched[l]++
		case feedback.Present:
			s.letters[l].notAt |= 1 << i
			matched[l]++
		default:
			s.letters[l].notAt |= 1 << i
			absent[l]++
		}
	}

	for l := range s.letters {
		li := &s.letters[l]
		if matched[l] > li.min {
			li.min = matched[l]
		}
		// Absent means "no occurrences beyond the ones matched in this guess".
		if absent[l] > 0 && matched[l] < li.max {
			li.max = matched[l]
		}
	}
	s.folds++
	return s
}

// Folds is the number of observations folded into s.
func (s Set) Folds() int { return s.folds }

// IsConsistent reports whether w could still be the target given all evidence.
func (s Set) IsConsistent(w words.Word) bool {
	var counts [26]uint8
	for i := 0; i < words.Length; i++ {
		if f := s.fixed[i]; f != 0 && w[i] != f {
			return false
		}
		l := w.Letter(i)
		if s.letters[l].notAt&(1<<i) != 0 {
			return false
		}
		counts[l]++
	}
	for l := range s.letters {
		li := s.letters[l]
		if counts[l] < li.min || counts[l] > li.max {
			return false
		}
	}
	return true
}

// Fixed returns the letter known at position i, or 0.
func (s Set) Fixed(i int) byte { return s.fixed[i] }

// Bounds returns the (min, max) occurrence count known for letter c ('A'..'Z').
func (s Set) Bounds(c byte) (lo, hi int) {
	li := s.letters[c-'A']
	return int(li.min), int(li.max)
}

// Excluded reports whether letter c is known to be absent from the target.
func (s Set) Excluded(c byte) bool { return s.letters[c-'A'].max == 0 }

// String summarizes the evidence, e.g. "pos=..A.E min=[A1 E1] max=[L0 S0 T0]".
func (s Set) String() string {
	var pos strings.Builder
	for _, f := range s.fixed {
		if f == 0 {
			pos.WriteByte('.')
		} else {
			pos.WriteByte(f)
		}
	}
	var mins, maxs []string
	for l, li := range s.letters {
		c := byte('A' + l)
		if li.min > 0 {
			mins = append(mins, fmt.Sprintf("%c%d", c, li.min))
		}
		if li.max < unknownMax {
			maxs = append(maxs, fmt.Sprintf("%c%d", c, li.max))
		}
	}
	return fmt.Sprintf("pos=%s min=%v max=%v", pos.String(), mins, maxs)
}
