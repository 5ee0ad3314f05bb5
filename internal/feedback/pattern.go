// internal/feedback/pattern.go
//
// Type definitions for per-letter feedback.
// Defines:
//   - Mark: result for one letter position (exact/present/absent).
//   - Pattern: the five Marks observed for one guess.
//
// A Pattern has a compact base-3 code in [0, NumPatterns) used as a
// partition key when scoring guesses.

package feedback

import (
	"errors"
	"fmt"
	"strings"

	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - Absent:  letter is not in the target (or every occurrence is already accounted for).
//   - Present: letter is in the target but at a different position.
//   - Exact:   letter is correct and in the correct position.
type Mark uint8

const (
	Absent Mark = iota
	Present
	Exact
)

// NumPatterns is the size of the pattern space, 3^5.
const NumPatterns = 243

var (
	ErrInvalidPatternLength = errors.New("feedback: pattern must have exactly 5 marks")
	ErrInvalidPatternMark   = errors.New("feedback: unknown pattern mark")
)

func (m Mark) String() string {
	switch m {
	case Exact:
		return "exact"
	case Present:
		return "present"
	default:
		return "absent"
	}
}

// Pattern is the observable feedback for one guess.
type Pattern [words.Length]Mark

// AllExact is the pattern of a solved round.
var AllExact = Pattern{Exact, Exact, Exact, Exact, Exact}

// NewPattern copies marks into a Pattern, rejecting any other length.
func NewPattern(marks []Mark) (Pattern, error) {
	var p Pattern
	if len(marks) != words.Length {
		return p, fmt.Errorf("%w: got %d", ErrInvalidPatternLength, len(marks))
	}
	for i, m := range marks {
		if m > Exact {
			return p, fmt.Errorf("%w: %d", ErrInvalidPatternMark, m)
		}
		p[i] = m
	}
	return p, nil
}

// ParsePattern reads a pattern such as "g.y..", "GYBBB" or "21000".
//   g, G, 2           → Exact
//   y, Y, 1           → Present
//   . x X b B - _ 0   → Absent
func ParsePattern(s string) (Pattern, error) {
	s = strings.TrimSpace(s)
	marks := make([]Mark, 0, len(s))
	for _, r := range s {
		switch r {
		case 'g', 'G', '2':
			marks = append(marks, Exact)
		case 'y', 'Y', '1':
			marks = append(marks, Present)
		case '.', 'x', 'X', 'b', 'B', '-', '_', '0':
			marks = append(marks, Absent)
		default:
			return Pattern{}, fmt.Errorf("%w: %q", ErrInvalidPatternMark, r)
		}
	}
	return NewPattern(marks)
}

// Code returns the base-3 code of p; position 0 is most significant.
func (p Pattern) Code() int {
	c := 0
	for _, m := range p {
		c = c*3 + int(m)
	}
	return c
}

// FromCode is the inverse of Code.
func FromCode(c int) Pattern {
	var p Pattern
	for i := words.Length - 1; i >= 0; i-- {
		p[i] = Mark(c % 3)
		c /= 3
	}
	return p
}

// Solved reports whether every position is Exact.
func (p Pattern) Solved() bool { return p == AllExact }

// String renders p as g/y/. letters.
func (p Pattern) String() string {
	var b strings.Builder
	for _, m := range p {
		switch m {
		case Exact:
			b.WriteByte('g')
		case Present:
			b.WriteByte('y')
		default:
			b.WriteByte('.')
		}
	}
	return b.String()
}
