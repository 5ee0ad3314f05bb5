// render.go
//
// Terminal rendering of guesses and patterns.
// Coloured tiles on a terminal, plain "CRANE  ygg.g" text otherwise so that
// output stays greppable when piped.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

var (
	tileBase = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.Color("#FFFFFF"))

	tileStyles = map[feedback.Mark]lipgloss.Style{
		feedback.Exact:   tileBase.Background(lipgloss.Color("#538D4E")),
		feedback.Present: tileBase.Background(lipgloss.Color("#B59F3B")),
		feedback.Absent:  tileBase.Background(lipgloss.Color("#3A3A3C")),
	}

	dimStyle   = lipgloss.NewStyle().Faint(true)
	titleStyle = lipgloss.NewStyle().Bold(true)
)

// colorEnabled reports whether w is a terminal.
func colorEnabled(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// renderRow renders one guess with its feedback.
func renderRow(guess words.Word, p feedback.Pattern, color bool) string {
	if !color {
		return fmt.Sprintf("%s  %s", guess, p)
	}
	tiles := make([]string, words.Length)
	for i := 0; i < words.Length; i++ {
		tiles[i] = tileStyles[p[i]].Render(string(guess[i]))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}

// renderBar draws a proportional bar, at most maxWidth wide, for n out of total.
func renderBar(n, total, maxWidth int) string {
	if total <= 0 || n <= 0 {
		return ""
	}
	width := n * maxWidth / total
	if width == 0 {
		width = 1
	}
	return strings.Repeat("█", width)
}

func dim(s string, color bool) string {
	if !color {
		return s
	}
	return dimStyle.Render(s)
}

func title(s string, color bool) string {
	if !color {
		return s
	}
	return titleStyle.Render(s)
}
