// internal/words/load.go
//
// Loads the vocabulary from configured files or falls back to embedded defaults.
//
// Resolution (Load):
//   1. If AnswersFile and AllowedFile are both set,
//      load answers from the first and allowed guesses from the second.
//   2. If only AllowedFile is set,
//      load that file and use it for both answers and allowed guesses.
//   3. If neither is set,
//      fall back to the embedded lists in the assets package.
//
// Lines that are not 5 alphabetic letters are skipped, as are blank lines
// and '#' comments.

package words

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/robalobadob/wordle/apps/go-solver/assets"
)

// Source names the word list files. Zero value means embedded defaults.
type Source struct {
	AnswersFile string
	AllowedFile string
}

// Load builds a Vocabulary from src.
func Load(src Source) (*Vocabulary, error) {
	var ansList, allowList []Word

	switch {
	// Case 1: both lists provided
	case src.AnswersFile != "" && src.AllowedFile != "":
		var err error
		ansList, err = readWordFile(src.AnswersFile)
		if err != nil {
			return nil, err
		}
		allowList, err = readWordFile(src.AllowedFile)
		if err != nil {
			return nil, err
		}

	// Case 2: only allowed file provided → use for both
	case src.AllowedFile != "":
		var err error
		allowList, err = readWordFile(src.AllowedFile)
		if err != nil {
			return nil, err
		}
		ansList = allowList

	// Case 2b: only answers file provided → answers are also the only guesses
	case src.AnswersFile != "":
		var err error
		ansList, err = readWordFile(src.AnswersFile)
		if err != nil {
			return nil, err
		}

	// Case 3: fallback to embedded defaults
	default:
		a, err := assets.AnswersList()
		if err != nil {
			return nil, fmt.Errorf("words: embedded answers: %w", err)
		}
		g, err := assets.AllowedList()
		if err != nil {
			return nil, fmt.Errorf("words: embedded allowed: %w", err)
		}
		ansList, allowList = normalize(a), normalize(g)
	}

	return New(ansList, allowList)
}

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]Word, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open %s: %w", path, err)
	}
	defer f.Close()
	out, err := ReadWords(f)
	if err != nil {
		return nil, fmt.Errorf("words: read %s: %w", path, err)
	}
	return out, nil
}

// ReadWords reads one word per line, keeping only valid 5-letter words.
func ReadWords(r io.Reader) ([]Word, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return normalize(lines), sc.Err()
}

// normalize parses each line, skipping comments and anything that is not a Word.
func normalize(lines []string) []Word {
	out := make([]Word, 0, len(lines))
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		if w, err := Parse(line); err == nil {
			out = append(out, w)
		}
	}
	return out
}
