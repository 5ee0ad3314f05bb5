// assets/embed.go
//
// Embedded default word lists, used when no word list files are configured.
//   - answers.txt: words that may be the hidden target.
//   - allowed.txt: extra words accepted as guesses only.
//
// Lines are returned trimmed; blank lines and '#' comments are skipped.
// Case and validity are left to the words package.

package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed allowed.txt answers.txt
var FS embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// AnswersList returns the embedded answer words in file order.
func AnswersList() ([]string, error) {
	return readLines("answers.txt")
}

// AllowedList returns the embedded guess-only words in file order.
func AllowedList() ([]string, error) {
	return readLines("allowed.txt")
}
