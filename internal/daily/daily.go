// internal/daily/daily.go
//
// Deterministic daily targets.
// Every date maps to one answer through HMAC(salt, YYYY-MM-DD), so anyone
// with the same word lists and salt gets the same puzzle for the day.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % answersLen.
func WordIndex(date time.Time, salt string, answersLen int) int {
	if answersLen <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// take first 8 bytes to uint64 for modulus distribution
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(answersLen))
}

// Target returns the answer for date.
func Target(vocab *words.Vocabulary, date time.Time, salt string) words.Word {
	answers := vocab.Answers()
	return answers[WordIndex(date, salt, len(answers))]
}
