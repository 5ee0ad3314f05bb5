package words

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// fingerprint hashes both sorted lists. Answers and guesses are separated so
// moving a word from one list to the other changes the result.
func fingerprint(answers, guesses []Word) string {
	h, _ := blake2b.New256(nil)
	for _, w := range answers {
		h.Write([]byte(w))
	}
	h.Write([]byte{'|'})
	for _, w := range guesses {
		h.Write([]byte(w))
	}
	return hex.EncodeToString(h.Sum(nil)[:16])
}
