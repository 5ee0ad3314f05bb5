// internal/belief/candidates.go
//
// CandidateSet is the live belief state: the answers still consistent with
// the evidence. It is a bitset over the vocabulary's answer indices, so
// iteration order is the (sorted) answer order.
//
// A CandidateSet is recomputed from the full answer list every round rather
// than patched, and is never modified after construction.

package belief

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/bits-and-blooms/bitset"
	"golang.org/x/crypto/blake2b"

	"github.com/robalobadob/wordle/apps/go-solver/internal/constraint"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// CandidateSet is an immutable subset of a vocabulary's answers.
type CandidateSet struct {
	vocab *words.Vocabulary
	bits  *bitset.BitSet
	n     int
}

// All returns the set of every answer.
func All(vocab *words.Vocabulary) *CandidateSet {
	n := len(vocab.Answers())
	b := bitset.New(uint(n))
	for i := 0; i < n; i++ {
		b.Set(uint(i))
	}
	return &CandidateSet{vocab: vocab, bits: b, n: n}
}

// Refresh filters the full answer vocabulary through s.
func Refresh(vocab *words.Vocabulary, s constraint.Set) *CandidateSet {
	answers := vocab.Answers()
	b := bitset.New(uint(len(answers)))
	n := 0
	constraint.Matches(answers, s, func(i int) {
		b.Set(uint(i))
		n++
	})
	return &CandidateSet{vocab: vocab, bits: b, n: n}
}

// FromWords builds a set from explicit answers; words that are not answers are ignored.
func FromWords(vocab *words.Vocabulary, list []words.Word) *CandidateSet {
	b := bitset.New(uint(len(vocab.Answers())))
	for _, w := range list {
		if i, ok := vocab.AnswerIndex(w); ok {
			b.Set(uint(i))
		}
	}
	return &CandidateSet{vocab: vocab, bits: b, n: int(b.Count())}
}

// Len is the number of remaining candidates.
func (c *CandidateSet) Len() int { return c.n }

// Empty reports whether no candidate remains.
func (c *CandidateSet) Empty() bool { return c.n == 0 }

// Vocabulary returns the vocabulary the set indexes into.
func (c *CandidateSet) Vocabulary() *words.Vocabulary { return c.vocab }

// Contains reports whether w is a remaining candidate.
func (c *CandidateSet) Contains(w words.Word) bool {
	i, ok := c.vocab.AnswerIndex(w)
	return ok && c.bits.Test(uint(i))
}

// Each calls fn for every candidate in answer order until fn returns false.
func (c *CandidateSet) Each(fn func(i int, w words.Word) bool) {
	answers := c.vocab.Answers()
	for i, ok := c.bits.NextSet(0); ok; i, ok = c.bits.NextSet(i + 1) {
		if !fn(int(i), answers[i]) {
			return
		}
	}
}

// Words returns the candidates in answer order.
func (c *CandidateSet) Words() []words.Word {
	out := make([]words.Word, 0, c.n)
	c.Each(func(_ int, w words.Word) bool {
		out = append(out, w)
		return true
	})
	return out
}

// IsSubsetOf reports whether every member of c is in other.
func (c *CandidateSet) IsSubsetOf(other *CandidateSet) bool {
	return c.bits.Difference(other.bits).None()
}

// Fingerprint identifies the member set; equal sets over the same vocabulary
// give equal fingerprints.
func (c *CandidateSet) Fingerprint() string {
	h, _ := blake2b.New256(nil)
	var buf [4]byte
	for i, ok := c.bits.NextSet(0); ok; i, ok = c.bits.NextSet(i + 1) {
		binary.LittleEndian.PutUint32(buf[:], uint32(i))
		h.Write(buf[:])
	}
	return hex.EncodeToString(h.Sum(nil)[:16])
}
