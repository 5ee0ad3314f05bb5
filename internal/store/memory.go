// internal/store/memory.go
//
// In-memory implementation of the decision cache Store.
// Used for single runs and batches where the cache need not outlive the
// process.
//
// Characteristics:
//   - Stores decided guesses keyed by Key() in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// ErrNotFound is returned by Get for a key with no recorded decision.
var ErrNotFound = errors.New("store: not found")

// Store caches strategy decisions. A decision depends only on the strategy,
// the vocabulary and the candidate set, so it is keyed by all three.
// Implementations may be backed by memory (this file) or SQLite.
type Store interface {
	// Get returns the guess recorded for key, or ErrNotFound.
	Get(ctx context.Context, key string) (words.Word, error)

	// Put records guess for key. The first decision for a key wins.
	Put(ctx context.Context, key string, guess words.Word) error

	// Close releases any resources held by the store.
	Close() error
}

// Key builds the cache key for one decision. tuning is the encoded strategy
// options, so a change of tuning never replays older decisions.
func Key(strategy, tuning, vocabFingerprint, candidateFingerprint string) string {
	return strings.Join([]string{strategy, tuning, vocabFingerprint, candidateFingerprint}, "|")
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu        sync.RWMutex          // guards decisions map
	decisions map[string]words.Word // keyed by Key()
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{decisions: make(map[string]words.Word)}
}

// Put adds the decision unless one is already recorded.
func (m *memory) Put(ctx context.Context, key string, guess words.Word) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.decisions[key]; !ok {
		m.decisions[key] = guess
	}
	return nil
}

// Get looks up a decision by key.
func (m *memory) Get(ctx context.Context, key string) (words.Word, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if g, ok := m.decisions[key]; ok {
		return g, nil
	}
	return "", ErrNotFound
}

func (m *memory) Close() error { return nil }
