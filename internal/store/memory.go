// internal/store/memory.go
//
// In-memory implementation of the Store interface.
// This is a lightweight persistence layer for ephemeral game sessions; the
// sqlite database only keeps history rows, never live game state.
//
// Characteristics:
//   - Stores *game.Game objects keyed by ID in a map, each with a deadline.
//   - Concurrency-safe via RWMutex; Update runs a whole read-resolve-write
//     cycle under the lock so concurrent guesses against one game cannot
//     lose updates.
//   - Only the store's lock ever guards the canonical struct: Save captures
//     a copy of its argument, and Get/Update hand out copies, so callers can
//     read or keep a result while other requests mutate the same game.
//   - Expired entries are dropped lazily on access and swept by a janitor
//     goroutine until Close is called.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jawuanlewis/hangman-api/internal/game"
)

// ErrNotFound is returned for unknown or expired game IDs.
var ErrNotFound = errors.New("game not found")

// Store defines the persistence interface for live game sessions.
// Implementations may be backed by memory (this package), Redis, SQL, etc.
type Store interface {
	// Save persists or updates a game, resetting its expiry deadline.
	Save(ctx context.Context, g *game.Game) error

	// Get retrieves a snapshot of a game by ID. Returns ErrNotFound if
	// missing or expired.
	Get(ctx context.Context, id string) (*game.Game, error)

	// Update loads the game, applies fn, and persists the result atomically
	// with respect to other calls for the same ID, returning a snapshot of
	// the result. If fn returns an error nothing is persisted and the error
	// is passed through.
	Update(ctx context.Context, id string, fn func(*game.Game) error) (*game.Game, error)

	// Delete removes a game. Returns ErrNotFound if missing or expired.
	Delete(ctx context.Context, id string) error

	// Close stops background maintenance.
	Close()
}

type entry struct {
	g        *game.Game
	deadline time.Time
}

// memory is an in-memory map-based Store implementation with TTL eviction.
type memory struct {
	mu      sync.RWMutex
	games   map[string]entry
	ttl     time.Duration
	stop    chan struct{}
	stopped sync.Once
}

const sweepInterval = time.Minute

// NewMemoryStore constructs an in-memory Store whose entries expire ttl after
// their last Save. A non-positive ttl defaults to one hour.
func NewMemoryStore(ttl time.Duration) Store {
	if ttl <= 0 {
		ttl = time.Hour
	}
	m := &memory{
		games: make(map[string]entry),
		ttl:   ttl,
		stop:  make(chan struct{}),
	}
	go m.sweep()
	return m
}

func (m *memory) Save(ctx context.Context, g *game.Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.ID] = entry{g: clone(g), deadline: time.Now().Add(m.ttl)}
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*game.Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, err := m.getLocked(id)
	if err != nil {
		return nil, err
	}
	return clone(g), nil
}

func (m *memory) Update(ctx context.Context, id string, fn func(*game.Game) error) (*game.Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, err := m.getLocked(id)
	if err != nil {
		return nil, err
	}
	if err := fn(g); err != nil {
		return nil, err
	}
	m.games[id] = entry{g: g, deadline: time.Now().Add(m.ttl)}
	return clone(g), nil
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, err := m.getLocked(id); err != nil {
		return err
	}
	delete(m.games, id)
	return nil
}

func (m *memory) Close() {
	m.stopped.Do(func() { close(m.stop) })
}

// clone returns an independent copy of g, including the guessed-letter slice.
func clone(g *game.Game) *game.Game {
	cp := *g
	if g.GuessedLetters != nil {
		cp.GuessedLetters = make([]string, len(g.GuessedLetters))
		copy(cp.GuessedLetters, g.GuessedLetters)
	}
	return &cp
}

// getLocked resolves the canonical entry and evicts it if expired.
// Caller holds mu and must not leak the returned pointer past the lock.
func (m *memory) getLocked(id string) (*game.Game, error) {
	e, ok := m.games[id]
	if !ok {
		return nil, ErrNotFound
	}
	if time.Now().After(e.deadline) {
		delete(m.games, id)
		return nil, ErrNotFound
	}
	return e.g, nil
}

// sweep periodically drops expired entries so abandoned games do not
// accumulate between accesses.
func (m *memory) sweep() {
	t := time.NewTicker(sweepInterval)
	defer t.Stop()
	for {
		select {
		case <-m.stop:
			return
		case now := <-t.C:
			m.mu.Lock()
			for id, e := range m.games {
				if now.After(e.deadline) {
					delete(m.games, id)
				}
			}
			m.mu.Unlock()
		}
	}
}
