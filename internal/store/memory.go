// internal/store/memory.go
//
// In-memory implementation of the session Store interface.
// This is a lightweight registry for live game sessions, used alongside the
// SQLite layer that keeps the durable serialized snapshots.
//
// Characteristics:
//   - Stores *Session objects keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Each Session carries its own mutex so a discovery query never
//     observes a pool/word mutation mid-walk.
//   - State is lost when the process restarts; handlers rehydrate from the
//     persisted snapshot on a miss.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/grabble/internal/game"
)

// ErrNotFound is returned by Get for unknown session IDs.
var ErrNotFound = errors.New("session not found")

// Session is one live game: an ID plus its state, guarded by mu.
// Callers hold mu across any read-query or mutation of Game.
type Session struct {
	ID   string
	Game *game.State

	mu sync.Mutex
}

// Lock serializes queries and mutations on the session's game state.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the session lock.
func (s *Session) Unlock() { s.mu.Unlock() }

// Store defines the registry interface for live sessions.
// Implementations may be backed by memory (this package), Redis, etc.
type Store interface {
	// Save registers or updates a session.
	Save(ctx context.Context, s *Session) error

	// Get retrieves a session by ID.
	// Returns ErrNotFound if the session is not registered.
	Get(ctx context.Context, id string) (*Session, error)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu       sync.RWMutex        // guards sessions map
	sessions map[string]*Session // keyed by Session.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*Session)}
}

// Save adds or updates the session in the map.
func (m *memory) Save(ctx context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return nil
}

// Get looks up a session by ID.
func (m *memory) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, ErrNotFound
}
