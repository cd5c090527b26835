package player

import (
	"errors"
	"sync"
)

// ErrPlayerNotFound is an error when a player is not in the store
var ErrPlayerNotFound = errors.New("player not found")

// Store persists players
type Store interface {
	Get(id string) (*Player, error)
	Save(player *Player) error
}

// MemoryStore is an in-memory Store, suitable for tests and ephemeral servers
type MemoryStore struct {
	mu      sync.Mutex
	players map[string]Player
}

// NewMemoryStore returns a new MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		players: make(map[string]Player),
	}
}

// Get returns the player with the id, or ErrPlayerNotFound
func (s *MemoryStore) Get(id string) (*Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.players[id]
	if !ok {
		return nil, ErrPlayerNotFound
	}

	return &p, nil
}

// Save inserts or updates the player
func (s *MemoryStore) Save(player *Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.players[player.ID] = *player
	return nil
}
