package store

import (
	"sync"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/players"
)

// MemoryStore keeps a thread-safe roster snapshot in memory, preserving upstream order.
type MemoryStore struct {
	mu      sync.RWMutex
	loaded  bool
	players []players.Player
	byID    map[int]int
}

// NewMemoryStore constructs an empty, unloaded MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID: make(map[int]int),
	}
}

// ListPlayers returns a copy of the current roster.
func (s *MemoryStore) ListPlayers() []players.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]players.Player, len(s.players))
	copy(result, s.players)
	return result
}

// GetPlayer retrieves a player by ID.
func (s *MemoryStore) GetPlayer(id int) (players.Player, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byID[id]
	if !ok {
		return players.Player{}, false
	}
	return s.players[i], true
}

// SetPlayers replaces the roster with a new snapshot and marks the store loaded.
// A later duplicate ID overwrites the index entry of an earlier one.
func (s *MemoryStore) SetPlayers(roster []players.Player) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.players = make([]players.Player, len(roster))
	copy(s.players, roster)
	s.byID = make(map[int]int, len(roster))
	for i, p := range s.players {
		s.byID[p.ID] = i
	}
	s.loaded = true
}

// Loaded reports whether a snapshot has been stored, even an empty one.
func (s *MemoryStore) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}
