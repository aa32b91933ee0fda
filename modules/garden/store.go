package garden

import (
	"fmt"
	"sync"
)

// ID identifies a garden. It is the instance label from the seed file, so
// other entities can reference a garden by a stable string.
type ID string

// Garden is a named container for plants. It does not enumerate its members;
// membership is derived by querying the plant store with the garden's ID.
type Garden struct {
	ID   ID
	Name string
}

// Store is a thread-safe, insertion-ordered in-memory garden store. It is
// installed as a shared resource during module registration and lives for
// the life of the application instance.
type Store struct {
	mu    sync.RWMutex
	byID  map[ID]*Garden
	order []ID
}

// NewStore creates an empty garden store.
func NewStore() *Store {
	return &Store{byID: make(map[ID]*Garden)}
}

// Put adds a garden. A duplicate ID means the seed file declared the same
// instance label twice.
func (s *Store) Put(g *Garden) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byID[g.ID]; exists {
		return fmt.Errorf("garden %q already exists", g.ID)
	}
	s.byID[g.ID] = g
	s.order = append(s.order, g.ID)
	return nil
}

// Get returns the garden with the given ID.
func (s *Store) Get(id ID) (*Garden, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.byID[id]
	return g, ok
}

// All returns all gardens in insertion order.
func (s *Store) All() []*Garden {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Garden, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// Len returns the number of stored gardens.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
