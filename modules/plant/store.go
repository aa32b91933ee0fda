package plant

import (
	"fmt"
	"sync"

	"github.com/vk/seedling/modules/garden"
)

// ID identifies a plant. It is the instance label from the seed file.
type ID string

// Plant is a member entity. The back-reference to its container is an
// explicit field holding the garden's ID rather than a pointer, so the two
// entities never form a cyclic ownership.
type Plant struct {
	ID     ID
	Name   string
	Garden garden.ID
}

// Store is a thread-safe, insertion-ordered in-memory plant store. Members
// of a garden are found by scanning in insertion order, which keeps report
// output stable.
type Store struct {
	mu    sync.RWMutex
	byID  map[ID]*Plant
	order []ID
}

// NewStore creates an empty plant store.
func NewStore() *Store {
	return &Store{byID: make(map[ID]*Plant)}
}

// Put adds a plant. A duplicate ID means the seed file declared the same
// instance label twice.
func (s *Store) Put(p *Plant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byID[p.ID]; exists {
		return fmt.Errorf("plant %q already exists", p.ID)
	}
	s.byID[p.ID] = p
	s.order = append(s.order, p.ID)
	return nil
}

// Get returns the plant with the given ID.
func (s *Store) Get(id ID) (*Plant, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.byID[id]
	return p, ok
}

// Members returns the plants referencing the given garden, in insertion
// order.
func (s *Store) Members(g garden.ID) []*Plant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var members []*Plant
	for _, id := range s.order {
		if p := s.byID[id]; p.Garden == g {
			members = append(members, p)
		}
	}
	return members
}

// Len returns the number of stored plants.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
