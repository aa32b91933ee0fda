package registry

import (
	"fmt"
	"sync"
)

// Resources is the shared table of handles that modules establish during
// registration (stores, connections) and that entity handlers look up at
// seeding time.
type Resources struct {
	mu      sync.RWMutex
	entries map[string]any
}

func newResources() *Resources {
	return &Resources{entries: make(map[string]any)}
}

// Put installs a resource under a key. Installing the same key twice is a
// programmer error: it would mean a module was registered more than once.
func (s *Resources) Put(key string, v any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.entries[key]; exists {
		panic(fmt.Sprintf("resource %q already installed", key))
	}
	s.entries[key] = v
}

// Get returns the resource stored under key.
func (s *Resources) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.entries[key]
	return v, ok
}

// Resource fetches a typed resource from the table, failing with a clear
// error when the key is absent or holds a different type.
func Resource[T any](s *Resources, key string) (T, error) {
	var zero T
	v, ok := s.Get(key)
	if !ok {
		return zero, fmt.Errorf("resource %q not installed", key)
	}
	typed, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("resource %q has type %T, not %T", key, v, zero)
	}
	return typed, nil
}
