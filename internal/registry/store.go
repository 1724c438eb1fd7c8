package registry

import (
	"sync"

	"typeahead/internal/ui/autocomplete"
)

// MemoryInstanceStore is an in-memory InstanceStore that keeps creation order
type MemoryInstanceStore struct {
	mu        sync.RWMutex
	instances map[string]*autocomplete.Model
	order     []string
}

// NewMemoryInstanceStore creates an empty store
func NewMemoryInstanceStore() *MemoryInstanceStore {
	return &MemoryInstanceStore{
		instances: make(map[string]*autocomplete.Model),
	}
}

func (s *MemoryInstanceStore) Get(id string) *autocomplete.Model {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.instances[id]
}

func (s *MemoryInstanceStore) List() []*autocomplete.Model {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*autocomplete.Model, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.instances[id])
	}
	return result
}

// AddIfAbsent stores m unless its id is taken
func (s *MemoryInstanceStore) AddIfAbsent(m *autocomplete.Model) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.instances[m.ID()]; ok {
		return false
	}
	s.instances[m.ID()] = m
	s.order = append(s.order, m.ID())
	return true
}

func (s *MemoryInstanceStore) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.instances[id]; !ok {
		return
	}
	delete(s.instances, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *MemoryInstanceStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.instances)
}
