package storage

import "sync"

// MemoryStore is a Storer that never touches disk. It backs fixtures in tests
// and content that is assembled programmatically.
type MemoryStore[T ValidatingSpec] struct {
	mu      sync.RWMutex
	records map[string]T
}

func NewMemoryStore[T ValidatingSpec](records map[string]T) *MemoryStore[T] {
	s := &MemoryStore[T]{records: make(map[string]T, len(records))}
	for k, v := range records {
		s.records[k] = v
	}
	return s
}

func (s *MemoryStore[T]) Save(id string, o T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[id] = o
	return nil
}

func (s *MemoryStore[T]) Get(id string) T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records[id]
}

func (s *MemoryStore[T]) GetAll() map[string]T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	vals := make(map[string]T, len(s.records))
	for id, v := range s.records {
		vals[id] = v
	}
	return vals
}
