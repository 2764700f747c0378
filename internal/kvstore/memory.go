package kvstore

import (
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryStore is an in-process Store used in tests and ephemeral setups.
// Values round-trip through JSON so it behaves like the database-backed store.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]json.RawMessage
}

var _ Store = (*MemoryStore)(nil)

func NewMemory() *MemoryStore {
	return &MemoryStore{entries: make(map[string]json.RawMessage)}
}

func (s *MemoryStore) Load(key string, out any) (bool, error) {
	s.mu.RLock()
	raw, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("decode %q: %w", key, err)
	}
	return true, nil
}

func (s *MemoryStore) Save(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	s.mu.Lock()
	s.entries[key] = data
	s.mu.Unlock()
	return nil
}
