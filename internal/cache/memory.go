package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"country-explorer/internal/model"
)

// MemoryStore keeps entries in process memory. Used when no Redis address is configured.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string][]byte)}
}

func (s *MemoryStore) PutCountries(_ context.Context, session string, countries []model.Country) error {
	jsonData, err := json.Marshal(countries)
	if err != nil {
		return fmt.Errorf("failed to marshal countries: %w", err)
	}
	s.set(countriesKey(session), jsonData)
	return nil
}

func (s *MemoryStore) PutSelected(_ context.Context, session, name string) error {
	s.set(selectedKey(session), []byte(name))
	return nil
}

func (s *MemoryStore) Selected(_ context.Context, session string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	name, ok := s.entries[selectedKey(session)]
	if !ok || len(name) == 0 {
		return "", ErrMiss
	}
	return string(name), nil
}

func (s *MemoryStore) Clear(_ context.Context, session string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, countriesKey(session))
	delete(s.entries, selectedKey(session))
	return nil
}

func (s *MemoryStore) set(key string, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value
}
