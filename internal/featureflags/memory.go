package featureflags

import (
	"context"
	"sync"

	id "agora/pkg/domain"
)

type flagKey struct {
	territoryID id.TerritoryID
	flag        Flag
}

type InMemoryStore struct {
	mu     sync.RWMutex
	values map[flagKey]bool
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{values: make(map[flagKey]bool)}
}

func (s *InMemoryStore) Get(_ context.Context, territoryID id.TerritoryID, flag Flag) (bool, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	enabled, ok := s.values[flagKey{territoryID, flag}]
	return enabled, ok, nil
}

func (s *InMemoryStore) Set(_ context.Context, territoryID id.TerritoryID, flag Flag, enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[flagKey{territoryID, flag}] = enabled
	return nil
}
