// Package memory provides an in-memory ConfigStore, used in tests and in
// single-process deployments that do not need durability.
package memory

import (
	"context"
	"sync"

	"github.com/showroomhq/showroom/pkg/domain"
)

// Store implements ports.ConfigStore in memory. Safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	data map[string]domain.ConfigurationState
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]domain.ConfigurationState),
	}
}

// Save persists a copy of the state in memory.
func (s *Store) Save(ctx context.Context, vehicleID string, state domain.ConfigurationState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[vehicleID] = state.Clone()
	return nil
}

// Load retrieves a copy of the state, so callers cannot mutate the stored
// value through shared slices.
func (s *Store) Load(ctx context.Context, vehicleID string) (domain.ConfigurationState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.data[vehicleID]
	if !ok {
		return domain.ConfigurationState{}, domain.ErrConfigurationNotFound
	}
	return state.Clone(), nil
}

// Delete removes the record.
func (s *Store) Delete(ctx context.Context, vehicleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, vehicleID)
	return nil
}

// List returns the stored vehicle ids.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	return ids, nil
}
