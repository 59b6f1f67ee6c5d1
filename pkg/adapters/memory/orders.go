package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/showroomhq/showroom/pkg/domain"
	"github.com/showroomhq/showroom/pkg/ports"
)

// OrderStore is an in-memory ports.OrderStore for tests and the memory
// backend.
type OrderStore struct {
	mu     sync.RWMutex
	orders map[string]domain.Order
}

var _ ports.OrderStore = (*OrderStore)(nil)

// NewOrderStore creates an empty order store.
func NewOrderStore() *OrderStore {
	return &OrderStore{orders: make(map[string]domain.Order)}
}

// Create inserts a new order.
func (s *OrderStore) Create(_ context.Context, order domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	order.Configuration = order.Configuration.Clone()
	s.orders[order.ID] = order
	return nil
}

// Get returns one order.
func (s *OrderStore) Get(_ context.Context, id string) (domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	order, ok := s.orders[id]
	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	order.Configuration = order.Configuration.Clone()
	return order, nil
}

// List returns orders matching the filter, newest first.
func (s *OrderStore) List(_ context.Context, filter ports.OrderFilter) ([]domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Order
	for _, order := range s.orders {
		if filter.DealerID != "" && order.DealerID != filter.DealerID {
			continue
		}
		if filter.Status != "" && order.Status != filter.Status {
			continue
		}
		order.Configuration = order.Configuration.Clone()
		out = append(out, order)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Update replaces a stored order.
func (s *OrderStore) Update(_ context.Context, order domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[order.ID]; !ok {
		return domain.ErrOrderNotFound
	}
	order.Configuration = order.Configuration.Clone()
	s.orders[order.ID] = order
	return nil
}
