package ports

import (
	"context"

	"github.com/showroomhq/showroom/pkg/domain"
)

// OrderFilter narrows order queue listings. Zero values match everything.
type OrderFilter struct {
	DealerID string
	Status   domain.OrderStatus
}

// OrderStore persists dealer orders.
type OrderStore interface {
	// Create inserts a new order.
	Create(ctx context.Context, order domain.Order) error

	// Get returns one order, or domain.ErrOrderNotFound.
	Get(ctx context.Context, id string) (domain.Order, error)

	// List returns orders matching the filter, newest first.
	List(ctx context.Context, filter OrderFilter) ([]domain.Order, error)

	// Update replaces a stored order, or returns domain.ErrOrderNotFound.
	Update(ctx context.Context, order domain.Order) error
}
