// Package orders implements the dealer back office: submitting orders
// from completed configurations, the fulfillment queue, status
// transitions, and bulk operations.
package orders

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/showroomhq/showroom/internal/logging"
	"github.com/showroomhq/showroom/pkg/domain"
	"github.com/showroomhq/showroom/pkg/ports"
)

// Service coordinates order lifecycle over an OrderStore.
type Service struct {
	store  ports.OrderStore
	logger *slog.Logger
	now    func() time.Time
	newID  func() string
}

// Option configures the Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithClock overrides the time source. Used in tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithIDGenerator overrides order id generation. Used in tests.
func WithIDGenerator(newID func() string) Option {
	return func(s *Service) {
		s.newID = newID
	}
}

// NewService creates an order service.
func NewService(store ports.OrderStore, opts ...Option) *Service {
	s := &Service{
		store:  store,
		logger: logging.NewNop(),
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SubmitRequest carries everything needed to turn a configuration into
// an order.
type SubmitRequest struct {
	DealerID      string
	CustomerName  string
	Notes         string
	Configuration domain.ConfigurationState
}

// Submit creates a pending order from a configuration that has reached
// review with a valid validation result. The configuration is
// snapshotted; later edits to it do not affect the order.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (domain.Order, error) {
	if req.DealerID == "" {
		return domain.Order{}, fmt.Errorf("dealer id is required")
	}
	cfg := req.Configuration
	if cfg.CurrentStep != domain.StepReview {
		return domain.Order{}, fmt.Errorf("%w: configuration has not reached review", domain.ErrOrderNotSubmittable)
	}
	if cfg.Validation == nil || !cfg.Validation.IsValid {
		return domain.Order{}, fmt.Errorf("%w: configuration has not passed validation", domain.ErrOrderNotSubmittable)
	}

	now := s.now().UTC()
	order := domain.Order{
		ID:            s.newID(),
		DealerID:      req.DealerID,
		CustomerName:  req.CustomerName,
		VehicleID:     cfg.VehicleID,
		Configuration: cfg.Clone(),
		Status:        domain.OrderPending,
		Notes:         req.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.store.Create(ctx, order); err != nil {
		return domain.Order{}, fmt.Errorf("create order: %w", err)
	}

	s.logger.Info("order submitted",
		"order_id", order.ID,
		"dealer_id", order.DealerID,
		"vehicle_id", order.VehicleID,
	)
	return order, nil
}

// Get returns one order.
func (s *Service) Get(ctx context.Context, id string) (domain.Order, error) {
	return s.store.Get(ctx, id)
}

// List returns the order queue, filtered.
func (s *Service) List(ctx context.Context, filter ports.OrderFilter) ([]domain.Order, error) {
	return s.store.List(ctx, filter)
}

// UpdateStatus moves an order along the fulfillment graph. Transitions
// outside the table fail with domain.ErrInvalidOrderTransition.
func (s *Service) UpdateStatus(ctx context.Context, id string, next domain.OrderStatus) (domain.Order, error) {
	if !next.Valid() {
		return domain.Order{}, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidOrderTransition, next)
	}

	order, err := s.store.Get(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}
	if !order.Status.CanTransitionTo(next) {
		return domain.Order{}, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidOrderTransition, order.Status, next)
	}

	order.Status = next
	order.UpdatedAt = s.now().UTC()
	if err := s.store.Update(ctx, order); err != nil {
		return domain.Order{}, fmt.Errorf("update order: %w", err)
	}

	s.logger.Info("order status changed",
		"order_id", order.ID,
		"status", string(next),
	)
	return order, nil
}

// AssignDealer reassigns an order to another dealer.
func (s *Service) AssignDealer(ctx context.Context, id, dealerID string) (domain.Order, error) {
	if dealerID == "" {
		return domain.Order{}, fmt.Errorf("dealer id is required")
	}
	order, err := s.store.Get(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}
	order.DealerID = dealerID
	order.UpdatedAt = s.now().UTC()
	if err := s.store.Update(ctx, order); err != nil {
		return domain.Order{}, fmt.Errorf("update order: %w", err)
	}
	return order, nil
}
