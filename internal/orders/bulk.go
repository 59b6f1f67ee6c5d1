package orders

import (
	"context"
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/showroomhq/showroom/pkg/domain"
)

// Bulk operation names.
const (
	BulkOpSetStatus    = "set-status"
	BulkOpAssignDealer = "assign-dealer"
	BulkOpCancel       = "cancel"
)

// BulkRequest applies one operation to many orders. Params are decoded
// per operation, so one endpoint serves all back-office batch actions.
type BulkRequest struct {
	Op     string         `json:"op"`
	IDs    []string       `json:"ids"`
	Params map[string]any `json:"params,omitempty"`
}

// BulkItemResult reports the outcome for a single order.
type BulkItemResult struct {
	ID    string `json:"id"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// BulkResult summarizes a bulk operation. Partial failure is expected;
// each item stands alone.
type BulkResult struct {
	Op        string           `json:"op"`
	Succeeded int              `json:"succeeded"`
	Failed    int              `json:"failed"`
	Results   []BulkItemResult `json:"results"`
}

type setStatusParams struct {
	Status string `mapstructure:"status"`
}

type assignDealerParams struct {
	DealerID string `mapstructure:"dealer_id"`
}

// Bulk executes a batch operation over the listed orders. An unknown
// operation or malformed params fail the whole request; per-order
// failures are reported item by item.
func (s *Service) Bulk(ctx context.Context, req BulkRequest) (BulkResult, error) {
	apply, err := s.bulkApplier(req)
	if err != nil {
		return BulkResult{}, err
	}

	result := BulkResult{Op: req.Op, Results: make([]BulkItemResult, 0, len(req.IDs))}
	for _, id := range req.IDs {
		item := BulkItemResult{ID: id, OK: true}
		if err := apply(ctx, id); err != nil {
			item.OK = false
			item.Error = err.Error()
			result.Failed++
			s.logger.Warn("bulk operation item failed",
				"op", req.Op,
				"order_id", id,
				"err", err,
			)
		} else {
			result.Succeeded++
		}
		result.Results = append(result.Results, item)
	}
	return result, nil
}

// bulkApplier resolves the per-order function for the requested op.
func (s *Service) bulkApplier(req BulkRequest) (func(context.Context, string) error, error) {
	switch req.Op {
	case BulkOpSetStatus:
		var params setStatusParams
		if err := mapstructure.Decode(req.Params, &params); err != nil {
			return nil, fmt.Errorf("decode set-status params: %w", err)
		}
		status := domain.OrderStatus(params.Status)
		if !status.Valid() {
			return nil, fmt.Errorf("unknown status %q", params.Status)
		}
		return func(ctx context.Context, id string) error {
			_, err := s.UpdateStatus(ctx, id, status)
			return err
		}, nil

	case BulkOpAssignDealer:
		var params assignDealerParams
		if err := mapstructure.Decode(req.Params, &params); err != nil {
			return nil, fmt.Errorf("decode assign-dealer params: %w", err)
		}
		if params.DealerID == "" {
			return nil, fmt.Errorf("assign-dealer requires dealer_id")
		}
		return func(ctx context.Context, id string) error {
			_, err := s.AssignDealer(ctx, id, params.DealerID)
			return err
		}, nil

	case BulkOpCancel:
		return func(ctx context.Context, id string) error {
			_, err := s.UpdateStatus(ctx, id, domain.OrderCancelled)
			return err
		}, nil
	}

	return nil, fmt.Errorf("unknown bulk operation %q", req.Op)
}
