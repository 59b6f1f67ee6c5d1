package domain

import "time"

// OrderStatus is the fulfillment stage of a dealer order.
type OrderStatus string

const (
	OrderPending      OrderStatus = "pending"
	OrderConfirmed    OrderStatus = "confirmed"
	OrderInProduction OrderStatus = "in-production"
	OrderInTransit    OrderStatus = "in-transit"
	OrderDelivered    OrderStatus = "delivered"
	OrderCancelled    OrderStatus = "cancelled"
)

// orderTransitions is the allowed status graph. Delivered and cancelled are
// terminal; cancellation is reachable from every non-terminal status.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:      {OrderConfirmed, OrderCancelled},
	OrderConfirmed:    {OrderInProduction, OrderCancelled},
	OrderInProduction: {OrderInTransit, OrderCancelled},
	OrderInTransit:    {OrderDelivered, OrderCancelled},
}

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderInProduction, OrderInTransit,
		OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the status graph allows moving to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Order is a dealer order created from a completed configuration. The
// configuration is snapshotted at submission time and never tracks later
// edits to the source configuration.
type Order struct {
	ID            string             `json:"id"`
	DealerID      string             `json:"dealer_id"`
	CustomerName  string             `json:"customer_name,omitempty"`
	VehicleID     string             `json:"vehicle_id"`
	Configuration ConfigurationState `json:"configuration"`
	Status        OrderStatus        `json:"status"`
	Notes         string             `json:"notes,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}
