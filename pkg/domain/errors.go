package domain

import "errors"

// ErrConfigurationNotFound is returned by stores when no configuration
// exists for the requested vehicle id.
var ErrConfigurationNotFound = errors.New("configuration not found")

// ErrVehicleNotFound is returned by the catalog when a vehicle id is unknown.
var ErrVehicleNotFound = errors.New("vehicle not found")

// ErrOrderNotFound is returned by order stores when an order id is unknown.
var ErrOrderNotFound = errors.New("order not found")

// ErrInvalidOrderTransition is returned when an order status change is not
// allowed by the transition table.
var ErrInvalidOrderTransition = errors.New("invalid order status transition")

// ErrOrderNotSubmittable is returned when a configuration has not reached a
// reviewable, valid shape and therefore cannot become an order.
var ErrOrderNotSubmittable = errors.New("configuration is not submittable")
