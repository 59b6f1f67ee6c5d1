package ports

import (
	"context"

	"github.com/showroomhq/showroom/pkg/domain"
)

// ConfigStore persists configuration state, one record per vehicle id.
// Implementations serialize the full externally visible state as JSON and
// must tolerate absent or extra fields when decoding; there is no schema
// version field.
type ConfigStore interface {
	// Save persists the state under its vehicle id.
	Save(ctx context.Context, vehicleID string, state domain.ConfigurationState) error

	// Load retrieves the state for a vehicle id. It returns
	// domain.ErrConfigurationNotFound when no usable record exists;
	// a stored record that cannot be decoded counts as absent.
	Load(ctx context.Context, vehicleID string) (domain.ConfigurationState, error)

	// Delete removes the record for a vehicle id. Deleting an absent
	// record is not an error.
	Delete(ctx context.Context, vehicleID string) error

	// List returns the vehicle ids with stored configurations.
	List(ctx context.Context) ([]string, error)
}
