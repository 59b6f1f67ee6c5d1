package ports

import (
	"context"

	"github.com/showroomhq/showroom/pkg/domain"
)

// CatalogStore serves the vehicle catalog: models, trims, colors,
// packages, and options. Reads only; catalog writes happen out of band
// through seeding.
type CatalogStore interface {
	// Vehicles lists all configurable vehicles.
	Vehicles(ctx context.Context) ([]domain.Vehicle, error)

	// Vehicle returns one vehicle, or domain.ErrVehicleNotFound.
	Vehicle(ctx context.Context, id string) (domain.Vehicle, error)

	// Trims, Colors, Packages and Options list the choices for a vehicle.
	// An unknown vehicle id yields empty results, not an error.
	Trims(ctx context.Context, vehicleID string) ([]domain.Trim, error)
	Colors(ctx context.Context, vehicleID string) ([]domain.Color, error)
	Packages(ctx context.Context, vehicleID string) ([]domain.Package, error)
	Options(ctx context.Context, vehicleID string) ([]domain.Option, error)
}
