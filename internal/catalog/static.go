package catalog

import (
	"context"

	"github.com/showroomhq/showroom/pkg/domain"
	"github.com/showroomhq/showroom/pkg/ports"
)

// Static is an immutable in-memory CatalogStore built from a Seed. It
// backs the memory deployment mode and the test fixtures.
type Static struct {
	vehicles map[string]domain.Vehicle
	trims    map[string][]domain.Trim
	colors   map[string][]domain.Color
	packages map[string][]domain.Package
	options  map[string][]domain.Option
	order    []string
}

var _ ports.CatalogStore = (*Static)(nil)

// NewStatic indexes a seed by vehicle id.
func NewStatic(seed *Seed) *Static {
	s := &Static{
		vehicles: make(map[string]domain.Vehicle),
		trims:    make(map[string][]domain.Trim),
		colors:   make(map[string][]domain.Color),
		packages: make(map[string][]domain.Package),
		options:  make(map[string][]domain.Option),
	}
	for _, v := range seed.Vehicles {
		s.vehicles[v.ID] = v
		s.order = append(s.order, v.ID)
	}
	for _, t := range seed.Trims {
		s.trims[t.VehicleID] = append(s.trims[t.VehicleID], t)
	}
	for _, c := range seed.Colors {
		s.colors[c.VehicleID] = append(s.colors[c.VehicleID], c)
	}
	for _, p := range seed.Packages {
		s.packages[p.VehicleID] = append(s.packages[p.VehicleID], p)
	}
	for _, o := range seed.Options {
		s.options[o.VehicleID] = append(s.options[o.VehicleID], o)
	}
	return s
}

// Vehicles lists all vehicles in seed order.
func (s *Static) Vehicles(ctx context.Context) ([]domain.Vehicle, error) {
	out := make([]domain.Vehicle, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.vehicles[id])
	}
	return out, nil
}

// Vehicle returns one vehicle.
func (s *Static) Vehicle(ctx context.Context, id string) (domain.Vehicle, error) {
	v, ok := s.vehicles[id]
	if !ok {
		return domain.Vehicle{}, domain.ErrVehicleNotFound
	}
	return v, nil
}

// Trims lists the trims for a vehicle.
func (s *Static) Trims(ctx context.Context, vehicleID string) ([]domain.Trim, error) {
	return s.trims[vehicleID], nil
}

// Colors lists the colors for a vehicle.
func (s *Static) Colors(ctx context.Context, vehicleID string) ([]domain.Color, error) {
	return s.colors[vehicleID], nil
}

// Packages lists the packages for a vehicle.
func (s *Static) Packages(ctx context.Context, vehicleID string) ([]domain.Package, error) {
	return s.packages[vehicleID], nil
}

// Options lists the options for a vehicle.
func (s *Static) Options(ctx context.Context, vehicleID string) ([]domain.Option, error) {
	return s.options[vehicleID], nil
}
