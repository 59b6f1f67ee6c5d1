package domain

// Catalog entities. Prices are integer minor units (cents).

// Vehicle is a configurable model in the catalog.
type Vehicle struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	ModelYear int    `json:"model_year" yaml:"model_year"`
	BasePrice int64  `json:"base_price" yaml:"base_price"`
	Currency  string `json:"currency" yaml:"currency"`
}

// Trim is a trim level of a vehicle.
type Trim struct {
	ID        string `json:"id" yaml:"id"`
	VehicleID string `json:"vehicle_id" yaml:"vehicle_id"`
	Name      string `json:"name" yaml:"name"`
	Price     int64  `json:"price" yaml:"price"`
}

// Color is an exterior color choice. An empty TrimIDs list means the color
// is available on every trim.
type Color struct {
	ID        string   `json:"id" yaml:"id"`
	VehicleID string   `json:"vehicle_id" yaml:"vehicle_id"`
	Name      string   `json:"name" yaml:"name"`
	Hex       string   `json:"hex,omitempty" yaml:"hex,omitempty"`
	Price     int64    `json:"price" yaml:"price"`
	TrimIDs   []string `json:"trim_ids,omitempty" yaml:"trim_ids,omitempty"`
}

// AvailableFor reports whether the color can be ordered on the given trim.
func (c Color) AvailableFor(trimID string) bool {
	if len(c.TrimIDs) == 0 {
		return true
	}
	for _, id := range c.TrimIDs {
		if id == trimID {
			return true
		}
	}
	return false
}

// Package is a bundle of equipment. ConflictsWith lists package ids that
// cannot be combined with it.
type Package struct {
	ID            string   `json:"id" yaml:"id"`
	VehicleID     string   `json:"vehicle_id" yaml:"vehicle_id"`
	Name          string   `json:"name" yaml:"name"`
	Price         int64    `json:"price" yaml:"price"`
	ConflictsWith []string `json:"conflicts_with,omitempty" yaml:"conflicts_with,omitempty"`
}

// Option is a standalone feature. RequiresPackageID, when set, names a
// package that must be selected for the option to be orderable.
type Option struct {
	ID                string `json:"id" yaml:"id"`
	VehicleID         string `json:"vehicle_id" yaml:"vehicle_id"`
	Name              string `json:"name" yaml:"name"`
	Price             int64  `json:"price" yaml:"price"`
	RequiresPackageID string `json:"requires_package_id,omitempty" yaml:"requires_package_id,omitempty"`
}
