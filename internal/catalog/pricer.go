// Package catalog holds the collaborators that enrich a configuration
// from catalog data: the pricing engine and the validator. Both compute
// plain domain values; attaching them to the state happens through
// reducer actions dispatched by the host, never inside this package.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/showroomhq/showroom/pkg/domain"
	"github.com/showroomhq/showroom/pkg/ports"
)

// Pricer computes pricing breakdowns from catalog prices.
type Pricer struct {
	catalog ports.CatalogStore
	taxRate float64
}

// NewPricer creates a Pricer. taxRate is a fraction (0.19 for 19%).
func NewPricer(catalog ports.CatalogStore, taxRate float64) *Pricer {
	return &Pricer{
		catalog: catalog,
		taxRate: taxRate,
	}
}

// Price computes the breakdown for the current selections. Unknown ids
// contribute zero: pricing is informational and must never block the
// wizard; the validator is the component that reports unknown ids.
func (p *Pricer) Price(ctx context.Context, state domain.ConfigurationState) (domain.PricingBreakdown, error) {
	vehicle, err := p.catalog.Vehicle(ctx, state.VehicleID)
	if err != nil {
		if errors.Is(err, domain.ErrVehicleNotFound) {
			return domain.PricingBreakdown{}, err
		}
		return domain.PricingBreakdown{}, fmt.Errorf("pricing: load vehicle: %w", err)
	}

	breakdown := domain.PricingBreakdown{
		Currency:  vehicle.Currency,
		BasePrice: vehicle.BasePrice,
		TaxRate:   p.taxRate,
	}

	if state.TrimID != "" {
		trims, err := p.catalog.Trims(ctx, state.VehicleID)
		if err != nil {
			return domain.PricingBreakdown{}, fmt.Errorf("pricing: load trims: %w", err)
		}
		for _, trim := range trims {
			if trim.ID == state.TrimID {
				breakdown.TrimPrice = trim.Price
				break
			}
		}
	}

	if state.ColorID != "" {
		colors, err := p.catalog.Colors(ctx, state.VehicleID)
		if err != nil {
			return domain.PricingBreakdown{}, fmt.Errorf("pricing: load colors: %w", err)
		}
		for _, color := range colors {
			if color.ID == state.ColorID {
				breakdown.ColorPrice = color.Price
				break
			}
		}
	}

	if len(state.SelectedPackageIDs) > 0 {
		packages, err := p.catalog.Packages(ctx, state.VehicleID)
		if err != nil {
			return domain.PricingBreakdown{}, fmt.Errorf("pricing: load packages: %w", err)
		}
		byID := make(map[string]domain.Package, len(packages))
		for _, pkg := range packages {
			byID[pkg.ID] = pkg
		}
		for _, id := range state.SelectedPackageIDs {
			breakdown.PackagesPrice += byID[id].Price
		}
	}

	if len(state.SelectedOptionIDs) > 0 {
		options, err := p.catalog.Options(ctx, state.VehicleID)
		if err != nil {
			return domain.PricingBreakdown{}, fmt.Errorf("pricing: load options: %w", err)
		}
		byID := make(map[string]domain.Option, len(options))
		for _, opt := range options {
			byID[opt.ID] = opt
		}
		for _, id := range state.SelectedOptionIDs {
			breakdown.OptionsPrice += byID[id].Price
		}
	}

	breakdown.Subtotal = breakdown.BasePrice + breakdown.TrimPrice +
		breakdown.ColorPrice + breakdown.PackagesPrice + breakdown.OptionsPrice
	breakdown.Tax = int64(float64(breakdown.Subtotal) * p.taxRate)
	breakdown.Total = breakdown.Subtotal + breakdown.Tax
	return breakdown, nil
}
