package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/showroomhq/showroom/pkg/domain"
	"github.com/showroomhq/showroom/pkg/ports"
)

// Validation issue codes.
const (
	CodeUnknownVehicle  = "unknown_vehicle"
	CodeTrimRequired    = "trim_required"
	CodeUnknownTrim     = "unknown_trim"
	CodeColorRequired   = "color_required"
	CodeUnknownColor    = "unknown_color"
	CodeColorNotOffered = "color_not_offered"
	CodeUnknownPackage  = "unknown_package"
	CodePackageConflict = "package_conflict"
	CodeUnknownOption   = "unknown_option"
	CodeOptionRequires  = "option_requires_package"
)

// Validator checks a configuration against the catalog.
type Validator struct {
	catalog ports.CatalogStore
}

// NewValidator creates a Validator.
func NewValidator(catalog ports.CatalogStore) *Validator {
	return &Validator{catalog: catalog}
}

// Validate returns the validation result for the current selections. The
// result is domain data, not an error: an invalid configuration simply
// cannot pass the review gate.
func (v *Validator) Validate(ctx context.Context, state domain.ConfigurationState) (domain.ValidationResult, error) {
	result := domain.ValidationResult{
		Errors:   []domain.ValidationIssue{},
		Warnings: []domain.ValidationIssue{},
	}

	if _, err := v.catalog.Vehicle(ctx, state.VehicleID); err != nil {
		if errors.Is(err, domain.ErrVehicleNotFound) {
			result.Errors = append(result.Errors, domain.ValidationIssue{
				Code:    CodeUnknownVehicle,
				Field:   "vehicle_id",
				Message: fmt.Sprintf("vehicle %q is not in the catalog", state.VehicleID),
			})
			return result, nil
		}
		return domain.ValidationResult{}, fmt.Errorf("validate: load vehicle: %w", err)
	}

	trims, err := v.catalog.Trims(ctx, state.VehicleID)
	if err != nil {
		return domain.ValidationResult{}, fmt.Errorf("validate: load trims: %w", err)
	}
	colors, err := v.catalog.Colors(ctx, state.VehicleID)
	if err != nil {
		return domain.ValidationResult{}, fmt.Errorf("validate: load colors: %w", err)
	}
	packages, err := v.catalog.Packages(ctx, state.VehicleID)
	if err != nil {
		return domain.ValidationResult{}, fmt.Errorf("validate: load packages: %w", err)
	}
	options, err := v.catalog.Options(ctx, state.VehicleID)
	if err != nil {
		return domain.ValidationResult{}, fmt.Errorf("validate: load options: %w", err)
	}

	v.checkTrim(&result, state, trims)
	v.checkColor(&result, state, colors)
	v.checkPackages(&result, state, packages)
	v.checkOptions(&result, state, options)

	result.IsValid = len(result.Errors) == 0
	return result, nil
}

func (v *Validator) checkTrim(result *domain.ValidationResult, state domain.ConfigurationState, trims []domain.Trim) {
	if state.TrimID == "" {
		result.Errors = append(result.Errors, domain.ValidationIssue{
			Code:    CodeTrimRequired,
			Field:   "trim_id",
			Message: "a trim level must be selected",
		})
		return
	}
	for _, trim := range trims {
		if trim.ID == state.TrimID {
			return
		}
	}
	result.Errors = append(result.Errors, domain.ValidationIssue{
		Code:    CodeUnknownTrim,
		Field:   "trim_id",
		Message: fmt.Sprintf("trim %q is not offered for this vehicle", state.TrimID),
	})
}

func (v *Validator) checkColor(result *domain.ValidationResult, state domain.ConfigurationState, colors []domain.Color) {
	if state.ColorID == "" {
		result.Errors = append(result.Errors, domain.ValidationIssue{
			Code:    CodeColorRequired,
			Field:   "color_id",
			Message: "an exterior color must be selected",
		})
		return
	}
	for _, color := range colors {
		if color.ID != state.ColorID {
			continue
		}
		if state.TrimID != "" && !color.AvailableFor(state.TrimID) {
			result.Errors = append(result.Errors, domain.ValidationIssue{
				Code:    CodeColorNotOffered,
				Field:   "color_id",
				Message: fmt.Sprintf("color %q is not offered on trim %q", state.ColorID, state.TrimID),
			})
		}
		return
	}
	result.Errors = append(result.Errors, domain.ValidationIssue{
		Code:    CodeUnknownColor,
		Field:   "color_id",
		Message: fmt.Sprintf("color %q is not offered for this vehicle", state.ColorID),
	})
}

func (v *Validator) checkPackages(result *domain.ValidationResult, state domain.ConfigurationState, packages []domain.Package) {
	byID := make(map[string]domain.Package, len(packages))
	for _, pkg := range packages {
		byID[pkg.ID] = pkg
	}

	for _, id := range state.SelectedPackageIDs {
		pkg, ok := byID[id]
		if !ok {
			result.Errors = append(result.Errors, domain.ValidationIssue{
				Code:    CodeUnknownPackage,
				Field:   "selected_package_ids",
				Message: fmt.Sprintf("package %q is not offered for this vehicle", id),
			})
			continue
		}
		for _, conflict := range pkg.ConflictsWith {
			if state.SelectedPackageIDs.Contains(conflict) {
				result.Errors = append(result.Errors, domain.ValidationIssue{
					Code:    CodePackageConflict,
					Field:   "selected_package_ids",
					Message: fmt.Sprintf("package %q cannot be combined with %q", id, conflict),
				})
			}
		}
	}
}

func (v *Validator) checkOptions(result *domain.ValidationResult, state domain.ConfigurationState, options []domain.Option) {
	byID := make(map[string]domain.Option, len(options))
	for _, opt := range options {
		byID[opt.ID] = opt
	}

	for _, id := range state.SelectedOptionIDs {
		opt, ok := byID[id]
		if !ok {
			result.Errors = append(result.Errors, domain.ValidationIssue{
				Code:    CodeUnknownOption,
				Field:   "selected_option_ids",
				Message: fmt.Sprintf("option %q is not offered for this vehicle", id),
			})
			continue
		}
		if opt.RequiresPackageID != "" && !state.SelectedPackageIDs.Contains(opt.RequiresPackageID) {
			result.Errors = append(result.Errors, domain.ValidationIssue{
				Code:    CodeOptionRequires,
				Field:   "selected_option_ids",
				Message: fmt.Sprintf("option %q requires package %q", id, opt.RequiresPackageID),
			})
		}
	}
}
