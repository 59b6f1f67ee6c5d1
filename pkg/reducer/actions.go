package reducer

import "github.com/showroomhq/showroom/pkg/domain"

// Action is one mutation of the configuration state. The set is closed:
// every action is a struct in this package, dispatched by type switch in
// Apply. Implementations outside the known set are ignored (identity).
type Action interface {
	isAction()
}

// SetTrim selects the trim level.
type SetTrim struct {
	TrimID string
}

// SetColor selects the exterior color.
type SetColor struct {
	ColorID string
}

// AddPackage adds a package id if absent.
type AddPackage struct {
	PackageID string
}

// RemovePackage removes a package id if present.
type RemovePackage struct {
	PackageID string
}

// TogglePackage adds the package when absent and removes it when present.
type TogglePackage struct {
	PackageID string
}

// AddOption adds an option id if absent.
type AddOption struct {
	OptionID string
}

// RemoveOption removes an option id if present.
type RemoveOption struct {
	OptionID string
}

// ToggleOption adds the option when absent and removes it when present.
type ToggleOption struct {
	OptionID string
}

// GoToStep jumps directly to a step, gated by IsStepAccessible. It never
// alters the completed set.
type GoToStep struct {
	Step domain.Step
}

// NextStep advances the wizard, gated by CanProceedToNextStep. On success
// the departing step is marked complete.
type NextStep struct{}

// PreviousStep retreats one step. It never alters the completed set.
type PreviousStep struct{}

// MarkStepComplete records a step as completed. Idempotent.
type MarkStepComplete struct {
	Step domain.Step
}

// UpdatePricing attaches an externally computed pricing breakdown.
type UpdatePricing struct {
	Pricing domain.PricingBreakdown
}

// UpdateValidation attaches an externally computed validation result.
type UpdateValidation struct {
	Validation domain.ValidationResult
}

// AddValidationError appends an error issue and forces the result invalid.
type AddValidationError struct {
	Issue domain.ValidationIssue
}

// ClearValidationErrors drops all error issues, leaving warnings in place.
type ClearValidationErrors struct{}

// SetNotes replaces the free-form notes.
type SetNotes struct {
	Notes string
}

// Reset discards everything and returns to the default state for the same
// vehicle id.
type Reset struct{}

// BulkUpdate merges a partial state over the current one.
type BulkUpdate struct {
	Patch domain.StatePatch
}

func (SetTrim) isAction()               {}
func (SetColor) isAction()              {}
func (AddPackage) isAction()            {}
func (RemovePackage) isAction()         {}
func (TogglePackage) isAction()         {}
func (AddOption) isAction()             {}
func (RemoveOption) isAction()          {}
func (ToggleOption) isAction()          {}
func (GoToStep) isAction()              {}
func (NextStep) isAction()              {}
func (PreviousStep) isAction()          {}
func (MarkStepComplete) isAction()      {}
func (UpdatePricing) isAction()         {}
func (UpdateValidation) isAction()      {}
func (AddValidationError) isAction()    {}
func (ClearValidationErrors) isAction() {}
func (SetNotes) isAction()              {}
func (Reset) isAction()                 {}
func (BulkUpdate) isAction()            {}
