package domain

import "time"

// ConfigurationState is the in-progress vehicle configuration: the single
// aggregate owned by the store. Values flow through the reducer; nothing
// mutates a state in place.
type ConfigurationState struct {
	// VehicleID is the immutable key of the configuration.
	VehicleID string `json:"vehicle_id"`

	TrimID  string `json:"trim_id,omitempty"`
	ColorID string `json:"color_id,omitempty"`

	SelectedPackageIDs IDSet `json:"selected_package_ids"`
	SelectedOptionIDs  IDSet `json:"selected_option_ids"`

	CurrentStep    Step    `json:"current_step"`
	CompletedSteps StepSet `json:"completed_steps"`

	// Pricing and Validation are computed by external collaborators and
	// attached via reducer actions; the reducer never derives them.
	Pricing    *PricingBreakdown `json:"pricing,omitempty"`
	Validation *ValidationResult `json:"validation,omitempty"`

	Notes string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewConfigurationState returns the default state for a vehicle: first
// step, nothing selected, nothing completed.
func NewConfigurationState(vehicleID string, now time.Time) ConfigurationState {
	return ConfigurationState{
		VehicleID:          vehicleID,
		SelectedPackageIDs: IDSet{},
		SelectedOptionIDs:  IDSet{},
		CurrentStep:        StepSelectTrim,
		CompletedSteps:     StepSet{},
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// Clone returns a deep copy safe for independent mutation.
func (s ConfigurationState) Clone() ConfigurationState {
	out := s
	out.SelectedPackageIDs = s.SelectedPackageIDs.Clone()
	out.SelectedOptionIDs = s.SelectedOptionIDs.Clone()
	out.CompletedSteps = s.CompletedSteps.Clone()
	if s.Pricing != nil {
		p := *s.Pricing
		out.Pricing = &p
	}
	if s.Validation != nil {
		out.Validation = s.Validation.Clone()
	}
	return out
}

// StatePatch is a partial ConfigurationState. Nil fields are left
// untouched when the patch is applied. It serves both the construction
// merge (defaults, then stored snapshot, then caller-supplied patch) and
// the bulk-update action.
type StatePatch struct {
	TrimID             *string           `json:"trim_id,omitempty"`
	ColorID            *string           `json:"color_id,omitempty"`
	SelectedPackageIDs *[]string         `json:"selected_package_ids,omitempty"`
	SelectedOptionIDs  *[]string         `json:"selected_option_ids,omitempty"`
	CurrentStep        *Step             `json:"current_step,omitempty"`
	CompletedSteps     *[]Step           `json:"completed_steps,omitempty"`
	Pricing            *PricingBreakdown `json:"pricing,omitempty"`
	Validation         *ValidationResult `json:"validation,omitempty"`
	Notes              *string           `json:"notes,omitempty"`
}

// IsZero reports whether the patch changes nothing.
func (p StatePatch) IsZero() bool {
	return p.TrimID == nil && p.ColorID == nil &&
		p.SelectedPackageIDs == nil && p.SelectedOptionIDs == nil &&
		p.CurrentStep == nil && p.CompletedSteps == nil &&
		p.Pricing == nil && p.Validation == nil && p.Notes == nil
}

// ApplyPatch merges p over s and returns the result. Selection lists are
// de-duplicated preserving first occurrence. An unknown step in the patch
// is ignored so CurrentStep never leaves the five-step enum.
func (s ConfigurationState) ApplyPatch(p StatePatch) ConfigurationState {
	out := s.Clone()
	if p.TrimID != nil {
		out.TrimID = *p.TrimID
	}
	if p.ColorID != nil {
		out.ColorID = *p.ColorID
	}
	if p.SelectedPackageIDs != nil {
		set := IDSet{}
		for _, id := range *p.SelectedPackageIDs {
			set = set.Add(id)
		}
		out.SelectedPackageIDs = set
	}
	if p.SelectedOptionIDs != nil {
		set := IDSet{}
		for _, id := range *p.SelectedOptionIDs {
			set = set.Add(id)
		}
		out.SelectedOptionIDs = set
	}
	if p.CurrentStep != nil && p.CurrentStep.Valid() {
		out.CurrentStep = *p.CurrentStep
	}
	if p.CompletedSteps != nil {
		set := StepSet{}
		for _, step := range *p.CompletedSteps {
			if step.Valid() {
				set = set.Add(step)
			}
		}
		out.CompletedSteps = set
	}
	if p.Pricing != nil {
		pr := *p.Pricing
		out.Pricing = &pr
	}
	if p.Validation != nil {
		out.Validation = p.Validation.Clone()
	}
	if p.Notes != nil {
		out.Notes = *p.Notes
	}
	return out
}
