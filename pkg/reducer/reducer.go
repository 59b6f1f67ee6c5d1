// Package reducer holds the pure core of the configurator: the closed
// action set, the state reducer, and the step gating predicates. It has
// no side effects and no dependencies beyond the domain types, so every
// invariant of the wizard is testable in isolation.
package reducer

import (
	"time"

	"github.com/showroomhq/showroom/pkg/domain"
)

// Apply returns the state that results from dispatching action at the
// given time. It never mutates its input and never fails: unknown actions
// and gated-off transitions return the input state unchanged, without a
// timestamp bump. Every effective mutation stamps UpdatedAt with now.
func Apply(s domain.ConfigurationState, action Action, now time.Time) domain.ConfigurationState {
	switch a := action.(type) {
	case SetTrim:
		out := s.Clone()
		out.TrimID = a.TrimID
		return stamp(out, now)

	case SetColor:
		out := s.Clone()
		out.ColorID = a.ColorID
		return stamp(out, now)

	case AddPackage:
		out := s.Clone()
		out.SelectedPackageIDs = out.SelectedPackageIDs.Add(a.PackageID)
		return stamp(out, now)

	case RemovePackage:
		out := s.Clone()
		out.SelectedPackageIDs = out.SelectedPackageIDs.Remove(a.PackageID)
		return stamp(out, now)

	case TogglePackage:
		out := s.Clone()
		out.SelectedPackageIDs = out.SelectedPackageIDs.Toggle(a.PackageID)
		return stamp(out, now)

	case AddOption:
		out := s.Clone()
		out.SelectedOptionIDs = out.SelectedOptionIDs.Add(a.OptionID)
		return stamp(out, now)

	case RemoveOption:
		out := s.Clone()
		out.SelectedOptionIDs = out.SelectedOptionIDs.Remove(a.OptionID)
		return stamp(out, now)

	case ToggleOption:
		out := s.Clone()
		out.SelectedOptionIDs = out.SelectedOptionIDs.Toggle(a.OptionID)
		return stamp(out, now)

	case GoToStep:
		if !IsStepAccessible(s, a.Step) {
			return s
		}
		out := s.Clone()
		out.CurrentStep = a.Step
		return stamp(out, now)

	case NextStep:
		if !CanProceedToNextStep(s) {
			return s
		}
		next, ok := s.CurrentStep.Next()
		if !ok {
			return s
		}
		out := s.Clone()
		out.CompletedSteps = out.CompletedSteps.Add(s.CurrentStep)
		out.CurrentStep = next
		return stamp(out, now)

	case PreviousStep:
		if !CanGoToPreviousStep(s) {
			return s
		}
		prev, ok := s.CurrentStep.Prev()
		if !ok {
			return s
		}
		out := s.Clone()
		out.CurrentStep = prev
		return stamp(out, now)

	case MarkStepComplete:
		if !a.Step.Valid() {
			return s
		}
		out := s.Clone()
		out.CompletedSteps = out.CompletedSteps.Add(a.Step)
		return stamp(out, now)

	case UpdatePricing:
		out := s.Clone()
		pricing := a.Pricing
		out.Pricing = &pricing
		return stamp(out, now)

	case UpdateValidation:
		out := s.Clone()
		validation := a.Validation
		out.Validation = validation.Clone()
		return stamp(out, now)

	case AddValidationError:
		out := s.Clone()
		if out.Validation == nil {
			out.Validation = &domain.ValidationResult{}
		}
		out.Validation.Errors = append(out.Validation.Errors, a.Issue)
		out.Validation.IsValid = false
		return stamp(out, now)

	case ClearValidationErrors:
		if s.Validation == nil {
			return s
		}
		out := s.Clone()
		out.Validation.Errors = nil
		out.Validation.IsValid = true
		return stamp(out, now)

	case SetNotes:
		out := s.Clone()
		out.Notes = a.Notes
		return stamp(out, now)

	case Reset:
		return domain.NewConfigurationState(s.VehicleID, now)

	case BulkUpdate:
		if a.Patch.IsZero() {
			return s
		}
		return stamp(s.ApplyPatch(a.Patch), now)
	}

	// Unknown action: silent ignore.
	return s
}

func stamp(s domain.ConfigurationState, now time.Time) domain.ConfigurationState {
	s.UpdatedAt = now
	return s
}
