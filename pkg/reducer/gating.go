package reducer

import "github.com/showroomhq/showroom/pkg/domain"

// CanProceedToNextStep evaluates the per-step predicate against the
// current state: select-trim needs a trim, choose-color needs a color,
// select-packages and add-features are unconditional, review needs a
// valid validation result. The query reports readiness only; NextStep
// additionally requires a successor, so the wizard never advances past
// review even when review reports ready.
func CanProceedToNextStep(s domain.ConfigurationState) bool {
	switch s.CurrentStep {
	case domain.StepSelectTrim:
		return s.TrimID != ""
	case domain.StepChooseColor:
		return s.ColorID != ""
	case domain.StepSelectPackages, domain.StepAddFeatures:
		return true
	case domain.StepReview:
		return s.Validation != nil && s.Validation.IsValid
	}
	return false
}

// CanGoToPreviousStep reports whether the wizard can retreat.
func CanGoToPreviousStep(s domain.ConfigurationState) bool {
	return s.CurrentStep.Order() > 1
}

// IsStepAccessible reports whether the user may jump to step. Steps at or
// before the current one are always reachable; a later step is reachable
// only when its predecessor has been completed. A step with no entry in
// the adjacency table fails closed.
func IsStepAccessible(s domain.ConfigurationState, step domain.Step) bool {
	if !step.Valid() {
		return false
	}
	if step.Order() <= s.CurrentStep.Order() {
		return true
	}
	prev, ok := step.Prev()
	if !ok {
		return false
	}
	return s.CompletedSteps.Contains(prev)
}
