package reducer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/showroomhq/showroom/pkg/domain"
)

func TestCanProceedToNextStepPerStep(t *testing.T) {
	tests := []struct {
		name  string
		state func() domain.ConfigurationState
		want  bool
	}{
		{"select-trim without trim", func() domain.ConfigurationState {
			return newState()
		}, false},
		{"select-trim with trim", func() domain.ConfigurationState {
			s := newState()
			s.TrimID = "trim-base"
			return s
		}, true},
		{"choose-color without color", func() domain.ConfigurationState {
			s := newState()
			s.CurrentStep = domain.StepChooseColor
			return s
		}, false},
		{"choose-color with color", func() domain.ConfigurationState {
			s := newState()
			s.CurrentStep = domain.StepChooseColor
			s.ColorID = "col-white"
			return s
		}, true},
		{"select-packages is unconditional", func() domain.ConfigurationState {
			s := newState()
			s.CurrentStep = domain.StepSelectPackages
			return s
		}, true},
		{"add-features is unconditional", func() domain.ConfigurationState {
			s := newState()
			s.CurrentStep = domain.StepAddFeatures
			return s
		}, true},
		{"review without validation", func() domain.ConfigurationState {
			s := newState()
			s.CurrentStep = domain.StepReview
			return s
		}, false},
		{"review with failing validation", func() domain.ConfigurationState {
			s := newState()
			s.CurrentStep = domain.StepReview
			s.Validation = &domain.ValidationResult{IsValid: false}
			return s
		}, false},
		{"review with passing validation", func() domain.ConfigurationState {
			s := newState()
			s.CurrentStep = domain.StepReview
			s.Validation = &domain.ValidationResult{IsValid: true}
			return s
		}, true},
		{"unknown step fails closed", func() domain.ConfigurationState {
			s := newState()
			s.CurrentStep = domain.Step("limbo")
			return s
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanProceedToNextStep(tt.state()))
		})
	}
}

func TestCanGoToPreviousStep(t *testing.T) {
	s := newState()
	assert.False(t, CanGoToPreviousStep(s), "first step has no predecessor")

	for _, step := range domain.Steps()[1:] {
		s.CurrentStep = step
		assert.True(t, CanGoToPreviousStep(s), "step %s", step)
	}

	s.CurrentStep = domain.Step("limbo")
	assert.False(t, CanGoToPreviousStep(s))
}

func TestIsStepAccessible(t *testing.T) {
	s := newState()
	s.CurrentStep = domain.StepSelectPackages
	s.CompletedSteps = domain.StepSet{domain.StepSelectTrim, domain.StepChooseColor, domain.StepSelectPackages}

	// At or before the current step: always reachable.
	assert.True(t, IsStepAccessible(s, domain.StepSelectTrim))
	assert.True(t, IsStepAccessible(s, domain.StepChooseColor))
	assert.True(t, IsStepAccessible(s, domain.StepSelectPackages))

	// One step ahead, predecessor completed.
	assert.True(t, IsStepAccessible(s, domain.StepAddFeatures))

	// Two ahead: add-features not completed yet.
	assert.False(t, IsStepAccessible(s, domain.StepReview))

	assert.False(t, IsStepAccessible(s, domain.Step("limbo")))
}

func TestIsStepAccessibleFreshState(t *testing.T) {
	s := newState()
	assert.True(t, IsStepAccessible(s, domain.StepSelectTrim))
	for _, step := range domain.Steps()[1:] {
		assert.False(t, IsStepAccessible(s, step), "step %s locked on a fresh state", step)
	}
}
