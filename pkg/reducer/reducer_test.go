package reducer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showroomhq/showroom/pkg/domain"
)

var (
	t0 = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	t1 = t0.Add(time.Minute)
)

func newState() domain.ConfigurationState {
	return domain.NewConfigurationState("veh-roadster", t0)
}

// fakeAction is an action type the reducer has never heard of.
type fakeAction struct{}

func (fakeAction) isAction() {}

func TestApplyUnknownActionIsIdentity(t *testing.T) {
	s := newState()
	out := Apply(s, fakeAction{}, t1)
	assert.Equal(t, s, out)
	assert.Equal(t, t0, out.UpdatedAt, "no timestamp bump on ignored action")
}

func TestApplyNeverMutatesInput(t *testing.T) {
	s := newState()
	s.SelectedPackageIDs = domain.IDSet{"pkg-a"}
	before := s.Clone()

	Apply(s, AddPackage{PackageID: "pkg-b"}, t1)
	Apply(s, TogglePackage{PackageID: "pkg-a"}, t1)
	Apply(s, SetTrim{TrimID: "trim-x"}, t1)
	Apply(s, Reset{}, t1)

	assert.Equal(t, before, s)
}

func TestSetTrimAndColorStampUpdatedAt(t *testing.T) {
	s := newState()

	out := Apply(s, SetTrim{TrimID: "trim-sport"}, t1)
	assert.Equal(t, "trim-sport", out.TrimID)
	assert.Equal(t, t1, out.UpdatedAt)
	assert.Equal(t, t0, out.CreatedAt, "created timestamp never changes")

	out = Apply(out, SetColor{ColorID: "col-red"}, t1)
	assert.Equal(t, "col-red", out.ColorID)
}

func TestPackageSelectionLaws(t *testing.T) {
	s := newState()

	once := Apply(s, AddPackage{PackageID: "pkg-a"}, t1)
	twice := Apply(once, AddPackage{PackageID: "pkg-a"}, t1)
	assert.Equal(t, domain.IDSet{"pkg-a"}, twice.SelectedPackageIDs, "add is idempotent")

	removed := Apply(twice, RemovePackage{PackageID: "pkg-a"}, t1)
	assert.Empty(t, removed.SelectedPackageIDs)

	// Removing an absent id is a no-op on the selection.
	removedAgain := Apply(removed, RemovePackage{PackageID: "pkg-a"}, t1)
	assert.Empty(t, removedAgain.SelectedPackageIDs)

	toggledOn := Apply(s, TogglePackage{PackageID: "pkg-b"}, t1)
	assert.True(t, toggledOn.SelectedPackageIDs.Contains("pkg-b"))
	toggledOff := Apply(toggledOn, TogglePackage{PackageID: "pkg-b"}, t1)
	assert.False(t, toggledOff.SelectedPackageIDs.Contains("pkg-b"), "double toggle restores the selection")
}

func TestToggleMidListReappendsAtEnd(t *testing.T) {
	s := newState()
	for _, id := range []string{"pkg-a", "pkg-b", "pkg-c"} {
		s = Apply(s, AddPackage{PackageID: id}, t1)
	}

	off := Apply(s, TogglePackage{PackageID: "pkg-b"}, t1)
	assert.Equal(t, domain.IDSet{"pkg-a", "pkg-c"}, off.SelectedPackageIDs,
		"removal keeps the order of the rest")

	// Toggling back on is a fresh insertion: the id rejoins at the end
	// rather than at its old position.
	on := Apply(off, TogglePackage{PackageID: "pkg-b"}, t1)
	assert.Equal(t, domain.IDSet{"pkg-a", "pkg-c", "pkg-b"}, on.SelectedPackageIDs)
}

func TestOptionSelectionPreservesInsertionOrder(t *testing.T) {
	s := newState()
	s = Apply(s, AddOption{OptionID: "opt-c"}, t1)
	s = Apply(s, AddOption{OptionID: "opt-a"}, t1)
	s = Apply(s, AddOption{OptionID: "opt-b"}, t1)
	s = Apply(s, AddOption{OptionID: "opt-a"}, t1)

	assert.Equal(t, domain.IDSet{"opt-c", "opt-a", "opt-b"}, s.SelectedOptionIDs)
}

func TestNextStepGatedWithoutSelection(t *testing.T) {
	s := newState()

	out := Apply(s, NextStep{}, t1)
	assert.Equal(t, domain.StepSelectTrim, out.CurrentStep, "no trim selected, gate holds")
	assert.Equal(t, s, out)
}

func TestNextStepAdvancesAndMarksComplete(t *testing.T) {
	s := Apply(newState(), SetTrim{TrimID: "trim-base"}, t1)

	out := Apply(s, NextStep{}, t1)
	assert.Equal(t, domain.StepChooseColor, out.CurrentStep)
	assert.True(t, out.CompletedSteps.Contains(domain.StepSelectTrim))
}

func TestNextStepNeverLeavesReview(t *testing.T) {
	s := newState()
	s.CurrentStep = domain.StepReview
	s.Validation = &domain.ValidationResult{IsValid: true}

	out := Apply(s, NextStep{}, t1)
	assert.Equal(t, domain.StepReview, out.CurrentStep, "review has no successor")
	assert.Equal(t, s, out)
}

func TestPreviousStepRetreatsWithoutTouchingCompleted(t *testing.T) {
	s := Apply(newState(), SetTrim{TrimID: "trim-base"}, t1)
	s = Apply(s, NextStep{}, t1)

	back := Apply(s, PreviousStep{}, t1)
	assert.Equal(t, domain.StepSelectTrim, back.CurrentStep)
	assert.True(t, back.CompletedSteps.Contains(domain.StepSelectTrim), "completion survives going back")

	// Already on the first step: gate holds.
	again := Apply(back, PreviousStep{}, t1)
	assert.Equal(t, domain.StepSelectTrim, again.CurrentStep)
}

func TestGoToStepRespectsAccessibility(t *testing.T) {
	s := newState()

	out := Apply(s, GoToStep{Step: domain.StepReview}, t1)
	assert.Equal(t, domain.StepSelectTrim, out.CurrentStep, "review not reachable from a fresh state")

	out = Apply(s, GoToStep{Step: domain.Step("teleport")}, t1)
	assert.Equal(t, s, out, "unknown step is ignored")

	s = Apply(s, MarkStepComplete{Step: domain.StepSelectTrim}, t1)
	out = Apply(s, GoToStep{Step: domain.StepChooseColor}, t1)
	assert.Equal(t, domain.StepChooseColor, out.CurrentStep)

	// Jumping backward is always allowed.
	back := Apply(out, GoToStep{Step: domain.StepSelectTrim}, t1)
	assert.Equal(t, domain.StepSelectTrim, back.CurrentStep)
}

func TestMarkStepCompleteIsIdempotent(t *testing.T) {
	s := newState()
	s = Apply(s, MarkStepComplete{Step: domain.StepChooseColor}, t1)
	s = Apply(s, MarkStepComplete{Step: domain.StepChooseColor}, t1)

	assert.Equal(t, domain.StepSet{domain.StepChooseColor}, s.CompletedSteps)

	out := Apply(s, MarkStepComplete{Step: domain.Step("bogus")}, t1)
	assert.Equal(t, s, out, "unknown step is ignored")
}

func TestValidationActions(t *testing.T) {
	s := newState()

	// ClearValidationErrors without a validation result is identity.
	out := Apply(s, ClearValidationErrors{}, t1)
	assert.Equal(t, s, out)

	issue := domain.ValidationIssue{Code: "trim_required", Field: "trim_id", Message: "a trim level must be selected"}
	out = Apply(s, AddValidationError{Issue: issue}, t1)
	require.NotNil(t, out.Validation)
	assert.False(t, out.Validation.IsValid)
	assert.Len(t, out.Validation.Errors, 1)

	warning := domain.ValidationIssue{Code: "color_popular", Field: "color_id", Message: "long delivery time"}
	out = Apply(out, UpdateValidation{Validation: domain.ValidationResult{
		IsValid:  false,
		Errors:   []domain.ValidationIssue{issue},
		Warnings: []domain.ValidationIssue{warning},
	}}, t1)

	cleared := Apply(out, ClearValidationErrors{}, t1)
	require.NotNil(t, cleared.Validation)
	assert.True(t, cleared.Validation.IsValid)
	assert.Empty(t, cleared.Validation.Errors)
	assert.Len(t, cleared.Validation.Warnings, 1, "warnings survive clearing")
}

func TestUpdatePricingCopiesBreakdown(t *testing.T) {
	pricing := domain.PricingBreakdown{Currency: "USD", BasePrice: 4200000, Subtotal: 4200000, Total: 4200000}
	out := Apply(newState(), UpdatePricing{Pricing: pricing}, t1)

	require.NotNil(t, out.Pricing)
	pricing.BasePrice = 0
	assert.Equal(t, int64(4200000), out.Pricing.BasePrice, "reducer holds its own copy")
}

func TestResetReturnsDefaultsForSameVehicle(t *testing.T) {
	s := Apply(newState(), SetTrim{TrimID: "trim-sport"}, t1)
	s = Apply(s, NextStep{}, t1)
	s = Apply(s, SetNotes{Notes: "customer call pending"}, t1)

	out := Apply(s, Reset{}, t1)
	assert.Equal(t, domain.NewConfigurationState("veh-roadster", t1), out)
}

func TestBulkUpdate(t *testing.T) {
	s := newState()

	out := Apply(s, BulkUpdate{}, t1)
	assert.Equal(t, s, out, "empty patch is identity")

	trim := "trim-sport"
	packages := []string{"pkg-a", "pkg-a", "pkg-b"}
	badStep := domain.Step("warp")
	out = Apply(s, BulkUpdate{Patch: domain.StatePatch{
		TrimID:             &trim,
		SelectedPackageIDs: &packages,
		CurrentStep:        &badStep,
	}}, t1)

	assert.Equal(t, "trim-sport", out.TrimID)
	assert.Equal(t, domain.IDSet{"pkg-a", "pkg-b"}, out.SelectedPackageIDs, "lists are de-duplicated")
	assert.Equal(t, domain.StepSelectTrim, out.CurrentStep, "invalid step never enters the state")
	assert.Equal(t, t1, out.UpdatedAt)
}

// TestFullWizardWalk drives a configuration from the first step to review
// the way a client would.
func TestFullWizardWalk(t *testing.T) {
	now := t0
	tick := func() time.Time {
		now = now.Add(time.Second)
		return now
	}

	s := newState()
	s = Apply(s, SetTrim{TrimID: "trim-sport"}, tick())
	s = Apply(s, NextStep{}, tick())
	s = Apply(s, SetColor{ColorID: "col-red"}, tick())
	s = Apply(s, NextStep{}, tick())
	s = Apply(s, TogglePackage{PackageID: "pkg-track"}, tick())
	s = Apply(s, NextStep{}, tick())
	s = Apply(s, AddOption{OptionID: "opt-hud"}, tick())
	s = Apply(s, NextStep{}, tick())

	require.Equal(t, domain.StepReview, s.CurrentStep)
	for _, step := range domain.Steps()[:4] {
		assert.True(t, s.CompletedSteps.Contains(step), "step %s completed", step)
	}
	assert.False(t, CanProceedToNextStep(s), "review gate closed until validation passes")

	s = Apply(s, UpdateValidation{Validation: domain.ValidationResult{IsValid: true}}, tick())
	assert.True(t, CanProceedToNextStep(s))

	// Even with the gate open, there is nowhere further to go.
	final := Apply(s, NextStep{}, tick())
	assert.Equal(t, domain.StepReview, final.CurrentStep)
}
