package showroom_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showroomhq/showroom"
	"github.com/showroomhq/showroom/pkg/adapters/memory"
	"github.com/showroomhq/showroom/pkg/domain"
	"github.com/showroomhq/showroom/pkg/reducer"
)

func TestSessionWizardWalkthrough(t *testing.T) {
	ctx := context.Background()
	cfg := showroom.New(memory.NewStore())
	s := cfg.Session("veh-roadster")

	state, err := s.Open(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.StepSelectTrim, state.CurrentStep)

	ok, err := s.CanProceed(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = s.SetTrim(ctx, "trim-sport")
	require.NoError(t, err)
	ok, err = s.CanProceed(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	state, err = s.NextStep(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.StepChooseColor, state.CurrentStep)

	_, err = s.SetColor(ctx, "col-red")
	require.NoError(t, err)
	state, err = s.NextStep(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.StepSelectPackages, state.CurrentStep)

	_, err = s.TogglePackage(ctx, "pkg-track")
	require.NoError(t, err)
	state, err = s.NextStep(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.StepAddFeatures, state.CurrentStep)

	_, err = s.AddOption(ctx, "opt-hud")
	require.NoError(t, err)
	state, err = s.NextStep(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.StepReview, state.CurrentStep)

	// Review gate: closed until a validation result is attached.
	ok, err = s.CanProceed(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = s.Dispatch(ctx, reducer.UpdateValidation{Validation: domain.ValidationResult{IsValid: true}})
	require.NoError(t, err)
	ok, err = s.CanProceed(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	// The wizard still never advances past review.
	state, err = s.NextStep(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.StepReview, state.CurrentStep)
}

func TestSessionBackNavigationKeepsSelections(t *testing.T) {
	ctx := context.Background()
	s := showroom.New(memory.NewStore()).Session("veh-roadster")

	_, err := s.SetTrim(ctx, "trim-base")
	require.NoError(t, err)
	_, err = s.NextStep(ctx)
	require.NoError(t, err)
	_, err = s.SetColor(ctx, "col-white")
	require.NoError(t, err)

	ok, err := s.CanGoBack(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	state, err := s.PreviousStep(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.StepSelectTrim, state.CurrentStep)
	assert.Equal(t, "col-white", state.ColorID, "selections survive navigation")

	accessible, err := s.IsStepAccessible(ctx, domain.StepChooseColor)
	require.NoError(t, err)
	assert.True(t, accessible, "completed predecessor keeps the step reachable")
}

func TestConfigurationSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	s := showroom.New(store).Session("veh-roadster")
	_, err := s.SetTrim(ctx, "trim-sport")
	require.NoError(t, err)
	_, err = s.AddPackage(ctx, "pkg-tech")
	require.NoError(t, err)

	// A fresh configurator over the same store sees the same state.
	restarted := showroom.New(store).Session("veh-roadster")
	state, err := restarted.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, "trim-sport", state.TrimID)
	assert.Equal(t, domain.IDSet{"pkg-tech"}, state.SelectedPackageIDs)
}

func TestResetAndDeleteSession(t *testing.T) {
	ctx := context.Background()
	cfg := showroom.New(memory.NewStore())
	s := cfg.Session("veh-roadster")

	_, err := s.SetNotes(ctx, "call the customer back")
	require.NoError(t, err)

	state, err := s.Reset(ctx)
	require.NoError(t, err)
	assert.Empty(t, state.Notes)

	require.NoError(t, s.Delete(ctx))
	ids, err := cfg.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestBulkUpdateThroughFacade(t *testing.T) {
	ctx := context.Background()
	s := showroom.New(memory.NewStore()).Session("veh-roadster")

	trim := "trim-sport"
	notes := "dealer demo build"
	state, err := s.BulkUpdate(ctx, domain.StatePatch{TrimID: &trim, Notes: &notes})
	require.NoError(t, err)
	assert.Equal(t, "trim-sport", state.TrimID)
	assert.Equal(t, "dealer demo build", state.Notes)
}
