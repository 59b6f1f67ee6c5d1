package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showroomhq/showroom/pkg/domain"
)

func codes(issues []domain.ValidationIssue) []string {
	out := make([]string, 0, len(issues))
	for _, issue := range issues {
		out = append(out, issue.Code)
	}
	return out
}

func TestValidateCompleteConfiguration(t *testing.T) {
	validator := NewValidator(NewStatic(fixtureSeed()))

	state := fixtureState()
	state.TrimID = "trim-sport"
	state.ColorID = "col-red"
	state.SelectedPackageIDs = domain.IDSet{"pkg-tech"}
	state.SelectedOptionIDs = domain.IDSet{"opt-hud", "opt-tow"}

	result, err := validator.Validate(context.Background(), state)
	require.NoError(t, err)
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
}

func TestValidateMissingSelections(t *testing.T) {
	validator := NewValidator(NewStatic(fixtureSeed()))

	result, err := validator.Validate(context.Background(), fixtureState())
	require.NoError(t, err)
	assert.False(t, result.IsValid)
	assert.ElementsMatch(t, []string{CodeTrimRequired, CodeColorRequired}, codes(result.Errors))
}

func TestValidateUnknownVehicle(t *testing.T) {
	validator := NewValidator(NewStatic(fixtureSeed()))

	state := fixtureState()
	state.VehicleID = "veh-ghost"
	result, err := validator.Validate(context.Background(), state)
	require.NoError(t, err)
	assert.False(t, result.IsValid)
	assert.Equal(t, []string{CodeUnknownVehicle}, codes(result.Errors))
}

func TestValidateColorTrimAvailability(t *testing.T) {
	validator := NewValidator(NewStatic(fixtureSeed()))

	state := fixtureState()
	state.TrimID = "trim-base"
	state.ColorID = "col-red" // sport only

	result, err := validator.Validate(context.Background(), state)
	require.NoError(t, err)
	assert.Contains(t, codes(result.Errors), CodeColorNotOffered)

	state.TrimID = "trim-sport"
	result, err = validator.Validate(context.Background(), state)
	require.NoError(t, err)
	assert.NotContains(t, codes(result.Errors), CodeColorNotOffered)
}

func TestValidatePackageConflicts(t *testing.T) {
	validator := NewValidator(NewStatic(fixtureSeed()))

	state := fixtureState()
	state.TrimID = "trim-base"
	state.ColorID = "col-white"
	state.SelectedPackageIDs = domain.IDSet{"pkg-track", "pkg-comfort"}

	result, err := validator.Validate(context.Background(), state)
	require.NoError(t, err)
	assert.False(t, result.IsValid)
	// Both directions of the conflict are reported.
	conflicts := 0
	for _, code := range codes(result.Errors) {
		if code == CodePackageConflict {
			conflicts++
		}
	}
	assert.Equal(t, 2, conflicts)
}

func TestValidateOptionRequiresPackage(t *testing.T) {
	validator := NewValidator(NewStatic(fixtureSeed()))

	state := fixtureState()
	state.TrimID = "trim-base"
	state.ColorID = "col-white"
	state.SelectedOptionIDs = domain.IDSet{"opt-hud"}

	result, err := validator.Validate(context.Background(), state)
	require.NoError(t, err)
	assert.Contains(t, codes(result.Errors), CodeOptionRequires)

	state.SelectedPackageIDs = domain.IDSet{"pkg-tech"}
	result, err = validator.Validate(context.Background(), state)
	require.NoError(t, err)
	assert.True(t, result.IsValid)
}

func TestValidateUnknownIDs(t *testing.T) {
	validator := NewValidator(NewStatic(fixtureSeed()))

	state := fixtureState()
	state.TrimID = "trim-ghost"
	state.ColorID = "col-ghost"
	state.SelectedPackageIDs = domain.IDSet{"pkg-ghost"}
	state.SelectedOptionIDs = domain.IDSet{"opt-ghost"}

	result, err := validator.Validate(context.Background(), state)
	require.NoError(t, err)
	assert.ElementsMatch(t,
		[]string{CodeUnknownTrim, CodeUnknownColor, CodeUnknownPackage, CodeUnknownOption},
		codes(result.Errors))
}
