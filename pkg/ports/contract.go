package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showroomhq/showroom/pkg/domain"
)

// RunConfigStoreContract verifies that a ConfigStore implementation
// adheres to the interface contract. Every adapter test runs this suite.
func RunConfigStoreContract(t *testing.T, store ConfigStore) {
	ctx := context.Background()
	vehicleID := "contract-vehicle-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		state := domain.NewConfigurationState(vehicleID, time.Now().UTC())
		state.TrimID = "trim-sport"
		state.SelectedPackageIDs = state.SelectedPackageIDs.Add("pkg-towing").Add("pkg-winter")
		state.CompletedSteps = state.CompletedSteps.Add(domain.StepSelectTrim)
		state.CurrentStep = domain.StepChooseColor
		state.Notes = "customer prefers matte finish"

		err := store.Save(ctx, vehicleID, state)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, vehicleID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, state.VehicleID, loaded.VehicleID)
		assert.Equal(t, state.TrimID, loaded.TrimID)
		assert.Equal(t, state.CurrentStep, loaded.CurrentStep)
		assert.Equal(t, state.SelectedPackageIDs, loaded.SelectedPackageIDs)
		assert.Equal(t, state.CompletedSteps, loaded.CompletedSteps)
		assert.Equal(t, state.Notes, loaded.Notes)
	})

	t.Run("Save preserves selection order", func(t *testing.T) {
		state := domain.NewConfigurationState(vehicleID, time.Now().UTC())
		state.SelectedOptionIDs = domain.IDSet{"opt-c", "opt-a", "opt-b"}

		require.NoError(t, store.Save(ctx, vehicleID, state))
		loaded, err := store.Load(ctx, vehicleID)
		require.NoError(t, err)
		assert.Equal(t, domain.IDSet{"opt-c", "opt-a", "opt-b"}, loaded.SelectedOptionIDs)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+vehicleID)
		assert.ErrorIs(t, err, domain.ErrConfigurationNotFound)
	})

	t.Run("Overwrite", func(t *testing.T) {
		first := domain.NewConfigurationState(vehicleID, time.Now().UTC())
		first.ColorID = "color-red"
		require.NoError(t, store.Save(ctx, vehicleID, first))

		second := first.Clone()
		second.ColorID = "color-blue"
		require.NoError(t, store.Save(ctx, vehicleID, second))

		loaded, err := store.Load(ctx, vehicleID)
		require.NoError(t, err)
		assert.Equal(t, "color-blue", loaded.ColorID)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, vehicleID, domain.NewConfigurationState(vehicleID, time.Now().UTC())))

		err := store.Delete(ctx, vehicleID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, vehicleID)
		assert.ErrorIs(t, err, domain.ErrConfigurationNotFound, "Load after Delete should report absence")

		// Deleting an absent record is not an error.
		assert.NoError(t, store.Delete(ctx, vehicleID))
	})

	t.Run("List", func(t *testing.T) {
		id1 := vehicleID + "-1"
		id2 := vehicleID + "-2"
		require.NoError(t, store.Save(ctx, id1, domain.NewConfigurationState(id1, time.Now().UTC())))
		require.NoError(t, store.Save(ctx, id2, domain.NewConfigurationState(id2, time.Now().UTC())))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, ids, id1)
		assert.Contains(t, ids, id2)
	})
}
