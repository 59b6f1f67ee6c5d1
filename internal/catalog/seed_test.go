package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSeed(t *testing.T) {
	seed, err := LoadSeed(filepath.Join("testdata", "catalog.yaml"))
	require.NoError(t, err)

	require.Len(t, seed.Vehicles, 1)
	assert.Equal(t, "veh-roadster", seed.Vehicles[0].ID)
	assert.Equal(t, int64(4000000), seed.Vehicles[0].BasePrice)

	require.Len(t, seed.Trims, 2)
	require.Len(t, seed.Colors, 2)
	assert.Equal(t, []string{"trim-sport"}, seed.Colors[1].TrimIDs)

	require.Len(t, seed.Packages, 3)
	assert.Equal(t, []string{"pkg-comfort"}, seed.Packages[1].ConflictsWith)

	require.Len(t, seed.Options, 2)
	assert.Equal(t, "pkg-tech", seed.Options[0].RequiresPackageID)
}

func TestLoadSeedMissingFile(t *testing.T) {
	_, err := LoadSeed(filepath.Join("testdata", "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadSeedMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("vehicles: [not : valid"), 0o644))

	_, err := LoadSeed(path)
	assert.Error(t, err)
}
