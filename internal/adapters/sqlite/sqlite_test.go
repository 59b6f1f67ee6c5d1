package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showroomhq/showroom/internal/catalog"
	"github.com/showroomhq/showroom/pkg/domain"
	"github.com/showroomhq/showroom/pkg/ports"
)

func openTestBackend(t *testing.T) *Backend {
	t.Helper()
	backend, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { backend.Close() })
	return backend
}

func testSeed() *catalog.Seed {
	return &catalog.Seed{
		Vehicles: []domain.Vehicle{
			{ID: "veh-roadster", Name: "Roadster", ModelYear: 2026, BasePrice: 4200000, Currency: "USD"},
		},
		Trims: []domain.Trim{
			{ID: "trim-base", VehicleID: "veh-roadster", Name: "Base", Price: 0},
			{ID: "trim-sport", VehicleID: "veh-roadster", Name: "Sport", Price: 350000},
		},
		Colors: []domain.Color{
			{ID: "col-white", VehicleID: "veh-roadster", Name: "Arctic White", Hex: "#ffffff", Price: 0},
			{ID: "col-red", VehicleID: "veh-roadster", Name: "Signal Red", Hex: "#c1121f", Price: 95000, TrimIDs: []string{"trim-sport"}},
		},
		Packages: []domain.Package{
			{ID: "pkg-tech", VehicleID: "veh-roadster", Name: "Tech Package", Price: 180000},
			{ID: "pkg-track", VehicleID: "veh-roadster", Name: "Track Package", Price: 420000, ConflictsWith: []string{"pkg-comfort"}},
		},
		Options: []domain.Option{
			{ID: "opt-hud", VehicleID: "veh-roadster", Name: "Head-Up Display", Price: 60000, RequiresPackageID: "pkg-tech"},
		},
	}
}

func TestCatalogSeedRoundTrip(t *testing.T) {
	backend := openTestBackend(t)
	store := backend.Catalog()
	ctx := context.Background()

	require.NoError(t, store.Seed(ctx, testSeed()))

	vehicles, err := store.Vehicles(ctx)
	require.NoError(t, err)
	require.Len(t, vehicles, 1)
	assert.Equal(t, "Roadster", vehicles[0].Name)
	assert.Equal(t, int64(4200000), vehicles[0].BasePrice)

	vehicle, err := store.Vehicle(ctx, "veh-roadster")
	require.NoError(t, err)
	assert.Equal(t, 2026, vehicle.ModelYear)

	trims, err := store.Trims(ctx, "veh-roadster")
	require.NoError(t, err)
	require.Len(t, trims, 2)

	colors, err := store.Colors(ctx, "veh-roadster")
	require.NoError(t, err)
	require.Len(t, colors, 2)
	assert.Empty(t, colors[0].TrimIDs)
	assert.Equal(t, []string{"trim-sport"}, colors[1].TrimIDs)

	packages, err := store.Packages(ctx, "veh-roadster")
	require.NoError(t, err)
	require.Len(t, packages, 2)
	assert.Equal(t, []string{"pkg-comfort"}, packages[1].ConflictsWith)

	options, err := store.Options(ctx, "veh-roadster")
	require.NoError(t, err)
	require.Len(t, options, 1)
	assert.Equal(t, "pkg-tech", options[0].RequiresPackageID)
}

func TestCatalogSeedReplacesPreviousContents(t *testing.T) {
	backend := openTestBackend(t)
	store := backend.Catalog()
	ctx := context.Background()

	require.NoError(t, store.Seed(ctx, testSeed()))

	replacement := &catalog.Seed{
		Vehicles: []domain.Vehicle{
			{ID: "veh-wagon", Name: "Wagon", ModelYear: 2026, BasePrice: 3100000, Currency: "USD"},
		},
	}
	require.NoError(t, store.Seed(ctx, replacement))

	vehicles, err := store.Vehicles(ctx)
	require.NoError(t, err)
	require.Len(t, vehicles, 1)
	assert.Equal(t, "veh-wagon", vehicles[0].ID)

	trims, err := store.Trims(ctx, "veh-roadster")
	require.NoError(t, err)
	assert.Empty(t, trims)
}

func TestCatalogVehicleNotFound(t *testing.T) {
	backend := openTestBackend(t)

	_, err := backend.Catalog().Vehicle(context.Background(), "veh-ghost")
	assert.ErrorIs(t, err, domain.ErrVehicleNotFound)
}

func testOrder(id, dealerID string, status domain.OrderStatus, createdAt time.Time) domain.Order {
	state := domain.NewConfigurationState("veh-roadster", createdAt)
	state.TrimID = "trim-sport"
	state.CurrentStep = domain.StepReview
	return domain.Order{
		ID:            id,
		DealerID:      dealerID,
		CustomerName:  "A. Customer",
		VehicleID:     "veh-roadster",
		Configuration: state,
		Status:        status,
		Notes:         "deliver before spring",
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}
}

func TestOrderCreateAndGet(t *testing.T) {
	backend := openTestBackend(t)
	store := backend.Orders()
	ctx := context.Background()

	created := testOrder("ord-1", "dealer-east", domain.OrderPending, time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC))
	require.NoError(t, store.Create(ctx, created))

	got, err := store.Get(ctx, "ord-1")
	require.NoError(t, err)
	assert.Equal(t, created.DealerID, got.DealerID)
	assert.Equal(t, created.Status, got.Status)
	assert.Equal(t, created.Configuration.TrimID, got.Configuration.TrimID)
	assert.True(t, created.CreatedAt.Equal(got.CreatedAt))
}

func TestOrderGetNotFound(t *testing.T) {
	backend := openTestBackend(t)

	_, err := backend.Orders().Get(context.Background(), "ord-ghost")
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestOrderListFilters(t *testing.T) {
	backend := openTestBackend(t)
	store := backend.Orders()
	ctx := context.Background()

	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	require.NoError(t, store.Create(ctx, testOrder("ord-1", "dealer-east", domain.OrderPending, base)))
	require.NoError(t, store.Create(ctx, testOrder("ord-2", "dealer-west", domain.OrderPending, base.Add(time.Hour))))
	require.NoError(t, store.Create(ctx, testOrder("ord-3", "dealer-east", domain.OrderConfirmed, base.Add(2*time.Hour))))

	all, err := store.List(ctx, ports.OrderFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "ord-3", all[0].ID, "newest first")

	east, err := store.List(ctx, ports.OrderFilter{DealerID: "dealer-east"})
	require.NoError(t, err)
	require.Len(t, east, 2)

	pendingEast, err := store.List(ctx, ports.OrderFilter{DealerID: "dealer-east", Status: domain.OrderPending})
	require.NoError(t, err)
	require.Len(t, pendingEast, 1)
	assert.Equal(t, "ord-1", pendingEast[0].ID)
}

func TestOrderUpdate(t *testing.T) {
	backend := openTestBackend(t)
	store := backend.Orders()
	ctx := context.Background()

	created := testOrder("ord-1", "dealer-east", domain.OrderPending, time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC))
	require.NoError(t, store.Create(ctx, created))

	created.Status = domain.OrderConfirmed
	created.DealerID = "dealer-west"
	created.UpdatedAt = created.UpdatedAt.Add(time.Hour)
	require.NoError(t, store.Update(ctx, created))

	got, err := store.Get(ctx, "ord-1")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderConfirmed, got.Status)
	assert.Equal(t, "dealer-west", got.DealerID)

	missing := testOrder("ord-ghost", "dealer-east", domain.OrderPending, time.Now().UTC())
	assert.ErrorIs(t, store.Update(ctx, missing), domain.ErrOrderNotFound)
}
