package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showroomhq/showroom/internal/adapters/redis"
	"github.com/showroomhq/showroom/pkg/domain"
	"github.com/showroomhq/showroom/pkg/ports"
)

func newTestClient(t *testing.T) *backend.Client {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)
	return backend.NewClient(&backend.Options{Addr: mr.Addr()})
}

func TestRedisStore_Contract(t *testing.T) {
	store := redis.NewFromClient(newTestClient(t))
	ports.RunConfigStoreContract(t, store)
}

func TestRedisStore_MalformedValueTreatedAsAbsent(t *testing.T) {
	client := newTestClient(t)
	store := redis.NewFromClient(client)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "showroom:config:veh-1", "{broken", 0).Err())

	_, err := store.Load(ctx, "veh-1")
	assert.ErrorIs(t, err, domain.ErrConfigurationNotFound)
}

func TestRedisStore_Prefix(t *testing.T) {
	client := newTestClient(t)
	store := redis.NewFromClient(client, redis.WithPrefix("dealer42:"))
	ctx := context.Background()

	state := domain.NewConfigurationState("veh-2", time.Now().UTC())
	require.NoError(t, store.Save(ctx, "veh-2", state))

	val, err := client.Get(ctx, "dealer42:veh-2").Result()
	require.NoError(t, err)
	assert.Contains(t, val, `"vehicle_id":"veh-2"`)
}
