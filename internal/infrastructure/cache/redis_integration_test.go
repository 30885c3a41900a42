package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/marcos-nsantos/mapview-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/mapview-backend/internal/infrastructure/cache"
)

func setupRedis(t *testing.T) *redis.Client {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: endpoint})
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestIntegrationRegionCache(t *testing.T) {
	client := setupRedis(t)
	regionCache := cache.NewRegionCache(client, time.Minute)
	ctx := context.Background()

	t.Run("reports miss for unknown view", func(t *testing.T) {
		_, ok, err := regionCache.GetRegion(ctx, uuid.New())
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("stores and returns region", func(t *testing.T) {
		viewID := uuid.New()
		region := valueobject.NewRegion(45.0, 40.0, -70.0, -75.0)

		require.NoError(t, regionCache.SetRegion(ctx, viewID, region))

		got, ok, err := regionCache.GetRegion(ctx, viewID)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, region, got)

		ttl, err := client.TTL(ctx, cache.RegionKey(viewID)).Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, time.Duration(0))
	})

	t.Run("deletes region", func(t *testing.T) {
		viewID := uuid.New()
		require.NoError(t, regionCache.SetRegion(ctx, viewID, valueobject.NewRegion(1, 0, 1, 0)))

		require.NoError(t, regionCache.DeleteRegion(ctx, viewID))

		_, ok, err := regionCache.GetRegion(ctx, viewID)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
