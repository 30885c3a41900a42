package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/marcos-nsantos/mapview-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/mapview-backend/internal/infrastructure/config"
)

const regionKeyPrefix = "mapview:region:"

func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}

	return client, nil
}

// RegionCache stores the latest region of each map view as JSON.
type RegionCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewRegionCache(client redis.Cmdable, ttl time.Duration) *RegionCache {
	return &RegionCache{client: client, ttl: ttl}
}

func RegionKey(viewID uuid.UUID) string {
	return regionKeyPrefix + viewID.String()
}

func (c *RegionCache) SetRegion(ctx context.Context, viewID uuid.UUID, region valueobject.Region) error {
	data, err := json.Marshal(region)
	if err != nil {
		return fmt.Errorf("encoding region: %w", err)
	}
	if err := c.client.Set(ctx, RegionKey(viewID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("caching region: %w", err)
	}
	return nil
}

func (c *RegionCache) GetRegion(ctx context.Context, viewID uuid.UUID) (valueobject.Region, bool, error) {
	data, err := c.client.Get(ctx, RegionKey(viewID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return valueobject.Region{}, false, nil
		}
		return valueobject.Region{}, false, fmt.Errorf("reading cached region: %w", err)
	}

	var region valueobject.Region
	if err := json.Unmarshal(data, &region); err != nil {
		return valueobject.Region{}, false, fmt.Errorf("decoding cached region: %w", err)
	}
	return region, true, nil
}

func (c *RegionCache) DeleteRegion(ctx context.Context, viewID uuid.UUID) error {
	if err := c.client.Del(ctx, RegionKey(viewID)).Err(); err != nil {
		return fmt.Errorf("deleting cached region: %w", err)
	}
	return nil
}
