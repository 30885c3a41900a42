package observer

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/mapview-backend/internal/adapter/cache"
	"github.com/marcos-nsantos/mapview-backend/internal/domain/valueobject"
)

// CacheObserver keeps the view's latest region in the region cache. When the
// write fails the entry is removed so readers fall back to the stored region.
type CacheObserver struct {
	viewID  uuid.UUID
	cache   cache.RegionCache
	timeout time.Duration
	logger  *zap.Logger
}

func NewCacheObserver(viewID uuid.UUID, regionCache cache.RegionCache, timeout time.Duration, logger *zap.Logger) *CacheObserver {
	return &CacheObserver{
		viewID:  viewID,
		cache:   regionCache,
		timeout: timeout,
		logger:  logger,
	}
}

func (o *CacheObserver) RegionUpdate(region valueobject.Region) {
	err := o.withTimeout(func(ctx context.Context) error {
		return o.cache.SetRegion(ctx, o.viewID, region)
	})
	if err == nil {
		return
	}
	o.logger.Warn("caching region", zap.String("view_id", o.viewID.String()), zap.Error(err))

	// The failed write may have timed out, so eviction gets its own deadline.
	err = o.withTimeout(func(ctx context.Context) error {
		return o.cache.DeleteRegion(ctx, o.viewID)
	})
	if err != nil {
		o.logger.Warn("evicting cached region", zap.String("view_id", o.viewID.String()), zap.Error(err))
	}
}

func (o *CacheObserver) withTimeout(fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), o.timeout)
	defer cancel()
	return fn(ctx)
}
