package cache

import (
	"context"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/mapview-backend/internal/domain/valueobject"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/cache_mocks.go -package=mocks

// RegionCache keeps the most recently notified region of each map view.
type RegionCache interface {
	SetRegion(ctx context.Context, viewID uuid.UUID, region valueobject.Region) error
	// GetRegion reports false when nothing is cached for viewID.
	GetRegion(ctx context.Context, viewID uuid.UUID) (valueobject.Region, bool, error)
	DeleteRegion(ctx context.Context, viewID uuid.UUID) error
}
