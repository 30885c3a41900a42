package entity

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/mapview-backend/internal/domain/valueobject"
)

const (
	MinZoomLevel = 0
	MaxZoomLevel = 22
)

type MapView struct {
	ID        uuid.UUID
	Name      string
	Region    valueobject.Region
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewMapView(name string, region valueobject.Region) *MapView {
	now := time.Now().UTC()
	return &MapView{
		ID:        uuid.New(),
		Name:      name,
		Region:    region,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (v *MapView) SetRegion(region valueobject.Region) {
	v.Region = region
	v.UpdatedAt = time.Now().UTC()
}

// ZoomLevel is the slippy map zoom at which the region's longitude span
// roughly fills one tile width.
func (v *MapView) ZoomLevel() int {
	span := v.Region.LngSpan()
	if span <= 0 {
		return MaxZoomLevel
	}
	z := int(math.Floor(math.Log2(360 / span)))
	if z < MinZoomLevel {
		return MinZoomLevel
	}
	if z > MaxZoomLevel {
		return MaxZoomLevel
	}
	return z
}
