package observer

import (
	"time"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/mapview-backend/internal/domain/valueobject"
)

// RegionEvent is the wire form of a region update sent to NATS and the
// archive bucket.
type RegionEvent struct {
	ViewID     uuid.UUID          `json:"view_id"`
	Region     valueobject.Region `json:"region"`
	OccurredAt time.Time          `json:"occurred_at"`
}

func newRegionEvent(viewID uuid.UUID, region valueobject.Region) RegionEvent {
	return RegionEvent{
		ViewID:     viewID,
		Region:     region,
		OccurredAt: time.Now().UTC(),
	}
}
