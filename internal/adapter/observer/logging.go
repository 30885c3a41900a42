package observer

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/mapview-backend/internal/domain/valueobject"
)

type LoggingObserver struct {
	viewID uuid.UUID
	logger *zap.Logger
}

func NewLoggingObserver(viewID uuid.UUID, logger *zap.Logger) *LoggingObserver {
	return &LoggingObserver{viewID: viewID, logger: logger}
}

func (o *LoggingObserver) RegionUpdate(region valueobject.Region) {
	o.logger.Info("region updated",
		zap.String("view_id", o.viewID.String()),
		zap.Float64("north", region.North),
		zap.Float64("south", region.South),
		zap.Float64("east", region.East),
		zap.Float64("west", region.West),
		zap.Bool("crosses_antimeridian", region.CrossesAntimeridian()),
	)
}
