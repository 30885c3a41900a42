package observer

import (
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/mapview-backend/internal/domain/valueobject"
)

// MessagePublisher is the subset of *nats.Conn the publisher needs.
type MessagePublisher interface {
	Publish(subject string, data []byte) error
}

// PublisherObserver broadcasts region updates on <prefix>.<view id>.
type PublisherObserver struct {
	viewID  uuid.UUID
	conn    MessagePublisher
	subject string
	logger  *zap.Logger
}

func NewPublisherObserver(viewID uuid.UUID, conn MessagePublisher, subjectPrefix string, logger *zap.Logger) *PublisherObserver {
	return &PublisherObserver{
		viewID:  viewID,
		conn:    conn,
		subject: subjectPrefix + "." + viewID.String(),
		logger:  logger,
	}
}

func (o *PublisherObserver) Subject() string {
	return o.subject
}

func (o *PublisherObserver) RegionUpdate(region valueobject.Region) {
	data, err := json.Marshal(newRegionEvent(o.viewID, region))
	if err != nil {
		o.logger.Error("encoding region event", zap.String("view_id", o.viewID.String()), zap.Error(err))
		return
	}
	if err := o.conn.Publish(o.subject, data); err != nil {
		o.logger.Warn("publishing region event",
			zap.String("view_id", o.viewID.String()),
			zap.String("subject", o.subject),
			zap.Error(err),
		)
	}
}
