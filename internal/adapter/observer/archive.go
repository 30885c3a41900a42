package observer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/mapview-backend/internal/adapter/storage"
	"github.com/marcos-nsantos/mapview-backend/internal/domain/valueobject"
)

// ArchiveObserver uploads every region update of a view to object storage.
// RegionUpdate only enqueues; a single worker performs the uploads so the
// map view is never blocked on the network. When the queue is full the
// update is dropped.
type ArchiveObserver struct {
	viewID  uuid.UUID
	storage storage.ObjectStorage
	timeout time.Duration
	logger  *zap.Logger

	mu     sync.RWMutex
	closed bool
	queue  chan RegionEvent
	done   chan struct{}
}

func NewArchiveObserver(viewID uuid.UUID, objectStorage storage.ObjectStorage, queueSize int, timeout time.Duration, logger *zap.Logger) *ArchiveObserver {
	if queueSize < 1 {
		queueSize = 1
	}
	o := &ArchiveObserver{
		viewID:  viewID,
		storage: objectStorage,
		timeout: timeout,
		logger:  logger,
		queue:   make(chan RegionEvent, queueSize),
		done:    make(chan struct{}),
	}
	go o.run()
	return o
}

func ArchiveKey(event RegionEvent) string {
	return fmt.Sprintf("views/%s/regions/%d.json", event.ViewID, event.OccurredAt.UnixNano())
}

func (o *ArchiveObserver) RegionUpdate(region valueobject.Region) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	if o.closed {
		return
	}

	select {
	case o.queue <- newRegionEvent(o.viewID, region):
	default:
		o.logger.Warn("archive queue full, dropping region update", zap.String("view_id", o.viewID.String()))
	}
}

// Close stops accepting updates and waits until queued ones are uploaded.
func (o *ArchiveObserver) Close() error {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		<-o.done
		return nil
	}
	o.closed = true
	close(o.queue)
	o.mu.Unlock()

	<-o.done
	return nil
}

func (o *ArchiveObserver) run() {
	defer close(o.done)

	for event := range o.queue {
		if err := o.upload(event); err != nil {
			o.logger.Warn("archiving region update", zap.String("view_id", o.viewID.String()), zap.Error(err))
		}
	}
}

func (o *ArchiveObserver) upload(event RegionEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encoding region event: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), o.timeout)
	defer cancel()

	return o.storage.Upload(ctx, ArchiveKey(event), bytes.NewReader(data), "application/json", int64(len(data)))
}
