package mapview

import (
	"sync"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/mapview-backend/internal/domain"
	"github.com/marcos-nsantos/mapview-backend/internal/domain/valueobject"
)

// Notifier fans a region update out to every subscribed observer. Delivery is
// synchronous, on the caller's goroutine, in subscription order.
type Notifier struct {
	mu        sync.RWMutex
	nextID    uint64
	observers []subscription
	logger    *zap.Logger
}

type subscription struct {
	id       uint64
	observer domain.RegionObserver
}

func NewNotifier(logger *zap.Logger) *Notifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Notifier{logger: logger}
}

// Subscribe registers obs and returns a func that removes it again. Calling
// the returned func more than once is a no-op.
func (n *Notifier) Subscribe(obs domain.RegionObserver) func() {
	n.mu.Lock()
	n.nextID++
	id := n.nextID
	n.observers = append(n.observers, subscription{id: id, observer: obs})
	n.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { n.remove(id) })
	}
}

func (n *Notifier) remove(id uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for i, s := range n.observers {
		if s.id == id {
			n.observers = append(n.observers[:i:i], n.observers[i+1:]...)
			return
		}
	}
}

// Notify delivers region to a snapshot of the current observers, so
// observers may subscribe or unsubscribe from inside RegionUpdate.
func (n *Notifier) Notify(region valueobject.Region) {
	n.mu.RLock()
	snapshot := make([]subscription, len(n.observers))
	copy(snapshot, n.observers)
	n.mu.RUnlock()

	for _, s := range snapshot {
		n.deliver(s.observer, region)
	}
}

func (n *Notifier) deliver(obs domain.RegionObserver, region valueobject.Region) {
	defer func() {
		if err := recover(); err != nil {
			n.logger.Error("region observer panicked",
				zap.Any("error", err),
				zap.Float64("north", region.North),
				zap.Float64("south", region.South),
				zap.Float64("east", region.East),
				zap.Float64("west", region.West),
			)
		}
	}()
	obs.RegionUpdate(region)
}

func (n *Notifier) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.observers)
}

// Observers returns the currently subscribed observers in order.
func (n *Notifier) Observers() []domain.RegionObserver {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make([]domain.RegionObserver, 0, len(n.observers))
	for _, s := range n.observers {
		out = append(out, s.observer)
	}
	return out
}
