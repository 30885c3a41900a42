package domain

import "github.com/marcos-nsantos/mapview-backend/internal/domain/valueobject"

// RegionObserver is notified whenever the visible region of a map view
// changes. The region is handed over by value exactly as the map view
// computed it; no validation happens at this boundary.
type RegionObserver interface {
	RegionUpdate(region valueobject.Region)
}

// RegionObserverFunc adapts a plain function to RegionObserver.
type RegionObserverFunc func(region valueobject.Region)

func (f RegionObserverFunc) RegionUpdate(region valueobject.Region) {
	f(region)
}
