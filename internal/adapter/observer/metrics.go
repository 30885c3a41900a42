package observer

import (
	"github.com/marcos-nsantos/mapview-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/mapview-backend/internal/infrastructure/observability"
)

// MetricsObserver records every delivered region. The metrics are shared by
// all views so it carries no view id.
type MetricsObserver struct {
	metrics *observability.RegionMetrics
}

func NewMetricsObserver(metrics *observability.RegionMetrics) *MetricsObserver {
	return &MetricsObserver{metrics: metrics}
}

func (o *MetricsObserver) RegionUpdate(region valueobject.Region) {
	o.metrics.Updates.Inc()
	if region.North < region.South {
		o.metrics.Inverted.Inc()
		return
	}
	o.metrics.LatSpan.Observe(region.LatSpan())
	o.metrics.LngSpan.Observe(region.LngSpan())
}
