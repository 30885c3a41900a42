package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "mapview"

type RegionMetrics struct {
	Updates  prometheus.Counter
	Inverted prometheus.Counter
	LatSpan  prometheus.Histogram
	LngSpan  prometheus.Histogram
}

var spanBuckets = []float64{0.01, 0.1, 0.5, 1, 5, 10, 45, 90, 180, 360}

func NewRegionMetrics(reg prometheus.Registerer) *RegionMetrics {
	factory := promauto.With(reg)
	return &RegionMetrics{
		Updates: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "region",
			Name:      "updates_total",
			Help:      "Total region updates delivered to observers",
		}),
		Inverted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "region",
			Name:      "inverted_total",
			Help:      "Region updates delivered with north below south",
		}),
		LatSpan: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "region",
			Name:      "lat_span_degrees",
			Help:      "Latitude span of delivered regions",
			Buckets:   spanBuckets,
		}),
		LngSpan: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "region",
			Name:      "lng_span_degrees",
			Help:      "Longitude span of delivered regions",
			Buckets:   spanBuckets,
		}),
	}
}

type HTTPMetrics struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	factory := promauto.With(reg)
	return &HTTPMetrics{
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed",
		}, []string{"method", "path", "status"}),
		Duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"method", "path"}),
	}
}
