package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Requests        *prometheus.CounterVec
	EmptyResults    prometheus.Counter
	Retries         prometheus.Counter
	RequestSeconds  *prometheus.HistogramVec
	TractsCollected prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		Requests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "census_requests_total",
			Help: "Total number of requests sent to the census data API.",
		}, []string{"status"}),
		EmptyResults: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "census_empty_results_total",
			Help: "Total number of census API responses with no rows.",
		}),
		Retries: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "census_fetch_retries_total",
			Help: "Total number of repeated attempts after an empty response.",
		}),
		RequestSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "census_request_duration_seconds",
			Help:    "Duration of requests to the census data API.",
			Buckets: prometheus.DefBuckets,
		}, []string{"dataset"}),
		TractsCollected: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "census_tracts_collected",
			Help: "Number of distinct tracts collected in the current run.",
		}),
	}
}

// WriteTextfile writes every metric gathered by g to path in the text exposition
// format, for pickup by a node exporter textfile collector. An empty path is a no-op.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if path == "" {
		return nil
	}

	return prometheus.WriteToTextfile(path, g)
}
