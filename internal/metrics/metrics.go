package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	SearchesProcessed *prometheus.CounterVec
	ProviderErrors    *prometheus.CounterVec
	StageSeconds      *prometheus.HistogramVec
	ActiveSearches    prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		SearchesProcessed: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "timereach_searches_total",
			Help: "Total number of processed place searches.",
		}, []string{"status"}),
		ProviderErrors: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "timereach_provider_api_errors_total",
			Help: "Total number of errors received from upstream provider APIs.",
		}, []string{"stage"}),
		StageSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "timereach_pipeline_stage_duration_seconds",
			Help:    "Duration of each pipeline stage, including the provider round trip.",
			Buckets: prometheus.DefBuckets,
		}, []string{"stage"}),
		ActiveSearches: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "timereach_active_searches",
			Help: "Current number of searches being processed.",
		}),
	}
}
