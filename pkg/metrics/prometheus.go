package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	decisionsTotal *prometheus.CounterVec
	errorsTotal    *prometheus.CounterVec
	cacheLookups   *prometheus.CounterVec
	lastClose      *prometheus.GaugeVec
	latency        *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		decisionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cotsignal_decisions_total",
				Help: "Total number of trading decisions computed, by commodity and action",
			},
			[]string{"commodity", "action"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cotsignal_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		cacheLookups: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cotsignal_signal_cache_lookups_total",
				Help: "External signal cache lookups, by result",
			},
			[]string{"result"},
		),
		lastClose: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "cotsignal_last_close",
				Help: "Last resolved close price for a commodity",
			},
			[]string{"commodity"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cotsignal_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordDecision records one computed decision.
func (r *Recorder) RecordDecision(commodity, action string) {
	r.decisionsTotal.WithLabelValues(commodity, action).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordCacheLookup records a signal cache hit or miss.
func (r *Recorder) RecordCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	r.cacheLookups.WithLabelValues(result).Inc()
}

// RecordLastClose records the last resolved close for a commodity.
func (r *Recorder) RecordLastClose(commodity string, close float64) {
	r.lastClose.WithLabelValues(commodity).Set(close)
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
