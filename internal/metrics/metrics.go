package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeTenant   = "tenant"
	OutcomeFallback = "fallback"
	OutcomeError    = "error"
	OutcomeOK       = "ok"
)

// Metrics holds the Prometheus collectors of the geo routing service.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	ResolutionsTotal     *prometheus.CounterVec
	ResolutionDuration   *prometheus.HistogramVec
	PreferenceWrites     *prometheus.CounterVec
	ResolutionEventsSent *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		ResolutionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "georouter",
			Subsystem: "resolver",
			Name:      "resolutions_total",
			Help:      "Total number of resolutions by lookup kind and outcome",
		}, []string{"kind", "outcome"}),
		ResolutionDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "georouter",
			Subsystem: "resolver",
			Name:      "resolution_duration_seconds",
			Help:      "Store round trip time of a resolution",
			Buckets:   prometheus.DefBuckets,
		}, []string{"kind"}),
		PreferenceWrites: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "georouter",
			Subsystem: "preferences",
			Name:      "writes_total",
			Help:      "Total number of tenant preference upserts by identity kind and outcome",
		}, []string{"identity", "outcome"}),
		ResolutionEventsSent: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "georouter",
			Subsystem: "queue",
			Name:      "resolution_events_total",
			Help:      "Resolution events handed to the queue",
		}, []string{"outcome"}),
	}
}

func (m *Metrics) ObserveResolution(kind string, outcome string, took time.Duration) {
	if m == nil {
		return
	}
	m.ResolutionsTotal.WithLabelValues(kind, outcome).Inc()
	m.ResolutionDuration.WithLabelValues(kind).Observe(took.Seconds())
}

func (m *Metrics) ObservePreferenceWrite(identityKind string, outcome string) {
	if m == nil {
		return
	}
	m.PreferenceWrites.WithLabelValues(identityKind, outcome).Inc()
}

func (m *Metrics) ObserveEventPublish(outcome string) {
	if m == nil {
		return
	}
	m.ResolutionEventsSent.WithLabelValues(outcome).Inc()
}
