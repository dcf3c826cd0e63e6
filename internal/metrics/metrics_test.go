package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_ObserveResolution(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.ObserveResolution("city", OutcomeTenant, 10*time.Millisecond)
	m.ObserveResolution("city", OutcomeTenant, 10*time.Millisecond)
	m.ObserveResolution("cep", OutcomeFallback, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ResolutionsTotal.WithLabelValues("city", OutcomeTenant)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ResolutionsTotal.WithLabelValues("cep", OutcomeFallback)))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveResolution("city", OutcomeError, time.Second)
		m.ObservePreferenceWrite("user", OutcomeOK)
		m.ObserveEventPublish(OutcomeError)
	})
}
