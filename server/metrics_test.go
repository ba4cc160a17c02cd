package server

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func testCounterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func testGaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, g.Write(&m))
	return m.GetGauge().GetValue()
}

func TestNewMetricsCanBeConstructedMoreThanOnce(t *testing.T) {
	require.NotPanics(t, func() {
		_ = NewMetrics()
		_ = NewMetrics()
		_ = NewMetrics()
	})
}

func TestMetricsCountersAreIndependentPerInstance(t *testing.T) {
	a := NewMetrics()
	b := NewMetrics()

	a.ConnectionsAccepted.Inc()
	require.Equal(t, float64(1), testCounterValue(t, a.ConnectionsAccepted))
	require.Equal(t, float64(0), testCounterValue(t, b.ConnectionsAccepted))
}
