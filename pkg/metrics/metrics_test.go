package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveScheduleRange(t *testing.T) {
	m := NewWithRegisterer("test", prometheus.NewRegistry())

	m.ObserveScheduleRange("ok")
	m.ObserveScheduleRange("ok")
	m.ObserveScheduleRange("failed")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ScheduleRangesTotal.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ScheduleRangesTotal.WithLabelValues("failed")))
}

func TestObserveScheduleRange_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() { m.ObserveScheduleRange("ok") })
}
