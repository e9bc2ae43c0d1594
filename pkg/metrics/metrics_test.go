package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveHTTPRequest("GET", "/api/v1/services", "200", 0.01)
		m.ObserveDBQuery("query", 0.01)
		m.SetPoolStats(1, 1, 0, 0)
		m.SubscriptionOpened("bookings")
		m.SubscriptionClosed("bookings")
		m.SnapshotPublished("bookings")
		m.ReloadFailed("bookings")
	})
}

func TestMetrics_SyncCounters(t *testing.T) {
	m := NewWithRegistry("parlourease-test", prometheus.NewRegistry())

	m.SubscriptionOpened("bookings")
	m.SubscriptionOpened("bookings")
	m.SubscriptionClosed("bookings")
	m.SnapshotPublished("services")

	assert.Equal(t, float64(1), testutil.ToFloat64(m.SyncSubscriptions.WithLabelValues("bookings")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.SyncSnapshotsTotal.WithLabelValues("services")))
}
