package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	profileMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "profile_mutations_total",
			Help: "Profile mutation round trips by operation and outcome",
		},
		[]string{"operation", "status"},
	)

	dashboardCache = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_cache_total",
			Help: "Dashboard payload cache lookups by result",
		},
		[]string{"result"},
	)

	dataFetchFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "data_fetch_failures_total",
			Help: "Record fetches that degraded to an empty result set",
		},
		[]string{"collection"},
	)

	passwordResets = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "password_reset_requests_total",
			Help: "Password reset email requests by outcome",
		},
		[]string{"status"},
	)
)

// Monitor wraps the metric vectors so services can track without
// touching prometheus directly. A nil Monitor is a no-op, which keeps
// service tests quiet.
type Monitor struct{}

func NewMonitor() *Monitor {
	return &Monitor{}
}

func (m *Monitor) TrackMutation(operation, status string) {
	if m == nil {
		return
	}
	profileMutations.WithLabelValues(operation, status).Inc()
}

func (m *Monitor) TrackCacheHit() {
	if m == nil {
		return
	}
	dashboardCache.WithLabelValues("hit").Inc()
}

func (m *Monitor) TrackCacheMiss() {
	if m == nil {
		return
	}
	dashboardCache.WithLabelValues("miss").Inc()
}

func (m *Monitor) TrackFetchFailure(collection string) {
	if m == nil {
		return
	}
	dataFetchFailures.WithLabelValues(collection).Inc()
}

func (m *Monitor) TrackPasswordReset(status string) {
	if m == nil {
		return
	}
	passwordResets.WithLabelValues(status).Inc()
}
