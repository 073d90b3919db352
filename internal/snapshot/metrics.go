package snapshot

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// managerMetrics is the struct-of-collectors a Manager reports through,
// following the same shape (one field per collector, registered once at
// construction) used for observability elsewhere in the retrieval pack.
type managerMetrics struct {
	activeSnapshots prometheus.Gauge
	leaksDetected   prometheus.Counter
}

var (
	metricsOnce sync.Once
	shared      *managerMetrics
)

// newManagerMetrics returns the process-wide snapshot metrics, registering
// them with the default Prometheus registry exactly once: every Manager in
// a process (tests construct several) shares one set of collectors rather
// than each racing prometheus.MustRegister on an already-registered name.
func newManagerMetrics() *managerMetrics {
	metricsOnce.Do(func() {
		shared = &managerMetrics{
			activeSnapshots: prometheus.NewGauge(prometheus.GaugeOpts{
				Name: "irecore_snapshot_active_total",
				Help: "Number of snapshots currently held open across all managers in this process.",
			}),
			leaksDetected: prometheus.NewCounter(prometheus.CounterOpts{
				Name: "irecore_snapshot_leaks_detected_total",
				Help: "Total number of snapshots flagged by DetectLeaks for exceeding LeakThreshold.",
			}),
		}
		prometheus.MustRegister(shared.activeSnapshots, shared.leaksDetected)
	})
	return shared
}
