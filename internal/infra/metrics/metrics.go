// Package metrics exposes Prometheus instrumentation for basket activity.
package metrics

import (
	"time"

	"pos/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultSuccess = "success"
	resultError   = "error"
)

// Metrics tracks basket mutations and storage latency.
type Metrics struct {
	BasketMutations *prometheus.CounterVec
	StorageDuration *prometheus.HistogramVec
}

var _ service.BasketMetrics = (*Metrics)(nil)

// New creates a Metrics instance registered on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		BasketMutations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pos_basket_mutations_total",
			Help: "Total number of basket mutations by operation and result",
		}, []string{"op", "result"}),
		StorageDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pos_basket_storage_duration_seconds",
			Help:    "Duration of basket storage reads and writes",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"op", "result"}),
	}
}

// ObserveMutation counts one basket mutation.
func (m *Metrics) ObserveMutation(op string, err error) {
	m.BasketMutations.WithLabelValues(op, result(err)).Inc()
}

// ObserveStorage records the latency of one storage round-trip.
func (m *Metrics) ObserveStorage(op string, elapsed time.Duration, err error) {
	m.StorageDuration.WithLabelValues(op, result(err)).Observe(elapsed.Seconds())
}

func result(err error) string {
	if err != nil {
		return resultError
	}

	return resultSuccess
}

// Nop discards all observations.
type Nop struct{}

// ObserveMutation implements service.BasketMetrics.
func (Nop) ObserveMutation(string, error) {}

// ObserveStorage implements service.BasketMetrics.
func (Nop) ObserveStorage(string, time.Duration, error) {}
