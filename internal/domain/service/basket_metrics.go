package service

import "time"

// BasketMetrics records basket activity.
type BasketMetrics interface {
	// ObserveMutation counts one basket mutation and its outcome.
	ObserveMutation(op string, err error)

	// ObserveStorage records the latency of one storage round-trip.
	ObserveStorage(op string, elapsed time.Duration, err error)
}
