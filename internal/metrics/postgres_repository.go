// Package metrics provides prometheus collectors for the sales-ledger
// components.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	repositoryOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "salesledger",
		Subsystem: "repository",
		Name:      "operations_total",
		Help:      "Count of transaction store operations.",
	}, []string{"operation", "status"})

	repositoryOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "salesledger",
		Subsystem: "repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of transaction store operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
)

// PostgresRepository tracks metrics for the transaction store.
type PostgresRepository struct{}

// NewPostgresRepository constructs a metrics collector for the store.
func NewPostgresRepository() *PostgresRepository {
	return &PostgresRepository{}
}

// Observe records a single store operation outcome and duration.
func (m PostgresRepository) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	repositoryOperationsTotal.WithLabelValues(operation, status).Inc()
	repositoryOperationDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
