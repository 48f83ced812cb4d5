package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ledgerOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "salesledger",
		Subsystem: "ledger_client",
		Name:      "operations_total",
		Help:      "Count of ledger RPC operations.",
	}, []string{"operation", "status"})

	ledgerOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "salesledger",
		Subsystem: "ledger_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of ledger RPC operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
)

// LedgerClient tracks metrics for calls against the on-chain contract.
type LedgerClient struct{}

// NewLedgerClient constructs a metrics collector for ledger RPC calls.
func NewLedgerClient() *LedgerClient {
	return &LedgerClient{}
}

// Observe records a single ledger operation outcome and duration.
func (m LedgerClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	ledgerOperationsTotal.WithLabelValues(operation, status).Inc()
	ledgerOperationDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
