package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	oraclePollCyclesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "salesledger",
		Subsystem: "oracle_worker",
		Name:      "poll_cycles_total",
		Help:      "Count of poll cycles executed by the reconciliation worker.",
	}, []string{"status"})

	oraclePollCycleDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "salesledger",
		Subsystem: "oracle_worker",
		Name:      "poll_cycle_duration_seconds",
		Help:      "Duration of a poll cycle.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	oraclePollCycleEvents = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "salesledger",
		Subsystem: "oracle_worker",
		Name:      "poll_cycle_events",
		Help:      "Number of sale events processed per poll cycle.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	}, []string{"status"})

	oracleProcessEventTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "salesledger",
		Subsystem: "oracle_worker",
		Name:      "process_event_total",
		Help:      "Count of individual sale events processed.",
	}, []string{"status"})

	oracleProcessEventDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "salesledger",
		Subsystem: "oracle_worker",
		Name:      "process_event_duration_seconds",
		Help:      "Duration of processing one sale event.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	oracleRepairCyclesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "salesledger",
		Subsystem: "oracle_worker",
		Name:      "repair_cycles_total",
		Help:      "Count of paid-status repair passes.",
	}, []string{"status"})

	oracleRepairCycleDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "salesledger",
		Subsystem: "oracle_worker",
		Name:      "repair_cycle_duration_seconds",
		Help:      "Duration of a paid-status repair pass.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	oracleRepairAdvanced = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "salesledger",
		Subsystem: "oracle_worker",
		Name:      "repair_advanced_total",
		Help:      "Count of transactions advanced to paid by the repair pass.",
	})

	oracleWatermark = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "salesledger",
		Subsystem: "oracle_worker",
		Name:      "last_processed_block",
		Help:      "Last fully processed block height.",
	})
)

// OracleWorker tracks metrics for the reconciliation worker.
type OracleWorker struct{}

// NewOracleWorker constructs a metrics collector for the worker.
func NewOracleWorker() *OracleWorker {
	return &OracleWorker{}
}

// ObservePollCycle records one poll cycle outcome, event count and duration.
func (m OracleWorker) ObservePollCycle(err error, events int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	oraclePollCyclesTotal.WithLabelValues(status).Inc()
	oraclePollCycleDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	oraclePollCycleEvents.WithLabelValues(status).Observe(float64(events))
}

// ObserveProcessEvent records processing of one sale event.
func (m OracleWorker) ObserveProcessEvent(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	oracleProcessEventTotal.WithLabelValues(status).Inc()
	oracleProcessEventDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}

// ObserveRepairCycle records one paid-status repair pass.
func (m OracleWorker) ObserveRepairCycle(err error, advanced int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	oracleRepairCyclesTotal.WithLabelValues(status).Inc()
	oracleRepairCycleDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	if advanced > 0 {
		oracleRepairAdvanced.Add(float64(advanced))
	}
}

// SetWatermark publishes the last fully processed block height.
func (m OracleWorker) SetWatermark(height uint64) {
	oracleWatermark.Set(float64(height))
}
