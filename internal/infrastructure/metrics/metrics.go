package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DisputeMetrics holds every metric of the dispute lifecycle.
type DisputeMetrics struct {
	DisputesCreatedTotal       prometheus.CounterVec
	DisputesCreatedAmountTotal prometheus.CounterVec

	DisputesResolvedTotal prometheus.CounterVec
	ArbiterFeeTotal       prometheus.CounterVec

	DisputesExpiredTotal prometheus.CounterVec

	StatusTransitionsTotal prometheus.CounterVec

	SchedulerScanDuration prometheus.Histogram
}

func NewDisputeMetrics() *DisputeMetrics {
	return &DisputeMetrics{
		DisputesCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "disputes_created_total",
				Help: "Total number of created disputes",
			},
			[]string{"category"},
		),

		DisputesCreatedAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "disputes_created_amount_total",
				Help: "Total disputed amount across created disputes",
			},
			[]string{"category"},
		),

		DisputesResolvedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "disputes_resolved_total",
				Help: "Total number of disputes resolved by an arbiter decision",
			},
			[]string{"category"},
		),

		ArbiterFeeTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "arbiter_fee_total",
				Help: "Total arbiter commission across resolved disputes",
			},
			[]string{"category"},
		),

		DisputesExpiredTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "disputes_expired_total",
				Help: "Total number of disputes expired by the deadline scheduler",
			},
			[]string{"from_status"},
		),

		StatusTransitionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dispute_status_transitions_total",
				Help: "Total number of dispute status transitions",
			},
			[]string{"from", "to"},
		),

		SchedulerScanDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "deadline_scan_duration_seconds",
				Help:    "Duration of deadline scheduler scans",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
}

func (m *DisputeMetrics) RecordDisputeCreated(category string, amount float64) {
	m.DisputesCreatedTotal.WithLabelValues(category).Inc()
	m.DisputesCreatedAmountTotal.WithLabelValues(category).Add(amount)
}

func (m *DisputeMetrics) RecordDisputeResolved(category string, fee float64) {
	m.DisputesResolvedTotal.WithLabelValues(category).Inc()
	m.ArbiterFeeTotal.WithLabelValues(category).Add(fee)
}

func (m *DisputeMetrics) RecordDisputeExpired(fromStatus string) {
	m.DisputesExpiredTotal.WithLabelValues(fromStatus).Inc()
}

func (m *DisputeMetrics) RecordStatusTransition(from, to string) {
	m.StatusTransitionsTotal.WithLabelValues(from, to).Inc()
}

func (m *DisputeMetrics) ObserveScanDuration(seconds float64) {
	m.SchedulerScanDuration.Observe(seconds)
}
