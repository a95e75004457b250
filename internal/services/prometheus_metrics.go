package services

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	rowsClassified        *prometheus.CounterVec
	unclassifiedWarnings  prometheus.Counter
	reportsGenerated      *prometheus.CounterVec
	reportDuration        prometheus.Histogram
	aggregationsDegraded  *prometheus.CounterVec
	ledgerUploadsTotal    *prometheus.CounterVec
	ledgerUploadBytes     prometheus.Histogram
	lastUnclassifiedRatio prometheus.Gauge
	runHistorySkipped     prometheus.Counter
}

// NewPrometheusMetrics registers the collectors on the default registry, so call it once per process.
func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		rowsClassified: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_rows_classified_total",
				Help: "Total number of ledger rows classified per track",
			},
			[]string{"track"},
		),
		unclassifiedWarnings: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_unclassified_warnings_total",
				Help: "Total number of classifications whose unclassified ratio exceeded the threshold",
			},
		),
		reportsGenerated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reports_generated_total",
				Help: "Total number of report generations by outcome",
			},
			[]string{"status"},
		),
		reportDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "report_generation_duration_milliseconds",
				Help:    "Report generation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
		aggregationsDegraded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "report_aggregations_degraded_total",
				Help: "Total number of report stages that fell back to an empty table",
			},
			[]string{"stage"},
		),
		ledgerUploadsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_uploads_total",
				Help: "Total number of ledger uploads by outcome",
			},
			[]string{"status"},
		),
		ledgerUploadBytes: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_upload_bytes",
				Help:    "Size of uploaded ledger workbooks in bytes",
				Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
			},
		),
		lastUnclassifiedRatio: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "ledger_last_unclassified_ratio",
				Help: "Unclassified share of the most recently classified ledger",
			},
		),
		runHistorySkipped: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "report_run_history_skipped_total",
				Help: "Total number of report runs not recorded because the history circuit was open",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "ledger_rows_classified":
		track := tags["track"]
		if track == "" {
			return
		}
		count, err := strconv.Atoi(tags["count"])
		if err != nil || count < 0 {
			count = 1
		}
		m.rowsClassified.WithLabelValues(track).Add(float64(count))
	case "ledger_unclassified_warning":
		m.unclassifiedWarnings.Inc()
	case "report_generated":
		if status := tags["status"]; status != "" {
			m.reportsGenerated.WithLabelValues(status).Inc()
		}
	case "aggregation_degraded":
		if stage := tags["stage"]; stage != "" {
			m.aggregationsDegraded.WithLabelValues(stage).Inc()
		}
	case "run_history_skipped":
		m.runHistorySkipped.Inc()
	case "ledger_upload":
		if status := tags["status"]; status != "" {
			m.ledgerUploadsTotal.WithLabelValues(status).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "report_generation":
		m.reportDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "ledger_upload_bytes":
		m.ledgerUploadBytes.Observe(value)
	case "unclassified_ratio":
		m.lastUnclassifiedRatio.Set(value)
	}
}
