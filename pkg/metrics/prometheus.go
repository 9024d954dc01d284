// Package metrics provides Prometheus metrics for the assessment service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Core business metrics
	assessmentsTotal     prometheus.Counter
	assessmentsDuplicate prometheus.Counter
	assessmentsByLevel   *prometheus.CounterVec
	scoringErrors        prometheus.Counter

	// Operational health metrics
	historySize prometheus.Gauge
	dedupeSize  prometheus.Gauge

	// HTTP performance metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with configuration options.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "sentia",
		subsystem:        "engine",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.assessmentsTotal = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "assessments_total",
		Help:      "Total number of assessments performed",
	})

	m.assessmentsDuplicate = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "assessments_duplicate_total",
		Help:      "Total number of assessments whose raw input fingerprint was seen before",
	})

	m.assessmentsByLevel = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "assessments_by_level_total",
			Help:      "Assessments partitioned by resulting sentience level",
		},
		[]string{"level"},
	)

	m.scoringErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "scoring_errors_total",
		Help:      "Total number of rejected scoring requests",
	})

	m.historySize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "history_size",
		Help:      "Current number of assessments held in history",
	})

	m.dedupeSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dedupe_size",
		Help:      "Current number of remembered input fingerprints",
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)
}

// GetRegistry returns the custom Prometheus registry for serving /metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// Package-level helpers that record on the global manager.

// RecordAssessment counts a completed assessment and its resulting level.
func RecordAssessment(levelName string) {
	globalManager.assessmentsTotal.Inc()
	globalManager.assessmentsByLevel.WithLabelValues(levelName).Inc()
}

// RecordDuplicate counts an assessment with a previously seen fingerprint.
func RecordDuplicate() {
	globalManager.assessmentsDuplicate.Inc()
}

// RecordScoringError counts a rejected scoring request.
func RecordScoringError() {
	globalManager.scoringErrors.Inc()
}

// UpdateHistorySize sets the current history size gauge.
func UpdateHistorySize(n int) {
	globalManager.historySize.Set(float64(n))
}

// UpdateDedupeSize sets the current dedupe cache size gauge.
func UpdateDedupeSize(n int) {
	globalManager.dedupeSize.Set(float64(n))
}

// RecordHTTPRequest counts an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration observes an HTTP request duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}
