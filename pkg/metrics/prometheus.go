// Package metrics provides Prometheus metrics for the carnet analytics service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the carnet service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Core business metrics: analysis throughput and quality.
	analysesComputed   *prometheus.CounterVec
	analysisLatency    *prometheus.HistogramVec
	insufficientData   *prometheus.CounterVec
	subjectNotFound    prometheus.Counter
	recordsPerAnalysis prometheus.Histogram
	parseFailures      prometheus.Counter

	// Directory metrics.
	directoryLookups  *prometheus.CounterVec
	directorySearches prometheus.Counter

	// HTTP performance metrics.
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// System performance metrics.
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global metrics manager instance on a custom registry, so default Go
// collector metrics do not leak in.
var (
	customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // singleton metrics registry
	globalManager  *Manager                   //nolint:gochecknoglobals // singleton metrics manager
)

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "carnet",
		subsystem:        "analytics",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.analysesComputed = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "analyses_computed_total",
			Help:      "Total number of metric computations, by metric name",
		},
		[]string{"metric"},
	)

	m.analysisLatency = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "analysis_latency_milliseconds",
			Help:      "Histogram of metric computation latency in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"metric"},
	)

	m.insufficientData = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "insufficient_data_total",
			Help:      "Computations degraded to an insufficient-data result, by metric name",
		},
		[]string{"metric"},
	)

	m.subjectNotFound = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "subject_not_found_total",
		Help:      "Requests naming a subject absent from the supplied snapshot",
	})

	m.recordsPerAnalysis = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "records_per_analysis",
		Help:      "Number of grade records supplied per analysis request",
		Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 5000},
	})

	m.parseFailures = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "grade_parse_failures_total",
		Help:      "Grade values that failed to parse and were dropped from aggregates",
	})

	m.directoryLookups = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: "directory",
			Name:      "lookups_total",
			Help:      "Directory lookups by operation",
		},
		[]string{"operation"},
	)

	m.directorySearches = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "directory",
		Name:      "searches_total",
		Help:      "Free-text school searches",
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

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "system",
		Name:      "memory_usage_bytes",
		Help:      "Current heap allocation in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "system",
		Name:      "goroutine_count",
		Help:      "Current number of goroutines",
	})
}

// Package-level helpers recording on the global manager.

// RecordAnalysis counts one computation of the named metric.
func RecordAnalysis(metric string) {
	globalManager.analysesComputed.WithLabelValues(metric).Inc()
}

// RecordAnalysisLatency observes one computation's duration.
func RecordAnalysisLatency(metric string, latencyMs float64) {
	globalManager.analysisLatency.WithLabelValues(metric).Observe(latencyMs)
}

// RecordInsufficientData counts a computation degraded for lack of points.
func RecordInsufficientData(metric string) {
	globalManager.insufficientData.WithLabelValues(metric).Inc()
}

// RecordSubjectNotFound counts a request for a subject absent from input.
func RecordSubjectNotFound() {
	globalManager.subjectNotFound.Inc()
}

// RecordAnalysisSize observes the snapshot size of one request.
func RecordAnalysisSize(records int) {
	globalManager.recordsPerAnalysis.Observe(float64(records))
}

// RecordParseFailure counts a grade value dropped as unparsable.
func RecordParseFailure() {
	globalManager.parseFailures.Inc()
}

// RecordDirectoryLookup counts a directory operation.
func RecordDirectoryLookup(operation string) {
	globalManager.directoryLookups.WithLabelValues(operation).Inc()
}

// RecordDirectorySearch counts a school search.
func RecordDirectorySearch() {
	globalManager.directorySearches.Inc()
}

// RecordHTTPRequest counts an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration observes an HTTP request's duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// UpdateSystemMemoryUsage sets the heap allocation gauge.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the goroutine gauge.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// GetRegistry returns the custom registry metrics are served from.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
