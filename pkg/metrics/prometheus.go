// Package metrics provides Prometheus metrics for the Hermes scoring service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the Hermes service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	constLabels      prometheus.Labels
	registry         prometheus.Registerer

	// Scoring engine
	scoresResolved       *prometheus.CounterVec
	scoringErrors        *prometheus.CounterVec
	scoringLatency       prometheus.Histogram
	compositesRecomputed prometheus.Counter

	// Submission pipeline outcomes
	submissions *prometheus.CounterVec

	// Repository
	athletesTotal           prometheus.Gauge
	resultsTotal            prometheus.Gauge
	repositoryUpdateLatency prometheus.Histogram
	repositoryQueryLatency  prometheus.Histogram

	// Queue
	queueSize              prometheus.Gauge
	queueCapacity          prometheus.Gauge
	queueUtilization       prometheus.Gauge
	queueEnqueued          prometheus.Counter
	queueDequeued          prometheus.Counter
	queueEnqueueErrors     prometheus.Counter
	queueProcessingLatency prometheus.Histogram

	// Workers
	workerCount             prometheus.Gauge
	workerActiveCount       prometheus.Gauge
	workerIdleCount         prometheus.Gauge
	workerProcessingLatency prometheus.Histogram
	workerErrors            prometheus.Counter

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	authFailures        *prometheus.CounterVec

	errorsByComponent *prometheus.CounterVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "hermes",
		subsystem:        "scoring",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) counter(name, help string) prometheus.Counter {
	return promauto.With(m.registry).NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help, ConstLabels: m.constLabels,
	})
}

func (m *Manager) counterVec(name, help string, labels ...string) *prometheus.CounterVec {
	return promauto.With(m.registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help, ConstLabels: m.constLabels,
	}, labels)
}

func (m *Manager) gauge(name, help string) prometheus.Gauge {
	return promauto.With(m.registry).NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help, ConstLabels: m.constLabels,
	})
}

func (m *Manager) histogram(name, help string) prometheus.Histogram {
	return promauto.With(m.registry).NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help, ConstLabels: m.constLabels,
		Buckets: m.histogramBuckets,
	})
}

func (m *Manager) initializeMetrics() {
	m.scoresResolved = m.counterVec("scores_resolved_total", "Scores resolved by test type", "test")
	m.scoringErrors = m.counterVec("scoring_errors_total", "Scoring failures by error kind", "kind")
	m.scoringLatency = m.histogram("scoring_latency_milliseconds", "Time to resolve and store one submission")
	m.compositesRecomputed = m.counter("composites_recomputed_total", "Composite recomputations after a score change")

	m.submissions = m.counterVec("submissions_total", "Submissions by outcome", "outcome")

	m.athletesTotal = m.gauge("athletes_total", "Registered athletes")
	m.resultsTotal = m.gauge("results_total", "Stored athlete x occasion results")
	m.repositoryUpdateLatency = m.histogram("repository_update_latency_milliseconds", "Result update latency")
	m.repositoryQueryLatency = m.histogram("repository_query_latency_milliseconds", "Result query latency")

	m.queueSize = m.gauge("queue_size", "Submissions waiting in the queue")
	m.queueCapacity = m.gauge("queue_capacity", "Queue capacity")
	m.queueUtilization = m.gauge("queue_utilization_ratio", "Queue size over capacity")
	m.queueEnqueued = m.counter("queue_enqueued_total", "Submissions enqueued")
	m.queueDequeued = m.counter("queue_dequeued_total", "Submissions dequeued")
	m.queueEnqueueErrors = m.counter("queue_enqueue_errors_total", "Enqueue attempts rejected")
	m.queueProcessingLatency = m.histogram("queue_processing_latency_milliseconds", "Enqueue latency")

	m.workerCount = m.gauge("worker_count", "Configured workers")
	m.workerActiveCount = m.gauge("worker_active_count", "Workers processing a submission")
	m.workerIdleCount = m.gauge("worker_idle_count", "Workers waiting for work")
	m.workerProcessingLatency = m.histogram("worker_processing_latency_milliseconds", "Per-submission processing time")
	m.workerErrors = m.counter("worker_errors_total", "Submissions that failed in a worker")

	m.httpRequests = m.counterVec("http_requests_total", "HTTP requests by endpoint and method",
		"endpoint", "method", "status_code")
	m.httpRequestDuration = promauto.With(m.registry).NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: m.subsystem, ConstLabels: m.constLabels,
		Name:    "http_request_duration_milliseconds",
		Help:    "HTTP request duration in milliseconds",
		Buckets: m.histogramBuckets,
	}, []string{"endpoint", "method", "status_code"})
	m.authFailures = m.counterVec("auth_failures_total", "Rejected credentials and tokens", "reason")

	m.errorsByComponent = m.counterVec("errors_by_component_total", "Errors by component and type",
		"component", "error_type")
}

func active() *Manager {
	if globalManager == nil || !globalManager.enabled {
		return nil
	}
	return globalManager
}

// RecordScoreResolved counts a resolved score for test.
func RecordScoreResolved(test string) {
	if m := active(); m != nil {
		m.scoresResolved.WithLabelValues(test).Inc()
	}
}

// RecordScoringError counts a scoring failure of kind.
func RecordScoringError(kind string) {
	if m := active(); m != nil {
		m.scoringErrors.WithLabelValues(kind).Inc()
	}
}

// RecordScoringLatency records scoring latency in milliseconds.
func RecordScoringLatency(latencyMs float64) {
	if m := active(); m != nil {
		m.scoringLatency.Observe(latencyMs)
	}
}

// RecordCompositeRecompute counts a composite recomputation.
func RecordCompositeRecompute() {
	if m := active(); m != nil {
		m.compositesRecomputed.Inc()
	}
}

// RecordSubmission counts a submission outcome: accepted, duplicate,
// rejected, applied or failed.
func RecordSubmission(outcome string) {
	if m := active(); m != nil {
		m.submissions.WithLabelValues(outcome).Inc()
	}
}

// UpdateAthletesTotal sets the registered athlete count.
func UpdateAthletesTotal(count int) {
	if m := active(); m != nil {
		m.athletesTotal.Set(float64(count))
	}
}

// UpdateResultsTotal sets the stored result count.
func UpdateResultsTotal(count int) {
	if m := active(); m != nil {
		m.resultsTotal.Set(float64(count))
	}
}

// RecordRepositoryUpdateLatency records update latency in milliseconds.
func RecordRepositoryUpdateLatency(latencyMs float64) {
	if m := active(); m != nil {
		m.repositoryUpdateLatency.Observe(latencyMs)
	}
}

// RecordRepositoryQueryLatency records query latency in milliseconds.
func RecordRepositoryQueryLatency(latencyMs float64) {
	if m := active(); m != nil {
		m.repositoryQueryLatency.Observe(latencyMs)
	}
}

// UpdateQueueSize updates the queue size gauge.
func UpdateQueueSize(size int) {
	if m := active(); m != nil {
		m.queueSize.Set(float64(size))
	}
}

// UpdateQueueCapacity updates the queue capacity gauge.
func UpdateQueueCapacity(capacity int) {
	if m := active(); m != nil {
		m.queueCapacity.Set(float64(capacity))
	}
}

// UpdateQueueUtilization updates the queue utilization gauge.
func UpdateQueueUtilization(utilization float64) {
	if m := active(); m != nil {
		m.queueUtilization.Set(utilization)
	}
}

// RecordQueueEnqueue counts an enqueue.
func RecordQueueEnqueue() {
	if m := active(); m != nil {
		m.queueEnqueued.Inc()
	}
}

// RecordQueueDequeue counts a dequeue.
func RecordQueueDequeue() {
	if m := active(); m != nil {
		m.queueDequeued.Inc()
	}
}

// RecordQueueEnqueueError counts a rejected enqueue.
func RecordQueueEnqueueError() {
	if m := active(); m != nil {
		m.queueEnqueueErrors.Inc()
	}
}

// RecordQueueProcessingLatency records enqueue latency in milliseconds.
func RecordQueueProcessingLatency(latencyMs float64) {
	if m := active(); m != nil {
		m.queueProcessingLatency.Observe(latencyMs)
	}
}

// UpdateWorkerCount updates the configured worker gauge.
func UpdateWorkerCount(count int) {
	if m := active(); m != nil {
		m.workerCount.Set(float64(count))
	}
}

// UpdateWorkerActiveCount updates the busy worker gauge.
func UpdateWorkerActiveCount(count int) {
	if m := active(); m != nil {
		m.workerActiveCount.Set(float64(count))
	}
}

// UpdateWorkerIdleCount updates the idle worker gauge.
func UpdateWorkerIdleCount(count int) {
	if m := active(); m != nil {
		m.workerIdleCount.Set(float64(count))
	}
}

// RecordWorkerProcessingLatency records per-submission processing time.
func RecordWorkerProcessingLatency(latencyMs float64) {
	if m := active(); m != nil {
		m.workerProcessingLatency.Observe(latencyMs)
	}
}

// RecordWorkerError counts a failed submission.
func RecordWorkerError() {
	if m := active(); m != nil {
		m.workerErrors.Inc()
	}
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	if m := active(); m != nil {
		m.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
	}
}

// RecordHTTPRequestDuration records HTTP request duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	if m := active(); m != nil {
		m.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
	}
}

// RecordAuthFailure counts a rejected login or token.
func RecordAuthFailure(reason string) {
	if m := active(); m != nil {
		m.authFailures.WithLabelValues(reason).Inc()
	}
}

// RecordErrorByComponent records errors by component.
func RecordErrorByComponent(component, errorType string) {
	if m := active(); m != nil {
		m.errorsByComponent.WithLabelValues(component, errorType).Inc()
	}
}

// SetEnabled toggles recording on the global manager.
func SetEnabled(enabled bool) {
	if globalManager != nil {
		globalManager.enabled = enabled
	}
}

// GetRegistry returns the custom registry for metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
