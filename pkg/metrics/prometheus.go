// Package metrics provides Prometheus metrics for the player generation
// service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns the Prometheus instruments for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Generation throughput
	playersGenerated prometheus.Counter
	reportsGenerated prometheus.Counter
	generationErrors prometheus.Counter

	// Persistence outcomes. Failures are warnings, not fatal errors, so
	// they get their own counter instead of folding into generationErrors.
	persistenceStores   prometheus.Counter
	persistenceFailures prometheus.Counter

	// Batch roster state
	rosterSize     prometheus.Gauge
	workerCount    prometheus.Gauge
	duplicateNames prometheus.Counter

	// Latency
	generationLatency prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid the default Go collectors.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "scoutgen",
		subsystem:        "generation",
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

func (m *Manager) initializeMetrics() {
	if !m.enabled {
		return
	}
	factory := promauto.With(m.registry)

	m.playersGenerated = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "players_generated_total",
		Help:      "Total number of players generated.",
	})
	m.reportsGenerated = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "reports_generated_total",
		Help:      "Total number of scouting reports generated.",
	})
	m.generationErrors = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "errors_total",
		Help:      "Total number of generation requests rejected or failed.",
	})
	m.persistenceStores = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "persistence_stores_total",
		Help:      "Total number of records persisted by the sink.",
	})
	m.persistenceFailures = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "persistence_failures_total",
		Help:      "Total number of non-fatal persistence failures.",
	})
	m.rosterSize = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "roster_size",
		Help:      "Number of players in the most recent batch roster.",
	})
	m.workerCount = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "batch_workers",
		Help:      "Number of workers in the current batch run.",
	})
	m.duplicateNames = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "duplicate_names_total",
		Help:      "Total number of duplicate names rejected during batch runs.",
	})
	m.generationLatency = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "latency_milliseconds",
		Help:      "Latency of single-player generation in milliseconds.",
		Buckets:   m.histogramBuckets,
	})
}

// Package-level helpers over the global manager.

// RecordPlayerGenerated increments the generated-player counter.
func RecordPlayerGenerated() {
	if globalManager.enabled {
		globalManager.playersGenerated.Inc()
	}
}

// RecordReportGenerated increments the generated-report counter.
func RecordReportGenerated() {
	if globalManager.enabled {
		globalManager.reportsGenerated.Inc()
	}
}

// RecordGenerationError increments the error counter.
func RecordGenerationError() {
	if globalManager.enabled {
		globalManager.generationErrors.Inc()
	}
}

// RecordPersistenceStore increments the persisted-record counter.
func RecordPersistenceStore() {
	if globalManager.enabled {
		globalManager.persistenceStores.Inc()
	}
}

// RecordPersistenceFailure increments the non-fatal persistence failure
// counter.
func RecordPersistenceFailure() {
	if globalManager.enabled {
		globalManager.persistenceFailures.Inc()
	}
}

// UpdateRosterSize sets the roster size gauge.
func UpdateRosterSize(n int) {
	if globalManager.enabled {
		globalManager.rosterSize.Set(float64(n))
	}
}

// UpdateWorkerCount sets the batch worker gauge.
func UpdateWorkerCount(n int) {
	if globalManager.enabled {
		globalManager.workerCount.Set(float64(n))
	}
}

// RecordDuplicateName increments the duplicate-name counter.
func RecordDuplicateName() {
	if globalManager.enabled {
		globalManager.duplicateNames.Inc()
	}
}

// RecordGenerationLatency observes one generation duration in
// milliseconds.
func RecordGenerationLatency(ms float64) {
	if globalManager.enabled {
		globalManager.generationLatency.Observe(ms)
	}
}
