package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "naca"

// Metrics holds the Prometheus counters, histograms, and gauges for profile
// generation and the request pipeline.
type Metrics struct {
	RequestsConsumed prometheus.Counter
	ProfilesProduced prometheus.Counter
	RequestsRejected *prometheus.CounterVec // labels: kind={invalid_request,invalid_designation,...,internal}
	TransformRetries prometheus.Counter
	PipelineRunning  prometheus.Gauge

	// Batch processing metrics.
	BatchSize               prometheus.Histogram
	BatchProcessingDuration prometheus.Histogram

	// Generation metrics, shared by the HTTP API and the pipeline.
	ProfilesGenerated  *prometheus.CounterVec // labels: series={4,5,6}, approximate={true,false}
	GenerationErrors   *prometheus.CounterVec // labels: kind={invalid_designation,invalid_chord,...}
	GenerationDuration prometheus.Histogram
	GeneratorCache     *prometheus.CounterVec // labels: result={hit,miss}
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.RequestsConsumed,
		m.ProfilesProduced,
		m.RequestsRejected,
		m.TransformRetries,
		m.PipelineRunning,
		m.BatchSize,
		m.BatchProcessingDuration,
		m.ProfilesGenerated,
		m.GenerationErrors,
		m.GenerationDuration,
		m.GeneratorCache,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		RequestsConsumed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_consumed_total",
			Help:      "Total generation requests read from the source topic.",
		}),
		ProfilesProduced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "profiles_produced_total",
			Help:      "Total profiles written to the sink topic.",
		}),
		RequestsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_rejected_total",
			Help:      "Requests committed without a profile, by error kind.",
		}, []string{"kind"}),
		TransformRetries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transform_retries_total",
			Help:      "Transform attempts repeated after an internal failure.",
		}),
		PipelineRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pipeline_running",
			Help:      "1 when the pipeline is active, 0 when shut down.",
		}),
		BatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_size",
			Help:      "Number of requests per batch extracted from Kafka.",
			Buckets:   []float64{1, 5, 10, 20, 30, 40, 50, 75, 100},
		}),
		BatchProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_processing_duration_seconds",
			Help:      "Duration of a complete batch extract-generate-load cycle.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
		ProfilesGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "profiles_generated_total",
			Help:      "Profiles generated by series and whether a fallback model was used.",
		}, []string{"series", "approximate"}),
		GenerationErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generation_errors_total",
			Help:      "Rejected generation requests by error kind.",
		}, []string{"kind"}),
		GenerationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_duration_seconds",
			Help:      "Time spent generating one profile.",
			Buckets:   []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		}),
		GeneratorCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generator_cache_total",
			Help:      "Profile cache lookups by result.",
		}, []string{"result"}),
	}
}
