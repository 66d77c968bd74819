package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var registry = prometheus.NewRegistry()

var registerer = prometheus.WrapRegistererWith(nil, registry)

var (
	// Latency buckets in milliseconds
	latencyBuckets = []float64{
		5, 10, 25,
		50, 100, 250,
		500, 1000, 2500,
		5000, 10000, 30000,
	}

	RequestTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "toolfinder_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"route", "method", "status"},
	)

	RequestLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "toolfinder_request_latency_ms",
			Help:    "HTTP request latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"route"},
	)

	SearchTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "toolfinder_search_total",
			Help: "Searches served, by ranking mode",
		},
		[]string{"mode"},
	)

	SearchFallbackTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "toolfinder_search_fallback_total",
			Help: "Searches that fell back to keyword ranking, by reason",
		},
		[]string{"reason"},
	)

	SearchResults = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "toolfinder_search_results",
			Help:    "Number of tools returned per search",
			Buckets: []float64{0, 1, 2, 3, 4, 5},
		},
		[]string{"mode"},
	)

	SearchLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "toolfinder_search_latency_ms",
			Help:    "Search latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"mode"},
	)

	EmbeddingRequestsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "toolfinder_embedding_requests_total",
			Help: "Embedding provider calls, by provider and outcome",
		},
		[]string{"provider", "outcome"},
	)

	EmbeddingCacheTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "toolfinder_embedding_cache_total",
			Help: "Query embedding cache lookups, by result",
		},
		[]string{"result"},
	)

	CircuitBreakerState = promauto.With(registerer).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "toolfinder_circuit_breaker_open",
			Help: "1 when the named circuit breaker is open",
		},
		[]string{"name"},
	)
)

type MetricsConfig struct {
	EnableLatency  bool
	EnablePerRoute bool
}

func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		EnableLatency:  true,
		EnablePerRoute: false,
	}
}

var Config = DefaultMetricsConfig()

func Initialize(cfg MetricsConfig) {
	Config = cfg
	registry.MustRegister(
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)

	prometheus.DefaultRegisterer = registry
	prometheus.DefaultGatherer = registry
}

// Gatherer exposes the private registry to the metrics endpoint.
func Gatherer() prometheus.Gatherer {
	return registry
}
