package gmaps

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsCollector provides Prometheus metrics for the request lifecycle
// and reliability layers. All Record methods are no-ops on a nil receiver.
type MetricsCollector struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	requestsInFlight *prometheus.GaugeVec

	retriesTotal *prometheus.CounterVec

	circuitBreakerState *prometheus.GaugeVec

	rateLimiterTokens *prometheus.GaugeVec
	rateLimiterWait   *prometheus.HistogramVec

	cacheHits   *prometheus.CounterVec
	cacheMisses *prometheus.CounterVec
	cacheSize   prometheus.Gauge

	deduplicationHits *prometheus.CounterVec

	errorsTotal *prometheus.CounterVec

	registry prometheus.Registerer
}

// NewMetricsCollector creates a metrics collector on the default registerer.
func NewMetricsCollector() *MetricsCollector {
	return NewMetricsCollectorWithRegistry(prometheus.DefaultRegisterer)
}

// NewMetricsCollectorWithRegistry creates a collector using supplied registerer.
func NewMetricsCollectorWithRegistry(registry prometheus.Registerer) *MetricsCollector {
	factory := promauto.With(registry)
	return &MetricsCollector{
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gmaps_requests_total",
				Help: "Total number of web service calls by API group and outcome",
			},
			[]string{"api", "outcome"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gmaps_request_duration_seconds",
				Help:    "Duration of calls including retries and throttling",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"api", "outcome"},
		),
		requestsInFlight: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "gmaps_requests_in_flight",
				Help: "Number of calls currently in flight",
			},
			[]string{"api"},
		),
		retriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gmaps_retries_total",
				Help: "Total number of retry attempts",
			},
			[]string{"api", "attempt"},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "gmaps_circuit_breaker_state",
				Help: "Current state of circuit breaker (0=closed, 1=open, 2=half-open)",
			},
			[]string{"api"},
		),
		rateLimiterTokens: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "gmaps_rate_limiter_tokens",
				Help: "Tokens left in the bucket after the last admission",
			},
			[]string{"api"},
		),
		rateLimiterWait: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gmaps_rate_limiter_wait_seconds",
				Help:    "Time spent waiting for rate limiter admission",
				Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10},
			},
			[]string{"api"},
		),
		cacheHits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gmaps_cache_hits_total",
				Help: "Total number of cache hits",
			},
			[]string{"api"},
		),
		cacheMisses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gmaps_cache_misses_total",
				Help: "Total number of cache misses",
			},
			[]string{"api"},
		),
		cacheSize: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "gmaps_cache_size",
				Help: "Current number of entries in cache",
			},
		),
		deduplicationHits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gmaps_deduplication_hits_total",
				Help: "Calls served by an identical in-flight call",
			},
			[]string{"api"},
		),
		errorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gmaps_errors_total",
				Help: "Total number of errors by kind",
			},
			[]string{"api", "kind"},
		),
		registry: registry,
	}
}

// RecordRequest records a finished call.
func (mc *MetricsCollector) RecordRequest(api, outcome string, duration time.Duration) {
	if mc == nil {
		return
	}

	mc.requestsTotal.WithLabelValues(api, outcome).Inc()
	mc.requestDuration.WithLabelValues(api, outcome).Observe(duration.Seconds())
}

// RecordRequestStart increments in-flight gauge.
func (mc *MetricsCollector) RecordRequestStart(api string) {
	if mc == nil {
		return
	}

	mc.requestsInFlight.WithLabelValues(api).Inc()
}

// RecordRequestEnd decrements in-flight gauge.
func (mc *MetricsCollector) RecordRequestEnd(api string) {
	if mc == nil {
		return
	}

	mc.requestsInFlight.WithLabelValues(api).Dec()
}

// RecordRetry increments retry counter for an attempt.
func (mc *MetricsCollector) RecordRetry(api string, attempt int) {
	if mc == nil {
		return
	}

	mc.retriesTotal.WithLabelValues(api, strconv.Itoa(attempt)).Inc()
}

// RecordCircuitBreakerState sets gauge to breaker state.
func (mc *MetricsCollector) RecordCircuitBreakerState(api string, state float64) {
	if mc == nil {
		return
	}

	mc.circuitBreakerState.WithLabelValues(api).Set(state)
}

// RecordRateLimiterTokens sets available token gauge.
func (mc *MetricsCollector) RecordRateLimiterTokens(api string, tokens float64) {
	if mc == nil {
		return
	}

	mc.rateLimiterTokens.WithLabelValues(api).Set(tokens)
}

// RecordRateLimiterWait observes time spent waiting for admission.
func (mc *MetricsCollector) RecordRateLimiterWait(api string, d time.Duration) {
	if mc == nil {
		return
	}

	mc.rateLimiterWait.WithLabelValues(api).Observe(d.Seconds())
}

// RecordCacheHit increments cache hit counter.
func (mc *MetricsCollector) RecordCacheHit(api string) {
	if mc == nil {
		return
	}

	mc.cacheHits.WithLabelValues(api).Inc()
}

// RecordCacheMiss increments cache miss counter.
func (mc *MetricsCollector) RecordCacheMiss(api string) {
	if mc == nil {
		return
	}

	mc.cacheMisses.WithLabelValues(api).Inc()
}

// RecordCacheSize sets cache size gauge.
func (mc *MetricsCollector) RecordCacheSize(size int) {
	if mc == nil {
		return
	}

	mc.cacheSize.Set(float64(size))
}

// RecordError increments error counter by kind.
func (mc *MetricsCollector) RecordError(api, kind string) {
	if mc == nil {
		return
	}

	mc.errorsTotal.WithLabelValues(api, kind).Inc()
}

// RecordDeduplicationHit increments de-dup hit counter.
func (mc *MetricsCollector) RecordDeduplicationHit(api string) {
	if mc == nil {
		return
	}

	mc.deduplicationHits.WithLabelValues(api).Inc()
}

// Registerer exposes the registerer the collectors were registered on.
func (mc *MetricsCollector) Registerer() prometheus.Registerer {
	if mc == nil {
		return nil
	}
	return mc.registry
}
