package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
)

// MetricsPrefix is the prefix used for all metrics
const MetricsPrefix = "price_proxy_"

// Service constants
const (
	ServicePrices = "prices"
)

var (
	// Upstream request counter
	// Cardinality: ~5 (success, error, rate_limited, timeout per service)
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "upstream_requests_total",
			Help: "Total number of HTTP requests to the upstream price provider",
		},
		[]string{"service", "status"},
	)

	// Inbound request counter
	// Cardinality: ~25 (5 endpoints × ~5 status codes)
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "http_requests_total",
			Help: "Total number of API requests by endpoint and status code",
		},
		[]string{"endpoint", "code"},
	)

	// Request latency per endpoint
	// Cardinality: ~5 (number of endpoints)
	RequestLatencyHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: MetricsPrefix + "request_latency_seconds",
			Help: "API request latency by endpoint",
		},
		[]string{"endpoint"},
	)

	// Price cache lookups
	// Cardinality: 2 (hit, miss)
	CacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "cache_lookups_total",
			Help: "Price cache lookups by result",
		},
		[]string{"result"},
	)

	// Service cache size
	CacheSizeGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricsPrefix + "cache_size",
			Help: "Number of entries in the price cache",
		},
	)

	// Rate limit rejections
	// Cardinality: 3 (number of tiers)
	RateLimitCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "rate_limit_hits_total",
			Help: "Total number of requests rejected by the rate limiter per tier",
		},
		[]string{"tier"},
	)

	// Active rate limit buckets
	RateLimitBucketsGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricsPrefix + "rate_limit_buckets",
			Help: "Number of tracked rate limit buckets",
		},
	)

	// Issued API keys
	// Cardinality: 3 (number of tiers)
	APIKeysIssuedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "api_keys_issued_total",
			Help: "Total number of API keys issued per tier",
		},
		[]string{"tier"},
	)

	// Issued API keys held in memory
	// Cardinality: 3 (number of tiers)
	APIKeysGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricsPrefix + "api_keys",
			Help: "Number of API keys held in memory per tier",
		},
		[]string{"tier"},
	)
)

// RecordUpstreamRequest records an upstream request with its status
func RecordUpstreamRequest(service, status string) {
	UpstreamRequestsTotal.WithLabelValues(service, status).Inc()
	log.Debug().Str("service", service).Str("status", status).Msg("Metrics: upstream request recorded")
}

// RecordHTTPRequest records a served API request
func RecordHTTPRequest(endpoint string, code int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(code)).Inc()
	RequestLatencyHistogram.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// RecordCacheLookup records a price cache lookup result ("hit" or "miss")
func RecordCacheLookup(result string) {
	CacheLookupsTotal.WithLabelValues(result).Inc()
}

// RecordCacheSize records the number of entries in the price cache
func RecordCacheSize(size int) {
	CacheSizeGauge.Set(float64(size))
}

// RecordRateLimitHit records a request rejected by the rate limiter
func RecordRateLimitHit(tier string) {
	RateLimitCounter.WithLabelValues(tier).Inc()
}

// RecordRateLimitBuckets records the number of tracked rate limit buckets
func RecordRateLimitBuckets(count int) {
	RateLimitBucketsGauge.Set(float64(count))
}

// RecordKeyIssued records an issued API key
func RecordKeyIssued(tier string) {
	APIKeysIssuedTotal.WithLabelValues(tier).Inc()
}

// RecordAPIKeys records the number of held API keys per tier
func RecordAPIKeys(countByTier map[string]int) {
	for tier, count := range countByTier {
		APIKeysGauge.WithLabelValues(tier).Set(float64(count))
	}
}

// MetricsWriter provides a unified interface for recording service metrics
type MetricsWriter struct {
	serviceName string
}

// NewMetricsWriter creates a new MetricsWriter for the specified service
func NewMetricsWriter(serviceName string) *MetricsWriter {
	return &MetricsWriter{
		serviceName: serviceName,
	}
}

// GetServiceName returns the service name
func (mw *MetricsWriter) GetServiceName() string {
	return mw.serviceName
}

// RecordFetch records the duration of an upstream fetch for this service
func (mw *MetricsWriter) RecordFetch(duration time.Duration) {
	RecordFetchDuration(mw.serviceName, duration)
}
