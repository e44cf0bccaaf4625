package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Beta-API Metrics
var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "granite",
			Subsystem: "beta_api",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// Request duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "granite",
			Subsystem: "beta_api",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.5, 1, 2, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	// Graph API call counter
	GraphCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "granite",
			Subsystem: "beta_api",
			Name:      "graph_calls_total",
			Help:      "Total Instagram Graph API calls",
		},
		[]string{"operation", "status"},
	)

	// Graph API call duration
	GraphCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "granite",
			Subsystem: "beta_api",
			Name:      "graph_call_duration_seconds",
			Help:      "Instagram Graph API call duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.5, 1, 2, 5},
		},
		[]string{"operation"},
	)

	// Hashtag cache lookups
	HashtagCacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "granite",
			Subsystem: "beta_api",
			Name:      "hashtag_cache_lookups_total",
			Help:      "Hashtag ID cache lookups",
		},
		[]string{"result"},
	)

	// Beta video submissions
	SubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "granite",
			Subsystem: "beta_api",
			Name:      "submissions_total",
			Help:      "Total beta video submissions",
		},
		[]string{"status"},
	)
)

// RecordRequest records an HTTP request
func RecordRequest(method, endpoint, status string, durationSec float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint).Observe(durationSec)
}

// RecordGraphCall records an Instagram Graph API call
func RecordGraphCall(operation, status string, durationSec float64) {
	GraphCallsTotal.WithLabelValues(operation, status).Inc()
	GraphCallDuration.WithLabelValues(operation).Observe(durationSec)
}

// RecordCacheLookup records a hashtag cache hit or miss
func RecordCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	HashtagCacheLookupsTotal.WithLabelValues(result).Inc()
}

// RecordSubmission records the outcome of a beta video submission
func RecordSubmission(status string) {
	SubmissionsTotal.WithLabelValues(status).Inc()
}
