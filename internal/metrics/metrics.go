// Package metrics exposes Prometheus instrumentation for the quote API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// QuotesComputed counts computed quotes by loan product.
	QuotesComputed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "installment_quotes_total",
			Help: "Total number of installment quotes computed",
		},
		[]string{"product"},
	)

	// HTTPRequests counts API requests by path and status code.
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "installment_http_requests_total",
			Help: "Total number of HTTP requests served",
		},
		[]string{"path", "status"},
	)

	// RequestDuration observes request handling latency by path.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "installment_http_request_duration_seconds",
			Help:    "HTTP request handling duration",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path"},
	)
)
