package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shopmauli_http_requests_total",
		Help: "HTTP requests by method, path and status code",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "shopmauli_http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	PaymentsRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shopmauli_payments_recorded_total",
		Help: "Payment rows created, by origin (collect or advance)",
	}, []string{"origin"})

	AdvanceDistributions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shopmauli_advance_distributions_total",
		Help: "Completed advance distribution runs",
	})

	AdvanceMonthsAffected = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "shopmauli_advance_months_affected",
		Help:    "Periods covered per advance distribution",
		Buckets: []float64{1, 2, 3, 6, 12, 24, 60, 120},
	})
)
