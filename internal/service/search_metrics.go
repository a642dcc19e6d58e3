package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	searchRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "search_requests_total",
			Help: "Total number of federated search executions by result",
		},
		[]string{"result"},
	)

	searchSourceDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "search_source_duration_seconds",
			Help:    "Latency of a single search source query",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"source", "status"},
	)

	searchSourceDegradedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "search_source_degraded_total",
			Help: "Number of times a search source failed or timed out",
		},
		[]string{"source", "status"},
	)

	searchResultsReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "search_results_returned",
			Help:    "Number of results in a merged search response",
			Buckets: []float64{0, 1, 2, 5, 10, 15, 25, 50},
		},
	)
)
