// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	issuesReportedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "civic_issues_reported_total",
			Help: "Total number of issues reported",
		},
		[]string{"category"},
	)

	nearbySearchResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "civic_nearby_search_results",
			Help:    "Number of issues returned by proximity searches",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100},
		},
	)

	analyticsCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "civic_analytics_cache_total",
			Help: "Analytics cache lookups",
		},
		[]string{"report", "cache_hit"},
	)

	imageAnalysisTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "civic_image_analysis_total",
			Help: "Image analysis calls by outcome",
		},
		[]string{"status"},
	)
)

func RecordIssueReported(category string) {
	issuesReportedTotal.WithLabelValues(category).Inc()
}

func RecordNearbySearch(results int) {
	nearbySearchResults.Observe(float64(results))
}

func RecordAnalyticsCache(report string, hit bool) {
	label := "false"
	if hit {
		label = "true"
	}
	analyticsCacheTotal.WithLabelValues(report, label).Inc()
}

// RecordImageAnalysis counts analyzer outcomes: "ai", "fallback" or "error".
func RecordImageAnalysis(status string) {
	imageAnalysisTotal.WithLabelValues(status).Inc()
}
