package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search and auth Prometheus metrics.
var (
	SearchSubqueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tripdex",
			Name:      "search_subqueries_total",
			Help:      "Search sub-queries by collection and outcome",
		},
		[]string{"collection", "status"}, // "ok" / "error" / "timeout" / "panic"
	)

	SearchSubqueryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "tripdex",
			Name:      "search_subquery_duration_seconds",
			Help:      "Search sub-query duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 3},
		},
		[]string{"collection"},
	)

	SearchAggregationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tripdex",
			Name:      "search_aggregations_total",
			Help:      "Aggregated searches by outcome",
		},
		[]string{"outcome"}, // "complete" / "partial" / "unavailable" / "empty"
	)

	AuthAttemptsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tripdex",
			Name:      "auth_attempts_total",
			Help:      "Register and login attempts by result",
		},
		[]string{"action", "result"},
	)

	RateLimitedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tripdex",
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the rate limiter",
		},
		[]string{"scope"},
	)
)

var domainMetricsRegistered bool

// RegisterDomainMetrics registers search and auth metrics. Must be called once from main.
func RegisterDomainMetrics() {
	if domainMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchSubqueriesTotal)
	prometheus.MustRegister(SearchSubqueryDuration)
	prometheus.MustRegister(SearchAggregationsTotal)
	prometheus.MustRegister(AuthAttemptsTotal)
	prometheus.MustRegister(RateLimitedTotal)
	domainMetricsRegistered = true
}
