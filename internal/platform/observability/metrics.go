package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DashboardRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "backoffice_dashboard_requests_total",
		Help: "The total number of dashboard requests by endpoint and status",
	}, []string{"endpoint", "status"})

	DashboardRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "backoffice_dashboard_request_duration_seconds",
		Help:    "Duration of dashboard requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})

	OwnSwitSetSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "backoffice_ranking_own_swits",
		Help:    "Number of own swits feeding the competing-brands expansion",
		Buckets: []float64{0, 10, 100, 1000, 10000, 100000},
	})

	CompetingSwitSetSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "backoffice_ranking_competing_swits",
		Help:    "Number of competing swits remaining after self-exclusion",
		Buckets: []float64{0, 10, 100, 1000, 10000, 100000},
	})

	RateLimitedRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "backoffice_rate_limited_requests_total",
		Help: "The total number of requests rejected by the rate limiter",
	})
)
