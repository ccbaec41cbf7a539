// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "signup_http_requests_total",
			Help: "Total number of HTTP requests handled, by route and status",
		},
		[]string{"route", "method", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "signup_http_request_duration_seconds",
			Help: "Duration of HTTP request handling in seconds",
		},
		[]string{"route", "method"},
	)

	SignupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "signup_registrations_total",
			Help: "Total number of successful activity signups",
		},
		[]string{"activity"},
	)

	WithdrawalsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "signup_withdrawals_total",
			Help: "Total number of successful activity withdrawals",
		},
		[]string{"activity"},
	)

	ListCacheResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "signup_list_cache_results_total",
			Help: "List cache lookups by outcome (hit, miss, error)",
		},
		[]string{"outcome"},
	)
)
