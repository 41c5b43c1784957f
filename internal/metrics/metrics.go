package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Site traffic metrics
var (
	// HTTPRequestsTotal counts requests sent to the site by endpoint and
	// status code ("error" when no response was received).
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "torec_http_requests_total",
			Help: "Total number of HTTP requests sent to the subtitle site.",
		},
		[]string{"endpoint", "status"},
	)

	// LoginsTotal counts login attempts by outcome (success, rejected, error).
	LoginsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "torec_logins_total",
			Help: "Total number of login attempts.",
		},
		[]string{"status"},
	)
)

// Search metrics
var (
	// SearchesTotal counts queries by result (found, not_found, error).
	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "torec_searches_total",
			Help: "Total number of subtitle searches.",
		},
		[]string{"result"},
	)
)

// Label values shared by callers.
const (
	StatusError    = "error"
	StatusSuccess  = "success"
	StatusRejected = "rejected"

	ResultFound    = "found"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

func init() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		LoginsTotal,
		SearchesTotal,
	)
}
