package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for the roster service

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gridiron_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gridiron_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"route"},
	)

	// Roster lookup metrics
	RosterLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gridiron_roster_lookups_total",
			Help: "Roster lookups by outcome",
		},
		[]string{"outcome"},
	)

	FallbackWeeksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gridiron_roster_fallback_weeks_total",
			Help: "Roster lookups served from a week other than the one requested",
		},
	)

	// Dataset metrics
	DatasetRows = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gridiron_dataset_rows",
			Help: "Number of roster rows in the current snapshot",
		},
	)

	DatasetLoadedAt = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gridiron_dataset_loaded_timestamp_seconds",
			Help: "Unix time the current snapshot was loaded",
		},
	)

	DatasetReloadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gridiron_dataset_reloads_total",
			Help: "Roster dataset reloads by status",
		},
		[]string{"status"},
	)
)
