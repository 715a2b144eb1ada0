package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts console HTTP requests by route pattern.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wrapads_http_requests_total",
			Help: "Total number of console HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wrapads_http_request_duration_seconds",
			Help:    "Duration of console HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	RequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "wrapads_http_requests_in_flight",
			Help: "Console HTTP requests currently being served",
		},
	)

	// UpstreamRequestsTotal counts calls to the marketplace API.
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wrapads_marketplace_requests_total",
			Help: "Total number of marketplace API calls",
		},
		[]string{"operation", "status"},
	)

	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "wrapads_marketplace_request_duration_seconds",
			Help: "Duration of marketplace API calls in seconds",
			Buckets: []float64{
				0.01,
				0.025,
				0.05,
				0.1,
				0.25,
				0.5,
				1.0,
				2.5,
				5.0,
				10.0,
			},
		},
		[]string{"operation"},
	)

	// ConsoleActionsTotal counts mutating console actions by outcome.
	ConsoleActionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wrapads_console_actions_total",
			Help: "Mutating console actions by outcome",
		},
		[]string{"action", "outcome"},
	)
)

// TrackUpstream records one marketplace API call. statusCode is 0 when the
// request never got a response.
func TrackUpstream(operation string, statusCode int, duration time.Duration) {
	status := "error"
	if statusCode > 0 {
		status = strconv.Itoa(statusCode)
	}
	UpstreamRequestsTotal.WithLabelValues(operation, status).Inc()
	UpstreamRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

func RecordAction(action, outcome string) {
	ConsoleActionsTotal.WithLabelValues(action, outcome).Inc()
}
