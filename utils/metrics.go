package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Database Metrics
	DBOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_operation_duration_seconds",
			Help:    "Duration of database operations",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"operation", "collection"},
	)

	// Court Metrics
	CourtToggleTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "court_toggles_total",
			Help: "Total number of court lock/unlock toggles",
		},
		[]string{"action", "outcome"}, // locked/unlocked, success/rollback
	)

	// Event Request Metrics
	RequestDecisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "event_request_decisions_total",
			Help: "Total number of event request decisions",
		},
		[]string{"decision", "outcome"}, // approved/declined, success/failure
	)

	// Authentication Metrics
	AuthAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_attempts_total",
			Help: "Total number of authentication attempts",
		},
		[]string{"status", "type"}, // success/failure, login/demo/google/2fa
	)

	// Live Feed Metrics
	FeedSubscribers = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "live_feed_subscribers",
			Help: "Current number of live feed subscribers per collection",
		},
		[]string{"collection"},
	)

	// Error Metrics
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "errors_total",
			Help: "Total number of errors by component and type",
		},
		[]string{"component", "type"},
	)
)

// TrackDBOperation tracks database operation duration
func TrackDBOperation(operation, collection string) *prometheus.Timer {
	return prometheus.NewTimer(DBOperationDuration.WithLabelValues(operation, collection))
}

// TrackAuthAttempt records authentication attempts
func TrackAuthAttempt(status, authType string) {
	AuthAttempts.WithLabelValues(status, authType).Inc()
}

// TrackError increments the error counter by component and type
func TrackError(component, errorType string) {
	ErrorsTotal.WithLabelValues(component, errorType).Inc()
}

// TrackCourtToggle records a toggle attempt outcome
func TrackCourtToggle(action, outcome string) {
	CourtToggleTotal.WithLabelValues(action, outcome).Inc()
}

// TrackRequestDecision records an approve/decline outcome
func TrackRequestDecision(decision, outcome string) {
	RequestDecisionsTotal.WithLabelValues(decision, outcome).Inc()
}
