package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce           sync.Once
	apiRequestsTotal       *prometheus.CounterVec
	apiLatencySeconds      *prometheus.HistogramVec
	apiErrorsTotal         *prometheus.CounterVec
	trackerMutationsTotal  *prometheus.CounterVec
	persistFailuresTotal   prometheus.Counter
	notificationsPublished *prometheus.CounterVec
	streamClientsActive    *prometheus.GaugeVec
	confirmationsTotal     *prometheus.CounterVec
)

// RegisterMetrics initialises the Prometheus collectors used by the API.
func RegisterMetrics() {
	registerOnce.Do(func() {
		apiRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "alhafizh_api_requests_total",
			Help: "Total number of API requests served.",
		}, []string{"method", "route", "status"})

		apiLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "alhafizh_api_latency_seconds",
			Help:    "Latency distribution for API requests.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0},
		}, []string{"method", "route"})

		apiErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "alhafizh_api_errors_total",
			Help: "Total number of error responses returned by API endpoints.",
		}, []string{"method", "route", "status"})

		trackerMutationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "alhafizh_tracker_mutations_total",
			Help: "Committed tracker mutations by operation.",
		}, []string{"operation"})

		persistFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "alhafizh_store_persist_failures_total",
			Help: "Writes to the persistent store that failed and were skipped.",
		})

		notificationsPublished = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "alhafizh_notifications_published_total",
			Help: "Notifications pushed to subscribers by kind.",
		}, []string{"kind"})

		streamClientsActive = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "alhafizh_notification_stream_clients",
			Help: "Connected notification stream clients by transport.",
		}, []string{"transport"})

		confirmationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "alhafizh_confirmations_total",
			Help: "Destructive action confirmations by outcome.",
		}, []string{"outcome"})

		prometheus.MustRegister(
			apiRequestsTotal,
			apiLatencySeconds,
			apiErrorsTotal,
			trackerMutationsTotal,
			persistFailuresTotal,
			notificationsPublished,
			streamClientsActive,
			confirmationsTotal,
		)
	})
}

// APIRequests exposes the counter for API requests.
func APIRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return apiRequestsTotal
}

// APILatency exposes the latency histogram for API requests.
func APILatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return apiLatencySeconds
}

// APIErrors exposes the counter for API error responses.
func APIErrors() *prometheus.CounterVec {
	RegisterMetrics()
	return apiErrorsTotal
}

// TrackerMutations counts committed tracker operations.
func TrackerMutations() *prometheus.CounterVec {
	RegisterMetrics()
	return trackerMutationsTotal
}

// PersistFailures counts failed store writes.
func PersistFailures() prometheus.Counter {
	RegisterMetrics()
	return persistFailuresTotal
}

// NotificationsPublishedTotal counts pushed notifications.
func NotificationsPublishedTotal() *prometheus.CounterVec {
	RegisterMetrics()
	return notificationsPublished
}

// StreamClientsActive tracks connected SSE and websocket clients.
func StreamClientsActive() *prometheus.GaugeVec {
	RegisterMetrics()
	return streamClientsActive
}

// Confirmations counts confirm/cancel/expire outcomes.
func Confirmations() *prometheus.CounterVec {
	RegisterMetrics()
	return confirmationsTotal
}
