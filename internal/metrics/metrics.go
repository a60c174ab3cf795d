package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "tables"

var (
	once sync.Once

	reservationsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reservations_created_total",
			Help:      "Reservations created, by booking source.",
		},
		[]string{"source"},
	)

	admissionRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "admission_rejected_total",
			Help:      "Booking attempts rejected by the admission check, by reason.",
		},
		[]string{"reason"},
	)

	statusChanges = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reservation_status_changes_total",
			Help:      "Reservation status transitions, by target status.",
		},
		[]string{"status"},
	)

	availabilityQueries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "availability_queries_total",
			Help:      "Availability computations, by outcome.",
		},
		[]string{"status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

// Register registers metrics with the default registry (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			reservationsCreated,
			admissionRejected,
			statusChanges,
			availabilityQueries,
			httpDuration,
		)
	})
}

func IncReservationCreated(source string) {
	reservationsCreated.WithLabelValues(source).Inc()
}

func IncAdmissionRejected(reason string) {
	admissionRejected.WithLabelValues(reason).Inc()
}

func IncStatusChange(status string) {
	statusChanges.WithLabelValues(status).Inc()
}

func IncAvailabilityQuery(status string) {
	availabilityQueries.WithLabelValues(status).Inc()
}

func ObserveHTTP(method, route, status string, seconds float64) {
	httpDuration.WithLabelValues(method, route, status).Observe(seconds)
}
