package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	BookingsFetched  prometheus.Counter
	EventsProjected  prometheus.Counter
	RowsSkipped      prometheus.Counter
	EventsSuppressed prometheus.Counter
	RequestDuration  prometheus.Histogram
	ErrorsCount      *prometheus.CounterVec
}

// New creates new prometheus metrics
func New(namespace string) *Metrics {
	return &Metrics{
		BookingsFetched: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_fetched_total",
			Help:      "The total number of booking rows fetched from the store",
		}),
		EventsProjected: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calendar_events_projected_total",
			Help:      "The total number of bookings projected into calendar events",
		}),
		RowsSkipped: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_rows_skipped_total",
			Help:      "The total number of rows skipped due to per-row parse failures",
		}),
		EventsSuppressed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calendar_events_suppressed_total",
			Help:      "The total number of cancelled-near-checkin bookings hidden from the calendar",
		}),
		RequestDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Time taken to serve HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}),
		ErrorsCount: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
