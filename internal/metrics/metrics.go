package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "triptix_http_requests_total",
		Help: "Number of HTTP requests by method, path and status code.",
	}, []string{"method", "path", "status"})

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "triptix_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	SearchesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "triptix_searches_total",
		Help: "Number of ticket searches performed.",
	})

	BookingsConfirmed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "triptix_bookings_confirmed_total",
		Help: "Number of bookings confirmed.",
	})

	BookingsCancelled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "triptix_bookings_cancelled_total",
		Help: "Number of bookings cancelled.",
	})

	LoginLockouts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "triptix_login_lockouts_total",
		Help: "Number of login lockouts triggered.",
	})
)
