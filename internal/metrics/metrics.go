package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	RatingsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ratings_total",
			Help: "Total rating submissions",
		},
		[]string{"action"}, // created|updated
	)

	LoginsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "logins_total",
			Help: "Total successful logins",
		},
	)
	LoginsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "logins_failed_total",
			Help: "Total failed login attempts",
		},
	)

	AuditQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "audit_queue_depth",
			Help: "Pending audit writes in the worker queue",
		},
	)
)

// Handler serves /metrics.
var Handler = promhttp.Handler

func Init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(RatingsTotal)
	prometheus.MustRegister(LoginsTotal)
	prometheus.MustRegister(LoginsFailed)
	prometheus.MustRegister(AuditQueueDepth)
}
