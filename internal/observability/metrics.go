package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors of the service. A nil *Metrics is a no-op.
type Metrics struct {
	requests      *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	errors        *prometheus.CounterVec
	eventsPurged  prometheus.Counter
	loginFailures prometheus.Counter
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_errors_total",
			Help: "Failed HTTP requests by route, method and error code.",
		}, []string{"route", "method", "code"}),
		eventsPurged: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "events_purged_total",
			Help: "Events removed after their deleteAt passed.",
		}),
		loginFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "auth_login_failures_total",
			Help: "Rejected login attempts.",
		}),
	}

	reg.MustRegister(m.requests, m.duration, m.errors, m.eventsPurged, m.loginFailures)
	return m
}

// RecordRequest counts a finished request.
func (m *Metrics) RecordRequest(route, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(route, method).Observe(duration.Seconds())
}

// RecordError counts a request that ended in an application error.
func (m *Metrics) RecordError(route, method, code string) {
	if m == nil {
		return
	}
	m.errors.WithLabelValues(route, method, code).Inc()
}

// RecordEventsPurged adds n swept events.
func (m *Metrics) RecordEventsPurged(n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.eventsPurged.Add(float64(n))
}

// RecordLoginFailure counts a rejected login.
func (m *Metrics) RecordLoginFailure() {
	if m == nil {
		return
	}
	m.loginFailures.Inc()
}
