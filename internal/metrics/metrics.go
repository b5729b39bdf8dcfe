// Package metrics owns the service's Prometheus registry and collectors.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the collectors registered on a dedicated registry.
type Metrics struct {
	Registry *prometheus.Registry

	// HTTPRequests counts requests by method, route and status.
	HTTPRequests *prometheus.CounterVec
	// HTTPDuration records request durations in seconds.
	HTTPDuration *prometheus.HistogramVec
	// DomainEvents counts events seen on the bus by type.
	DomainEvents *prometheus.CounterVec
	// Notifications is the current size of the notification feed.
	Notifications prometheus.Gauge
	// JobRuns counts scheduled job executions by job and outcome.
	JobRuns *prometheus.CounterVec
}

// New builds the collectors and registers them, together with the Go and
// process collectors, on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		DomainEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "domain_events_total", Help: "Domain events received by type."},
			[]string{"type"},
		),
		Notifications: prometheus.NewGauge(
			prometheus.GaugeOpts{Name: "notifications_active", Help: "Notifications currently in the feed."},
		),
		JobRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "job_runs_total", Help: "Scheduled job runs by job and outcome."},
			[]string{"job", "outcome"},
		),
	}

	m.Registry.MustRegister(
		m.HTTPRequests,
		m.HTTPDuration,
		m.DomainEvents,
		m.Notifications,
		m.JobRuns,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}

// ObserveRequest records one finished HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveEvent counts a domain event by type.
func (m *Metrics) ObserveEvent(eventType string) {
	m.DomainEvents.WithLabelValues(eventType).Inc()
}

// SetNotifications records the feed size.
func (m *Metrics) SetNotifications(n int) {
	m.Notifications.Set(float64(n))
}

// ObserveJob records a job run; a nil err is counted as "ok".
func (m *Metrics) ObserveJob(job string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.JobRuns.WithLabelValues(job, outcome).Inc()
}
