// Package metrics exposes Prometheus instrumentation for fetch dispatches.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector records dispatch outcomes. A nil *Collector is valid and records
// nothing. It is safe for concurrent use.
type Collector struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	requestsInFlight *prometheus.GaugeVec
	errorsTotal      *prometheus.CounterVec
}

// NewCollector creates a collector on the default registerer.
func NewCollector() *Collector {
	return NewCollectorWithRegistry(prometheus.DefaultRegisterer)
}

// NewCollectorWithRegistry creates a collector using the supplied registerer.
func NewCollectorWithRegistry(registry prometheus.Registerer) *Collector {
	return &Collector{
		requestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "ftchr_requests_total",
				Help: "Total number of dispatched requests that produced a response",
			},
			[]string{"method", "status_code", "transport"},
		),
		requestDuration: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ftchr_request_duration_seconds",
				Help:    "Duration of dispatched requests in seconds, normalization included",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "transport"},
		),
		requestsInFlight: promauto.With(registry).NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "ftchr_requests_in_flight",
				Help: "Number of requests currently in flight",
			},
			[]string{"method", "transport"},
		),
		errorsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "ftchr_errors_total",
				Help: "Total number of failed dispatches by error kind",
			},
			[]string{"kind", "method", "transport"},
		),
	}
}

// RecordRequestStart increments the in-flight gauge.
func (c *Collector) RecordRequestStart(method, transport string) {
	if c == nil {
		return
	}
	c.requestsInFlight.WithLabelValues(method, transport).Inc()
}

// RecordRequestEnd decrements the in-flight gauge and observes the duration.
func (c *Collector) RecordRequestEnd(method, transport string, duration time.Duration) {
	if c == nil {
		return
	}
	c.requestsInFlight.WithLabelValues(method, transport).Dec()
	c.requestDuration.WithLabelValues(method, transport).Observe(duration.Seconds())
}

// RecordResponse counts a response by status code. Zero means no response.
func (c *Collector) RecordResponse(method, transport string, statusCode int) {
	if c == nil || statusCode == 0 {
		return
	}
	c.requestsTotal.WithLabelValues(method, strconv.Itoa(statusCode), transport).Inc()
}

// RecordError counts a failed dispatch.
func (c *Collector) RecordError(kind, method, transport string) {
	if c == nil {
		return
	}
	c.errorsTotal.WithLabelValues(kind, method, transport).Inc()
}
