// Package metrics provides Prometheus metric collection and exposure.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records HTTP-level metrics for the API.
type Collector struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration prometheus.Histogram
	tasksSynced     prometheus.Counter
}

// NewCollector creates a Collector and registers its metrics with the
// given registry.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "genesis_http_requests_total",
			Help: "Number of HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status_code"}),
		requestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "genesis_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
		tasksSynced: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "genesis_tasks_synced_total",
			Help: "Number of task records returned to clients by sync calls.",
		}),
	}

	reg.MustRegister(
		c.requestsTotal,
		c.requestDuration,
		c.tasksSynced,
	)

	return c
}

// RecordRequest counts one finished HTTP request.
func (c *Collector) RecordRequest(method, route string, statusCode int, duration time.Duration) {
	c.requestsTotal.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	c.requestDuration.Observe(duration.Seconds())
}

// RecordTasksSynced counts task records handed back to a client.
func (c *Collector) RecordTasksSynced(count int) {
	c.tasksSynced.Add(float64(count))
}

// Handler returns the HTTP handler serving Prometheus scrapes.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
