// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package metrics collects and exposes Prometheus metrics for the Newsdesk API.

Two families are tracked:

  - Transport: request counts and latencies labelled by route pattern.
  - Domain: write events (articles, comments, topics) and vote deltas.

Collectors are registered on an injected [prometheus.Registerer] so that tests
can use a private registry instead of the global one.
*/
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "newsdesk"

// Entity and action label values for [Recorder.RecordWrite].
const (
	EntityArticle = "article"
	EntityComment = "comment"
	EntityTopic   = "topic"

	ActionCreated = "created"
	ActionDeleted = "deleted"
)

// Recorder is the domain-facing side of the collector. Services depend on it
// instead of on [*Collector] directly.
type Recorder interface {
	RecordWrite(entity, action string)
	RecordVotes(entity string, delta int64)
}

// Collector implements [Recorder] and the HTTP instrumentation.
type Collector struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	writes   *prometheus.CounterVec
	votes    *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status_code"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		writes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "writes_total",
			Help:      "Successful domain writes by entity and action.",
		}, []string{"entity", "action"}),
		votes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "votes_total",
			Help:      "Sum of absolute vote increments by entity and direction.",
		}, []string{"entity", "direction"}),
	}

	reg.MustRegister(c.requests, c.latency, c.writes, c.votes)
	return c
}

// ObserveRequest records one finished HTTP request.
func (c *Collector) ObserveRequest(method, route string, statusCode int, duration time.Duration) {
	c.requests.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	c.latency.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordWrite counts a successful create or delete.
func (c *Collector) RecordWrite(entity, action string) {
	c.writes.WithLabelValues(entity, action).Inc()
}

// RecordVotes adds |delta| to the up or down series. A zero delta is ignored.
func (c *Collector) RecordVotes(entity string, delta int64) {
	switch {
	case delta > 0:
		c.votes.WithLabelValues(entity, "up").Add(float64(delta))
	case delta < 0:
		c.votes.WithLabelValues(entity, "down").Add(float64(-delta))
	}
}

// Handler returns the HTTP handler Prometheus scrapes.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Nop is a [Recorder] that discards everything.
type Nop struct{}

// RecordWrite implements [Recorder].
func (Nop) RecordWrite(string, string) {}

// RecordVotes implements [Recorder].
func (Nop) RecordVotes(string, int64) {}
