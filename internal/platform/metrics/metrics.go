// Package metrics owns the Prometheus registry and the collectors the API and loader export
package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/push"
)

const namespace = "qanda"

// Registry bundles a private Prometheus registry with the project collectors
type Registry struct {
	reg *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	ingested     *prometheus.CounterVec
}

// New builds a registry with Go runtime and process collectors plus the project collectors
func New() *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	r := &Registry{
		reg: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route pattern and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		ingested: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ingest",
			Name:      "entities_total",
			Help:      "Entities processed by the loader by kind and outcome.",
		}, []string{"kind", "outcome"}),
	}
	reg.MustRegister(r.httpRequests, r.httpDuration, r.ingested)
	return r
}

// Handler serves the exposition format for this registry
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}

// Gatherer exposes the underlying registry for tests and pushers
func (r *Registry) Gatherer() prometheus.Gatherer { return r.reg }

// Push replaces the metrics of job on the Pushgateway at url with this registry
func (r *Registry) Push(ctx context.Context, url, job string) error {
	return push.New(url, job).Gatherer(r.Gatherer()).PushContext(ctx)
}

// ObserveHTTP records one finished request
func (r *Registry) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Ingested counts one loader entity; kind is user, question, q_comment, answer or a_comment
func (r *Registry) Ingested(kind, outcome string) {
	r.ingested.WithLabelValues(kind, outcome).Inc()
}
