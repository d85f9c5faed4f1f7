package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the gateway and HTTP collectors on a private registry, so
// several apps (tests) can coexist in one process.
type Metrics struct {
	registry *prometheus.Registry

	GatewayOperations *prometheus.CounterVec
	GatewayDuration   *prometheus.HistogramVec
	HTTPRequests      *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		GatewayOperations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "simata",
				Subsystem: "gateway",
				Name:      "operations_total",
				Help:      "Total document store operations by outcome",
			},
			[]string{"operation", "status"},
		),

		GatewayDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "simata",
				Subsystem: "gateway",
				Name:      "operation_duration_seconds",
				Help:      "Document store operation latency",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation"},
		),

		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "simata",
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total HTTP requests by route and status",
			},
			[]string{"method", "route", "status"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.GatewayOperations,
		m.GatewayDuration,
		m.HTTPRequests,
	)
	return m
}

// ObserveOperation records one store operation. Safe on a nil receiver.
func (m *Metrics) ObserveOperation(op string, start time.Time, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.GatewayOperations.WithLabelValues(op, status).Inc()
	m.GatewayDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry (used by tests to gather).
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }
