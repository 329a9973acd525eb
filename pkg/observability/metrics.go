package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Publish outcomes used as the "result" label.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Metrics groups the copilot collectors.
type Metrics struct {
	registry *prometheus.Registry

	Serializations *prometheus.CounterVec
	Replacements   prometheus.Counter
	TreeNodes      prometheus.Gauge
	Publishes      *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them, along with Go runtime
// collectors, on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Serializations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "autocopilot_serializations_total",
				Help: "Total number of instruction tree serializations",
			},
			[]string{"format"},
		),
		Replacements: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "autocopilot_tree_replacements_total",
			Help: "Total number of root instruction group replacements",
		}),
		TreeNodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "autocopilot_tree_nodes",
			Help: "Number of nodes in the current instruction tree, root included",
		}),
		Publishes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "autocopilot_publish_total",
				Help: "Total number of instruction tree publications by result",
			},
			[]string{"result"},
		),
	}

	m.registry.MustRegister(
		m.Serializations,
		m.Replacements,
		m.TreeNodes,
		m.Publishes,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
