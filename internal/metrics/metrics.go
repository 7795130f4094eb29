// Package metrics exposes Prometheus collectors for drafts and RPC traffic.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Submission outcomes.
const (
	OutcomeAccepted  = "accepted"
	OutcomeInvalid   = "invalid"
	OutcomeRejected  = "rejected"
	OutcomeTransport = "transport"
	OutcomeInFlight  = "in_flight"
)

// Metrics holds the collectors of one process.
type Metrics struct {
	registry *prometheus.Registry

	DraftsOpened       prometheus.Counter
	DraftsExpired      prometheus.Counter
	OpenDrafts         prometheus.Gauge
	Submissions        *prometheus.CounterVec
	ValidationFailures *prometheus.CounterVec
	RPCDuration        *prometheus.HistogramVec
}

// New registers all collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		DraftsOpened: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "spend",
			Name:      "drafts_opened_total",
			Help:      "Transaction drafts opened.",
		}),
		DraftsExpired: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "spend",
			Name:      "drafts_expired_total",
			Help:      "Drafts closed by the idle sweeper.",
		}),
		OpenDrafts: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "spend",
			Name:      "drafts_open",
			Help:      "Drafts currently held in memory.",
		}),
		Submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "spend",
			Name:      "draft_submissions_total",
			Help:      "Draft submissions by outcome.",
		}, []string{"outcome"}),
		ValidationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "spend",
			Name:      "validation_failures_total",
			Help:      "Rejected draft events and submissions by failure kind.",
		}, []string{"kind"}),
		RPCDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "spend",
			Name:      "rpc_duration_seconds",
			Help:      "Latency of Connect RPCs.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure", "code"}),
	}

	reg.MustRegister(
		m.DraftsOpened,
		m.DraftsExpired,
		m.OpenDrafts,
		m.Submissions,
		m.ValidationFailures,
		m.RPCDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry returns the registry the collectors live on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
