// Package metrics counts CLI query work with Prometheus collectors on a
// private registry, and dumps them in text exposition format.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Query kinds used as the "kind" label.
const (
	KindBFS    = "bfs"
	KindPath   = "path"
	KindSort   = "sort"
	KindSearch = "search"
)

// Recorder owns a registry and the collectors registered on it.
type Recorder struct {
	reg *prometheus.Registry

	Visits        prometheus.Counter
	Relaxations   prometheus.Counter
	Queries       *prometheus.CounterVec
	QueryDuration *prometheus.HistogramVec
}

// New builds a Recorder on a fresh registry.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Recorder{
		reg: reg,
		Visits: f.NewCounter(prometheus.CounterOpts{
			Name: "algolab_bfs_visits_total",
			Help: "Total number of vertices expanded by breadth-first search.",
		}),
		Relaxations: f.NewCounter(prometheus.CounterOpts{
			Name: "algolab_dijkstra_relaxations_total",
			Help: "Total number of strictly improving edge relaxations.",
		}),
		Queries: f.NewCounterVec(prometheus.CounterOpts{
			Name: "algolab_queries_total",
			Help: "Total number of queries, labelled by kind and outcome.",
		}, []string{"kind", "outcome"}),
		QueryDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "algolab_query_duration_seconds",
			Help:    "Query wall time in seconds, labelled by kind.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, []string{"kind"}),
	}
}

// ObserveQuery records one finished query.
func (r *Recorder) ObserveQuery(kind string, took time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	r.Queries.WithLabelValues(kind, outcome).Inc()
	r.QueryDuration.WithLabelValues(kind).Observe(took.Seconds())
}

// Gatherer exposes the private registry.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.reg
}

// WriteTextfile writes all metrics to path in text exposition format.
// The write is atomic (temp file + rename).
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}
