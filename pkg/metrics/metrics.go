package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics aggregates the Prometheus collectors exported by the service.
type Metrics struct {
	Registry *prometheus.Registry

	SlotsScanned    *prometheus.CounterVec
	SlotsKept       *prometheus.CounterVec
	ScanDuration    prometheus.Histogram
	CacheHits       prometheus.Counter
	CacheMisses     prometheus.Counter
	TraitOracleErrs prometheus.Counter
}

// New registers all collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		SlotsScanned: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "muhurat",
			Name:      "slots_scanned_total",
			Help:      "Candidate time slots evaluated by the scanner.",
		}, []string{"phase"}),
		SlotsKept: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "muhurat",
			Name:      "slots_kept_total",
			Help:      "Slots that survived filtering, scoring and dedup.",
		}, []string{"phase"}),
		ScanDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "muhurat",
			Name:      "scan_duration_seconds",
			Help:      "Wall time of a full two-phase scan.",
			Buckets:   prometheus.DefBuckets,
		}),
		CacheHits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "muhurat",
			Name:      "suggestion_cache_hits_total",
			Help:      "Suggestion responses served from cache.",
		}),
		CacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "muhurat",
			Name:      "suggestion_cache_misses_total",
			Help:      "Suggestion requests that required a scan.",
		}),
		TraitOracleErrs: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "muhurat",
			Name:      "trait_oracle_degradations_total",
			Help:      "Trait mapping calls that degraded to an empty list.",
		}),
	}
}
