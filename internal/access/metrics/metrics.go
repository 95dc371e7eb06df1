package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for access decisions and the decision cache.
type Metrics struct {
	CacheLookups  *prometheus.CounterVec
	Decisions     *prometheus.CounterVec
	Invalidations *prometheus.CounterVec
}

// New creates a new Metrics instance with all access metrics registered.
func New() *Metrics {
	return &Metrics{
		CacheLookups: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "agora_access_cache_lookups_total",
			Help: "Access cache lookups by entry kind and hit/miss",
		}, []string{"kind", "result"}),
		Decisions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "agora_access_decisions_total",
			Help: "Access decisions by check kind and outcome",
		}, []string{"kind", "outcome"}),
		Invalidations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "agora_access_cache_invalidations_total",
			Help: "Access cache invalidations by target kind",
		}, []string{"target"}),
	}
}

func (m *Metrics) ObserveCacheLookup(kind string, hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheLookups.WithLabelValues(kind, result).Inc()
}

func (m *Metrics) ObserveDecision(kind, outcome string) {
	if m == nil {
		return
	}
	m.Decisions.WithLabelValues(kind, outcome).Inc()
}

func (m *Metrics) IncrementInvalidation(target string) {
	if m == nil {
		return
	}
	m.Invalidations.WithLabelValues(target).Inc()
}
