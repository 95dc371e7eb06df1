package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for membership and grant management.
type Metrics struct {
	Changes       *prometheus.CounterVec
	PublishErrors prometheus.Counter
}

// New creates a new Metrics instance with all membership metrics registered.
func New() *Metrics {
	return &Metrics{
		Changes: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "agora_membership_changes_total",
			Help: "Membership, capability and permission changes by action",
		}, []string{"action"}),
		PublishErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "agora_membership_event_publish_errors_total",
			Help: "Access events that could not be published after commit",
		}),
	}
}

func (m *Metrics) IncrementChange(action string) {
	if m == nil {
		return
	}
	m.Changes.WithLabelValues(action).Inc()
}

func (m *Metrics) IncrementPublishError() {
	if m == nil {
		return
	}
	m.PublishErrors.Inc()
}
