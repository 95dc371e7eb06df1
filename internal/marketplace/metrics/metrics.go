package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for carts, checkouts and fee configuration.
type Metrics struct {
	CartOperations      *prometheus.CounterVec
	CheckoutsCreated    prometheus.Counter
	InquiriesCreated    prometheus.Counter
	CheckoutTransitions *prometheus.CounterVec
	FeeConfigChanges    prometheus.Counter
}

// New creates a new Metrics instance with all marketplace metrics registered.
func New() *Metrics {
	return &Metrics{
		CartOperations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "agora_marketplace_cart_operations_total",
			Help: "Cart operations by kind",
		}, []string{"operation"}),
		CheckoutsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "agora_marketplace_checkouts_created_total",
			Help: "Checkout bundles created from carts",
		}),
		InquiriesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "agora_marketplace_inquiries_created_total",
			Help: "Inquiries created from inquiry-only cart lines",
		}),
		CheckoutTransitions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "agora_marketplace_checkout_transitions_total",
			Help: "Checkout status transitions by target status",
		}, []string{"status"}),
		FeeConfigChanges: promauto.NewCounter(prometheus.CounterOpts{
			Name: "agora_marketplace_fee_config_changes_total",
			Help: "Platform fee configuration rows written",
		}),
	}
}

func (m *Metrics) IncrementCartOperation(op string) {
	if m == nil {
		return
	}
	m.CartOperations.WithLabelValues(op).Inc()
}

func (m *Metrics) AddCheckouts(checkouts, inquiries int) {
	if m == nil {
		return
	}
	m.CheckoutsCreated.Add(float64(checkouts))
	m.InquiriesCreated.Add(float64(inquiries))
}

func (m *Metrics) IncrementTransition(status string) {
	if m == nil {
		return
	}
	m.CheckoutTransitions.WithLabelValues(status).Inc()
}

func (m *Metrics) IncrementFeeConfigChange() {
	if m == nil {
		return
	}
	m.FeeConfigChanges.Inc()
}
