package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for seller ledgers and payout batches.
type Metrics struct {
	TransactionsRecorded prometheus.Counter
	PayoutsInitiated     prometheus.Counter
	PayoutsFailed        *prometheus.CounterVec
	PayoutsReversed      prometheus.Counter
	PayoutAmountCents    prometheus.Counter
	GatewayLatency       *prometheus.HistogramVec
	ConfigChanges        prometheus.Counter
}

// New creates a new Metrics instance with all payout metrics registered.
func New() *Metrics {
	return &Metrics{
		TransactionsRecorded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "agora_payout_seller_transactions_total",
			Help: "Seller transactions recorded from paid checkouts",
		}),
		PayoutsInitiated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "agora_payout_payouts_initiated_total",
			Help: "Payouts accepted by the gateway",
		}),
		PayoutsFailed: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "agora_payout_payouts_failed_total",
			Help: "Payout attempts rejected or lost by the gateway, by error category",
		}, []string{"category"}),
		PayoutsReversed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "agora_payout_payouts_reversed_total",
			Help: "Payouts reported failed after initiation and reversed",
		}),
		PayoutAmountCents: promauto.NewCounter(prometheus.CounterOpts{
			Name: "agora_payout_amount_cents_total",
			Help: "Sum of initiated payout amounts in minor units",
		}),
		GatewayLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "agora_payout_gateway_latency_seconds",
			Help:    "Payout gateway call latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		ConfigChanges: promauto.NewCounter(prometheus.CounterOpts{
			Name: "agora_payout_config_changes_total",
			Help: "Territory payout configuration rows written",
		}),
	}
}

func (m *Metrics) IncrementTransactions() {
	if m == nil {
		return
	}
	m.TransactionsRecorded.Inc()
}

func (m *Metrics) RecordPayout(amountCents int64) {
	if m == nil {
		return
	}
	m.PayoutsInitiated.Inc()
	m.PayoutAmountCents.Add(float64(amountCents))
}

func (m *Metrics) IncrementFailure(category string) {
	if m == nil {
		return
	}
	m.PayoutsFailed.WithLabelValues(category).Inc()
}

func (m *Metrics) IncrementReversal() {
	if m == nil {
		return
	}
	m.PayoutsReversed.Inc()
}

func (m *Metrics) ObserveGateway(operation string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.GatewayLatency.WithLabelValues(operation).Observe(elapsed.Seconds())
}

func (m *Metrics) IncrementConfigChange() {
	if m == nil {
		return
	}
	m.ConfigChanges.Inc()
}
