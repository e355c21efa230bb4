package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Dispatch outcomes.
const (
	OutcomeApplied  = "applied"
	OutcomeRejected = "rejected"
)

// Metrics provides observability for the domain store.
type Metrics struct {
	// Dispatches by action tag and outcome
	DispatchTotal *prometheus.CounterVec

	// Reducer latency by action tag
	DispatchLatency *prometheus.HistogramVec

	// Verification ledger appends by kind
	LedgerEntries *prometheus.CounterVec
}

// New registers the store metrics with reg. A nil reg uses the default
// registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		DispatchTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tradedesk_store_dispatch_total",
			Help: "Total store dispatches by action tag and outcome",
		}, []string{"tag", "outcome"}),

		DispatchLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tradedesk_store_dispatch_duration_seconds",
			Help:    "Duration of store dispatches by action tag",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		}, []string{"tag"}),

		LedgerEntries: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tradedesk_ledger_entries_total",
			Help: "Total verification ledger entries appended by kind",
		}, []string{"kind"}),
	}
}

// ObserveDispatch records one dispatch.
func (m *Metrics) ObserveDispatch(tag, outcome string, d time.Duration) {
	if m != nil {
		m.DispatchTotal.WithLabelValues(tag, outcome).Inc()
		m.DispatchLatency.WithLabelValues(tag).Observe(d.Seconds())
	}
}

// IncrementLedgerEntry records a ledger append.
func (m *Metrics) IncrementLedgerEntry(kind string) {
	if m != nil {
		m.LedgerEntries.WithLabelValues(kind).Inc()
	}
}
