package publisher

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts ledger entries leaving the process.
type Metrics struct {
	Published prometheus.Counter
	Failed    prometheus.Counter
}

// NewMetrics registers the publisher metrics with reg, or with the default
// registerer when reg is nil. The dropped and pending gauges read p live.
func NewMetrics(reg prometheus.Registerer, p *Publisher) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	m := &Metrics{
		Published: factory.NewCounter(prometheus.CounterOpts{
			Name: "tradedesk_ledger_published_total",
			Help: "Verification ledger entries written to the ledger topic",
		}),
		Failed: factory.NewCounter(prometheus.CounterOpts{
			Name: "tradedesk_ledger_publish_failures_total",
			Help: "Verification ledger entries that could not be written",
		}),
	}
	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "tradedesk_ledger_dropped_entries",
		Help: "Entries dropped because the publish buffer was full",
	}, func() float64 { return float64(p.buffer.droppedCount()) })
	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "tradedesk_ledger_pending_entries",
		Help: "Entries waiting in the publish buffer",
	}, func() float64 { return float64(p.buffer.len()) })
	return m
}

func (m *Metrics) published(n int) {
	if m == nil {
		return
	}
	m.Published.Add(float64(n))
}

func (m *Metrics) failed(n int) {
	if m == nil {
		return
	}
	m.Failed.Add(float64(n))
}
