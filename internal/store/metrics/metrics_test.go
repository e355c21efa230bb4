package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveDispatch(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveDispatch("ADD_FACILITY", OutcomeApplied, time.Millisecond)
	m.ObserveDispatch("ADD_FACILITY", OutcomeApplied, time.Millisecond)
	m.ObserveDispatch("ADD_FACILITY", OutcomeRejected, time.Millisecond)
	m.IncrementLedgerEntry("kyc_approval")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.DispatchTotal.WithLabelValues("ADD_FACILITY", OutcomeApplied)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DispatchTotal.WithLabelValues("ADD_FACILITY", OutcomeRejected)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LedgerEntries.WithLabelValues("kyc_approval")))
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveDispatch("ADD_FACILITY", OutcomeApplied, time.Millisecond)
		m.IncrementLedgerEntry("face_match")
	})
}
