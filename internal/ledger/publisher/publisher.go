// Package publisher streams verification ledger entries to a Kafka topic.
//
// The store calls the publisher's hook while it still holds its write lock,
// so the hook only buffers. A background worker drains the buffer in batches.
// Delivery is best effort: a batch that fails to publish is logged, counted
// and dropped, and a full buffer drops its oldest entry. After repeated
// failures a circuit breaker pauses publishing so entries wait in the buffer
// until the broker recovers. The in-memory ledger stays the source of truth.
package publisher

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/twmb/franz-go/pkg/kgo"

	"tradedesk/internal/store"
	"tradedesk/internal/store/models"
	dErrors "tradedesk/pkg/domain-errors"
)

const (
	defaultBufferSize    = 1024
	defaultBatchSize     = 100
	defaultFlushInterval = time.Second
	defaultDrainTimeout  = 5 * time.Second

	defaultFailureThreshold = 5
	defaultCooldown         = 30 * time.Second
)

// Producer writes records to the ledger topic.
type Producer interface {
	Produce(ctx context.Context, records ...*kgo.Record) error
}

type Publisher struct {
	producer      Producer
	buffer        *ringBuffer
	breaker       *breaker
	notify        chan struct{}
	batchSize     int
	flushInterval time.Duration
	drainTimeout  time.Duration
	logger        *slog.Logger
	registerer    prometheus.Registerer
	metrics       *Metrics
}

type Option func(*Publisher)

func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

// WithBufferSize bounds the number of entries waiting to be published.
func WithBufferSize(n int) Option {
	return func(p *Publisher) {
		p.buffer = newRingBuffer(n)
	}
}

func WithBatchSize(n int) Option {
	return func(p *Publisher) {
		if n > 0 {
			p.batchSize = n
		}
	}
}

// WithFlushInterval sets how often the worker flushes without being woken.
func WithFlushInterval(d time.Duration) Option {
	return func(p *Publisher) {
		if d > 0 {
			p.flushInterval = d
		}
	}
}

// WithDrainTimeout bounds the final flush after Run's context is cancelled.
func WithDrainTimeout(d time.Duration) Option {
	return func(p *Publisher) {
		if d > 0 {
			p.drainTimeout = d
		}
	}
}

// WithBreaker pauses publishing for cooldown after threshold consecutive
// failed batches.
func WithBreaker(threshold int, cooldown time.Duration) Option {
	return func(p *Publisher) {
		p.breaker = newBreaker(threshold, cooldown)
	}
}

// WithMetrics registers the publisher metrics with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(p *Publisher) {
		p.registerer = reg
	}
}

func New(producer Producer, opts ...Option) *Publisher {
	p := &Publisher{
		producer:      producer,
		buffer:        newRingBuffer(defaultBufferSize),
		breaker:       newBreaker(defaultFailureThreshold, defaultCooldown),
		notify:        make(chan struct{}, 1),
		batchSize:     defaultBatchSize,
		flushInterval: defaultFlushInterval,
		drainTimeout:  defaultDrainTimeout,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.registerer != nil {
		p.metrics = NewMetrics(p.registerer, p)
	}
	return p
}

// Hook returns the store hook that buffers every new ledger entry.
func (p *Publisher) Hook() store.Hook {
	return func(_ context.Context, res store.DispatchResult) {
		p.Enqueue(res.NewEntries...)
	}
}

// Enqueue buffers entries and wakes the worker. It never blocks.
func (p *Publisher) Enqueue(entries ...models.VerificationLogEntry) {
	if len(entries) == 0 {
		return
	}
	for _, e := range entries {
		p.buffer.enqueue(e)
	}
	select {
	case p.notify <- struct{}{}:
	default:
	}
}

// Pending returns the number of buffered entries.
func (p *Publisher) Pending() int {
	return p.buffer.len()
}

// Dropped returns how many entries were dropped because the buffer was full.
func (p *Publisher) Dropped() int64 {
	return p.buffer.droppedCount()
}

// Run drains the buffer until ctx is cancelled, then makes one last flush
// bounded by the drain timeout.
func (p *Publisher) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.flushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			drainCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.drainTimeout)
			defer cancel()
			p.flush(drainCtx)
			return nil
		case <-p.notify:
		case <-ticker.C:
		}
		p.flush(ctx)
	}
}

func (p *Publisher) flush(ctx context.Context) {
	for {
		if !p.breaker.allow() {
			return
		}
		batch := p.buffer.dequeueBatch(p.batchSize)
		if len(batch) == 0 {
			return
		}
		records := make([]*kgo.Record, 0, len(batch))
		for _, e := range batch {
			rec, err := Record(e)
			if err != nil {
				p.logger.ErrorContext(ctx, "failed to encode ledger entry", "entry_id", e.ID.String(), "error", err)
				p.metrics.failed(1)
				continue
			}
			records = append(records, rec)
		}
		if len(records) == 0 {
			continue
		}
		if err := p.producer.Produce(ctx, records...); err != nil {
			p.logger.ErrorContext(ctx, "failed to publish ledger entries", "count", len(records), "error", err)
			p.metrics.failed(len(records))
			if p.breaker.recordFailure() {
				p.logger.WarnContext(ctx, "ledger publishing paused", "cooldown", p.breaker.cooldown)
			}
			return
		}
		p.breaker.recordSuccess()
		p.metrics.published(len(records))
		p.logger.DebugContext(ctx, "published ledger entries", "count", len(records))
	}
}

// Record encodes one ledger entry. Records are keyed by entity id so every
// entry about one entity lands on the same partition, in ledger order.
func Record(e models.VerificationLogEntry) (*kgo.Record, error) {
	value, err := json.Marshal(e)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "encode ledger entry")
	}
	return &kgo.Record{
		Key:       []byte(e.EntityID),
		Value:     value,
		Timestamp: e.Timestamp,
		Headers: []kgo.RecordHeader{
			{Key: "kind", Value: []byte(e.Kind)},
			{Key: "entity_type", Value: []byte(e.EntityType)},
			{Key: "source", Value: []byte(e.Source)},
		},
	}, nil
}
