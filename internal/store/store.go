package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"tradedesk/internal/store/metrics"
	"tradedesk/internal/store/models"
	dErrors "tradedesk/pkg/domain-errors"
	"tradedesk/pkg/requestcontext"
)

var tracer = otel.Tracer("tradedesk/store")

// DispatchResult describes an applied dispatch.
type DispatchResult struct {
	Action Action
	State  State
	// Ledger entries appended by this dispatch, in append order.
	NewEntries []models.VerificationLogEntry
}

// Hook runs after every successful dispatch, outside the reducer but still
// under the store lock, so hooks observe dispatches in order. Hooks must not
// call Dispatch.
type Hook func(ctx context.Context, res DispatchResult)

// Store is one session's domain store. Dispatch is the only way to change its
// state and is serialized, so concurrent admin sessions sharing a Store see a
// single ordered history.
type Store struct {
	mu      sync.RWMutex
	state   State
	reducer *Reducer
	hooks   []Hook
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type Option func(*Store)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Store) {
		s.metrics = m
	}
}

func WithReducer(r *Reducer) Option {
	return func(s *Store) {
		if r != nil {
			s.reducer = r
		}
	}
}

// WithHook registers a post-dispatch hook.
func WithHook(h Hook) Option {
	return func(s *Store) {
		if h != nil {
			s.hooks = append(s.hooks, h)
		}
	}
}

// New creates a Store starting from initial.
func New(initial State, opts ...Option) *Store {
	s := &Store{state: initial, reducer: NewReducer()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current snapshot. Snapshots are never modified by later
// dispatches.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch applies a and returns the resulting state. On error the state is
// unchanged and the current snapshot is returned.
func (s *Store) Dispatch(ctx context.Context, a Action) (State, error) {
	tag := "<nil>"
	if a != nil {
		tag = string(a.Tag())
	}
	ctx, span := tracer.Start(ctx, "Store.Dispatch",
		trace.WithAttributes(attribute.String("store.action", tag)))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	prev := s.state
	next, err := s.reducer.Reduce(prev, a)
	elapsed := time.Since(start)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, string(dErrors.CodeOf(err)))
		s.metrics.ObserveDispatch(tag, metrics.OutcomeRejected, elapsed)
		s.log(ctx, slog.LevelWarn, "dispatch rejected",
			"action", tag,
			"code", string(dErrors.CodeOf(err)),
			"error", err,
		)
		return prev, err
	}

	s.state = next
	res := DispatchResult{Action: a, State: next, NewEntries: next.LedgerSince(prev.LedgerLen())}
	for _, e := range res.NewEntries {
		s.metrics.IncrementLedgerEntry(string(e.Kind))
	}
	s.metrics.ObserveDispatch(tag, metrics.OutcomeApplied, elapsed)
	s.log(ctx, slog.LevelDebug, "dispatch applied",
		"action", tag,
		"ledger_appended", len(res.NewEntries),
		"duration", elapsed,
	)
	for _, h := range s.hooks {
		h(ctx, res)
	}
	return next, nil
}

func (s *Store) log(ctx context.Context, level slog.Level, msg string, args ...any) {
	if s.logger == nil {
		return
	}
	if requestID := requestcontext.RequestID(ctx); requestID != "" {
		args = append(args, "request_id", requestID)
	}
	if actor := requestcontext.Actor(ctx); actor != "" {
		args = append(args, "actor", actor)
	}
	s.logger.Log(ctx, level, msg, args...)
}
