package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"tradedesk/internal/dashboard/handler"
	"tradedesk/internal/dashboard/service"
	"tradedesk/internal/ledger/publisher"
	"tradedesk/internal/platform/config"
	"tradedesk/internal/platform/httpserver"
	"tradedesk/internal/platform/logger"
	httpmetrics "tradedesk/internal/platform/metrics"
	"tradedesk/internal/platform/middleware"
	"tradedesk/internal/store"
	storemetrics "tradedesk/internal/store/metrics"
	"tradedesk/internal/store/seed"
	"tradedesk/pkg/platform/httputil"
	"tradedesk/pkg/platform/middleware/actor"
	"tradedesk/pkg/platform/middleware/metadata"
	"tradedesk/pkg/platform/middleware/requesttime"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the store and dashboard
// service packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	if err := run(cfg, log); err != nil {
		log.Error("tradedesk stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Server, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, gctx := errgroup.WithContext(ctx)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	initial := store.EmptyState()
	if cfg.SeedEnabled {
		data, err := seed.Default()
		if err != nil {
			return fmt.Errorf("load seed: %w", err)
		}
		initial = store.NewState(data)
	}

	storeOpts := []store.Option{
		store.WithLogger(log),
		store.WithMetrics(storemetrics.New(reg)),
	}

	if cfg.Ledger.Enabled() {
		producer, err := publisher.NewKafkaProducer(cfg.Ledger.Brokers, cfg.Ledger.Topic)
		if err != nil {
			return fmt.Errorf("ledger producer: %w", err)
		}
		defer producer.Close()

		ensureCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		if err := producer.EnsureTopic(ensureCtx, 3, 1); err != nil {
			// The broker may still auto-create the topic on first write.
			log.Warn("could not ensure ledger topic", "topic", cfg.Ledger.Topic, "error", err)
		}
		cancel()

		pub := publisher.New(producer, publisher.WithLogger(log), publisher.WithMetrics(reg))
		storeOpts = append(storeOpts, store.WithHook(pub.Hook()))
		g.Go(func() error { return pub.Run(gctx) })
		log.Info("ledger fan-out enabled", "brokers", cfg.Ledger.Brokers, "topic", cfg.Ledger.Topic)
	}

	st := store.New(initial, storeOpts...)
	svc := service.New(st, service.WithLogger(log))

	router := chi.NewRouter()
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestID)
	router.Use(requesttime.Middleware)
	router.Use(metadata.ClientMetadata)
	router.Use(actor.Middleware)
	router.Use(middleware.Logger(log))
	router.Use(middleware.LatencyMiddleware(httpmetrics.New(reg)))
	router.Use(chimw.Timeout(30 * time.Second))

	router.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]any{
			"status":     "ok",
			"users":      st.State().Users.Len(),
			"ledger_len": st.State().LedgerLen(),
		})
	})
	router.Route("/api", handler.New(svc, log).Register)

	srv := httpserver.New(cfg.Addr, router)

	g.Go(func() error {
		log.Info("starting tradedesk", "addr", cfg.Addr, "seeded", cfg.SeedEnabled)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		log.Info("server stopped")
		return nil
	})

	return g.Wait()
}
