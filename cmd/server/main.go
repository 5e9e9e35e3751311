package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Wyydra/ya-relay/internal/adapter/driven/gateway/ws"
	"github.com/Wyydra/ya-relay/internal/adapter/driven/identity/jwt"
	"github.com/Wyydra/ya-relay/internal/adapter/driven/persistence/badgerstore"
	"github.com/Wyydra/ya-relay/internal/adapter/driven/presence/memory"
	handler "github.com/Wyydra/ya-relay/internal/adapter/driving/http"
	"github.com/Wyydra/ya-relay/internal/config"
	"github.com/Wyydra/ya-relay/internal/core/service"
	"github.com/Wyydra/ya-relay/internal/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := observability.SetupLogger(cfg.LogLevel, cfg.LogFormat, os.Stdout); err != nil {
		return fmt.Errorf("logger setup failed: %w", err)
	}

	store, err := badgerstore.Open(cfg.BadgerPath)
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info().Msg("Closing BadgerDB...")
		_ = store.Close()
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	presence := memory.NewRegistry()
	metrics := observability.NewMetrics(reg, presence)
	hub := ws.NewHub(metrics)
	sessions := service.NewSessionManager(jwt.NewVerifier(cfg.JWTSecret, cfg.JWTIssuer), presence, store)

	h := handler.NewHandler(
		sessions,
		service.NewRelay(store, presence),
		service.NewCallService(store, store, presence),
		hub,
		presence,
		metrics,
		reg,
		handler.Options{
			QueueSize:      cfg.OutboundQueueSize,
			WriteTimeout:   cfg.WriteTimeout,
			PongTimeout:    cfg.PongTimeout,
			PingInterval:   cfg.PingInterval,
			MaxFrameBytes:  cfg.MaxFrameBytes,
			AllowedOrigins: cfg.Origins(),
		},
	)

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: h.NewRouter(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", cfg.Addr).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownGrace)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Server forced to shutdown")
		}

		// Websocket connections are hijacked and outlive Shutdown.
		hub.Stop()
		h.Wait()
		sessions.Wait()
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info().Msg("Server exited")
	return nil
}
