package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"site-finder-service/internal/api"
	"site-finder-service/internal/app"
	"site-finder-service/internal/config"
	"site-finder-service/internal/platform/obs"
	"syscall"
	"time"
)

// main is the application composition root.
// It wires concrete adapters (EDDB, Canonn, caches) behind ports and starts the HTTP server.
func main() {
	config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}
	slog.SetDefault(obs.NewLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat))

	shutdownTracing, err := obs.InitTracing(cfg.TracingEnabled, os.Stdout)
	if err != nil {
		slog.Error("init tracing", "err", err)
		os.Exit(1)
	}
	defer obs.Shutdown(shutdownTracing)

	metrics, err := obs.NewMetrics(nil)
	if err != nil {
		slog.Error("init metrics", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	components, err := app.Build(ctx, cfg, metrics)
	if err != nil {
		slog.Error("build components", "err", err)
		os.Exit(1)
	}
	defer components.Close()

	router := api.NewRouter(api.Deps{
		Locator:  components.Locator,
		Searcher: components.Searcher,
		Catalog:  components.Catalog,
		Metrics:  metrics,
	})

	// Write timeout covers a cold catalog fetch with retries.
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "err", err)
		}
	case <-ctx.Done():
		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown failed", "err", err)
		}
	}
}
