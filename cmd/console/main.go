package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/sabari1933/hrconsole/internal/config"
	httpx "github.com/sabari1933/hrconsole/internal/http"
	"github.com/sabari1933/hrconsole/internal/observability"
	"github.com/sabari1933/hrconsole/internal/session"
	"github.com/sabari1933/hrconsole/internal/upstream"
)

func main() {
	// Load the config set up
	cfg := config.Load()

	// start up the observability logger
	log := observability.NewLogger(cfg.Env)

	// tracing is opt-in
	if cfg.TracingEnabled {
		shutdown, err := observability.InitTracer(context.Background(), "hrconsole", cfg.OTLPEndpoint)

		if err != nil {
			log.Error("tracer init failed", "err", err)
			os.Exit(1)
		}

		defer func() {
			ctx, cancel := config.WithTimeout(5 * time.Second)
			defer cancel()

			if err := shutdown(ctx); err != nil {
				log.Error("tracer shutdown failed", "err", err)
			}
		}()
	}

	// metrics registry
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	prom := observability.NewProm(registry)

	// pick the session backend; readiness pings whatever was picked
	store, ping, cleanup, err := buildSessionStore(cfg)

	if err != nil {
		log.Error("session store init failed", "backend", cfg.SessionBackend, "err", err)
		os.Exit(1)
	}

	defer cleanup()

	api := upstream.NewClient(cfg.UpstreamBaseURL, cfg.UpstreamTimeout, prom)

	// set up routers with the log
	router := httpx.NewRouter(cfg, log, store, api, prom, registry, ping)

	// server set up
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// start server using a concurrent go-routine driven anonymous function.

	go func() {
		log.Info("Server starting", "port", cfg.Port, "env", cfg.Env, "session_backend", cfg.SessionBackend)
		err := srv.ListenAndServe()

		if err != nil && err != http.ErrServerClosed {
			log.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Info("server shutting down")

	shutdownCh := make(chan struct{})

	go func() {
		defer close(shutdownCh)

		ctx, cancel := config.WithTimeout(10 * time.Second)

		defer cancel()

		err := srv.Shutdown(ctx)

		if err != nil {
			log.Error("graceful shutdown failed", "err", err)

			return
		}
	}()

	select {
	case <-shutdownCh:
		log.Info("shutdown complete")

	case <-time.After(12 * time.Second):
		log.Error("shutdown timed out")
	}
}

// buildSessionStore wires the configured backend and returns the store, a
// readiness ping and a cleanup func for shutdown.
func buildSessionStore(cfg config.Config) (session.Store, func() error, func(), error) {
	switch cfg.SessionBackend {
	case "redis":
		store := session.NewRedisStore(session.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})

		ping := func() error {
			ctx, cancel := config.WithTimeout(1 * time.Second)
			defer cancel()

			return store.Ping(ctx)
		}

		return store, ping, func() { _ = store.Close() }, nil

	case "postgres":
		pool, err := session.NewPool(cfg.DBURL)

		if err != nil {
			return nil, nil, nil, err
		}

		ping := func() error {
			ctx, cancel := config.WithTimeout(1 * time.Second)
			defer cancel()

			return pool.Ping(ctx)
		}

		return session.NewPostgresStore(pool), ping, pool.Close, nil

	case "memory":
		// single replica only; sessions are gone after a restart
		return session.NewMemoryStore(), func() error { return nil }, func() {}, nil

	default:
		return nil, nil, nil, fmt.Errorf("unknown session backend %q", cfg.SessionBackend)
	}
}
