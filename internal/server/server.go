// Package server exposes a loaded navigator over a small JSON HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/indoornav/config"
	"github.com/katalvlaran/indoornav/navigator"
)

// Server serves route and proximity queries. The navigator can be replaced
// at runtime with Swap; in-flight requests finish on the one they started with.
type Server struct {
	nav    atomic.Pointer[navigator.Navigator]
	cfg    config.ServerConfig
	nearby config.NearbyConfig
	logger *slog.Logger
	router *mux.Router
	http   *http.Server
}

// New wires the routes. nav must not be nil.
func New(nav *navigator.Navigator, cfg config.Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		cfg:    cfg.Server,
		nearby: cfg.Nearby,
		logger: logger,
		router: mux.NewRouter(),
	}
	s.nav.Store(nav)

	api := s.router.PathPrefix("/v1").Subrouter()
	api.HandleFunc("/route", s.handleRoute).Methods(http.MethodGet)
	api.HandleFunc("/nearby", s.handleNearby).Methods(http.MethodGet)
	api.HandleFunc("/reachable", s.handleReachable).Methods(http.MethodGet)
	api.HandleFunc("/graph", s.handleGraph).Methods(http.MethodGet)
	s.router.HandleFunc("/healthz", s.handleHealthz).Methods(http.MethodGet)
	s.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	s.router.Use(s.requestIDMiddleware, s.loggingMiddleware, s.recoveryMiddleware)

	s.http = &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      s.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return s
}

// Handler returns the root handler, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.router }

// Navigator returns the navigator currently serving requests.
func (s *Server) Navigator() *navigator.Navigator { return s.nav.Load() }

// Swap installs nav and returns the previous navigator. nil is ignored.
func (s *Server) Swap(nav *navigator.Navigator) *navigator.Navigator {
	if nav == nil {
		return s.nav.Load()
	}

	return s.nav.Swap(nav)
}

// Run listens until ctx is cancelled, then shuts down gracefully within
// ShutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", "addr", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("HTTP server startup failed: %w", err)
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("starting graceful shutdown of HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server shutdown: %w", err)
	}

	return <-errCh
}
