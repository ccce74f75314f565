// Package server exposes the ranking service over HTTP.
//
// The read surface is a single GET /ranking returning the aggregated
// payload; /health reports cache ages for monitoring. Failures collapse to
// a generic 500 body so callers never see a partially aggregated payload.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/rickgao/market-pulse/internal/config"
	"github.com/rickgao/market-pulse/internal/ranking"
)

// Server wraps the HTTP listener for the ranking service.
type Server struct {
	svc    *ranking.Service
	logger *slog.Logger
	http   *http.Server
}

// New creates a Server listening on the configured port.
func New(cfg config.ServerConfig, svc *ranking.Service, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		svc:    svc,
		logger: logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /ranking", s.handleRanking)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.http = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      withRequestID(withAccessLog(logger, mux)),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return s
}

// Start begins serving. It blocks until the listener fails or Stop is called.
func (s *Server) Start() error {
	s.logger.Info("http server listening", "addr", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop gracefully shuts down the listener.
func (s *Server) Stop(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// Handler exposes the routed handler for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

func (s *Server) handleRanking(w http.ResponseWriter, r *http.Request) {
	payload, err := s.svc.Payload(r.Context())
	if err != nil {
		s.logger.Error("ranking refresh failed",
			"request_id", requestID(r.Context()),
			"err", err,
		)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "internal error",
		})
		return
	}

	writeJSON(w, http.StatusOK, payload)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "healthy",
		"caches": s.svc.CacheAges(),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
