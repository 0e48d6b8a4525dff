// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timewright

package server

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/timewright/timeapi-mcp/internal/logger"
)

// Server wraps the hosting http.Server with signal-aware run/shutdown.
type Server struct {
	httpServer *http.Server
	logger     *logger.Logger
}

// New constructs a Server listening on addr and serving handler.
func New(handler http.Handler, addr string, logger *logger.Logger) *Server {
	return &Server{
		httpServer: &http.Server{Addr: addr, Handler: handler},
		logger:     logger,
	}
}

// RunServer serves until SIGINT/SIGTERM/SIGQUIT, then shuts down gracefully.
func (s *Server) RunServer() {
	if err := s.run(); err != nil {
		s.logger.Info().Msgf("Error running server: %v", err)
	}
}

// Shutdown stops the HTTP server, waiting for in-flight requests to finish.
func (s *Server) Shutdown() {
	if err := s.httpServer.Shutdown(context.Background()); err != nil {
		s.logger.Info().Msgf("HTTP server Shutdown: %v", err)
	}
}

func (s *Server) run() error {
	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// listen for stop signals
	go func() {
		<-ctx.Done()
		s.Shutdown()
		close(idleConnectionsClosed)
	}()

	s.logger.Info().Str("addr", s.httpServer.Addr).Msg("Launching HTTP server")
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}
