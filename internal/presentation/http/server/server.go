// Package server wraps the HTTP listener with the configured timeouts and
// graceful shutdown.
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/asikrahman/swe-portfolio-server/internal/application/container"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/observability/logging"
	"github.com/asikrahman/swe-portfolio-server/internal/presentation/http/routes"
	"github.com/asikrahman/swe-portfolio-server/pkg/config"
)

// Server owns the http.Server serving the API and media routes.
type Server struct {
	httpServer *http.Server
	logger     *logging.ChanneledLogger
}

// New builds the router from the container and wraps it in an http.Server
// with the configured timeouts.
func New(port string, container *container.Container) *Server {
	router := routes.SetupRoutes(container)

	return &Server{
		httpServer: &http.Server{
			Addr:         ":" + port,
			Handler:      router,
			ReadTimeout:  config.ServerReadTimeout,
			WriteTimeout: config.ServerWriteTimeout,
			IdleTimeout:  config.ServerIdleTimeout,
		},
		logger: container.Logger,
	}
}

// Start blocks serving requests until Stop is called or the listener fails.
// A clean shutdown is not reported as an error.
func (s *Server) Start() error {
	s.logger.System().Info("HTTP server listening", "addr", s.httpServer.Addr)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

// Stop drains in-flight requests until ctx expires.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Shutdown().Info("Draining HTTP connections")
	return s.httpServer.Shutdown(ctx)
}
