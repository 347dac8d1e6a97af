package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-edge-daemon/internal/config"
	"github.com/MKhiriev/go-edge-daemon/internal/logger"
)

// Server serves the management API on the daemon's management URI.
type Server struct {
	httpServer *http.Server
	uri        *config.URI
	logger     *logger.Logger
}

// NewServer creates a management server for handler, bound to
// managementURI. Supported schemes: "http" (TCP listener on the URI's
// host) and "unix" (domain socket listener on the URI's path).
func NewServer(handler http.Handler, managementURI *config.URI, logger *logger.Logger) (*Server, error) {
	logger.Info().Msg("creating management server...")

	if managementURI == nil || managementURI.Scheme == "" {
		return nil, errNoManagementEndpoint
	}

	switch managementURI.Scheme {
	case "http", "unix":
	default:
		return nil, fmt.Errorf("%w: got %q", errUnsupportedScheme, managementURI.Scheme)
	}

	return &Server{
		httpServer: &http.Server{Handler: handler},
		uri:        managementURI,
		logger:     logger,
	}, nil
}

// RunServer starts serving and blocks until a stop signal arrives.
func (s *Server) RunServer() {
	if err := s.run(); err != nil {
		s.logger.Error().Err(err).Msg("error running management server")
	}
}

// Shutdown gracefully stops the server and frees the listener.
func (s *Server) Shutdown() {
	if err := s.httpServer.Shutdown(context.Background()); err != nil {
		s.logger.Error().Err(err).Msg("error shutting down management server")
	}
}

func (s *Server) run() error {
	listener, err := s.listen()
	if err != nil {
		return fmt.Errorf("error listening on %s: %w", s.uri, err)
	}

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

	s.logger.Info().Str("uri", s.uri.String()).Msg("launching management server")
	if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	<-idleConnectionsClosed
	s.logger.Info().Msg("management server shut down gracefully")

	return nil
}

func (s *Server) listen() (net.Listener, error) {
	if s.uri.Scheme == "unix" {
		return net.Listen("unix", s.uri.Path)
	}

	return net.Listen("tcp", s.uri.Host)
}
