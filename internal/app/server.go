package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
)

// ShutdownHook runs after the HTTP server has stopped accepting requests.
type ShutdownHook func(ctx context.Context) error

// Server wraps http.Server with graceful shutdown capabilities.
type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
	hooks           []ShutdownHook
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithShutdownTimeout bounds the whole shutdown sequence.
func WithShutdownTimeout(timeout time.Duration) ServerOption {
	return func(s *Server) {
		if timeout > 0 {
			s.shutdownTimeout = timeout
		}
	}
}

// WithShutdownHook registers a hook run during shutdown, in registration order.
func WithShutdownHook(hook ShutdownHook) ServerOption {
	return func(s *Server) {
		s.hooks = append(s.hooks, hook)
	}
}

// NewServer creates a new Server instance.
// WriteTimeout leaves room for slow image downloads behind the request timeout.
func NewServer(handler http.Handler, port string, opts ...ServerOption) *Server {
	s := &Server{
		httpServer: &http.Server{
			Addr:              ":" + port,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      45 * time.Second,
			IdleTimeout:       60 * time.Second,
			MaxHeaderBytes:    1 << 20, // 1MB
		},
		shutdownTimeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run starts the server and blocks until a shutdown signal is received.
func (s *Server) Run() error {
	errChan := make(chan error, 1)

	go func() {
		log.Info().Str("addr", s.httpServer.Addr).Msg("Server starting")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errChan:
		return err
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("Received signal, initiating graceful shutdown")
	}

	return s.Shutdown()
}

// Shutdown stops the HTTP server, then runs the shutdown hooks.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	var errs []error
	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
		errs = append(errs, err)
	}
	for _, hook := range s.hooks {
		if err := hook(ctx); err != nil {
			log.Error().Err(err).Msg("Shutdown hook failed")
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	log.Info().Msg("Server stopped gracefully")
	return nil
}
