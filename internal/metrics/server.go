// Package metrics serves the prometheus and health endpoints of a run.
package metrics

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/razorpay/pipeline-testkit/internal/merror"
	"github.com/razorpay/pipeline-testkit/pkg/health"
	"github.com/razorpay/pipeline-testkit/pkg/logger"
)

const defaultShutdownTimeout = 5 * time.Second

// Server exposes /metrics and /healthz while a run is in progress
type Server struct {
	address         string
	shutdownTimeout time.Duration
	healthCore      *health.Core
	httpServer      *http.Server
}

// NewServer returns a server listening on address once Run is called
func NewServer(ctx context.Context, address string, shutdownTimeoutSec int) *Server {
	shutdownTimeout := time.Duration(shutdownTimeoutSec) * time.Second
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	healthCore := health.NewCore(ctx)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/healthz", healthCore.Handler())

	return &Server{
		address:         address,
		shutdownTimeout: shutdownTimeout,
		healthCore:      healthCore,
		httpServer:      &http.Server{Handler: mux},
	}
}

// Run serves until ctx is done and then shuts the server down
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		return merror.Wrapf(merror.InvalidArgument, err, "failed to listen on metrics address %v", s.address)
	}
	return s.Serve(ctx, listener)
}

// Serve is Run on an already open listener
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	logger.Ctx(ctx).Infow("serving metrics", "address", listener.Addr().String())

	errC := make(chan error, 1)
	go func() {
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			errC <- err
		}
		close(errC)
	}()

	select {
	case err := <-errC:
		if err != nil {
			return merror.Wrap(merror.Unknown, err, "metrics server failed")
		}
		return nil
	case <-ctx.Done():
	}

	s.healthCore.MarkUnhealthy()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	logger.Ctx(ctx).Infow("shutting down metrics server")
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Ctx(ctx).Errorw("failed to shut down metrics server", "error", err.Error())
		return merror.Wrap(merror.Unknown, err, "failed to shut down metrics server")
	}
	return nil
}
