package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/iwvelando/loan-amortization/internal/logging"
	"github.com/iwvelando/loan-amortization/pkg/constants"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Run serves handler on the configured address until ctx is cancelled, then
// shuts down gracefully. If ready is non-nil it receives the bound address.
func Run(ctx context.Context, logger *zap.Logger, cfg *Config, handler http.Handler, ready chan<- string) error {
	logger = logging.OrNop(logger)

	listener, err := net.Listen("tcp", cfg.Address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.Address, err)
	}

	srv := &http.Server{
		Handler:      WithSecurityHeaders(WithRequestLogging(logger, handler)),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server listening",
			zap.String("op", "server.Run"),
			zap.String("address", listener.Addr().String()),
		)
		if ready != nil {
			ready <- listener.Addr().String()
		}
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server", zap.String("op", "server.Run"))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		return nil
	})

	return g.Wait()
}
