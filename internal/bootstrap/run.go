package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// shutdownWaitTimeout bounds how long a stopping service may take.
const shutdownWaitTimeout = 10 * time.Second

// RunServicesWithShutdown starts all enabled services and manages their lifecycle.
// This function blocks until a shutdown signal is received or a service fails.
func RunServicesWithShutdown(cfg *ServiceOrchestrationConfig) error {
	if cfg == nil {
		return errors.New("service orchestration config is required")
	}
	if cfg.Config == nil {
		return errors.New("service orchestration config missing AppConfig")
	}

	serviceCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	errCh := make(chan error, 2)

	httpServer := startHTTPServerIfEnabled(cfg, logger)

	var refresherDone <-chan struct{}
	if cfg.Config.IsRefresherEnabled() && cfg.Services.Refresher != nil {
		refresherDone = launchRefresher(serviceCtx, cfg, logger, errCh)
	}

	return waitForShutdown(shutdownConfig{
		ctx:           serviceCtx,
		cancel:        cancel,
		errCh:         errCh,
		httpServer:    httpServer,
		refresherDone: refresherDone,
		logger:        logger,
	})
}

// launchRefresher runs the listing refresher in the background. The runner
// swallows per-pass errors itself; only a startup-level failure lands on errCh.
func launchRefresher(
	ctx context.Context,
	cfg *ServiceOrchestrationConfig,
	logger *slog.Logger,
	errCh chan<- error,
) <-chan struct{} {
	done := make(chan struct{})
	logger.Info("starting listing refresher", "interval", cfg.Config.Cache.RefreshInterval)

	go func() {
		defer close(done)
		if err := cfg.Services.Refresher.Run(ctx); err != nil {
			errCh <- fmt.Errorf("listing refresher: %w", err)
		}
	}()

	return done
}

// shutdownConfig contains dependencies for graceful shutdown.
type shutdownConfig struct {
	ctx           context.Context
	cancel        context.CancelFunc
	errCh         <-chan error
	httpServer    *http.Server
	refresherDone <-chan struct{}
	logger        *slog.Logger
}

// waitForShutdown waits for shutdown signal or service error.
func waitForShutdown(cfg shutdownConfig) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case <-quit:
		cfg.logger.Info("shutting down services...")
		cfg.cancel() // Cancel service context before waiting
		return gracefulStop(cfg)
	case err := <-cfg.errCh:
		cfg.logger.Error("service error", "error", err)
		cfg.cancel() // Cancel service context before waiting
		if stopErr := gracefulStop(cfg); stopErr != nil {
			cfg.logger.Error("graceful stop failed", "error", stopErr)
		}
		return err
	}
}

// gracefulStop attempts to gracefully stop all services.
func gracefulStop(cfg shutdownConfig) error {
	if cfg.httpServer != nil {
		if err := ShutdownHTTPServer(ShutdownConfig{
			Context: context.Background(),
			Server:  cfg.httpServer,
			Logger:  cfg.logger,
		}); err != nil {
			return err
		}
	}

	waitForService(cfg.refresherDone, "listing refresher", cfg.logger)

	return nil
}

// waitForService waits for a service to finish with timeout.
func waitForService(done <-chan struct{}, name string, logger *slog.Logger) {
	if done == nil {
		return
	}
	select {
	case <-done:
		logger.Info(name + " stopped")
	case <-time.After(shutdownWaitTimeout):
		logger.Warn("timeout waiting for " + name + " to stop")
	}
}
