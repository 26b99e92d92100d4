package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"

	"salsac-engine/internal/config"
	"salsac-engine/internal/handler"
	"salsac-engine/internal/regimeregistry"
)

const shutdownTimeout = 30 * time.Second

// New wires the registry and handler into a fasthttp server.
func New(cfg *config.Config, log *logrus.Logger) (*fasthttp.Server, error) {
	regime, err := cfg.Regime()
	if err != nil {
		return nil, fmt.Errorf("load regime: %w", err)
	}

	registry := regimeregistry.New(cfg.RegimeRegistryURL, cfg.TaxYear, regime, log)
	if registry.DefaultYear() != regime.TaxYear {
		// Warm the cache for the configured year.
		registry.Resolve(registry.DefaultYear())
	}

	h := handler.New(registry, log)
	return &fasthttp.Server{
		Handler:      h.Route,
		Name:         "salsac-engine",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}, nil
}

// Run serves on cfg.Port until SIGINT or SIGTERM.
func Run(cfg *config.Config, log *logrus.Logger) error {
	srv, err := New(cfg, log)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Salary sacrifice engine starting on port %s", cfg.Port)
		errCh <- srv.ListenAndServe(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-quit:
	}

	log.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.ShutdownWithContext(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	log.Info("Server stopped")
	return nil
}
