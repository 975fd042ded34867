package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/macroplate/macroplate/internal/config"
	"github.com/macroplate/macroplate/internal/logger"
	"github.com/macroplate/macroplate/internal/mcpserver"
	"github.com/macroplate/macroplate/internal/nats"
	"github.com/macroplate/macroplate/internal/orders"
)

// loadConfig loads configuration, lets the command apply its flags on top,
// validates the result and configures logging. A .env file in the working
// directory may supply MACROPLATE_* variables; real environment wins.
func loadConfig(apply func(cfg *config.Config)) (*config.Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn("Failed to load .env file: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if apply != nil {
		apply(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return nil, fmt.Errorf("failed to configure logging: %w", err)
	}
	if ids := cfg.Recommendation.Unreachable(); len(ids) > 0 {
		logger.Warn("Recommendation rules reference identifiers no screen produces: %s (run 'macroplate setup' for synchronized rules)",
			strings.Join(ids, ", "))
	}
	return cfg, nil
}

// orderBus is the submission side of a run: the submitter, an optional
// order listing, and a cleanup function.
type orderBus struct {
	submitter orders.Submitter
	lister    mcpserver.OrderLister
	close     func()
}

// openOrderBus starts the embedded order bus, or a log-only submitter when
// offline.
func openOrderBus(cfg *config.Config) (*orderBus, error) {
	if cfg.Offline {
		logger.Info("Offline mode: orders are logged, not published")
		return &orderBus{
			submitter: orders.LogSubmitter{Rules: cfg.Recommendation},
			close:     func() {},
		}, nil
	}

	bus, err := nats.Start("")
	if err != nil {
		return nil, fmt.Errorf("failed to start order bus: %w", err)
	}
	closeBus := func() {
		if err := bus.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing order bus: %v\n", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	sub, err := orders.NewBusSubmitter(ctx, bus.JetStream(), cfg.Recommendation)
	if err != nil {
		closeBus()
		return nil, err
	}
	return &orderBus{submitter: sub, lister: sub, close: closeBus}, nil
}

// fileExists checks if a file exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
