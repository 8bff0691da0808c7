// Package app wires the example registry, the suite loader, and the report
// printer into one runnable application instance.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/forexample"
	"github.com/vk/forexample/internal/ctxlog"
)

// SuiteLoader is the interface for a format-specific example suite loader.
type SuiteLoader interface {
	// Load registers every example found under the given paths into reg and
	// returns how many were registered.
	Load(ctx context.Context, reg *forexample.Registry, paths ...string) (int, error)
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	registry *forexample.Registry
}

// NewApp constructs the application: it builds an isolated logger, then loads
// every suite reachable from the configured path into the registry. Pass a
// non-nil registry to run Go-declared examples alongside the loaded suites;
// pass nil to start empty.
//
// A suite that fails to load indicates a broken declaration rather than a
// failing example, so NewApp panics; the CLI recovers and turns it into a
// clean startup error.
func NewApp(outW io.Writer, cfg *Config, loader SuiteLoader, reg *forexample.Registry) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	if reg == nil {
		reg = forexample.New()
	}

	if cfg.SuitesPath != "" {
		count, err := loader.Load(ctx, reg, cfg.SuitesPath)
		if err != nil {
			panic(fmt.Errorf("failed to load example suites: %w", err))
		}
		logger.Debug("Example suites loaded.", "examples", count)
	}

	logger.Debug("Registry populated.", "examples", reg.Len())

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		registry: reg,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *forexample.Registry {
	return a.registry
}
