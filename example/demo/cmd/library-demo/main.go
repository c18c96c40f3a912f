package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/AntonStoeckl/library-patterns-go/catalog"
	"github.com/AntonStoeckl/library-patterns-go/example/facade"
	"github.com/AntonStoeckl/library-patterns-go/example/shared/shell/config"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Printf("library demo failed: %v", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer, stderr io.Writer) error {
	cfg, err := parseFlags(args)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger, err := config.NewLogger(stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	options := []facade.Option{facade.WithLogger(logger)}

	if cfg.ObservabilityEnabled {
		providers, obsErr := config.NewObservabilityConfig(ctx, config.DefaultObservabilitySettings())
		if obsErr != nil {
			return fmt.Errorf("setting up observability: %w", obsErr)
		}

		defer func() {
			if shutdownErr := providers.Shutdown(); shutdownErr != nil {
				logger.Error("observability shutdown failed", "error", shutdownErr.Error())
			}
		}()

		options = append(options,
			facade.WithContextualLogger(providers.ContextualLogger),
			facade.WithObservability(providers.MetricsCollector, providers.TracingCollector),
		)

		logger.Info("observability enabled")
	}

	data, err := cfg.LoadBookData()
	if err != nil {
		return err
	}

	lib, err := facade.New(catalog.Shared(), options...)
	if err != nil {
		return err
	}

	return RunScenario(ctx, stdout, lib, data)
}
