package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/AntonStoeckl/library-patterns-go/catalog"
	"github.com/AntonStoeckl/library-patterns-go/example/facade"
	"github.com/AntonStoeckl/library-patterns-go/example/shared/shell/config"
)

const (
	defaultRate            = 30
	defaultInitialBooks    = 200
	defaultTitles          = 50
	defaultReaders         = 20
	defaultScenarioWeights = "20,80" // circulation, lending
	shutdownGracePeriod    = 10 * time.Second
)

// Config holds all load generator configuration parameters.
type Config struct {
	Rate                 int
	ObservabilityEnabled bool
	InitialBooks         int
	Titles               int
	Readers              int
	ScenarioWeights      []int
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var options []facade.Option
	if cfg.ObservabilityEnabled {
		providers, obsErr := config.NewObservabilityConfig(ctx, config.DefaultObservabilitySettings())
		if obsErr != nil {
			log.Fatalf("Failed to create observability providers: %v", obsErr)
		}

		defer func() {
			if shutdownErr := providers.Shutdown(); shutdownErr != nil {
				log.Printf("Observability shutdown failed: %v", shutdownErr)
			}
		}()

		options = append(options,
			facade.WithContextualLogger(providers.RecordLogger),
			facade.WithObservability(providers.MetricsCollector, providers.TracingCollector),
		)

		log.Printf("Observability enabled: metrics, tracing and logging")
	}

	library, err := facade.New(catalog.Shared(), options...)
	if err != nil {
		log.Fatalf("Failed to create library: %v", err)
	}

	loadGen, err := NewLoadGenerator(library, cfg)
	if err != nil {
		log.Fatalf("Failed to create load generator: %v", err)
	}

	seeded, err := loadGen.Seed(ctx)
	if err != nil {
		log.Fatalf("Failed to seed the catalog: %v", err)
	}

	errChan := make(chan error, 1)
	go func() {
		if err := loadGen.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errChan <- fmt.Errorf("load generator failed: %w", err)
		}
	}()

	log.Printf("Library Load Generator started")
	log.Printf("Configuration: rate=%d req/s, seeded_books=%d, titles=%d, readers=%d, scenario_weights=%v",
		cfg.Rate, seeded, cfg.Titles, cfg.Readers, cfg.ScenarioWeights)
	log.Printf("Press Ctrl+C to stop...")

	select {
	case sig := <-sigChan:
		log.Printf("Received signal %v, initiating graceful shutdown...", sig)
	case err := <-errChan:
		log.Printf("Error occurred: %v", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownGracePeriod)
	defer shutdownCancel()

	if err := loadGen.Stop(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	cancel()

	log.Printf("Load generator stopped")
}

func parseFlags(args []string) (Config, error) {
	flags := flag.NewFlagSet("load-generator", flag.ContinueOnError)

	var (
		rate            = flags.Int("rate", defaultRate, "Requests per second")
		observability   = flags.Bool("observability-enabled", false, "Enable OpenTelemetry observability")
		initialBooks    = flags.Int("initial-books", defaultInitialBooks, "Number of books to import initially")
		titles          = flags.Int("titles", defaultTitles, "Number of distinct titles")
		readers         = flags.Int("readers", defaultReaders, "Number of readers borrowing and returning books")
		scenarioWeights = flags.String("scenario-weights", defaultScenarioWeights, "Comma-separated weights for circulation,lending scenarios")
	)

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	weights, err := parseScenarioWeights(*scenarioWeights)
	if err != nil {
		return Config{}, fmt.Errorf("invalid scenario weights '%s': %w", *scenarioWeights, err)
	}

	if *rate <= 0 || *titles <= 0 || *readers <= 0 || *initialBooks < 0 {
		return Config{}, fmt.Errorf("rate, titles and readers must be positive, initial-books must not be negative")
	}

	return Config{
		Rate:                 *rate,
		ObservabilityEnabled: *observability,
		InitialBooks:         *initialBooks,
		Titles:               *titles,
		Readers:              *readers,
		ScenarioWeights:      weights,
	}, nil
}

func parseScenarioWeights(weightsStr string) ([]int, error) {
	parts := strings.Split(weightsStr, ",")
	if len(parts) != 2 {
		return nil, fmt.Errorf("expected 2 weights, got %d", len(parts))
	}

	weights := make([]int, 2)
	total := 0
	for i, part := range parts {
		weight, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid weight '%s': %w", part, err)
		}
		if weight < 0 || weight > 100 {
			return nil, fmt.Errorf("weight %d out of range [0, 100]", weight)
		}
		weights[i] = weight
		total += weight
	}

	if total != 100 {
		return nil, fmt.Errorf("weights must sum to 100, got %d", total)
	}

	return weights, nil
}
