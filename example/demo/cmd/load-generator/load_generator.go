// Package main implements a load generator that drives concurrent add, borrow and return requests
// against the library facade with a configurable request rate.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-patterns-go/example/facade"
	"github.com/AntonStoeckl/library-patterns-go/example/shared/core"
	"github.com/AntonStoeckl/library-patterns-go/example/shared/shell/bookdata"
	"github.com/AntonStoeckl/library-patterns-go/notifier"
)

const (
	scenarioCirculation = "circulation"
	scenarioLending     = "lending"

	operationTimeout = 5 * time.Second
	statsInterval    = 10 * time.Second
)

// ErrShutdownTimeout is returned by Stop when running scenarios did not finish in time.
var ErrShutdownTimeout = errors.New("shutdown timeout exceeded")

// LoadGenerator orchestrates load generation against the library facade
// with configurable request rates and circulation/lending scenarios.
type LoadGenerator struct {
	library *facade.Library
	config  Config
	readers []core.User

	// Rate limiting
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Metrics and state
	requestCount     int64
	errorCount       int64
	unavailableCount int64
	notifications    atomic.Int64
	startTime        time.Time
	mu               sync.RWMutex
}

// NewLoadGenerator creates a new LoadGenerator and subscribes a counting observer to the library.
func NewLoadGenerator(library *facade.Library, config Config) (*LoadGenerator, error) {
	lg := &LoadGenerator{
		library:  library,
		config:   config,
		stopChan: make(chan struct{}),
	}

	for i := range config.Readers {
		reader, err := core.CreateUserWithID(
			core.StudentKind,
			uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("reader-%d", i))),
			fmt.Sprintf("Reader %d", i),
		)
		if err != nil {
			return nil, err
		}

		lg.readers = append(lg.readers, reader)
	}

	counter := notifier.NewFuncObserver(func(string) error {
		lg.notifications.Add(1)
		return nil
	})

	if err := library.Subscribe(counter); err != nil {
		return nil, err
	}

	return lg, nil
}

// Seed imports the initial books as one CSV document.
func (lg *LoadGenerator) Seed(ctx context.Context) (int, error) {
	var raw strings.Builder

	raw.WriteString("title\n")

	for i := range lg.config.InitialBooks {
		fmt.Fprintf(&raw, "%s\n", bookTitle(i%lg.config.Titles))
	}

	return lg.library.ImportBooks(ctx, raw.String(), bookdata.NewCSVAdapter())
}

// Start begins load generation with the configured request rate.
// It runs until the context is cancelled or Stop() is called.
func (lg *LoadGenerator) Start(ctx context.Context) error {
	lg.mu.Lock()
	lg.startTime = time.Now()
	lg.requestCount = 0
	lg.errorCount = 0
	lg.unavailableCount = 0
	lg.mu.Unlock()

	interval := time.Second / time.Duration(lg.config.Rate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Printf("Load generator starting with %d requests/second (interval: %v), initial goroutines: %d", lg.config.Rate, interval, runtime.NumGoroutine())

	lg.wg.Add(1)
	go lg.metricsReporter(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Printf("Load generator stopping due to context cancellation")
			return ctx.Err()

		case <-lg.stopChan:
			log.Printf("Load generator stopping due to stop signal")
			return nil

		case <-ticker.C:
			lg.wg.Add(1)
			go lg.executeScenario(ctx)
		}
	}
}

// Stop gracefully shuts down the load generator.
func (lg *LoadGenerator) Stop(ctx context.Context) error {
	lg.stopOnce.Do(func() { close(lg.stopChan) })

	done := make(chan struct{})
	go func() {
		lg.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		lg.logStats("Final Stats")
		return nil
	case <-ctx.Done():
		lg.logStats("Final Stats")
		return ErrShutdownTimeout
	}
}

// Stats returns the number of requests, failed requests, unavailable borrows and delivered notifications.
func (lg *LoadGenerator) Stats() (requests, failures, unavailable, notifications int64) {
	lg.mu.RLock()
	defer lg.mu.RUnlock()

	return lg.requestCount, lg.errorCount, lg.unavailableCount, lg.notifications.Load()
}

// executeScenario runs a single load generation scenario based on configured weights.
func (lg *LoadGenerator) executeScenario(ctx context.Context) {
	defer lg.wg.Done()

	scenarioType := lg.selectScenario()

	var (
		unavailable bool
		err         error
	)

	switch scenarioType {
	case scenarioCirculation:
		err = lg.runCirculationScenario(ctx)
	case scenarioLending:
		unavailable, err = lg.runLendingScenario(ctx)
	default:
		err = fmt.Errorf("unknown scenario type: %s", scenarioType)
	}

	lg.mu.Lock()
	lg.requestCount++
	if unavailable {
		lg.unavailableCount++
	}
	if err != nil {
		lg.errorCount++
		log.Printf("Scenario error (%s): %v", scenarioType, err)
	}
	lg.mu.Unlock()
}

// selectScenario chooses a scenario type based on configured weights.
func (lg *LoadGenerator) selectScenario() string {
	// Apply weights: [circulation, lending]
	// Example: [20, 80] -> circulation: 0-19, lending: 20-99
	if rand.Intn(100) < lg.config.ScenarioWeights[0] { //nolint:gosec // weak random is acceptable for load generation
		return scenarioCirculation
	}

	return scenarioLending
}

// runCirculationScenario adds a copy of a random title.
func (lg *LoadGenerator) runCirculationScenario(ctx context.Context) error {
	opCtx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()

	return lg.library.AddBook(opCtx, lg.randomTitle())
}

// runLendingScenario either borrows or returns a random title for a random reader.
func (lg *LoadGenerator) runLendingScenario(ctx context.Context) (bool, error) {
	opCtx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()

	title := lg.randomTitle()
	reader := lg.readers[rand.Intn(len(lg.readers))] //nolint:gosec // weak random is acceptable for load generation

	if rand.Intn(2) == 0 { //nolint:gosec // weak random is acceptable for load generation
		outcome, err := lg.library.BorrowBook(opCtx, title, reader)
		return outcome.Unavailable, err
	}

	return false, lg.library.ReturnBook(opCtx, title, reader)
}

func (lg *LoadGenerator) randomTitle() string {
	return bookTitle(rand.Intn(lg.config.Titles)) //nolint:gosec // weak random is acceptable for load generation
}

func bookTitle(n int) string {
	return fmt.Sprintf("Load Test Book %d", n+1)
}

// metricsReporter logs statistics periodically.
func (lg *LoadGenerator) metricsReporter(ctx context.Context) {
	defer lg.wg.Done()

	ticker := time.NewTicker(statsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-lg.stopChan:
			return
		case <-ticker.C:
			lg.logStats("Stats")
		}
	}
}

func (lg *LoadGenerator) logStats(prefix string) {
	lg.mu.RLock()
	duration := time.Since(lg.startTime)
	requests := lg.requestCount
	failures := lg.errorCount
	unavailable := lg.unavailableCount
	lg.mu.RUnlock()

	if duration <= 0 || requests == 0 {
		return
	}

	rps := float64(requests) / duration.Seconds()
	errorRate := float64(failures) / float64(requests) * 100
	log.Printf("%s: %d requests in %v (%.1f req/s), %d errors (%.1f%%), %d unavailable, %d notifications, %d goroutines",
		prefix, requests, duration.Truncate(time.Second), rps, failures, errorRate, unavailable,
		lg.notifications.Load(), runtime.NumGoroutine())
}
