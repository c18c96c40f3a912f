package observable

import (
	"context"
	"errors"
	"time"

	"github.com/AntonStoeckl/library-patterns-go/example/shared/shell"
)

// ErrNilCoreHandler is returned when a wrapper is created without a handler to wrap.
var ErrNilCoreHandler = errors.New("core handler must not be nil")

// SizeProbe reports the current number of titles in the catalog.
type SizeProbe interface {
	Len() int
}

// CommandWrapper provides observability instrumentation for any command handler.
// It wraps a core command handler and adds metrics, tracing and logging,
// while delegating business logic to the wrapped handler.
type CommandWrapper[C shell.Command] struct {
	coreHandler      shell.CoreCommandHandler[C]
	commandType      string
	metricsCollector shell.MetricsCollector
	tracingCollector shell.TracingCollector
	contextualLogger shell.ContextualLogger
	logger           shell.Logger
	sizeProbe        SizeProbe
}

// NewCommandWrapper creates a new observable wrapper around the core command handler.
func NewCommandWrapper[C shell.Command](
	coreHandler shell.CoreCommandHandler[C],
	opts ...CommandOption[C],
) (*CommandWrapper[C], error) {
	if coreHandler == nil {
		return nil, ErrNilCoreHandler
	}

	// Extract command type from a zero-value instance
	var zeroCommand C

	wrapper := &CommandWrapper[C]{
		coreHandler: coreHandler,
		commandType: zeroCommand.CommandType(),
	}

	for _, opt := range opts {
		if err := opt(wrapper); err != nil {
			return nil, err
		}
	}

	return wrapper, nil
}

// Handle delegates to the wrapped handler and translates its HandlerResult and error into
// metrics, a finished span and log lines.
func (w *CommandWrapper[C]) Handle(ctx context.Context, command C) (shell.HandlerResult, error) {
	commandStart := time.Now()
	ctx, span := shell.StartCommandSpan(ctx, w.tracingCollector, w.commandType)
	shell.LogCommandStart(ctx, w.logger, w.contextualLogger, w.commandType)

	result, err := w.coreHandler.Handle(ctx, command)
	duration := time.Since(commandStart)

	w.recordCatalogSize(ctx)

	if err != nil {
		w.recordCommandError(ctx, err, duration, span)
		return result, err
	}

	if result.Unavailable {
		w.recordCommandOutcome(ctx, shell.StatusUnavailable, duration, span)
		return result, nil
	}

	if result.Envelope.DomainEvent != nil {
		shell.LogEventPublished(ctx, w.logger, w.contextualLogger, result.Envelope)
	}

	w.recordCommandOutcome(ctx, shell.StatusSuccess, duration, span)

	return result, nil
}

// CommandOption defines a functional option for configuring CommandWrapper.
type CommandOption[C shell.Command] func(*CommandWrapper[C]) error

// WithCommandMetrics sets the metrics collector for the CommandWrapper.
func WithCommandMetrics[C shell.Command](collector shell.MetricsCollector) CommandOption[C] {
	return func(w *CommandWrapper[C]) error {
		w.metricsCollector = collector
		return nil
	}
}

// WithCommandTracing sets the tracing collector for the CommandWrapper.
func WithCommandTracing[C shell.Command](collector shell.TracingCollector) CommandOption[C] {
	return func(w *CommandWrapper[C]) error {
		w.tracingCollector = collector
		return nil
	}
}

// WithCommandContextualLogging sets the contextual logger for the CommandWrapper.
func WithCommandContextualLogging[C shell.Command](logger shell.ContextualLogger) CommandOption[C] {
	return func(w *CommandWrapper[C]) error {
		w.contextualLogger = logger
		return nil
	}
}

// WithCommandLogging sets the basic logger for the CommandWrapper.
func WithCommandLogging[C shell.Command](logger shell.Logger) CommandOption[C] {
	return func(w *CommandWrapper[C]) error {
		w.logger = logger
		return nil
	}
}

// WithCommandCatalogSize records the catalog size as a gauge after every command.
// It requires a metrics collector to have any effect.
func WithCommandCatalogSize[C shell.Command](probe SizeProbe) CommandOption[C] {
	return func(w *CommandWrapper[C]) error {
		w.sizeProbe = probe
		return nil
	}
}

/*** Observability helper methods ***/

func (w *CommandWrapper[C]) recordCommandOutcome(
	ctx context.Context,
	businessOutcome string,
	duration time.Duration,
	span shell.SpanContext,
) {
	shell.RecordCommandMetrics(ctx, w.metricsCollector, w.commandType, businessOutcome, duration)
	shell.FinishSpan(w.tracingCollector, span, businessOutcome, duration, nil)
	shell.LogCommandSuccess(ctx, w.logger, w.contextualLogger, w.commandType, businessOutcome, duration)
}

func (w *CommandWrapper[C]) recordCommandError(
	ctx context.Context,
	err error,
	duration time.Duration,
	span shell.SpanContext,
) {
	status := shell.ClassifyError(err)

	shell.RecordCommandMetrics(ctx, w.metricsCollector, w.commandType, status, duration)
	shell.FinishSpan(w.tracingCollector, span, status, duration, err)
	shell.LogCommandError(ctx, w.logger, w.contextualLogger, w.commandType, err)
}

func (w *CommandWrapper[C]) recordCatalogSize(ctx context.Context) {
	if w.sizeProbe == nil {
		return
	}

	shell.RecordCatalogSize(ctx, w.metricsCollector, w.sizeProbe.Len())
}
