package borrowbook

import (
	"context"
	"errors"

	"github.com/AntonStoeckl/library-patterns-go/catalog"
	"github.com/AntonStoeckl/library-patterns-go/example/shared/shell"
)

// ErrMissingUser is returned when the command carries no user.
var ErrMissingUser = errors.New("borrow book: user must not be nil")

// Catalog defines the catalog operations needed by the CommandHandler.
type Catalog interface {
	Books() catalog.BookTitles
	TakeFirst(title catalog.BookTitle) bool
}

// CommandHandler orchestrates the command processing workflow: Snapshot -> Decide -> Take -> Broadcast.
// External wrappers handle metrics and tracing.
type CommandHandler struct {
	catalog          Catalog
	broadcaster      shell.Broadcaster
	logger           shell.Logger
	contextualLogger shell.ContextualLogger
}

// Option configures a CommandHandler.
type Option func(*CommandHandler)

// WithLogging sets the logger for unavailable books.
func WithLogging(logger shell.Logger) Option {
	return func(h *CommandHandler) {
		h.logger = logger
	}
}

// WithContextualLogging sets the contextual logger for unavailable books, it takes precedence over WithLogging.
func WithContextualLogging(logger shell.ContextualLogger) Option {
	return func(h *CommandHandler) {
		h.contextualLogger = logger
	}
}

// NewCommandHandler creates a new CommandHandler with optional configuration.
func NewCommandHandler(catalog Catalog, broadcaster shell.Broadcaster, opts ...Option) CommandHandler {
	handler := CommandHandler{
		catalog:     catalog,
		broadcaster: broadcaster,
	}

	for _, opt := range opts {
		opt(&handler)
	}

	return handler
}

// Handle removes the first copy of the title and broadcasts the event message.
// If the title is not in the catalog the result is marked Unavailable and nothing else happens.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	if err := ctx.Err(); err != nil {
		return shell.HandlerResult{}, err
	}

	if command.User == nil {
		return shell.HandlerResult{}, ErrMissingUser
	}

	// Business logic phase - delegate to the pure core function
	result := Decide(h.catalog.Books(), command)

	// The snapshot may be stale by now, TakeFirst checks again under the catalog lock
	if result.HasEventToPublish() && !h.catalog.TakeFirst(command.Title) {
		result = concurrentlyBorrowed(command)
	}

	envelope := shell.BuildEventEnvelope(result.Event, shell.NewEventMetadata())

	if result.IsUnavailable() {
		h.logUnavailable(ctx, command)
		return shell.NewUnavailableResult(envelope), nil
	}

	if err := h.broadcaster.Notify(ctx, result.Event.Message()); err != nil {
		return shell.NewSuccessResult(envelope), err
	}

	return shell.NewSuccessResult(envelope), nil
}

func (h CommandHandler) logUnavailable(ctx context.Context, command Command) {
	shell.LogBookUnavailable(ctx, h.logger, h.contextualLogger, command.Title, command.User.Name())
}
