package shell

import (
	"context"

	"github.com/AntonStoeckl/library-patterns-go/catalog"
)

// Command represents the contract for all command types of the library.
// The CommandType method enables polymorphic handling and observability instrumentation.
type Command interface {
	CommandType() string
}

// CoreCommandHandler defines the contract for components that process commands with pure business logic.
// Implementations focus on the catalog mutation and the broadcast, observability is added by decorators.
// Handlers return a HandlerResult containing the business outcome.
type CoreCommandHandler[C Command] interface {
	Handle(ctx context.Context, command C) (HandlerResult, error)
}

// Query represents the contract for all query types of the library.
type Query interface {
	QueryType() string
}

// CoreQueryHandler defines the contract for components that answer queries without side effects.
type CoreQueryHandler[Q Query, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}

// Broadcaster is the part of the notifier the command handlers depend on.
type Broadcaster interface {
	Notify(ctx context.Context, message string) error
}

// AppendsBooks is the part of the catalog needed by handlers that only add titles.
type AppendsBooks interface {
	Add(title catalog.BookTitle)
}

// ReadsBooks is the part of the catalog needed by handlers that only read titles.
type ReadsBooks interface {
	Books() catalog.BookTitles
}
