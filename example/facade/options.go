package facade

import (
	"errors"
	"time"

	"github.com/AntonStoeckl/library-patterns-go/catalog"
	"github.com/AntonStoeckl/library-patterns-go/example/features/command/addbook"
	"github.com/AntonStoeckl/library-patterns-go/example/features/command/borrowbook"
	"github.com/AntonStoeckl/library-patterns-go/example/features/command/importbooks"
	"github.com/AntonStoeckl/library-patterns-go/example/features/command/returnbook"
	"github.com/AntonStoeckl/library-patterns-go/example/features/query/listbooks"
	"github.com/AntonStoeckl/library-patterns-go/example/shared/shell"
	"github.com/AntonStoeckl/library-patterns-go/example/shared/shell/observable"
	"github.com/AntonStoeckl/library-patterns-go/notifier"
)

// ErrNilClock is returned by WithClock for a nil function.
var ErrNilClock = errors.New("clock must not be nil")

// Option configures a Library.
type Option func(*settings) error

type settings struct {
	clock            func() time.Time
	logger           shell.Logger
	contextualLogger shell.ContextualLogger
	metricsCollector shell.MetricsCollector
	tracingCollector shell.TracingCollector
	observable       bool
}

// WithLogger sets the basic logger used for delivery failures and unavailable books.
func WithLogger(logger shell.Logger) Option {
	return func(s *settings) error {
		s.logger = logger
		return nil
	}
}

// WithContextualLogger sets the context-aware logger, it takes precedence over WithLogger.
func WithContextualLogger(logger shell.ContextualLogger) Option {
	return func(s *settings) error {
		s.contextualLogger = logger
		return nil
	}
}

// WithObservability wraps every handler with metrics, tracing and logging.
// Any of the collectors may be nil.
func WithObservability(metrics shell.MetricsCollector, tracing shell.TracingCollector) Option {
	return func(s *settings) error {
		s.metricsCollector = metrics
		s.tracingCollector = tracing
		s.observable = true

		return nil
	}
}

// WithClock sets the time source for event timestamps.
func WithClock(clock func() time.Time) Option {
	return func(s *settings) error {
		if clock == nil {
			return ErrNilClock
		}

		s.clock = clock

		return nil
	}
}

func (s settings) notifierOptions() []notifier.Option {
	return []notifier.Option{
		notifier.WithLogger(s.logger),
		notifier.WithContextualLogger(s.contextualLogger),
	}
}

func (l *Library) wireHandlers(s settings) error {
	var err error

	borrowHandler := borrowbook.NewCommandHandler(
		l.catalog,
		l.notifier,
		borrowbook.WithLogging(s.logger),
		borrowbook.WithContextualLogging(s.contextualLogger),
	)

	if !s.observable {
		l.addBook = addbook.NewCommandHandler(l.catalog, l.notifier)
		l.borrowBook = borrowHandler
		l.returnBook = returnbook.NewCommandHandler(l.catalog, l.notifier)
		l.importBooks = importbooks.NewCommandHandler(l.catalog)
		l.listBooks = listbooks.NewQueryHandler(l.catalog)

		return nil
	}

	if l.addBook, err = wrapCommand[addbook.Command](addbook.NewCommandHandler(l.catalog, l.notifier), l.catalog, s); err != nil {
		return err
	}

	if l.borrowBook, err = wrapCommand[borrowbook.Command](borrowHandler, l.catalog, s); err != nil {
		return err
	}

	if l.returnBook, err = wrapCommand[returnbook.Command](returnbook.NewCommandHandler(l.catalog, l.notifier), l.catalog, s); err != nil {
		return err
	}

	if l.importBooks, err = wrapCommand[importbooks.Command](importbooks.NewCommandHandler(l.catalog), l.catalog, s); err != nil {
		return err
	}

	l.listBooks, err = observable.NewQueryWrapper[listbooks.Query, *catalog.BookIterator](
		listbooks.NewQueryHandler(l.catalog),
		observable.WithQueryMetrics[listbooks.Query, *catalog.BookIterator](s.metricsCollector),
		observable.WithQueryTracing[listbooks.Query, *catalog.BookIterator](s.tracingCollector),
		observable.WithQueryLogging[listbooks.Query, *catalog.BookIterator](s.logger),
		observable.WithQueryContextualLogging[listbooks.Query, *catalog.BookIterator](s.contextualLogger),
	)

	return err
}

func wrapCommand[C shell.Command](
	handler shell.CoreCommandHandler[C],
	probe observable.SizeProbe,
	s settings,
) (*observable.CommandWrapper[C], error) {
	return observable.NewCommandWrapper[C](
		handler,
		observable.WithCommandMetrics[C](s.metricsCollector),
		observable.WithCommandTracing[C](s.tracingCollector),
		observable.WithCommandLogging[C](s.logger),
		observable.WithCommandContextualLogging[C](s.contextualLogger),
		observable.WithCommandCatalogSize[C](probe),
	)
}
