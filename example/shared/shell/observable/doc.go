// Package observable provides wrapper components for instrumenting command and query handlers
// with metrics, tracing and logging while keeping the handlers themselves free of it.
//
// The wrappers are applied externally at wiring time, not hidden inside factory functions:
//
//	// 1. Create the plain handler
//	coreHandler := borrowbook.NewCommandHandler(books, broadcaster)
//
//	// 2. Wrap it
//	observableHandler, err := observable.NewCommandWrapper[borrowbook.Command](
//		coreHandler,
//		observable.WithCommandMetrics[borrowbook.Command](metricsCollector),
//		observable.WithCommandTracing[borrowbook.Command](tracingCollector),
//		observable.WithCommandContextualLogging[borrowbook.Command](contextualLogger),
//	)
//
//	// 3. Use the wrapped handler
//	result, err := observableHandler.Handle(ctx, command)
//
// Every option is optional, a wrapper without options only delegates.
//
// Command outcomes are classified as success, unavailable (the HandlerResult says the book was
// not in the catalog), delivery_failed (the catalog changed but a subscriber failed), canceled or error.
package observable
