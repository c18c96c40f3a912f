// Package oteladapters provides OpenTelemetry implementations of the catalog
// observability interfaces (MetricsCollector, TracingCollector, ContextualLogger).
//
// Wire them once at bootstrap and pass them to the observable command wrappers:
//
//	metrics := oteladapters.NewMetricsCollector(meterProvider.Meter("library"))
//	tracing := oteladapters.NewTracingCollector(tracerProvider.Tracer("library"))
//	logger := oteladapters.NewSlogBridgeLogger("library")
package oteladapters
