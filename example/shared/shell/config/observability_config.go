package config

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/AntonStoeckl/library-patterns-go/catalog/oteladapters"
)

const (
	defaultServiceName    = "library-demo"
	defaultServiceVersion = "dev"
	defaultTraceEndpoint  = "localhost:4319"
	defaultMetricEndpoint = "localhost:4317"
	defaultExportInterval = 5 * time.Second
	shutdownTimeout       = 5 * time.Second
	instrumentationName   = "github.com/AntonStoeckl/library-patterns-go"
)

// ObservabilitySettings describes where telemetry is exported to.
type ObservabilitySettings struct {
	ServiceName    string
	ServiceVersion string
	TraceEndpoint  string
	MetricEndpoint string
	ExportInterval time.Duration
}

// DefaultObservabilitySettings returns the settings for the local observability stack.
func DefaultObservabilitySettings() ObservabilitySettings {
	return ObservabilitySettings{
		ServiceName:    defaultServiceName,
		ServiceVersion: defaultServiceVersion,
		TraceEndpoint:  defaultTraceEndpoint,
		MetricEndpoint: defaultMetricEndpoint,
		ExportInterval: defaultExportInterval,
	}
}

// ObservabilityProviders holds the OpenTelemetry providers and the collectors built on them.
type ObservabilityProviders struct {
	TracerProvider   *trace.TracerProvider
	MeterProvider    *metric.MeterProvider
	Resource         *resource.Resource
	MetricsCollector *oteladapters.MetricsCollector
	TracingCollector *oteladapters.TracingCollector
	ContextualLogger *oteladapters.SlogBridgeLogger
	RecordLogger     *oteladapters.OTelLogger
}

// NewObservabilityConfig creates OpenTelemetry providers that export over OTLP gRPC and registers them globally.
// Exporters connect lazily, so a missing backend does not fail construction.
func NewObservabilityConfig(ctx context.Context, settings ObservabilitySettings) (*ObservabilityProviders, error) {
	res, err := NewResource(ctx, settings)
	if err != nil {
		return nil, err
	}

	traceExporter, err := otlptracegrpc.New(
		ctx,
		otlptracegrpc.WithEndpoint(settings.TraceEndpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	tracerProvider := trace.NewTracerProvider(
		trace.WithBatcher(traceExporter),
		trace.WithResource(res),
	)

	metricExporter, err := otlpmetricgrpc.New(
		ctx,
		otlpmetricgrpc.WithEndpoint(settings.MetricEndpoint),
		otlpmetricgrpc.WithInsecure(),
	)
	if err != nil {
		return nil, errors.Join(err, tracerProvider.Shutdown(ctx))
	}

	interval := settings.ExportInterval
	if interval <= 0 {
		interval = defaultExportInterval
	}

	meterProvider := metric.NewMeterProvider(
		metric.WithReader(metric.NewPeriodicReader(metricExporter, metric.WithInterval(interval))),
		metric.WithResource(res),
	)

	otel.SetTracerProvider(tracerProvider)
	otel.SetMeterProvider(meterProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return &ObservabilityProviders{
		TracerProvider:   tracerProvider,
		MeterProvider:    meterProvider,
		Resource:         res,
		MetricsCollector: oteladapters.NewMetricsCollector(meterProvider.Meter(instrumentationName)),
		TracingCollector: oteladapters.NewTracingCollector(tracerProvider.Tracer(instrumentationName)),
		ContextualLogger: oteladapters.NewSlogBridgeLogger(instrumentationName),
		RecordLogger:     oteladapters.NewOTelLogger(global.GetLoggerProvider().Logger(instrumentationName)),
	}, nil
}

// NewResource builds the resource identifying the service.
func NewResource(ctx context.Context, settings ObservabilitySettings) (*resource.Resource, error) {
	serviceName := settings.ServiceName
	if serviceName == "" {
		serviceName = defaultServiceName
	}

	return resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(serviceName),
			semconv.ServiceVersionKey.String(settings.ServiceVersion),
		),
	)
}

// Shutdown flushes and stops both providers, joining their errors.
func (p *ObservabilityProviders) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return errors.Join(
		p.TracerProvider.Shutdown(ctx),
		p.MeterProvider.Shutdown(ctx),
	)
}
