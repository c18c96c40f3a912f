// Package config provides the wiring helpers of the library example:
// OpenTelemetry providers exporting over OTLP gRPC, and structured slog loggers
// configured by level and output format.
//
// This package is part of the shell (infrastructure) layer.
package config
