// Package tracing provides OpenTelemetry tracing integration for HTTP requests.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// tracer is the global tracer instance for the board application.
var tracer = otel.Tracer("project-board")

// GetTracer returns the global tracer for creating spans.
// This tracer can be used throughout the application to create new spans.
//
// Example usage:
//
//	ctx, span := tracing.GetTracer().Start(ctx, "operation-name")
//	defer span.End()
func GetTracer() trace.Tracer {
	return tracer
}

// Init installs an SDK tracer provider as the global provider and returns a
// shutdown function to flush spans on exit. Exporters are attached by the
// deployment environment (e.g. an OTLP collector sidecar); without one the
// provider still records span context so trace IDs appear in responses.
func Init(ctx context.Context) func(context.Context) error {
	tp := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tp)
	return tp.Shutdown
}
