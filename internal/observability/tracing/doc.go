// Package tracing wires OpenTelemetry spans into the HTTP server and the
// analysis use case.
//
// The global tracer provider is used, so tests can install an SDK provider
// with an in-memory exporter and inspect the spans:
//
//	exporter := tracetest.NewInMemoryExporter()
//	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter)))
package tracing
