// Package observability groups the logging, metrics and tracing helpers.
//
// Subpackages:
//   - logging: slog loggers and context propagation
//   - metrics: Prometheus collectors for HTTP, analyses, fetches and the archive
//   - tracing: OpenTelemetry middleware and span helpers
//   - slo: service level indicators derived from request outcomes
package observability
