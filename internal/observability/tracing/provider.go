package tracing

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Config selects whether spans are recorded and how many.
type Config struct {
	Enabled     bool
	ServiceName string
	Version     string
	// SampleRatio is the fraction of new traces to record, in [0, 1].
	SampleRatio float64
}

// Init installs a global SDK tracer provider whose spans are written to
// logger at debug level, plus the W3C trace context propagator. The returned
// function flushes and stops the provider. With tracing disabled only the
// propagator is installed and shutdown is a no-op.
func Init(cfg Config, logger *slog.Logger) func(context.Context) error {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, propagation.Baggage{}))
	if !cfg.Enabled {
		return func(context.Context) error { return nil }
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", cfg.ServiceName),
			attribute.String("service.version", cfg.Version),
		)),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SampleRatio))),
		sdktrace.WithBatcher(NewLogExporter(logger)),
	)
	otel.SetTracerProvider(tp)
	return tp.Shutdown
}

// LogExporter writes ended spans as structured log records at debug level.
//
// A record looks like:
//
//	{"level":"DEBUG","msg":"span","trace_id":"4bf9...","span_id":"00f0...",
//	 "span":"analysis.Analyze","kind":"internal","duration":"41µs",
//	 "status":"Unset","analysis.code_points":"3","analysis.blocks":"2"}
type LogExporter struct {
	logger *slog.Logger
}

// NewLogExporter returns an exporter for logger. Set LOG_LEVEL=debug to see
// its output.
func NewLogExporter(logger *slog.Logger) *LogExporter {
	return &LogExporter{logger: logger}
}

// ExportSpans logs every span with its IDs, timing, status and attributes. It
// never fails.
func (e *LogExporter) ExportSpans(ctx context.Context, spans []sdktrace.ReadOnlySpan) error {
	for _, s := range spans {
		attrs := []slog.Attr{
			slog.String("trace_id", s.SpanContext().TraceID().String()),
			slog.String("span_id", s.SpanContext().SpanID().String()),
			slog.String("span", s.Name()),
			slog.String("kind", s.SpanKind().String()),
			slog.Duration("duration", s.EndTime().Sub(s.StartTime())),
			slog.String("status", s.Status().Code.String()),
		}
		if parent := s.Parent(); parent.IsValid() {
			attrs = append(attrs, slog.String("parent_id", parent.SpanID().String()))
		}
		for _, kv := range s.Attributes() {
			attrs = append(attrs, slog.String(string(kv.Key), kv.Value.Emit()))
		}
		e.logger.LogAttrs(ctx, slog.LevelDebug, "span", attrs...)
	}
	return nil
}

// Shutdown has nothing to flush.
func (e *LogExporter) Shutdown(context.Context) error { return nil }
