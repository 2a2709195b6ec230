package httpapi

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var apiTracer = otel.Tracer("turf-matchmaking/internal/interfaces/httpapi")
var noopSpan = trace.SpanFromContext(context.Background())

// startSpan opens a handler span under the request span. Health probes are
// untraced, so there is no parent and nothing is started.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		return ctx, noopSpan
	}
	if !shouldCreateHTTPAPISpan(name) {
		return ctx, noopSpan
	}

	ctx, span := apiTracer.Start(ctx, name)
	span.SetAttributes(handlerSpanAttributes(ctx)...)
	return ctx, span
}

func shouldCreateHTTPAPISpan(name string) bool {
	return strings.HasPrefix(name, "httpapi.Handler.")
}

func handlerSpanAttributes(ctx context.Context) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, 2)
	if id, ok := requestIDFromContext(ctx); ok {
		attrs = append(attrs, attribute.String("http.request_id", id))
	}
	if p, ok := principalFromContext(ctx); ok && p.UserID != "" {
		attrs = append(attrs, attribute.String("enduser.id", p.UserID))
	}
	return attrs
}
