package usecase

import (
	"context"
	"errors"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var usecaseTracer = otel.Tracer("turf-matchmaking/internal/usecase")
var usecaseNoopSpan = trace.SpanFromContext(context.Background())

func startUsecaseSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if strings.TrimSpace(name) == "" {
		return ctx, usecaseNoopSpan
	}
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		return ctx, usecaseNoopSpan
	}
	return usecaseTracer.Start(ctx, name)
}

// annotateRankingSpan records candidate counts on a ranking span. Only
// dependency failures mark the span as errored; caller mistakes do not.
func annotateRankingSpan(span trace.Span, candidates, returned int, err error) {
	if !span.IsRecording() {
		return
	}
	span.SetAttributes(
		attribute.Int("ranking.candidates", candidates),
		attribute.Int("ranking.returned", returned),
	)
	if err == nil {
		return
	}
	span.RecordError(err)
	if errors.Is(err, ErrDependencyUnavailable) {
		span.SetStatus(codes.Error, err.Error())
	}
}
