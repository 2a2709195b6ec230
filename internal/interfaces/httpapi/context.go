package httpapi

import (
	"context"

	"github.com/riskibarqy/turf-matchmaking/internal/domain/user"
)

type contextKey string

const (
	principalContextKey contextKey = "auth_principal"
	requestIDContextKey contextKey = "request_id"
)

func withPrincipal(ctx context.Context, p user.Principal) context.Context {
	return context.WithValue(ctx, principalContextKey, p)
}

func principalFromContext(ctx context.Context) (user.Principal, bool) {
	p, ok := ctx.Value(principalContextKey).(user.Principal)
	return p, ok
}

func withRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDContextKey, requestID)
}

func requestIDFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(requestIDContextKey).(string)
	return v, ok && v != ""
}
