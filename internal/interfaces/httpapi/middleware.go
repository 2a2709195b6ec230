package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/felixge/httpsnoop"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/riskibarqy/turf-matchmaking/internal/domain/user"
	"github.com/riskibarqy/turf-matchmaking/internal/platform/id"
	"github.com/riskibarqy/turf-matchmaking/internal/platform/logging"
	"github.com/riskibarqy/turf-matchmaking/internal/usecase"
)

const (
	requestIDHeader    = "X-Request-ID"
	maxRequestIDLength = 128
)

// TokenVerifier verifies bearer tokens against account service.
type TokenVerifier interface {
	VerifyAccessToken(ctx context.Context, token string) (user.Principal, error)
}

// HTTPRecorder observes served requests.
type HTTPRecorder interface {
	ObserveHTTPRequest(route, method string, statusCode int, elapsed time.Duration)
}

func RequireAuth(verifier TokenVerifier, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.RequireAuth")
		defer span.End()

		authHeader := strings.TrimSpace(r.Header.Get("Authorization"))
		if authHeader == "" {
			writeError(ctx, w, fmt.Errorf("%w: missing Authorization header", usecase.ErrUnauthorized))
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			writeError(ctx, w, fmt.Errorf("%w: invalid Authorization header format", usecase.ErrUnauthorized))
			return
		}

		principal, err := verifier.VerifyAccessToken(ctx, strings.TrimSpace(parts[1]))
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		trace.SpanFromContext(ctx).SetAttributes(attribute.String("enduser.id", principal.UserID))

		next.ServeHTTP(w, r.WithContext(withPrincipal(ctx, principal)))
	})
}

// RequestID propagates X-Request-ID, minting one when the caller sent none.
func RequestID(ids id.Generator, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := strings.TrimSpace(r.Header.Get(requestIDHeader))
		if len(requestID) > maxRequestIDLength {
			requestID = ""
		}
		if requestID == "" {
			if generated, err := ids.NewID(); err == nil {
				requestID = generated
			}
		}
		if requestID != "" {
			w.Header().Set(requestIDHeader, requestID)
			r = r.WithContext(withRequestID(r.Context(), requestID))
		}
		next.ServeHTTP(w, r)
	})
}

func RequestLogging(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.RequestLogging")
		defer span.End()

		captured := httpsnoop.CaptureMetrics(next, w, r.WithContext(ctx))

		args := []any{
			"method", r.Method,
			"path", r.URL.Path,
			"status_code", captured.Code,
			"bytes", captured.Written,
			"remote_addr", r.RemoteAddr,
			"duration_ms", captured.Duration.Milliseconds(),
		}
		if requestID, ok := requestIDFromContext(ctx); ok {
			args = append(args, "request_id", requestID)
		}
		if captured.Code >= http.StatusInternalServerError {
			logger.WarnContext(ctx, "http request", args...)
			return
		}
		logger.InfoContext(ctx, "http request", args...)
	})
}

// RequestMetrics records one observation per request labelled by the
// registered route pattern.
func RequestMetrics(recorder HTTPRecorder, route string, next http.Handler) http.Handler {
	if recorder == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured := httpsnoop.CaptureMetrics(next, w, r)
		recorder.ObserveHTTPRequest(route, r.Method, captured.Code, captured.Duration)
	})
}

func RequestTracing(next http.Handler) http.Handler {
	return otelhttp.NewHandler(next, "turf-matchmaking-http",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
		otelhttp.WithFilter(func(r *http.Request) bool {
			return shouldTraceRequest(r.URL.Path)
		}),
	)
}

func shouldTraceRequest(path string) bool {
	normalized := strings.ToLower(strings.TrimSpace(path))
	switch normalized {
	case "/healthz", "/health", "/livez", "/readyz":
		return false
	default:
		return true
	}
}

type corsPolicy struct {
	any     bool
	origins map[string]struct{}
}

func newCORSPolicy(allowedOrigins []string) corsPolicy {
	p := corsPolicy{origins: make(map[string]struct{}, len(allowedOrigins))}
	for _, origin := range allowedOrigins {
		switch origin = strings.TrimSpace(origin); origin {
		case "":
		case "*":
			p.any = true
		default:
			p.origins[origin] = struct{}{}
		}
	}
	return p
}

// allowOrigin returns the Access-Control-Allow-Origin value for origin, or
// "" when the origin is not allowed.
func (p corsPolicy) allowOrigin(origin string) string {
	if p.any {
		return "*"
	}
	if _, ok := p.origins[origin]; ok {
		return origin
	}
	return ""
}

// CORS answers browser preflights for the read-only matchmaking API.
func CORS(allowedOrigins []string, next http.Handler) http.Handler {
	policy := newCORSPolicy(allowedOrigins)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := strings.TrimSpace(r.Header.Get("Origin"))
		if origin != "" {
			if allow := policy.allowOrigin(origin); allow != "" {
				h := w.Header()
				h.Set("Access-Control-Allow-Origin", allow)
				if allow != "*" {
					h.Add("Vary", "Origin")
				}
				h.Set("Access-Control-Allow-Methods", "GET,OPTIONS")
				h.Set("Access-Control-Allow-Headers", "Authorization,Accept,"+requestIDHeader)
				h.Set("Access-Control-Expose-Headers", requestIDHeader+",Retry-After")
				h.Set("Access-Control-Max-Age", "600")
			}
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}
