package httpapi

import (
	"net/http"

	"github.com/riskibarqy/turf-matchmaking/internal/platform/id"
	"github.com/riskibarqy/turf-matchmaking/internal/platform/logging"
)

type RouterConfig struct {
	SwaggerEnabled     bool
	CORSAllowedOrigins []string
	// MetricsHandler serves GET /metrics when set.
	MetricsHandler http.Handler
	Recorder       HTTPRecorder
	RequestIDs     id.Generator
}

func NewRouter(handler *Handler, verifier TokenVerifier, logger *logging.Logger, cfg RouterConfig) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.RequestIDs == nil {
		cfg.RequestIDs = id.NewUUIDGenerator("req_")
	}

	mux := http.NewServeMux()
	routes := routeRegistrar{mux: mux, recorder: cfg.Recorder}
	registerSystemRoutes(routes, handler, cfg)
	registerMatchmakingRoutes(routes, handler, verifier)
	registerRecommendationRoutes(routes, handler, verifier)

	return RequestTracing(RequestID(cfg.RequestIDs, RequestLogging(logger, CORS(cfg.CORSAllowedOrigins, recoverPanic(logger, mux)))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.ErrorContext(ctx, "panic recovered", "panic", rec)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
