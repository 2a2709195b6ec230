package httpapi

import "net/http"

type routeRegistrar struct {
	mux      *http.ServeMux
	recorder HTTPRecorder
}

func (rr routeRegistrar) handle(pattern string, h http.Handler) {
	rr.mux.Handle(pattern, RequestMetrics(rr.recorder, pattern, h))
}

func registerSystemRoutes(rr routeRegistrar, handler *Handler, cfg RouterConfig) {
	rr.mux.HandleFunc("GET /healthz", handler.Healthz)
	if cfg.MetricsHandler != nil {
		rr.mux.Handle("GET /metrics", cfg.MetricsHandler)
	}
	if !cfg.SwaggerEnabled {
		return
	}

	rr.mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	rr.mux.HandleFunc("GET /docs", handler.SwaggerUI)
	rr.mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerMatchmakingRoutes(rr routeRegistrar, handler *Handler, verifier TokenVerifier) {
	rr.handle("GET /v1/matchmaking/teams/{teamID}", RequireAuth(verifier, http.HandlerFunc(handler.FindBestMatch)))
	rr.handle("GET /v1/matchmaking/players/{teamID}", RequireAuth(verifier, http.HandlerFunc(handler.FindPlayersForTeam)))
}

func registerRecommendationRoutes(rr routeRegistrar, handler *Handler, verifier TokenVerifier) {
	rr.handle("GET /v1/matchmaking/recommendations/timeslots", RequireAuth(verifier, http.HandlerFunc(handler.RecommendTimeSlots)))
	rr.handle("GET /v1/matchmaking/recommendations/matches", RequireAuth(verifier, http.HandlerFunc(handler.RecommendNearbyMatches)))
}
