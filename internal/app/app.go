package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jonboulle/clockwork"

	"github.com/riskibarqy/turf-matchmaking/internal/config"
	"github.com/riskibarqy/turf-matchmaking/internal/domain/matchmaking"
	"github.com/riskibarqy/turf-matchmaking/internal/infrastructure/account/anubis"
	"github.com/riskibarqy/turf-matchmaking/internal/interfaces/httpapi"
	"github.com/riskibarqy/turf-matchmaking/internal/platform/cache"
	idgen "github.com/riskibarqy/turf-matchmaking/internal/platform/id"
	"github.com/riskibarqy/turf-matchmaking/internal/platform/logging"
	"github.com/riskibarqy/turf-matchmaking/internal/platform/metrics"
	"github.com/riskibarqy/turf-matchmaking/internal/platform/resilience"
	"github.com/riskibarqy/turf-matchmaking/internal/usecase"
)

// NewHTTPServer wires stores, services and the router. The returned cleanup
// releases the store backend and must be called after the server stops.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	clock := clockwork.NewRealClock()
	metricsManager := metrics.NewManager(
		metrics.WithNamespace(cfg.MetricsNamespace),
		metrics.WithOutcomeClassifier(classifyOutcome),
	)

	repos, err := openStores(ctx, cfg, clock, logger)
	if err != nil {
		return nil, nil, err
	}
	repos = decorateStores(repos, cfg, clock, metricsManager, logger)

	scorer := matchmaking.NewScorer(matchmaking.DefaultConfig())
	matchmakingSvc := usecase.NewMatchmakingService(
		repos.teams,
		repos.users,
		scorer,
		cfg.StoreTimeout,
		metricsManager,
		logger,
	)
	recommendationSvc := usecase.NewRecommendationService(
		repos.turfs,
		repos.bookings,
		repos.users,
		repos.matches,
		scorer,
		logger,
		usecase.WithClock(clock),
		usecase.WithRecommendationRecorder(metricsManager),
		usecase.WithRecommendationStoreTimeout(cfg.StoreTimeout),
	)

	anubisClient := anubis.NewClient(
		&http.Client{Timeout: cfg.AnubisTimeout},
		cfg.AnubisBaseURL,
		cfg.AnubisIntrospectURL,
		cfg.AnubisAdminKey,
		cfg.AnubisCircuit,
		logger.Named("anubis"),
		anubis.WithPrincipalCache(cache.NewStore(cfg.AnubisPrincipalTTL, cache.WithClock(clock))),
		anubis.WithBreakerOptions(
			resilience.WithBreakerClock(clock),
			resilience.WithStateListener(func(from, to resilience.CircuitState) {
				metricsManager.SetCircuitOpen("anubis", to != resilience.CircuitStateClosed)
				logger.Warn("anubis circuit state changed", "from", from, "to", to)
			}),
		),
	)

	routerCfg := httpapi.RouterConfig{
		SwaggerEnabled:     cfg.SwaggerEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		Recorder:           metricsManager,
		RequestIDs:         idgen.NewUUIDGenerator("req_"),
	}
	if cfg.MetricsEnabled {
		routerCfg.MetricsHandler = metricsManager.Handler()
	}

	handler := httpapi.NewHandler(matchmakingSvc, recommendationSvc, logger)
	router := httpapi.NewRouter(handler, anubisClient, logger, routerCfg)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	logger.Info("application wired",
		"store_backend", cfg.StoreBackend,
		"store_circuit_enabled", cfg.StoreCircuit.Enabled,
		"metrics_enabled", cfg.MetricsEnabled,
	)

	return server, repos.close, nil
}

// classifyOutcome keeps the ranking outcome label to a fixed set.
func classifyOutcome(err error) string {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, usecase.ErrNotFound):
		return "not_found"
	case errors.Is(err, usecase.ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, usecase.ErrDependencyUnavailable):
		return "unavailable"
	default:
		return "error"
	}
}
