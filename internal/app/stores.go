package app

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/jonboulle/clockwork"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/turf-matchmaking/internal/config"
	"github.com/riskibarqy/turf-matchmaking/internal/domain/booking"
	"github.com/riskibarqy/turf-matchmaking/internal/domain/match"
	"github.com/riskibarqy/turf-matchmaking/internal/domain/team"
	"github.com/riskibarqy/turf-matchmaking/internal/domain/turf"
	"github.com/riskibarqy/turf-matchmaking/internal/domain/user"
	"github.com/riskibarqy/turf-matchmaking/internal/infrastructure/repository/guarded"
	"github.com/riskibarqy/turf-matchmaking/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/turf-matchmaking/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/turf-matchmaking/internal/platform/logging"
	"github.com/riskibarqy/turf-matchmaking/internal/platform/metrics"
	"github.com/riskibarqy/turf-matchmaking/internal/platform/resilience"
)

type stores struct {
	teams    team.Repository
	users    user.Repository
	turfs    turf.Repository
	bookings booking.Repository
	matches  match.Repository
	close    func() error
}

func openStores(ctx context.Context, cfg config.Config, clock clockwork.Clock, logger *logging.Logger) (stores, error) {
	switch cfg.StoreBackend {
	case config.StoreBackendPostgres:
		return openPostgresStores(ctx, cfg, clock, logger)
	default:
		now := clock.Now()
		return stores{
			teams:    memory.NewTeamRepository(memory.SeedTeams()),
			users:    memory.NewUserRepository(memory.SeedUsers()),
			turfs:    memory.NewTurfRepository(memory.SeedTurfs(now)),
			bookings: memory.NewBookingRepository(memory.SeedBookings(now)),
			matches:  memory.NewMatchRepository(memory.SeedMatches(now)),
			close:    func() error { return nil },
		}, nil
	}
}

func openPostgresStores(ctx context.Context, cfg config.Config, clock clockwork.Clock, logger *logging.Logger) (stores, error) {
	db, err := openDatabase(ctx, cfg)
	if err != nil {
		return stores{}, err
	}

	if cfg.DBSeedOnStart {
		if err := postgres.BootstrapSeed(ctx, db, clock.Now()); err != nil {
			_ = db.Close()
			return stores{}, fmt.Errorf("seed postgres: %w", err)
		}
		logger.Info("postgres seed applied", "db_name", dbNameFromURL(cfg.DBURL))
	}

	logger.Info("postgres store ready", "db_name", dbNameFromURL(cfg.DBURL), "max_open_conns", cfg.DBMaxOpenConns)
	return postgresStores(db), nil
}

// openDatabase opens a traced sqlx handle and checks it within StoreTimeout.
func openDatabase(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	db, err := otelsqlx.Open("postgres", normalizeDBURL(cfg.DBURL, cfg.ServiceName),
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
		otelsql.WithAttributes(attribute.String("service.name", cfg.ServiceName)),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxOpenConns)

	pingCtx, cancel := context.WithTimeout(ctx, cfg.StoreTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

func postgresStores(db *sqlx.DB) stores {
	return stores{
		teams:    postgres.NewTeamRepository(db),
		users:    postgres.NewUserRepository(db),
		turfs:    postgres.NewTurfRepository(db),
		bookings: postgres.NewBookingRepository(db),
		matches:  postgres.NewMatchRepository(db),
		close:    db.Close,
	}
}

// decorateStores wraps every repository in the store circuit breaker when it
// is enabled. Reads are never cached: each call sees the store as it is.
func decorateStores(s stores, cfg config.Config, clock clockwork.Clock, mgr *metrics.Manager, logger *logging.Logger) stores {
	if cfg.StoreCircuit.Enabled {
		breaker := resilience.NewCircuitBreakerFromConfig(cfg.StoreCircuit, resilience.WithBreakerClock(clock))
		guard := guarded.NewGuard(cfg.StoreBackend, breaker, logger.Named("store")).OnStateChange(mgr.SetCircuitOpen)
		s.teams = guarded.NewTeamRepository(s.teams, guard)
		s.users = guarded.NewUserRepository(s.users, guard)
		s.turfs = guarded.NewTurfRepository(s.turfs, guard)
		s.bookings = guarded.NewBookingRepository(s.bookings, guard)
		s.matches = guarded.NewMatchRepository(s.matches, guard)
	}
	return s
}
