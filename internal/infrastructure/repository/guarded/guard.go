// Package guarded wraps repositories with a circuit breaker shared per store
// backend. An open circuit rejects calls without touching the store.
package guarded

import (
	"context"
	stderrors "errors"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/turf-matchmaking/internal/platform/logging"
	"github.com/riskibarqy/turf-matchmaking/internal/platform/resilience"
)

// Guard shares one breaker across all repositories of a store backend.
type Guard struct {
	name    string
	breaker *resilience.CircuitBreaker
	logger  *logging.Logger
	observe func(store string, open bool)
}

// NewGuard returns a guard for the named backend. A nil breaker lets every
// call through.
func NewGuard(name string, breaker *resilience.CircuitBreaker, logger *logging.Logger) *Guard {
	if logger == nil {
		logger = logging.Default()
	}
	return &Guard{name: name, breaker: breaker, logger: logger}
}

// OnStateChange registers fn to receive the breaker state after every
// guarded call. It is meant for gauges and must not block.
func (g *Guard) OnStateChange(fn func(store string, open bool)) *Guard {
	g.observe = fn
	return g
}

func (g *Guard) report() {
	if g.observe == nil {
		return
	}
	g.observe(g.name, g.breaker.State() != resilience.CircuitStateClosed)
}

func (g *Guard) State() resilience.CircuitState {
	if g == nil || g.breaker == nil {
		return resilience.CircuitStateClosed
	}
	return g.breaker.State()
}

func call[T any](ctx context.Context, g *Guard, op string, fn func(context.Context) (T, error)) (T, error) {
	if g == nil || g.breaker == nil {
		return fn(ctx)
	}

	var zero T
	defer g.report()
	if err := g.breaker.Allow(); err != nil {
		g.logger.WarnContext(ctx, "store circuit breaker rejected call",
			"store", g.name,
			"operation", op,
			"state", g.breaker.State(),
		)
		return zero, crerr.Wrapf(err, "%s %s", g.name, op)
	}

	out, err := fn(ctx)
	if isBreakerFailure(err) {
		g.breaker.RecordFailure()
		return zero, err
	}
	g.breaker.RecordSuccess()
	return out, err
}

// isBreakerFailure ignores caller cancellation; a deadline still counts
// because a slow store is as bad as a dead one.
func isBreakerFailure(err error) bool {
	return err != nil && !stderrors.Is(err, context.Canceled)
}

type lookup[T any] struct {
	item   T
	exists bool
}

func callLookup[T any](ctx context.Context, g *Guard, op string, fn func(context.Context) (T, bool, error)) (T, bool, error) {
	res, err := call(ctx, g, op, func(ctx context.Context) (lookup[T], error) {
		item, exists, err := fn(ctx)
		return lookup[T]{item: item, exists: exists}, err
	})
	return res.item, res.exists, err
}
