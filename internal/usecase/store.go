package usecase

import (
	"context"
	"fmt"
	"time"
)

const DefaultStoreTimeout = 3 * time.Second

// storeCall runs one store read under its own deadline. Any failure,
// including the deadline, surfaces as ErrDependencyUnavailable.
func storeCall[T any](ctx context.Context, timeout time.Duration, op string, fn func(context.Context) (T, error)) (T, error) {
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out, err := fn(callCtx)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %s: %w", ErrDependencyUnavailable, op, err)
	}
	return out, nil
}

type lookupResult[T any] struct {
	item   T
	exists bool
}

// storeLookup is storeCall for GetByID style reads.
func storeLookup[T any](ctx context.Context, timeout time.Duration, op string, fn func(context.Context) (T, bool, error)) (T, bool, error) {
	res, err := storeCall(ctx, timeout, op, func(ctx context.Context) (lookupResult[T], error) {
		item, exists, err := fn(ctx)
		return lookupResult[T]{item: item, exists: exists}, err
	})
	if err != nil {
		var zero T
		return zero, false, err
	}
	return res.item, res.exists, nil
}

func normalizeStoreTimeout(timeout time.Duration) time.Duration {
	if timeout <= 0 {
		return DefaultStoreTimeout
	}
	return timeout
}
