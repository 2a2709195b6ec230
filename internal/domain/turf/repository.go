package turf

import "context"

// Repository describes turf persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, turfID string) (Turf, bool, error)
}
