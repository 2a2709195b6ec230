package booking

import "context"

// Repository describes booking history reads needed by recommendations.
type Repository interface {
	// ListRecentByUser returns the user's bookings, newest CreatedAt first.
	ListRecentByUser(ctx context.Context, userID string, limit int) ([]Booking, error)
	ListByTurfAndStatus(ctx context.Context, turfID string, status Status, limit int) ([]Booking, error)
}
