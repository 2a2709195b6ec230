package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/turf-matchmaking/internal/domain/booking"
)

type BookingRepository struct {
	mu       sync.RWMutex
	bookings []booking.Booking
}

func NewBookingRepository(items []booking.Booking) *BookingRepository {
	out := make([]booking.Booking, 0, len(items))
	for _, item := range items {
		out = append(out, cloneBooking(item))
	}
	return &BookingRepository{bookings: out}
}

func (r *BookingRepository) ListRecentByUser(_ context.Context, userID string, limit int) ([]booking.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]booking.Booking, 0)
	for _, item := range r.bookings {
		if item.UserID == userID {
			out = append(out, cloneBooking(item))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return truncate(out, limit), nil
}

func (r *BookingRepository) ListByTurfAndStatus(_ context.Context, turfID string, status booking.Status, limit int) ([]booking.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]booking.Booking, 0)
	for _, item := range r.bookings {
		if item.TurfID != turfID || item.Status != status {
			continue
		}
		out = append(out, cloneBooking(item))
		if limit > 0 && len(out) >= limit {
			break
		}
	}

	return out, nil
}

func (r *BookingRepository) Append(_ context.Context, item booking.Booking) error {
	if err := item.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.bookings = append(r.bookings, cloneBooking(item))
	return nil
}

func cloneBooking(item booking.Booking) booking.Booking {
	item.Slots = append([]booking.SlotRef(nil), item.Slots...)
	return item
}

func truncate[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
