package guarded

import (
	"context"

	"github.com/riskibarqy/turf-matchmaking/internal/domain/booking"
	"github.com/riskibarqy/turf-matchmaking/internal/domain/match"
	"github.com/riskibarqy/turf-matchmaking/internal/domain/team"
	"github.com/riskibarqy/turf-matchmaking/internal/domain/turf"
	"github.com/riskibarqy/turf-matchmaking/internal/domain/user"
)

type TeamRepository struct {
	next  team.Repository
	guard *Guard
}

func NewTeamRepository(next team.Repository, guard *Guard) *TeamRepository {
	return &TeamRepository{next: next, guard: guard}
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	return callLookup(ctx, r.guard, "get team", func(ctx context.Context) (team.Team, bool, error) {
		return r.next.GetByID(ctx, teamID)
	})
}

func (r *TeamRepository) ListCandidates(ctx context.Context, query team.CandidateQuery) ([]team.Team, error) {
	return call(ctx, r.guard, "list team candidates", func(ctx context.Context) ([]team.Team, error) {
		return r.next.ListCandidates(ctx, query)
	})
}

type UserRepository struct {
	next  user.Repository
	guard *Guard
}

func NewUserRepository(next user.Repository, guard *Guard) *UserRepository {
	return &UserRepository{next: next, guard: guard}
}

func (r *UserRepository) GetByID(ctx context.Context, userID string) (user.User, bool, error) {
	return callLookup(ctx, r.guard, "get user", func(ctx context.Context) (user.User, bool, error) {
		return r.next.GetByID(ctx, userID)
	})
}

func (r *UserRepository) ListPlayerCandidates(ctx context.Context, query user.PlayerQuery) ([]user.User, error) {
	return call(ctx, r.guard, "list player candidates", func(ctx context.Context) ([]user.User, error) {
		return r.next.ListPlayerCandidates(ctx, query)
	})
}

type TurfRepository struct {
	next  turf.Repository
	guard *Guard
}

func NewTurfRepository(next turf.Repository, guard *Guard) *TurfRepository {
	return &TurfRepository{next: next, guard: guard}
}

func (r *TurfRepository) GetByID(ctx context.Context, turfID string) (turf.Turf, bool, error) {
	return callLookup(ctx, r.guard, "get turf", func(ctx context.Context) (turf.Turf, bool, error) {
		return r.next.GetByID(ctx, turfID)
	})
}

type BookingRepository struct {
	next  booking.Repository
	guard *Guard
}

func NewBookingRepository(next booking.Repository, guard *Guard) *BookingRepository {
	return &BookingRepository{next: next, guard: guard}
}

func (r *BookingRepository) ListRecentByUser(ctx context.Context, userID string, limit int) ([]booking.Booking, error) {
	return call(ctx, r.guard, "list user bookings", func(ctx context.Context) ([]booking.Booking, error) {
		return r.next.ListRecentByUser(ctx, userID, limit)
	})
}

func (r *BookingRepository) ListByTurfAndStatus(ctx context.Context, turfID string, status booking.Status, limit int) ([]booking.Booking, error) {
	return call(ctx, r.guard, "list turf bookings", func(ctx context.Context) ([]booking.Booking, error) {
		return r.next.ListByTurfAndStatus(ctx, turfID, status, limit)
	})
}

type MatchRepository struct {
	next  match.Repository
	guard *Guard
}

func NewMatchRepository(next match.Repository, guard *Guard) *MatchRepository {
	return &MatchRepository{next: next, guard: guard}
}

func (r *MatchRepository) ListUpcoming(ctx context.Context, query match.UpcomingQuery) ([]match.Match, error) {
	return call(ctx, r.guard, "list upcoming matches", func(ctx context.Context) ([]match.Match, error) {
		return r.next.ListUpcoming(ctx, query)
	})
}
