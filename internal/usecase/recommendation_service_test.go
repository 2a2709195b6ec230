package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/turf-matchmaking/internal/domain/booking"
	"github.com/riskibarqy/turf-matchmaking/internal/domain/geo"
	"github.com/riskibarqy/turf-matchmaking/internal/domain/match"
	"github.com/riskibarqy/turf-matchmaking/internal/domain/matchmaking"
	"github.com/riskibarqy/turf-matchmaking/internal/domain/turf"
	"github.com/riskibarqy/turf-matchmaking/internal/infrastructure/repository/memory"
	bookingmock "github.com/riskibarqy/turf-matchmaking/internal/mocks/domain/booking"
	matchmock "github.com/riskibarqy/turf-matchmaking/internal/mocks/domain/match"
	turfmock "github.com/riskibarqy/turf-matchmaking/internal/mocks/domain/turf"
	usermock "github.com/riskibarqy/turf-matchmaking/internal/mocks/domain/user"
	"github.com/riskibarqy/turf-matchmaking/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

var seedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newSeededRecommendationService(opts ...RecommendationServiceOption) *RecommendationService {
	opts = append([]RecommendationServiceOption{WithClock(clockwork.NewFakeClockAt(seedNow))}, opts...)
	return NewRecommendationService(
		memory.NewTurfRepository(memory.SeedTurfs(seedNow)),
		memory.NewBookingRepository(memory.SeedBookings(seedNow)),
		memory.NewUserRepository(memory.SeedUsers()),
		memory.NewMatchRepository(memory.SeedMatches(seedNow)),
		matchmaking.NewScorer(matchmaking.DefaultConfig()),
		logging.NewNop(),
		opts...,
	)
}

func TestRecommendationService_RecommendTimeSlots(t *testing.T) {
	t.Parallel()

	recorder := &captureRecorder{}
	service := newSeededRecommendationService(WithRecommendationRecorder(recorder))

	got, err := service.RecommendTimeSlots(context.Background(), "usr-aarav", memory.TurfIDShivajiPark, seedNow)
	if err != nil {
		t.Fatalf("recommend time slots: %v", err)
	}
	if got.Message != "" {
		t.Fatalf("unexpected message: %q", got.Message)
	}

	want := []SlotRecommendation{
		{StartTime: "18:00", EndTime: "19:00", Score: 1.6, Reason: matchmaking.ReasonPreference},
		{StartTime: "20:00", EndTime: "21:00", Score: 1.2, Reason: matchmaking.ReasonPrime},
		{StartTime: "21:00", EndTime: "22:00", Score: 1.2, Reason: matchmaking.ReasonPrime},
		{StartTime: "07:00", EndTime: "08:00", Score: 1.0, Reason: matchmaking.ReasonPreference},
		{StartTime: "17:00", EndTime: "18:00", Score: 0.9, Reason: matchmaking.ReasonPrime},
	}
	if len(got.Recommendations) != len(want) {
		t.Fatalf("unexpected recommendation count: got=%d want=%d (%+v)", len(got.Recommendations), len(want), got.Recommendations)
	}
	for i := range want {
		if got.Recommendations[i] != want[i] {
			t.Fatalf("unexpected recommendation at %d: got=%+v want=%+v", i, got.Recommendations[i], want[i])
		}
	}
	for _, item := range got.Recommendations {
		if item.StartTime == "19:00" {
			t.Fatalf("booked slot must never be recommended")
		}
	}

	// 16 hourly slots with 19:00 booked.
	if len(recorder.calls) != 1 || recorder.calls[0].candidates != 15 || recorder.calls[0].returned != 5 {
		t.Fatalf("unexpected recorder calls: %+v", recorder.calls)
	}
}

func TestRecommendationService_RecommendTimeSlotsNoDayRecord(t *testing.T) {
	t.Parallel()

	service := newSeededRecommendationService()
	date := seedNow.AddDate(0, 1, 0)

	got, err := service.RecommendTimeSlots(context.Background(), "usr-aarav", memory.TurfIDShivajiPark, date)
	if err != nil {
		t.Fatalf("recommend time slots: %v", err)
	}
	if got.Message != NoSlotsMessage {
		t.Fatalf("unexpected message: got=%q want=%q", got.Message, NoSlotsMessage)
	}
	if got.Recommendations == nil || len(got.Recommendations) != 0 {
		t.Fatalf("expected an empty, non-nil list, got %#v", got.Recommendations)
	}
}

func TestRecommendationService_RecommendTimeSlotsErrors(t *testing.T) {
	t.Parallel()

	service := newSeededRecommendationService()
	ctx := context.Background()

	if _, err := service.RecommendTimeSlots(ctx, "usr-aarav", "turf-missing", seedNow); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := service.RecommendTimeSlots(ctx, "usr-aarav", "", seedNow); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty turf id, got %v", err)
	}
	if _, err := service.RecommendTimeSlots(ctx, "", memory.TurfIDShivajiPark, seedNow); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty user id, got %v", err)
	}
	if _, err := service.RecommendTimeSlots(ctx, "usr-aarav", memory.TurfIDShivajiPark, time.Time{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero date, got %v", err)
	}
}

func TestRecommendationService_RecommendTimeSlotsEveningSlotUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	turfRepo := turfmock.NewRepository(t)
	bookingRepo := bookingmock.NewRepository(t)
	service := NewRecommendationService(turfRepo, bookingRepo, usermock.NewRepository(t), matchmock.NewRepository(t), nil, logging.NewNop())

	day := time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC)
	turfRepo.
		On("GetByID", mock.Anything, "turf-1").
		Return(turf.Turf{
			ID: "turf-1", Name: "Evening Nets", Location: geo.Point{Lng: 72.8, Lat: 19.0}, Active: true,
			Availability: []turf.DayRecord{{
				Date: day,
				Slots: []turf.Slot{
					{StartTime: "18:00", EndTime: "19:00"},
					{StartTime: "19:00", EndTime: "20:00", IsBooked: true},
				},
			}},
		}, true, nil).
		Once()
	bookingRepo.
		On("ListRecentByUser", mock.Anything, "usr-new", userBookingHistory).
		Return([]booking.Booking{}, nil).
		Once()
	bookingRepo.
		On("ListByTurfAndStatus", mock.Anything, "turf-1", booking.StatusConfirmed, turfPopularWindow).
		Return([]booking.Booking{}, nil).
		Once()

	got, err := service.RecommendTimeSlots(ctx, "usr-new", "turf-1", day.Add(15*time.Hour))
	if err != nil {
		t.Fatalf("recommend time slots: %v", err)
	}
	if len(got.Recommendations) != 1 {
		t.Fatalf("expected a single free slot, got %+v", got.Recommendations)
	}
	want := SlotRecommendation{StartTime: "18:00", EndTime: "19:00", Score: 0.9, Reason: matchmaking.ReasonPrime}
	if got.Recommendations[0] != want {
		t.Fatalf("unexpected recommendation: got=%+v want=%+v", got.Recommendations[0], want)
	}
}

func TestRecommendationService_RecommendTimeSlotsStoreFailureUsingMockery(t *testing.T) {
	t.Parallel()

	turfRepo := turfmock.NewRepository(t)
	bookingRepo := bookingmock.NewRepository(t)
	service := NewRecommendationService(turfRepo, bookingRepo, usermock.NewRepository(t), matchmock.NewRepository(t), nil, logging.NewNop())

	turfRepo.
		On("GetByID", mock.Anything, "turf-1").
		Return(turf.Turf{ID: "turf-1"}, true, nil).
		Once()
	bookingRepo.
		On("ListRecentByUser", mock.Anything, "usr-1", userBookingHistory).
		Return(nil, errors.New("pool exhausted")).
		Maybe()
	bookingRepo.
		On("ListByTurfAndStatus", mock.Anything, "turf-1", booking.StatusConfirmed, turfPopularWindow).
		Return([]booking.Booking{}, nil).
		Maybe()

	_, err := service.RecommendTimeSlots(context.Background(), "usr-1", "turf-1", seedNow)
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}

func TestRecommendationService_RecommendNearbyMatches(t *testing.T) {
	t.Parallel()

	service := newSeededRecommendationService()

	got, err := service.RecommendNearbyMatches(context.Background(), "usr-aarav", NearbyOptions{})
	if err != nil {
		t.Fatalf("recommend nearby matches: %v", err)
	}
	if len(got) != 2 || got[0].Match.ID != "mch-001" || got[1].Match.ID != "mch-002" {
		t.Fatalf("unexpected nearby matches: %+v", got)
	}
	// Same ground, average rating 990 against 1040: 0.9*0.6 + 1*0.4.
	if got[0].DistanceKm != 0 || got[0].MatchScore != 94.0 {
		t.Fatalf("unexpected first match: distance=%v score=%v", got[0].DistanceKm, got[0].MatchScore)
	}
	for _, item := range got {
		if item.DistanceKm > DefaultNearbyOptions().MaxDistanceKm {
			t.Fatalf("match beyond radius returned: %+v", item)
		}
		if item.Match.Status != match.StatusScheduled {
			t.Fatalf("only scheduled matches may be recommended: %+v", item)
		}
	}

	local, err := service.RecommendNearbyMatches(context.Background(), "usr-aarav", NearbyOptions{MaxDistanceKm: 5})
	if err != nil {
		t.Fatalf("recommend nearby matches: %v", err)
	}
	if len(local) != 1 || local[0].Match.ID != "mch-001" {
		t.Fatalf("expected only the local match within 5km, got %+v", local)
	}
}

func TestRecommendationService_RecommendNearbyMatchesUsesClock(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClockAt(seedNow)
	service := newSeededRecommendationService(WithClock(clock))

	clock.Advance(60 * time.Hour)
	got, err := service.RecommendNearbyMatches(context.Background(), "usr-aarav", NearbyOptions{})
	if err != nil {
		t.Fatalf("recommend nearby matches: %v", err)
	}
	if len(got) != 1 || got[0].Match.ID != "mch-002" {
		t.Fatalf("expected matches that already started to be skipped, got %+v", got)
	}
}

func TestRecommendationService_RecommendNearbyMatchesUnlocatedUser(t *testing.T) {
	t.Parallel()

	service := newSeededRecommendationService()

	got, err := service.RecommendNearbyMatches(context.Background(), "usr-kabir", NearbyOptions{})
	if err != nil {
		t.Fatalf("recommend nearby matches: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("user without a location should get no nearby matches, got %+v", got)
	}

	if _, err := service.RecommendNearbyMatches(context.Background(), "usr-missing", NearbyOptions{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := service.RecommendNearbyMatches(context.Background(), "usr-aarav", NearbyOptions{Limit: 500}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRecommendationService_RecommendNearbyMatchesTimeoutUsingMockery(t *testing.T) {
	t.Parallel()

	userRepo := usermock.NewRepository(t)
	matchRepo := matchmock.NewRepository(t)
	service := NewRecommendationService(
		turfmock.NewRepository(t), bookingmock.NewRepository(t), userRepo, matchRepo, nil, logging.NewNop(),
		WithRecommendationStoreTimeout(20*time.Millisecond),
	)

	userRepo.
		On("GetByID", mock.Anything, "usr-1").
		Return(memory.SeedUsers()[0], true, nil).
		Once()
	matchRepo.
		On("ListUpcoming", mock.Anything, mock.AnythingOfType("match.UpcomingQuery")).
		Return(func(ctx context.Context, _ match.UpcomingQuery) ([]match.Match, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		}).
		Once()

	_, err := service.RecommendNearbyMatches(context.Background(), "usr-1", NearbyOptions{})
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}
