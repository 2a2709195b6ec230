package app

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/riskibarqy/turf-matchmaking/internal/domain/geo"
	"github.com/riskibarqy/turf-matchmaking/internal/domain/turf"
	"github.com/riskibarqy/turf-matchmaking/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/turf-matchmaking/internal/platform/logging"
	"github.com/riskibarqy/turf-matchmaking/internal/platform/metrics"
	"github.com/riskibarqy/turf-matchmaking/internal/usecase"
)

// bookableTurfRepository serves one turf whose evening slot can be booked
// between reads.
type bookableTurfRepository struct {
	mu     sync.Mutex
	day    time.Time
	booked bool
	reads  int
}

func (r *bookableTurfRepository) book() {
	r.mu.Lock()
	r.booked = true
	r.mu.Unlock()
}

func (r *bookableTurfRepository) GetByID(_ context.Context, turfID string) (turf.Turf, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reads++
	return turf.Turf{
		ID:       turfID,
		Name:     "Shivaji Park Nets",
		Location: geo.Point{Lng: 72.8397, Lat: 19.0269},
		Active:   true,
		Availability: []turf.DayRecord{{
			Date: r.day,
			Slots: []turf.Slot{
				{StartTime: "07:00", EndTime: "08:00"},
				{StartTime: "18:00", EndTime: "19:00", IsBooked: r.booked},
			},
		}},
	}, true, nil
}

func TestDecorateStores_TurfReadsStayFresh(t *testing.T) {
	day := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)
	turfs := &bookableTurfRepository{day: day}

	repos := decorateStores(stores{
		teams:    memory.NewTeamRepository(nil),
		users:    memory.NewUserRepository(nil),
		turfs:    turfs,
		bookings: memory.NewBookingRepository(nil),
		matches:  memory.NewMatchRepository(nil),
	}, testConfig(""), clockwork.NewFakeClockAt(day), metrics.NewManager(), logging.NewNop())

	svc := usecase.NewRecommendationService(repos.turfs, repos.bookings, repos.users, repos.matches, nil, logging.NewNop())

	hasEvening := func(result usecase.TimeSlotResult) bool {
		for _, rec := range result.Recommendations {
			if rec.StartTime == "18:00" {
				return true
			}
		}
		return false
	}

	first, err := svc.RecommendTimeSlots(context.Background(), "usr-aarav", "turf-shivaji-park", day)
	if err != nil {
		t.Fatalf("first recommend: %v", err)
	}
	if !hasEvening(first) {
		t.Fatalf("expected free 18:00 slot in %+v", first.Recommendations)
	}

	turfs.book()

	second, err := svc.RecommendTimeSlots(context.Background(), "usr-aarav", "turf-shivaji-park", day)
	if err != nil {
		t.Fatalf("second recommend: %v", err)
	}
	if hasEvening(second) {
		t.Fatalf("booked 18:00 slot still recommended: %+v", second.Recommendations)
	}
	if len(second.Recommendations) != 1 || second.Recommendations[0].StartTime != "07:00" {
		t.Fatalf("expected only the 07:00 slot, got %+v", second.Recommendations)
	}
	if turfs.reads != 2 {
		t.Fatalf("expected every call to read the store, got %d reads", turfs.reads)
	}
}
