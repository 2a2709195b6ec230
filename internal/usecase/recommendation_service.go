package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sourcegraph/conc/pool"

	"github.com/riskibarqy/turf-matchmaking/internal/domain/booking"
	"github.com/riskibarqy/turf-matchmaking/internal/domain/geo"
	"github.com/riskibarqy/turf-matchmaking/internal/domain/match"
	"github.com/riskibarqy/turf-matchmaking/internal/domain/matchmaking"
	"github.com/riskibarqy/turf-matchmaking/internal/domain/turf"
	"github.com/riskibarqy/turf-matchmaking/internal/domain/user"
	"github.com/riskibarqy/turf-matchmaking/internal/platform/logging"
)

const (
	OperationRecommendTimeSlots     = "recommend_time_slots"
	OperationRecommendNearbyMatches = "recommend_nearby_matches"

	NoSlotsMessage = "No slots available for this date"
)

// SlotRecommendation is a free slot ranked for a user.
type SlotRecommendation struct {
	StartTime string
	EndTime   string
	Score     float64
	Reason    string
}

// TimeSlotResult carries ranked slots for one turf and date. Message is set
// when the turf has no day-record for the date.
type TimeSlotResult struct {
	Date            time.Time
	Recommendations []SlotRecommendation
	Message         string
}

// NearbyMatch is an upcoming match ranked for a user.
type NearbyMatch struct {
	Match      match.Match
	DistanceKm float64
	Score      float64
	MatchScore float64
}

type RecommendationService struct {
	turfRepo     turf.Repository
	bookingRepo  booking.Repository
	userRepo     user.Repository
	matchRepo    match.Repository
	scorer       *matchmaking.Scorer
	clock        clockwork.Clock
	storeTimeout time.Duration
	recorder     RankingRecorder
	logger       *logging.Logger
}

type RecommendationServiceOption func(*RecommendationService)

func WithClock(clock clockwork.Clock) RecommendationServiceOption {
	return func(s *RecommendationService) {
		if clock != nil {
			s.clock = clock
		}
	}
}

func WithRecommendationRecorder(recorder RankingRecorder) RecommendationServiceOption {
	return func(s *RecommendationService) {
		s.recorder = recorderOrNop(recorder)
	}
}

func WithRecommendationStoreTimeout(timeout time.Duration) RecommendationServiceOption {
	return func(s *RecommendationService) {
		s.storeTimeout = normalizeStoreTimeout(timeout)
	}
}

func NewRecommendationService(
	turfRepo turf.Repository,
	bookingRepo booking.Repository,
	userRepo user.Repository,
	matchRepo match.Repository,
	scorer *matchmaking.Scorer,
	logger *logging.Logger,
	opts ...RecommendationServiceOption,
) *RecommendationService {
	if scorer == nil {
		scorer = matchmaking.NewScorer(matchmaking.DefaultConfig())
	}
	if logger == nil {
		logger = logging.Default()
	}

	s := &RecommendationService{
		turfRepo:     turfRepo,
		bookingRepo:  bookingRepo,
		userRepo:     userRepo,
		matchRepo:    matchRepo,
		scorer:       scorer,
		clock:        clockwork.NewRealClock(),
		storeTimeout: DefaultStoreTimeout,
		recorder:     nopRecorder{},
		logger:       logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RecommendTimeSlots ranks the free slots of a turf on date for a user, using
// the user's own booking hours, the turf's popular windows and time of day.
func (s *RecommendationService) RecommendTimeSlots(ctx context.Context, userID, turfID string, date time.Time) (out TimeSlotResult, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RecommendationService.RecommendTimeSlots")
	defer span.End()

	started := s.clock.Now()
	candidateCount := 0
	defer func() {
		s.recorder.ObserveRanking(OperationRecommendTimeSlots, candidateCount, len(out.Recommendations), s.clock.Since(started), err)
		annotateRankingSpan(span, candidateCount, len(out.Recommendations), err)
	}()

	userID = strings.TrimSpace(userID)
	turfID = strings.TrimSpace(turfID)
	if userID == "" {
		return TimeSlotResult{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if turfID == "" {
		return TimeSlotResult{}, fmt.Errorf("%w: turf id is required", ErrInvalidInput)
	}
	if date.IsZero() {
		return TimeSlotResult{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	venue, exists, err := storeLookup(ctx, s.storeTimeout, "get turf", func(ctx context.Context) (turf.Turf, bool, error) {
		return s.turfRepo.GetByID(ctx, turfID)
	})
	if err != nil {
		return TimeSlotResult{}, err
	}
	if !exists {
		return TimeSlotResult{}, fmt.Errorf("%w: turf=%s", ErrNotFound, turfID)
	}

	var userHistory, turfHistory []booking.Booking
	reads := pool.New().WithErrors().WithContext(ctx).WithCancelOnError().WithFirstError()
	reads.Go(func(ctx context.Context) error {
		items, err := storeCall(ctx, s.storeTimeout, "list user bookings", func(ctx context.Context) ([]booking.Booking, error) {
			return s.bookingRepo.ListRecentByUser(ctx, userID, userBookingHistory)
		})
		userHistory = items
		return err
	})
	reads.Go(func(ctx context.Context) error {
		items, err := storeCall(ctx, s.storeTimeout, "list turf bookings", func(ctx context.Context) ([]booking.Booking, error) {
			return s.bookingRepo.ListByTurfAndStatus(ctx, venue.ID, booking.StatusConfirmed, turfPopularWindow)
		})
		turfHistory = items
		return err
	})
	if err := reads.Wait(); err != nil {
		return TimeSlotResult{}, err
	}

	day, ok := venue.FindDay(date)
	if !ok {
		return TimeSlotResult{
			Date:            date,
			Recommendations: []SlotRecommendation{},
			Message:         NoSlotsMessage,
		}, nil
	}

	preferences := matchmaking.PreferenceByHour(userHistory)
	popularity := matchmaking.PopularityBySlot(turfHistory)

	ranked := make([]matchmaking.Ranked[SlotRecommendation], 0, len(day.Slots))
	for _, slot := range day.Slots {
		if slot.IsBooked {
			continue
		}
		hour, err := slot.StartHour()
		if err != nil {
			s.logger.WarnContext(ctx, "skip slot with invalid start time",
				"turf_id", venue.ID,
				"start_time", slot.StartTime,
				"error", err,
			)
			continue
		}
		candidateCount++

		pref := preferences[hour]
		pop := popularity[slot.Key()]
		timeScore := matchmaking.TimeOfDayScore(hour)
		score := s.scorer.SlotScore(pref, pop, timeScore)

		ranked = append(ranked, matchmaking.Ranked[SlotRecommendation]{
			Item: SlotRecommendation{
				StartTime: slot.StartTime,
				EndTime:   slot.EndTime,
				Score:     matchmaking.Round(score, 2),
				Reason:    matchmaking.SlotReason(pref, pop, timeScore),
			},
			Score: score,
		})
	}

	top := matchmaking.Top(ranked, slotRecommendLimit)
	out = TimeSlotResult{
		Date:            date,
		Recommendations: make([]SlotRecommendation, 0, len(top)),
	}
	for _, item := range top {
		out.Recommendations = append(out.Recommendations, item.Item)
	}

	s.logger.DebugContext(ctx, "ranked time slots",
		"turf_id", venue.ID,
		"user_id", userID,
		"date", date.Format(time.DateOnly),
		"free_slots", candidateCount,
		"returned", len(out.Recommendations),
	)
	return out, nil
}

// RecommendNearbyMatches ranks scheduled upcoming matches around a user by
// skill fit and distance. Matches without a located turf, or any match when
// the user has no location, are excluded rather than scored neutrally.
func (s *RecommendationService) RecommendNearbyMatches(ctx context.Context, userID string, opts NearbyOptions) (out []NearbyMatch, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RecommendationService.RecommendNearbyMatches")
	defer span.End()

	started := s.clock.Now()
	candidateCount := 0
	defer func() {
		s.recorder.ObserveRanking(OperationRecommendNearbyMatches, candidateCount, len(out), s.clock.Since(started), err)
		annotateRankingSpan(span, candidateCount, len(out), err)
	}()

	opts, err = opts.normalize()
	if err != nil {
		return nil, err
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	viewer, exists, err := storeLookup(ctx, s.storeTimeout, "get user", func(ctx context.Context) (user.User, bool, error) {
		return s.userRepo.GetByID(ctx, userID)
	})
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: user=%s", ErrNotFound, userID)
	}

	query := match.UpcomingQuery{
		Status: match.StatusScheduled,
		From:   s.clock.Now(),
		Limit:  opts.Limit * candidateOverFetch,
	}
	candidates, err := storeCall(ctx, s.storeTimeout, "list upcoming matches", func(ctx context.Context) ([]match.Match, error) {
		return s.matchRepo.ListUpcoming(ctx, query)
	})
	if err != nil {
		return nil, err
	}
	candidateCount = len(candidates)

	ranked := make([]matchmaking.Ranked[NearbyMatch], 0, len(candidates))
	for _, candidate := range candidates {
		km, ok := geo.DistanceBetween(viewer.Location, candidate.Turf.Location)
		if !ok || km > opts.MaxDistanceKm {
			continue
		}
		score := s.scorer.NearbyMatch(viewer, candidate, km, opts.MaxDistanceKm)
		ranked = append(ranked, matchmaking.Ranked[NearbyMatch]{
			Item: NearbyMatch{
				Match:      candidate,
				DistanceKm: matchmaking.Round(km, 1),
				Score:      score,
				MatchScore: matchmaking.DisplayScore(score),
			},
			Score: score,
		})
	}

	top := matchmaking.Top(ranked, opts.Limit)
	out = make([]NearbyMatch, 0, len(top))
	for _, item := range top {
		out = append(out, item.Item)
	}

	s.logger.DebugContext(ctx, "ranked nearby matches",
		"user_id", viewer.ID,
		"located", viewer.Location != nil,
		"candidates", candidateCount,
		"returned", len(out),
	)
	return out, nil
}
