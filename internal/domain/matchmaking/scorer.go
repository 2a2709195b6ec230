package matchmaking

import (
	"math"

	"github.com/riskibarqy/turf-matchmaking/internal/domain/geo"
	"github.com/riskibarqy/turf-matchmaking/internal/domain/match"
	"github.com/riskibarqy/turf-matchmaking/internal/domain/team"
	"github.com/riskibarqy/turf-matchmaking/internal/domain/user"
)

// TeamScoreOptions carries the caller's search bounds into team scoring.
type TeamScoreOptions struct {
	MaxDistanceKm float64
	// MaxRatingDiff caps the rating gap counted against the skill term.
	// Zero means the full skill band.
	MaxRatingDiff float64
}

// Scorer computes compatibility scores in [0,1]. It holds no mutable state
// and is safe for concurrent use.
type Scorer struct {
	cfg          Config
	availability AvailabilityEstimator
}

type ScorerOption func(*Scorer)

func WithAvailability(estimator AvailabilityEstimator) ScorerOption {
	return func(s *Scorer) {
		if estimator != nil {
			s.availability = estimator
		}
	}
}

func NewScorer(cfg Config, opts ...ScorerOption) *Scorer {
	s := &Scorer{
		cfg:          cfg.Normalize(),
		availability: StubAvailability{Value: AvailabilityStubScore},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Scorer) Config() Config {
	return s.cfg
}

// TeamSimilarity scores an opponent for a team.
func (s *Scorer) TeamSimilarity(a, b team.Team, opts TeamScoreOptions) float64 {
	limit := s.cfg.TeamSkillBand
	if opts.MaxRatingDiff > 0 {
		limit = math.Min(opts.MaxRatingDiff, s.cfg.TeamSkillBand)
	}
	skill := skillScore(a.Rating-b.Rating, limit, s.cfg.TeamSkillBand)
	distance := s.optionalDistanceScore(a.Location, b.Location, opts.MaxDistanceKm)
	availability := s.availability.Estimate(a, b)

	w := s.cfg.Team
	return clamp01(skill*w.Skill + distance*w.Distance + availability*w.Availability)
}

// PlayerFit scores how well a player suits a team.
func (s *Scorer) PlayerFit(p user.User, t team.Team, maxDistanceKm float64) float64 {
	skill := skillScore(p.SkillRating-t.Rating, s.cfg.PlayerSkillBand, s.cfg.PlayerSkillBand)
	distance := s.optionalDistanceScore(p.Location, t.Location, maxDistanceKm)

	w := s.cfg.Player
	return clamp01(skill*w.Skill + distance*w.Distance)
}

// NearbyMatch scores an upcoming match for a user already known to be
// distanceKm away from its turf.
func (s *Scorer) NearbyMatch(u user.User, m match.Match, distanceKm, maxDistanceKm float64) float64 {
	skill := skillScore(u.SkillRating-m.AverageRating(), s.cfg.NearbySkillBand, s.cfg.NearbySkillBand)
	distance := distanceScore(distanceKm, maxDistanceKm)

	w := s.cfg.Nearby
	return clamp01(skill*w.Skill + distance*w.Distance)
}

func (s *Scorer) optionalDistanceScore(a, b *geo.Point, maxDistanceKm float64) float64 {
	km, ok := geo.DistanceBetween(a, b)
	if !ok {
		return s.cfg.NeutralDistance
	}
	return distanceScore(km, maxDistanceKm)
}

// skillScore is 1 - min(|diff|, limit)/band.
func skillScore(diff, limit, band float64) float64 {
	band = math.Max(band, 1)
	return clamp01(1 - math.Min(math.Abs(diff), limit)/band)
}

func distanceScore(km, maxKm float64) float64 {
	maxKm = math.Max(maxKm, 1)
	return clamp01(1 - math.Min(km, maxKm)/maxKm)
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Min(1, math.Max(0, v))
}
