package usecase

import (
	"fmt"
	"math"

	"github.com/riskibarqy/turf-matchmaking/internal/domain/user"
)

const (
	MaxResultLimit   = 100
	MaxSearchRadius  = 1000.0
	MaxRatingDiffCap = 5000.0

	candidateOverFetch = 2
	playerRatingWindow = 200.0
	userBookingHistory = 10
	turfPopularWindow  = 100
	slotRecommendLimit = 5
)

// FindMatchOptions bounds an opponent search. A zero MaxDistanceKm or Limit
// takes the default; MaxRatingDiff is always used as given, so zero restricts
// candidates to the team's exact rating. Start from DefaultFindMatchOptions
// for the usual ±500 window.
type FindMatchOptions struct {
	MaxDistanceKm float64
	MaxRatingDiff float64
	Limit         int
}

func DefaultFindMatchOptions() FindMatchOptions {
	return FindMatchOptions{MaxDistanceKm: 50, MaxRatingDiff: 500, Limit: 10}
}

func (o FindMatchOptions) normalize() (FindMatchOptions, error) {
	defaults := DefaultFindMatchOptions()
	if err := validateBounds(o.MaxDistanceKm, o.Limit); err != nil {
		return o, err
	}
	if math.IsNaN(o.MaxRatingDiff) || o.MaxRatingDiff < 0 || o.MaxRatingDiff > MaxRatingDiffCap {
		return o, fmt.Errorf("%w: max rating diff must be between 0 and %.0f", ErrInvalidInput, MaxRatingDiffCap)
	}
	if o.MaxDistanceKm == 0 {
		o.MaxDistanceKm = defaults.MaxDistanceKm
	}
	if o.Limit == 0 {
		o.Limit = defaults.Limit
	}
	return o, nil
}

// FindPlayersOptions bounds a player search. An empty RequiredPositions
// falls back to the team's own requirements.
type FindPlayersOptions struct {
	RequiredPositions []user.Position
	MaxDistanceKm     float64
	Limit             int
}

func DefaultFindPlayersOptions() FindPlayersOptions {
	return FindPlayersOptions{MaxDistanceKm: 30, Limit: 20}
}

func (o FindPlayersOptions) normalize() (FindPlayersOptions, error) {
	defaults := DefaultFindPlayersOptions()
	if err := validateBounds(o.MaxDistanceKm, o.Limit); err != nil {
		return o, err
	}
	for _, p := range o.RequiredPositions {
		if _, ok := user.AllPositions[p]; !ok {
			return o, fmt.Errorf("%w: unknown position %q", ErrInvalidInput, p)
		}
	}
	if o.MaxDistanceKm == 0 {
		o.MaxDistanceKm = defaults.MaxDistanceKm
	}
	if o.Limit == 0 {
		o.Limit = defaults.Limit
	}
	return o, nil
}

// NearbyOptions bounds a nearby match search.
type NearbyOptions struct {
	MaxDistanceKm float64
	Limit         int
}

func DefaultNearbyOptions() NearbyOptions {
	return NearbyOptions{MaxDistanceKm: 20, Limit: 10}
}

func (o NearbyOptions) normalize() (NearbyOptions, error) {
	defaults := DefaultNearbyOptions()
	if err := validateBounds(o.MaxDistanceKm, o.Limit); err != nil {
		return o, err
	}
	if o.MaxDistanceKm == 0 {
		o.MaxDistanceKm = defaults.MaxDistanceKm
	}
	if o.Limit == 0 {
		o.Limit = defaults.Limit
	}
	return o, nil
}

func validateBounds(maxDistanceKm float64, limit int) error {
	if math.IsNaN(maxDistanceKm) || maxDistanceKm < 0 || maxDistanceKm > MaxSearchRadius {
		return fmt.Errorf("%w: max distance must be between 0 and %.0f km", ErrInvalidInput, MaxSearchRadius)
	}
	if limit < 0 || limit > MaxResultLimit {
		return fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidInput, MaxResultLimit)
	}
	return nil
}
