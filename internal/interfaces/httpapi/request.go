package httpapi

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/turf-matchmaking/internal/domain/user"
	"github.com/riskibarqy/turf-matchmaking/internal/usecase"
)

type findMatchRequest struct {
	TeamID        string   `validate:"required,max=64"`
	MaxDistance   *float64 `validate:"omitnil,gt=0,lte=1000"`
	MaxRatingDiff *float64 `validate:"omitnil,gte=0,lte=5000"`
	Limit         *int     `validate:"omitnil,min=1,max=100"`
}

func (r findMatchRequest) options() usecase.FindMatchOptions {
	opts := usecase.DefaultFindMatchOptions()
	if r.MaxDistance != nil {
		opts.MaxDistanceKm = *r.MaxDistance
	}
	if r.MaxRatingDiff != nil {
		opts.MaxRatingDiff = *r.MaxRatingDiff
	}
	if r.Limit != nil {
		opts.Limit = *r.Limit
	}
	return opts
}

type findPlayersRequest struct {
	TeamID      string   `validate:"required,max=64"`
	Positions   []string `validate:"omitempty,max=5,dive,required"`
	MaxDistance *float64 `validate:"omitnil,gt=0,lte=1000"`
	Limit       *int     `validate:"omitnil,min=1,max=100"`
}

func (r findPlayersRequest) options() (usecase.FindPlayersOptions, error) {
	opts := usecase.DefaultFindPlayersOptions()
	for _, raw := range r.Positions {
		p, err := user.ParsePosition(raw)
		if err != nil {
			return opts, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
		}
		opts.RequiredPositions = append(opts.RequiredPositions, p)
	}
	if r.MaxDistance != nil {
		opts.MaxDistanceKm = *r.MaxDistance
	}
	if r.Limit != nil {
		opts.Limit = *r.Limit
	}
	return opts, nil
}

type timeSlotsRequest struct {
	TurfID string `validate:"required,max=64"`
	Date   string `validate:"required"`
}

type nearbyMatchesRequest struct {
	MaxDistance *float64 `validate:"omitnil,gt=0,lte=1000"`
	Limit       *int     `validate:"omitnil,min=1,max=100"`
}

func (r nearbyMatchesRequest) options() usecase.NearbyOptions {
	opts := usecase.DefaultNearbyOptions()
	if r.MaxDistance != nil {
		opts.MaxDistanceKm = *r.MaxDistance
	}
	if r.Limit != nil {
		opts.Limit = *r.Limit
	}
	return opts
}

func queryFloat(values url.Values, key string) (*float64, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a number", usecase.ErrInvalidInput, key)
	}
	return &v, nil
}

func queryInt(values url.Values, key string) (*int, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, key)
	}
	return &v, nil
}

// queryList accepts both repeated keys and comma separated values.
func queryList(values url.Values, key string) []string {
	out := make([]string, 0)
	for _, raw := range values[key] {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// parseDate accepts YYYY-MM-DD or RFC3339 and returns the UTC calendar day.
func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be YYYY-MM-DD or RFC3339", usecase.ErrInvalidInput)
	}
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}
