package team

import (
	"context"

	"github.com/riskibarqy/turf-matchmaking/internal/domain/geo"
)

// CandidateQuery bounds an opponent search. Only active teams are returned,
// in a stable store order.
type CandidateQuery struct {
	ExcludeID string
	MinRating float64
	MaxRating float64
	// Within keeps located teams inside the radius. Teams without a location
	// always pass.
	Within *geo.Radius
	Limit  int
}

// Repository describes team persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, teamID string) (Team, bool, error)
	ListCandidates(ctx context.Context, query CandidateQuery) ([]Team, error)
}
