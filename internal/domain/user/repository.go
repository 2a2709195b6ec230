package user

import (
	"context"

	"github.com/riskibarqy/turf-matchmaking/internal/domain/geo"
)

// PlayerQuery bounds a player candidate search. Only users with RolePlayer
// are returned.
type PlayerQuery struct {
	MinRating  float64
	MaxRating  float64
	Positions  []Position
	ExcludeIDs []string
	// Within keeps located players inside the radius. Players without a
	// location always pass.
	Within *geo.Radius
	Limit  int
}

// Repository describes user persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, userID string) (User, bool, error)
	ListPlayerCandidates(ctx context.Context, query PlayerQuery) ([]User, error)
}
