package match

import (
	"context"
	"time"
)

type UpcomingQuery struct {
	Status Status
	From   time.Time
	Limit  int
}

// Repository describes match reads needed by recommendations.
type Repository interface {
	// ListUpcoming returns matches with the given status dated at or after From,
	// with team and turf snapshots populated.
	ListUpcoming(ctx context.Context, query UpcomingQuery) ([]Match, error)
}
