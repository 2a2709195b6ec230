package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/turf-matchmaking/internal/domain/match"
)

type MatchRepository struct {
	mu      sync.RWMutex
	matches []match.Match
}

func NewMatchRepository(items []match.Match) *MatchRepository {
	out := make([]match.Match, 0, len(items))
	for _, item := range items {
		out = append(out, cloneMatch(item))
	}
	return &MatchRepository{matches: out}
}

// ListUpcoming returns matches ordered by date, earliest first.
func (r *MatchRepository) ListUpcoming(_ context.Context, query match.UpcomingQuery) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0)
	for _, item := range r.matches {
		if query.Status != "" && item.Status != query.Status {
			continue
		}
		if item.Date.Before(query.From) {
			continue
		}
		out = append(out, cloneMatch(item))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})

	return truncate(out, query.Limit), nil
}

func cloneMatch(item match.Match) match.Match {
	item.Turf.Location = clonePoint(item.Turf.Location)
	return item
}
