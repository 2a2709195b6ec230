package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/riskibarqy/turf-matchmaking/internal/domain/team"
)

type TeamRepository struct {
	mu    sync.RWMutex
	teams []team.Team
	index map[string]int
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	r := &TeamRepository{index: make(map[string]int, len(teams))}
	for _, item := range teams {
		if strings.TrimSpace(item.ID) == "" {
			continue
		}
		r.upsert(item)
	}
	return r
}

func (r *TeamRepository) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.index[teamID]
	if !ok {
		return team.Team{}, false, nil
	}
	return cloneTeam(r.teams[idx]), true, nil
}

// ListCandidates scans teams in insertion order.
func (r *TeamRepository) ListCandidates(ctx context.Context, query team.CandidateQuery) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0)
	for _, item := range r.teams {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !item.Active || item.ID == query.ExcludeID {
			continue
		}
		if item.Rating < query.MinRating || item.Rating > query.MaxRating {
			continue
		}
		if query.Within != nil && item.Location != nil && !query.Within.Contains(*item.Location) {
			continue
		}
		out = append(out, cloneTeam(item))
		if query.Limit > 0 && len(out) >= query.Limit {
			break
		}
	}

	return out, nil
}

func (r *TeamRepository) upsert(item team.Team) {
	item = cloneTeam(item)
	if idx, ok := r.index[item.ID]; ok {
		r.teams[idx] = item
		return
	}
	r.index[item.ID] = len(r.teams)
	r.teams = append(r.teams, item)
}

func cloneTeam(item team.Team) team.Team {
	item.Location = clonePoint(item.Location)
	item.Members = append([]team.Member(nil), item.Members...)
	item.RequiredPositions = append(item.RequiredPositions[:0:0], item.RequiredPositions...)
	return item
}
