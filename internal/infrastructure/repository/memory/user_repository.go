package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/turf-matchmaking/internal/domain/geo"
	"github.com/riskibarqy/turf-matchmaking/internal/domain/user"
)

type UserRepository struct {
	mu    sync.RWMutex
	users []user.User
	index map[string]int
}

func NewUserRepository(users []user.User) *UserRepository {
	r := &UserRepository{index: make(map[string]int, len(users))}
	for _, item := range users {
		item = cloneUser(item)
		if idx, ok := r.index[item.ID]; ok {
			r.users[idx] = item
			continue
		}
		r.index[item.ID] = len(r.users)
		r.users = append(r.users, item)
	}
	return r
}

func (r *UserRepository) GetByID(_ context.Context, userID string) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.index[userID]
	if !ok {
		return user.User{}, false, nil
	}
	return cloneUser(r.users[idx]), true, nil
}

func (r *UserRepository) ListPlayerCandidates(ctx context.Context, query user.PlayerQuery) ([]user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	excluded := make(map[string]struct{}, len(query.ExcludeIDs))
	for _, id := range query.ExcludeIDs {
		excluded[id] = struct{}{}
	}

	out := make([]user.User, 0)
	for _, item := range r.users {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if item.Role != user.RolePlayer {
			continue
		}
		if _, skip := excluded[item.ID]; skip {
			continue
		}
		if item.SkillRating < query.MinRating || item.SkillRating > query.MaxRating {
			continue
		}
		if !item.PlaysAny(query.Positions) {
			continue
		}
		if query.Within != nil && item.Location != nil && !query.Within.Contains(*item.Location) {
			continue
		}
		out = append(out, cloneUser(item))
		if query.Limit > 0 && len(out) >= query.Limit {
			break
		}
	}

	return out, nil
}

func cloneUser(item user.User) user.User {
	item.Location = clonePoint(item.Location)
	item.PreferredPositions = append(item.PreferredPositions[:0:0], item.PreferredPositions...)
	return item
}

func clonePoint(p *geo.Point) *geo.Point {
	if p == nil {
		return nil
	}
	out := *p
	return &out
}
