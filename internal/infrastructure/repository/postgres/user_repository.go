package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/turf-matchmaking/internal/domain/user"
	qb "github.com/riskibarqy/turf-matchmaking/internal/platform/querybuilder"
)

type UserRepository struct {
	db *sqlx.DB
}

var userSelectColumns = []string{
	"id",
	"public_id",
	"name",
	"avatar_url",
	"role",
	"skill_rating",
	"lng",
	"lat",
	"preferred_positions",
	"created_at",
	"updated_at",
	"deleted_at",
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(ctx context.Context, userID string) (user.User, bool, error) {
	query, args, err := qb.Select(userSelectColumns...).From("users").
		Where(
			qb.Eq("public_id", userID),
			qb.IsNull("deleted_at"),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return user.User{}, false, fmt.Errorf("build select user by id query: %w", err)
	}

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return user.User{}, false, nil
		}
		return user.User{}, false, fmt.Errorf("get user by id: %w", err)
	}

	return userFromRow(row), true, nil
}

func (r *UserRepository) ListPlayerCandidates(ctx context.Context, q user.PlayerQuery) ([]user.User, error) {
	conds := []qb.Condition{
		qb.Eq("role", string(user.RolePlayer)),
		qb.IsNull("deleted_at"),
		qb.Gte("skill_rating", q.MinRating),
		qb.Lte("skill_rating", q.MaxRating),
		qb.NotIn("public_id", stringSliceToAny(q.ExcludeIDs)),
	}
	if len(q.Positions) > 0 {
		conds = append(conds, qb.Overlaps("preferred_positions", stringArray(q.Positions)))
	}
	if q.Within != nil {
		conds = append(conds, withinRadius("lat", "lng", q.Within))
	}

	query, args, err := qb.Select(userSelectColumns...).From("users").
		Where(conds...).
		OrderBy("id").
		Limit(q.Limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select player candidates query: %w", err)
	}

	var rows []userTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select player candidates: %w", err)
	}

	out := make([]user.User, 0, len(rows))
	for _, row := range rows {
		out = append(out, userFromRow(row))
	}
	return out, nil
}

func userFromRow(row userTableModel) user.User {
	return user.User{
		ID:                 row.PublicID,
		Name:               row.Name,
		AvatarURL:          row.AvatarURL,
		Role:               user.Role(row.Role),
		SkillRating:        row.SkillRating,
		Location:           pointFromNullable(row.Lng, row.Lat),
		PreferredPositions: fromStringArray[user.Position](row.PreferredPositions),
	}
}
