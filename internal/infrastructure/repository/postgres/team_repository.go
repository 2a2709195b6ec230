package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/turf-matchmaking/internal/domain/team"
	"github.com/riskibarqy/turf-matchmaking/internal/domain/user"
	qb "github.com/riskibarqy/turf-matchmaking/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

var teamSelectColumns = []string{
	"id",
	"public_id",
	"name",
	"city",
	"captain_public_id",
	"rating",
	"lng",
	"lat",
	"required_positions",
	"is_active",
	"looking_for_players",
	"created_at",
	"updated_at",
	"deleted_at",
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	query, args, err := qb.Select(teamSelectColumns...).From("teams").
		Where(
			qb.Eq("public_id", teamID),
			qb.IsNull("deleted_at"),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build select team by id query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("get team by id: %w", err)
	}

	members, err := r.membersByTeam(ctx, []string{row.PublicID})
	if err != nil {
		return team.Team{}, false, err
	}

	return teamFromRow(row, members[row.PublicID]), true, nil
}

func (r *TeamRepository) ListCandidates(ctx context.Context, q team.CandidateQuery) ([]team.Team, error) {
	conds := []qb.Condition{
		qb.Eq("is_active", true),
		qb.IsNull("deleted_at"),
		qb.Gte("rating", q.MinRating),
		qb.Lte("rating", q.MaxRating),
	}
	if q.ExcludeID != "" {
		conds = append(conds, qb.NotEq("public_id", q.ExcludeID))
	}
	if q.Within != nil {
		conds = append(conds, withinRadius("lat", "lng", q.Within))
	}

	query, args, err := qb.Select(teamSelectColumns...).From("teams").
		Where(conds...).
		OrderBy("id").
		Limit(q.Limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select team candidates query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select team candidates: %w", err)
	}
	if len(rows) == 0 {
		return []team.Team{}, nil
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.PublicID)
	}
	members, err := r.membersByTeam(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamFromRow(row, members[row.PublicID]))
	}
	return out, nil
}

func (r *TeamRepository) membersByTeam(ctx context.Context, teamIDs []string) (map[string][]team.Member, error) {
	query, args, err := qb.Select("team_public_id", "user_public_id", "role").From("team_members").
		Where(qb.In("team_public_id", stringSliceToAny(teamIDs))).
		OrderBy("team_public_id", "joined_at", "user_public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select team members query: %w", err)
	}

	var rows []teamMemberTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select team members: %w", err)
	}

	out := make(map[string][]team.Member, len(teamIDs))
	for _, row := range rows {
		out[row.TeamID] = append(out[row.TeamID], team.Member{
			UserID: row.UserID,
			Role:   team.MemberRole(row.Role),
		})
	}
	return out, nil
}

func teamFromRow(row teamTableModel, members []team.Member) team.Team {
	return team.Team{
		ID:                row.PublicID,
		Name:              row.Name,
		City:              row.City,
		CaptainID:         row.CaptainID,
		Rating:            row.Rating,
		Location:          pointFromNullable(row.Lng, row.Lat),
		Members:           members,
		RequiredPositions: fromStringArray[user.Position](row.RequiredPositions),
		Active:            row.IsActive,
		LookingForPlayers: row.LookingForPlayers,
	}
}
