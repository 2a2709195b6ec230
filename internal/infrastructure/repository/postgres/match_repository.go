package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/turf-matchmaking/internal/domain/match"
	qb "github.com/riskibarqy/turf-matchmaking/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

var matchSelectColumns = []string{
	"m.public_id",
	"m.team1_public_id",
	"t1.name AS team1_name",
	"t1.rating AS team1_rating",
	"m.team2_public_id",
	"t2.name AS team2_name",
	"t2.rating AS team2_rating",
	"m.turf_public_id",
	"COALESCE(tf.name, '') AS turf_name",
	"tf.lng AS turf_lng",
	"tf.lat AS turf_lat",
	"m.match_date",
	"m.start_time",
	"m.end_time",
	"m.status",
	"m.match_type",
	"m.format",
}

const matchFromClause = "matches m" +
	" JOIN teams t1 ON t1.public_id = m.team1_public_id" +
	" JOIN teams t2 ON t2.public_id = m.team2_public_id" +
	" LEFT JOIN turfs tf ON tf.public_id = m.turf_public_id"

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) ListUpcoming(ctx context.Context, q match.UpcomingQuery) ([]match.Match, error) {
	conds := []qb.Condition{qb.Gte("m.match_date", q.From)}
	if q.Status != "" {
		conds = append(conds, qb.Eq("m.status", string(q.Status)))
	}

	query, args, err := qb.Select(matchSelectColumns...).From(matchFromClause).
		Where(conds...).
		OrderBy("m.match_date", "m.id").
		Limit(q.Limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select upcoming matches query: %w", err)
	}

	var rows []matchRowModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select upcoming matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, match.Match{
			ID:    row.PublicID,
			Team1: match.TeamRef{ID: row.Team1ID, Name: row.Team1Name, Rating: row.Team1Rating},
			Team2: match.TeamRef{ID: row.Team2ID, Name: row.Team2Name, Rating: row.Team2Rating},
			Turf: match.TurfRef{
				ID:       row.TurfID,
				Name:     row.TurfName,
				Location: pointFromNullable(row.TurfLng, row.TurfLat),
			},
			Date:      row.MatchDate,
			StartTime: row.StartTime,
			EndTime:   row.EndTime,
			Status:    match.Status(row.Status),
			MatchType: row.MatchType,
			Format:    row.Format,
		})
	}
	return out, nil
}
