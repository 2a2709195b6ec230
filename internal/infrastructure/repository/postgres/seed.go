package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/turf-matchmaking/internal/infrastructure/repository/memory"
	qb "github.com/riskibarqy/turf-matchmaking/internal/platform/querybuilder"
)

const seedConflictSuffix = "ON CONFLICT (public_id) DO NOTHING"

// BootstrapSeed loads the demo data set into an empty database. Turf
// availability and matches are laid out relative to now.
func BootstrapSeed(ctx context.Context, db *sqlx.DB, now time.Time) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM teams WHERE deleted_at IS NULL`); err != nil {
		return fmt.Errorf("count teams for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	users := memory.SeedUsers()
	userRows := make([]userInsertModel, 0, len(users))
	for _, u := range users {
		lng, lat := nullableFromPoint(u.Location)
		userRows = append(userRows, userInsertModel{
			PublicID:           u.ID,
			Name:               u.Name,
			AvatarURL:          u.AvatarURL,
			Role:               string(u.Role),
			SkillRating:        u.SkillRating,
			Lng:                lng,
			Lat:                lat,
			PreferredPositions: stringArray(u.PreferredPositions),
		})
	}

	teams := memory.SeedTeams()
	teamRows := make([]teamInsertModel, 0, len(teams))
	memberRows := make([]teamMemberTableModel, 0, len(teams)*2)
	for _, t := range teams {
		lng, lat := nullableFromPoint(t.Location)
		teamRows = append(teamRows, teamInsertModel{
			PublicID:          t.ID,
			Name:              t.Name,
			City:              t.City,
			CaptainID:         t.CaptainID,
			Rating:            t.Rating,
			Lng:               lng,
			Lat:               lat,
			RequiredPositions: stringArray(t.RequiredPositions),
			IsActive:          t.Active,
			LookingForPlayers: t.LookingForPlayers,
		})
		for _, m := range t.Members {
			memberRows = append(memberRows, teamMemberTableModel{
				TeamID: t.ID,
				UserID: m.UserID,
				Role:   string(m.Role),
			})
		}
	}

	turfs := memory.SeedTurfs(now)
	turfRows := make([]turfInsertModel, 0, len(turfs))
	for _, t := range turfs {
		availability, err := encodeAvailability(t.Availability)
		if err != nil {
			return fmt.Errorf("encode seed turf %s availability: %w", t.ID, err)
		}
		turfRows = append(turfRows, turfInsertModel{
			PublicID:     t.ID,
			Name:         t.Name,
			OwnerID:      t.OwnerID,
			Lng:          t.Location.Lng,
			Lat:          t.Location.Lat,
			BasePrice:    t.BasePrice,
			Availability: string(availability),
			IsActive:     t.Active,
		})
	}

	bookings := memory.SeedBookings(now)
	bookingRows := make([]bookingInsertModel, 0, len(bookings))
	for _, b := range bookings {
		slots, err := encodeSlots(b.Slots)
		if err != nil {
			return fmt.Errorf("encode seed booking %s slots: %w", b.ID, err)
		}
		bookingRows = append(bookingRows, bookingInsertModel{
			PublicID:    b.ID,
			UserID:      b.UserID,
			TurfID:      b.TurfID,
			BookingDate: b.BookingDate,
			Slots:       string(slots),
			TotalAmount: b.TotalAmount,
			Status:      string(b.Status),
			CreatedAt:   b.CreatedAt,
		})
	}

	matches := memory.SeedMatches(now)
	matchRows := make([]matchInsertModel, 0, len(matches))
	for _, m := range matches {
		matchRows = append(matchRows, matchInsertModel{
			PublicID:  m.ID,
			Team1ID:   m.Team1.ID,
			Team2ID:   m.Team2.ID,
			TurfID:    m.Turf.ID,
			MatchDate: m.Date,
			StartTime: m.StartTime,
			EndTime:   m.EndTime,
			Status:    string(m.Status),
			MatchType: m.MatchType,
			Format:    m.Format,
		})
	}

	// Parents first so foreign keys resolve inside the transaction.
	steps := []func() error{
		func() error { return seedTable(ctx, tx, "users", userRows, seedConflictSuffix) },
		func() error { return seedTable(ctx, tx, "teams", teamRows, seedConflictSuffix) },
		func() error {
			return seedTable(ctx, tx, "team_members", memberRows, "ON CONFLICT (team_public_id, user_public_id) DO NOTHING")
		},
		func() error { return seedTable(ctx, tx, "turfs", turfRows, seedConflictSuffix) },
		func() error { return seedTable(ctx, tx, "bookings", bookingRows, seedConflictSuffix) },
		func() error { return seedTable(ctx, tx, "matches", matchRows, seedConflictSuffix) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	return nil
}

func seedTable[T any](ctx context.Context, tx *sqlx.Tx, table string, rows []T, suffix string) error {
	if len(rows) == 0 {
		return nil
	}
	query, args, err := qb.InsertModels(table, rows, suffix)
	if err != nil {
		return fmt.Errorf("build seed %s query: %w", table, err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("seed %s: %w", table, err)
	}
	return nil
}
