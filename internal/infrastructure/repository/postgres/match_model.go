package postgres

import (
	"database/sql"
	"time"
)

// matchRowModel is a match joined with both team snapshots and the turf.
type matchRowModel struct {
	PublicID    string          `db:"public_id"`
	Team1ID     string          `db:"team1_public_id"`
	Team1Name   string          `db:"team1_name"`
	Team1Rating float64         `db:"team1_rating"`
	Team2ID     string          `db:"team2_public_id"`
	Team2Name   string          `db:"team2_name"`
	Team2Rating float64         `db:"team2_rating"`
	TurfID      string          `db:"turf_public_id"`
	TurfName    string          `db:"turf_name"`
	TurfLng     sql.NullFloat64 `db:"turf_lng"`
	TurfLat     sql.NullFloat64 `db:"turf_lat"`
	MatchDate   time.Time       `db:"match_date"`
	StartTime   string          `db:"start_time"`
	EndTime     string          `db:"end_time"`
	Status      string          `db:"status"`
	MatchType   string          `db:"match_type"`
	Format      string          `db:"format"`
}

type matchInsertModel struct {
	PublicID  string    `db:"public_id"`
	Team1ID   string    `db:"team1_public_id"`
	Team2ID   string    `db:"team2_public_id"`
	TurfID    string    `db:"turf_public_id"`
	MatchDate time.Time `db:"match_date"`
	StartTime string    `db:"start_time"`
	EndTime   string    `db:"end_time"`
	Status    string    `db:"status"`
	MatchType string    `db:"match_type"`
	Format    string    `db:"format"`
}
