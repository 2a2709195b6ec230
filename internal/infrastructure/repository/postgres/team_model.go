package postgres

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
)

type teamTableModel struct {
	ID                int64           `db:"id"`
	PublicID          string          `db:"public_id"`
	Name              string          `db:"name"`
	City              string          `db:"city"`
	CaptainID         string          `db:"captain_public_id"`
	Rating            float64         `db:"rating"`
	Lng               sql.NullFloat64 `db:"lng"`
	Lat               sql.NullFloat64 `db:"lat"`
	RequiredPositions pq.StringArray  `db:"required_positions"`
	IsActive          bool            `db:"is_active"`
	LookingForPlayers bool            `db:"looking_for_players"`
	CreatedAt         time.Time       `db:"created_at"`
	UpdatedAt         time.Time       `db:"updated_at"`
	DeletedAt         *time.Time      `db:"deleted_at"`
}

type teamMemberTableModel struct {
	TeamID string `db:"team_public_id"`
	UserID string `db:"user_public_id"`
	Role   string `db:"role"`
}

type teamInsertModel struct {
	PublicID          string          `db:"public_id"`
	Name              string          `db:"name"`
	City              string          `db:"city"`
	CaptainID         string          `db:"captain_public_id"`
	Rating            float64         `db:"rating"`
	Lng               sql.NullFloat64 `db:"lng"`
	Lat               sql.NullFloat64 `db:"lat"`
	RequiredPositions pq.StringArray  `db:"required_positions"`
	IsActive          bool            `db:"is_active"`
	LookingForPlayers bool            `db:"looking_for_players"`
}
