package postgres

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
)

type userTableModel struct {
	ID                 int64           `db:"id"`
	PublicID           string          `db:"public_id"`
	Name               string          `db:"name"`
	AvatarURL          string          `db:"avatar_url"`
	Role               string          `db:"role"`
	SkillRating        float64         `db:"skill_rating"`
	Lng                sql.NullFloat64 `db:"lng"`
	Lat                sql.NullFloat64 `db:"lat"`
	PreferredPositions pq.StringArray  `db:"preferred_positions"`
	CreatedAt          time.Time       `db:"created_at"`
	UpdatedAt          time.Time       `db:"updated_at"`
	DeletedAt          *time.Time      `db:"deleted_at"`
}

type userInsertModel struct {
	PublicID           string          `db:"public_id"`
	Name               string          `db:"name"`
	AvatarURL          string          `db:"avatar_url"`
	Role               string          `db:"role"`
	SkillRating        float64         `db:"skill_rating"`
	Lng                sql.NullFloat64 `db:"lng"`
	Lat                sql.NullFloat64 `db:"lat"`
	PreferredPositions pq.StringArray  `db:"preferred_positions"`
}
