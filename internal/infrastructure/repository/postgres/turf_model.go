package postgres

import "time"

type turfTableModel struct {
	ID           int64      `db:"id"`
	PublicID     string     `db:"public_id"`
	Name         string     `db:"name"`
	OwnerID      string     `db:"owner_public_id"`
	Lng          float64    `db:"lng"`
	Lat          float64    `db:"lat"`
	BasePrice    float64    `db:"base_price"`
	Availability []byte     `db:"availability"`
	IsActive     bool       `db:"is_active"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
	DeletedAt    *time.Time `db:"deleted_at"`
}

type turfInsertModel struct {
	PublicID     string  `db:"public_id"`
	Name         string  `db:"name"`
	OwnerID      string  `db:"owner_public_id"`
	Lng          float64 `db:"lng"`
	Lat          float64 `db:"lat"`
	BasePrice    float64 `db:"base_price"`
	Availability string  `db:"availability"`
	IsActive     bool    `db:"is_active"`
}

// availabilityDayJSON is one element of turfs.availability.
type availabilityDayJSON struct {
	Date  string     `json:"date"`
	Slots []slotJSON `json:"slots"`
}

type slotJSON struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	IsBooked  bool   `json:"isBooked,omitempty"`
}
