package postgres

import "time"

type bookingTableModel struct {
	ID          int64     `db:"id"`
	PublicID    string    `db:"public_id"`
	UserID      string    `db:"user_public_id"`
	TurfID      string    `db:"turf_public_id"`
	BookingDate time.Time `db:"booking_date"`
	Slots       []byte    `db:"slots"`
	TotalAmount float64   `db:"total_amount"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
}

type bookingInsertModel struct {
	PublicID    string    `db:"public_id"`
	UserID      string    `db:"user_public_id"`
	TurfID      string    `db:"turf_public_id"`
	BookingDate time.Time `db:"booking_date"`
	Slots       string    `db:"slots"`
	TotalAmount float64   `db:"total_amount"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
}
