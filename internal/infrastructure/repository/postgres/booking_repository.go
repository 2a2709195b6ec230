package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/turf-matchmaking/internal/domain/booking"
	qb "github.com/riskibarqy/turf-matchmaking/internal/platform/querybuilder"
)

type BookingRepository struct {
	db *sqlx.DB
}

var bookingSelectColumns = []string{
	"id",
	"public_id",
	"user_public_id",
	"turf_public_id",
	"booking_date",
	"slots",
	"total_amount",
	"status",
	"created_at",
}

func NewBookingRepository(db *sqlx.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) ListRecentByUser(ctx context.Context, userID string, limit int) ([]booking.Booking, error) {
	query, args, err := qb.Select(bookingSelectColumns...).From("bookings").
		Where(qb.Eq("user_public_id", userID)).
		OrderBy("created_at DESC", "id DESC").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select bookings by user query: %w", err)
	}

	return r.selectBookings(ctx, "select bookings by user", query, args)
}

func (r *BookingRepository) ListByTurfAndStatus(ctx context.Context, turfID string, status booking.Status, limit int) ([]booking.Booking, error) {
	query, args, err := qb.Select(bookingSelectColumns...).From("bookings").
		Where(
			qb.Eq("turf_public_id", turfID),
			qb.Eq("status", string(status)),
		).
		OrderBy("created_at DESC", "id DESC").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select bookings by turf query: %w", err)
	}

	return r.selectBookings(ctx, "select bookings by turf", query, args)
}

func (r *BookingRepository) selectBookings(ctx context.Context, op, query string, args []any) ([]booking.Booking, error) {
	var rows []bookingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]booking.Booking, 0, len(rows))
	for _, row := range rows {
		slots, err := decodeSlots(row.Slots)
		if err != nil {
			return nil, fmt.Errorf("decode slots for booking %s: %w", row.PublicID, err)
		}
		out = append(out, booking.Booking{
			ID:          row.PublicID,
			UserID:      row.UserID,
			TurfID:      row.TurfID,
			BookingDate: row.BookingDate,
			Slots:       slots,
			TotalAmount: row.TotalAmount,
			Status:      booking.Status(row.Status),
			CreatedAt:   row.CreatedAt,
		})
	}
	return out, nil
}

func decodeSlots(raw []byte) ([]booking.SlotRef, error) {
	if len(raw) == 0 {
		return []booking.SlotRef{}, nil
	}

	var items []slotJSON
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	out := make([]booking.SlotRef, 0, len(items))
	for _, item := range items {
		out = append(out, booking.SlotRef{StartTime: item.StartTime, EndTime: item.EndTime})
	}
	return out, nil
}

func encodeSlots(slots []booking.SlotRef) ([]byte, error) {
	items := make([]slotJSON, 0, len(slots))
	for _, s := range slots {
		items = append(items, slotJSON{StartTime: s.StartTime, EndTime: s.EndTime})
	}
	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(items)
}
