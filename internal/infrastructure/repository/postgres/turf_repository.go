package postgres

import (
	"context"
	"fmt"
	"sort"

	"github.com/jmoiron/sqlx"
	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/turf-matchmaking/internal/domain/geo"
	"github.com/riskibarqy/turf-matchmaking/internal/domain/turf"
	qb "github.com/riskibarqy/turf-matchmaking/internal/platform/querybuilder"
)

type TurfRepository struct {
	db *sqlx.DB
}

var turfSelectColumns = []string{
	"id",
	"public_id",
	"name",
	"owner_public_id",
	"lng",
	"lat",
	"base_price",
	"availability",
	"is_active",
	"created_at",
	"updated_at",
	"deleted_at",
}

func NewTurfRepository(db *sqlx.DB) *TurfRepository {
	return &TurfRepository{db: db}
}

func (r *TurfRepository) GetByID(ctx context.Context, turfID string) (turf.Turf, bool, error) {
	query, args, err := qb.Select(turfSelectColumns...).From("turfs").
		Where(
			qb.Eq("public_id", turfID),
			qb.IsNull("deleted_at"),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return turf.Turf{}, false, fmt.Errorf("build select turf by id query: %w", err)
	}

	var row turfTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return turf.Turf{}, false, nil
		}
		return turf.Turf{}, false, fmt.Errorf("get turf by id: %w", err)
	}

	days, err := decodeAvailability(row.Availability)
	if err != nil {
		return turf.Turf{}, false, fmt.Errorf("decode availability for turf %s: %w", row.PublicID, err)
	}

	return turf.Turf{
		ID:           row.PublicID,
		Name:         row.Name,
		OwnerID:      row.OwnerID,
		Location:     geo.Point{Lng: row.Lng, Lat: row.Lat},
		BasePrice:    row.BasePrice,
		Availability: days,
		Active:       row.IsActive,
	}, true, nil
}

// decodeAvailability reads the jsonb availability column. Day-records come
// back ordered by date.
func decodeAvailability(raw []byte) ([]turf.DayRecord, error) {
	if len(raw) == 0 {
		return []turf.DayRecord{}, nil
	}

	var items []availabilityDayJSON
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(raw, &items); err != nil {
		return nil, err
	}

	out := make([]turf.DayRecord, 0, len(items))
	for _, item := range items {
		date, err := parseDay(item.Date)
		if err != nil {
			return nil, fmt.Errorf("parse availability date %q: %w", item.Date, err)
		}
		slots := make([]turf.Slot, 0, len(item.Slots))
		for _, s := range item.Slots {
			slots = append(slots, turf.Slot{StartTime: s.StartTime, EndTime: s.EndTime, IsBooked: s.IsBooked})
		}
		out = append(out, turf.DayRecord{Date: date, Slots: slots})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out, nil
}

func encodeAvailability(days []turf.DayRecord) ([]byte, error) {
	items := make([]availabilityDayJSON, 0, len(days))
	for _, day := range days {
		slots := make([]slotJSON, 0, len(day.Slots))
		for _, s := range day.Slots {
			slots = append(slots, slotJSON{StartTime: s.StartTime, EndTime: s.EndTime, IsBooked: s.IsBooked})
		}
		items = append(items, availabilityDayJSON{Date: day.Date.UTC().Format("2006-01-02"), Slots: slots})
	}
	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(items)
}
