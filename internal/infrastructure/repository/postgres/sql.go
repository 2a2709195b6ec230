package postgres

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/riskibarqy/turf-matchmaking/internal/domain/geo"
	qb "github.com/riskibarqy/turf-matchmaking/internal/platform/querybuilder"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// withinRadius keeps rows without coordinates and rows inside r. The
// haversine_km function is created by the initial migration.
func withinRadius(latColumn, lngColumn string, r *geo.Radius) qb.Condition {
	return qb.Or(
		qb.IsNull(latColumn),
		qb.Expr("haversine_km("+latColumn+", "+lngColumn+", ?, ?) <= ?", r.Center.Lat, r.Center.Lng, r.Km),
	)
}

func pointFromNullable(lng, lat sql.NullFloat64) *geo.Point {
	if !lng.Valid || !lat.Valid {
		return nil
	}
	return &geo.Point{Lng: lng.Float64, Lat: lat.Float64}
}

func nullableFromPoint(p *geo.Point) (sql.NullFloat64, sql.NullFloat64) {
	if p == nil {
		return sql.NullFloat64{}, sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: p.Lng, Valid: true}, sql.NullFloat64{Float64: p.Lat, Valid: true}
}

func stringSliceToAny(items []string) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		out = append(out, item)
	}
	return out
}

func stringArray[T ~string](items []T) pq.StringArray {
	out := make(pq.StringArray, 0, len(items))
	for _, item := range items {
		out = append(out, string(item))
	}
	return out
}

func fromStringArray[T ~string](items pq.StringArray) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item) == "" {
			continue
		}
		out = append(out, T(item))
	}
	return out
}

// parseDay accepts a plain date or an RFC3339 timestamp and truncates to the
// UTC calendar day.
func parseDay(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}
