package turf

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/turf-matchmaking/internal/domain/geo"
)

// Slot is a bookable window inside a day. Times are "HH:MM".
type Slot struct {
	StartTime string
	EndTime   string
	IsBooked  bool
}

// Key identifies a slot window independent of its day.
func (s Slot) Key() string {
	return s.StartTime + "-" + s.EndTime
}

// StartHour parses the hour part of StartTime.
func (s Slot) StartHour() (int, error) {
	return ParseHour(s.StartTime)
}

// DayRecord holds the slots published for one calendar day.
type DayRecord struct {
	Date  time.Time
	Slots []Slot
}

type Turf struct {
	ID           string
	Name         string
	OwnerID      string
	Location     geo.Point
	BasePrice    float64
	Availability []DayRecord
	Active       bool
}

func (t Turf) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("turf id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("turf name is required")
	}
	if t.BasePrice < 0 {
		return fmt.Errorf("turf base price must be >= 0")
	}
	for _, day := range t.Availability {
		for _, slot := range day.Slots {
			if _, err := slot.StartHour(); err != nil {
				return fmt.Errorf("invalid slot on %s: %w", day.Date.Format(time.DateOnly), err)
			}
		}
	}

	return nil
}

// FindDay returns the day-record on the same calendar day as date, ignoring
// time of day. Both sides are compared in UTC.
func (t Turf) FindDay(date time.Time) (DayRecord, bool) {
	for _, day := range t.Availability {
		if SameDay(day.Date, date) {
			return day, true
		}
	}
	return DayRecord{}, false
}

func SameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// ParseHour extracts the hour from an "HH:MM" value.
func ParseHour(hhmm string) (int, error) {
	raw, _, _ := strings.Cut(strings.TrimSpace(hhmm), ":")
	hour, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse hour from %q: %w", hhmm, err)
	}
	if hour < 0 || hour > 23 {
		return 0, fmt.Errorf("hour out of range in %q", hhmm)
	}
	return hour, nil
}
