package matchmaking

import (
	"github.com/riskibarqy/turf-matchmaking/internal/domain/booking"
	"github.com/riskibarqy/turf-matchmaking/internal/domain/turf"
)

const (
	ReasonPreference = "Based on your preferences"
	ReasonPopular    = "Popular slot"
	ReasonPrime      = "Prime evening slot"
	ReasonAvailable  = "Available slot"

	// PopularSlotThreshold is the booking count a slot must exceed to be
	// called popular.
	PopularSlotThreshold = 5

	TimeScoreEvening   = 3
	TimeScoreMorning   = 2
	TimeScoreAfternoon = 2
	TimeScoreNight     = 1
)

// TimeOfDayScore bands a start hour. Bands are checked in order so 17:00
// counts as evening.
func TimeOfDayScore(hour int) int {
	switch {
	case hour >= 17 && hour <= 21:
		return TimeScoreEvening
	case hour >= 6 && hour <= 10:
		return TimeScoreMorning
	case hour >= 14 && hour <= 17:
		return TimeScoreAfternoon
	default:
		return TimeScoreNight
	}
}

// SlotReason picks the most specific explanation for a recommendation.
func SlotReason(preference, popularity, timeScore int) string {
	switch {
	case preference > 0:
		return ReasonPreference
	case popularity > PopularSlotThreshold:
		return ReasonPopular
	case timeScore == TimeScoreEvening:
		return ReasonPrime
	default:
		return ReasonAvailable
	}
}

// SlotScore combines the slot signals with the configured weights.
func (s *Scorer) SlotScore(preference, popularity, timeScore int) float64 {
	w := s.cfg.Slot
	return float64(preference)*w.Preference + float64(popularity)*w.Popularity + float64(timeScore)*w.TimeOfDay
}

// PreferenceByHour counts booked slots per start hour. Slots with an
// unparsable start time are skipped.
func PreferenceByHour(items []booking.Booking) map[int]int {
	out := make(map[int]int)
	for _, b := range items {
		for _, slot := range b.Slots {
			hour, err := turf.ParseHour(slot.StartTime)
			if err != nil {
				continue
			}
			out[hour]++
		}
	}
	return out
}

// PopularityBySlot counts booked slots per "start-end" window.
func PopularityBySlot(items []booking.Booking) map[string]int {
	out := make(map[string]int)
	for _, b := range items {
		for _, slot := range b.Slots {
			out[slot.StartTime+"-"+slot.EndTime]++
		}
	}
	return out
}
