package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/turf-matchmaking/internal/domain/turf"
)

type TurfRepository struct {
	mu    sync.RWMutex
	turfs map[string]turf.Turf
}

func NewTurfRepository(turfs []turf.Turf) *TurfRepository {
	byID := make(map[string]turf.Turf, len(turfs))
	for _, item := range turfs {
		byID[item.ID] = cloneTurf(item)
	}
	return &TurfRepository{turfs: byID}
}

func (r *TurfRepository) GetByID(_ context.Context, turfID string) (turf.Turf, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.turfs[turfID]
	if !ok {
		return turf.Turf{}, false, nil
	}
	return cloneTurf(item), true, nil
}

// cloneTurf deep-copies availability and keeps day-records ordered by date.
func cloneTurf(item turf.Turf) turf.Turf {
	days := make([]turf.DayRecord, 0, len(item.Availability))
	for _, day := range item.Availability {
		days = append(days, turf.DayRecord{
			Date:  day.Date,
			Slots: append([]turf.Slot(nil), day.Slots...),
		})
	}
	sort.SliceStable(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})
	item.Availability = days
	return item
}
