package matchmaking

import (
	"math"
	"sort"
)

// Ranked pairs an item with its score in [0,1].
type Ranked[T any] struct {
	Item  T
	Score float64
}

// SortDescending orders by score, highest first. Equal scores keep their
// input order.
func SortDescending[T any](items []Ranked[T]) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Score > items[j].Score
	})
}

// Top sorts items and returns at most limit of them. A non-positive limit
// returns everything.
func Top[T any](items []Ranked[T], limit int) []Ranked[T] {
	SortDescending(items)
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}

// DisplayScore converts a [0,1] score to a percentage with one decimal.
func DisplayScore(score float64) float64 {
	return Round(score*100, 1)
}

func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
