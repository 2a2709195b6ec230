package match

import (
	"fmt"
	"time"

	"github.com/riskibarqy/turf-matchmaking/internal/domain/geo"
)

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusLive      Status = "live"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// TeamRef is the team snapshot loaded alongside a match.
type TeamRef struct {
	ID     string
	Name   string
	Rating float64
}

// TurfRef is the venue snapshot loaded alongside a match.
type TurfRef struct {
	ID       string
	Name     string
	Location *geo.Point
}

type Match struct {
	ID        string
	Team1     TeamRef
	Team2     TeamRef
	Turf      TurfRef
	Date      time.Time
	StartTime string
	EndTime   string
	Status    Status
	MatchType string
	Format    string
}

func (m Match) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("match id is required")
	}
	if m.Team1.ID == "" || m.Team2.ID == "" {
		return fmt.Errorf("match requires two teams")
	}
	if m.Team1.ID == m.Team2.ID {
		return fmt.Errorf("match teams must differ")
	}

	return nil
}

// AverageRating is the mean rating of both sides.
func (m Match) AverageRating() float64 {
	return (m.Team1.Rating + m.Team2.Rating) / 2
}
