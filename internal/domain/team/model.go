package team

import (
	"fmt"

	"github.com/riskibarqy/turf-matchmaking/internal/domain/geo"
	"github.com/riskibarqy/turf-matchmaking/internal/domain/user"
)

type MemberRole string

const (
	MemberRoleCaptain     MemberRole = "captain"
	MemberRoleViceCaptain MemberRole = "vice_captain"
	MemberRolePlayer      MemberRole = "player"
)

type Member struct {
	UserID string
	Role   MemberRole
}

// Team is an amateur side that books turfs and plays matches.
type Team struct {
	ID                string
	Name              string
	City              string
	CaptainID         string
	Rating            float64
	Location          *geo.Point
	Members           []Member
	RequiredPositions []user.Position
	Active            bool
	LookingForPlayers bool
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}
	for _, p := range t.RequiredPositions {
		if _, ok := user.AllPositions[p]; !ok {
			return fmt.Errorf("invalid required position: %s", p)
		}
	}

	return nil
}

func (t Team) MemberIDs() []string {
	out := make([]string, 0, len(t.Members))
	for _, m := range t.Members {
		out = append(out, m.UserID)
	}
	return out
}

func (t Team) HasMember(userID string) bool {
	for _, m := range t.Members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}
