package user

import (
	"fmt"
	"strings"

	"github.com/riskibarqy/turf-matchmaking/internal/domain/geo"
)

type Role string

const (
	RolePlayer    Role = "player"
	RoleTurfOwner Role = "turf_owner"
	RoleAdmin     Role = "admin"
)

// Position is a cricket playing role used for squad requirements.
type Position string

const (
	PositionBatsman      Position = "batsman"
	PositionBowler       Position = "bowler"
	PositionAllRounder   Position = "all_rounder"
	PositionWicketKeeper Position = "wicket_keeper"
	PositionFielder      Position = "fielder"
)

var AllPositions = map[Position]struct{}{
	PositionBatsman:      {},
	PositionBowler:       {},
	PositionAllRounder:   {},
	PositionWicketKeeper: {},
	PositionFielder:      {},
}

const DefaultSkillRating = 1000

func ParsePosition(raw string) (Position, error) {
	p := Position(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := AllPositions[p]; !ok {
		return "", fmt.Errorf("unknown position: %q", raw)
	}
	return p, nil
}

// User is a platform account. Players carry a skill rating and preferred positions.
type User struct {
	ID                 string
	Name               string
	AvatarURL          string
	Role               Role
	SkillRating        float64
	Location           *geo.Point
	PreferredPositions []Position
}

func (u User) Validate() error {
	if u.ID == "" {
		return fmt.Errorf("user id is required")
	}
	if u.Name == "" {
		return fmt.Errorf("user name is required")
	}
	switch u.Role {
	case RolePlayer, RoleTurfOwner, RoleAdmin:
	default:
		return fmt.Errorf("invalid user role: %s", u.Role)
	}
	for _, p := range u.PreferredPositions {
		if _, ok := AllPositions[p]; !ok {
			return fmt.Errorf("invalid preferred position: %s", p)
		}
	}

	return nil
}

// PlaysAny reports whether the user prefers at least one of positions.
// An empty positions list matches everyone.
func (u User) PlaysAny(positions []Position) bool {
	if len(positions) == 0 {
		return true
	}
	for _, want := range positions {
		for _, have := range u.PreferredPositions {
			if want == have {
				return true
			}
		}
	}
	return false
}
