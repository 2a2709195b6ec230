package httpapi

import (
	"time"

	"github.com/riskibarqy/turf-matchmaking/internal/domain/geo"
	"github.com/riskibarqy/turf-matchmaking/internal/domain/match"
	"github.com/riskibarqy/turf-matchmaking/internal/domain/team"
	"github.com/riskibarqy/turf-matchmaking/internal/domain/user"
	"github.com/riskibarqy/turf-matchmaking/internal/usecase"
)

// locationDTO is a GeoJSON point.
type locationDTO struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

type teamDTO struct {
	ID                string       `json:"id"`
	Name              string       `json:"name"`
	City              string       `json:"city,omitempty"`
	CaptainID         string       `json:"captainId"`
	Rating            float64      `json:"rating"`
	Location          *locationDTO `json:"location,omitempty"`
	MemberCount       int          `json:"memberCount"`
	RequiredPositions []string     `json:"requiredPositions"`
	LookingForPlayers bool         `json:"lookingForPlayers"`
}

type teamMatchDTO struct {
	Team       teamDTO `json:"team"`
	Score      float64 `json:"score"`
	MatchScore float64 `json:"matchScore"`
}

type playerDTO struct {
	ID                 string       `json:"id"`
	Name               string       `json:"name"`
	AvatarURL          string       `json:"avatar,omitempty"`
	SkillRating        float64      `json:"skillRating"`
	Location           *locationDTO `json:"location,omitempty"`
	PreferredPositions []string     `json:"preferredPositions"`
}

type playerMatchDTO struct {
	Player     playerDTO `json:"player"`
	Score      float64   `json:"score"`
	MatchScore float64   `json:"matchScore"`
}

type slotRecommendationDTO struct {
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Score     float64 `json:"score"`
	Reason    string  `json:"reason"`
}

type timeSlotsDTO struct {
	Date            string                  `json:"date"`
	Recommendations []slotRecommendationDTO `json:"recommendations"`
	Message         string                  `json:"message,omitempty"`
}

type matchTeamDTO struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Rating float64 `json:"rating"`
}

type matchTurfDTO struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Location *locationDTO `json:"location,omitempty"`
}

type nearbyMatchDTO struct {
	ID         string       `json:"id"`
	Team1      matchTeamDTO `json:"team1"`
	Team2      matchTeamDTO `json:"team2"`
	Turf       matchTurfDTO `json:"turf"`
	Date       string       `json:"date"`
	StartTime  string       `json:"startTime"`
	EndTime    string       `json:"endTime"`
	MatchType  string       `json:"matchType,omitempty"`
	Format     string       `json:"format,omitempty"`
	DistanceKm float64      `json:"distanceKm"`
	MatchScore float64      `json:"matchScore"`
}

type teamMatchesResponse struct {
	Matches []teamMatchDTO `json:"matches"`
}

type playerMatchesResponse struct {
	Players []playerMatchDTO `json:"players"`
}

type nearbyMatchesResponse struct {
	Matches []nearbyMatchDTO `json:"matches"`
}

func locationToDTO(p *geo.Point) *locationDTO {
	if p == nil {
		return nil
	}
	return &locationDTO{Type: "Point", Coordinates: p.Coordinates()}
}

func positionsToStrings(items []user.Position) []string {
	out := make([]string, 0, len(items))
	for _, p := range items {
		out = append(out, string(p))
	}
	return out
}

func teamToDTO(t team.Team) teamDTO {
	return teamDTO{
		ID:                t.ID,
		Name:              t.Name,
		City:              t.City,
		CaptainID:         t.CaptainID,
		Rating:            t.Rating,
		Location:          locationToDTO(t.Location),
		MemberCount:       len(t.Members),
		RequiredPositions: positionsToStrings(t.RequiredPositions),
		LookingForPlayers: t.LookingForPlayers,
	}
}

func teamMatchesToDTO(items []usecase.TeamMatch) teamMatchesResponse {
	out := make([]teamMatchDTO, 0, len(items))
	for _, item := range items {
		out = append(out, teamMatchDTO{
			Team:       teamToDTO(item.Team),
			Score:      item.Score,
			MatchScore: item.MatchScore,
		})
	}
	return teamMatchesResponse{Matches: out}
}

func playerMatchesToDTO(items []usecase.PlayerMatch) playerMatchesResponse {
	out := make([]playerMatchDTO, 0, len(items))
	for _, item := range items {
		out = append(out, playerMatchDTO{
			Player: playerDTO{
				ID:                 item.Player.ID,
				Name:               item.Player.Name,
				AvatarURL:          item.Player.AvatarURL,
				SkillRating:        item.Player.SkillRating,
				Location:           locationToDTO(item.Player.Location),
				PreferredPositions: positionsToStrings(item.Player.PreferredPositions),
			},
			Score:      item.Score,
			MatchScore: item.MatchScore,
		})
	}
	return playerMatchesResponse{Players: out}
}

func timeSlotsToDTO(result usecase.TimeSlotResult) timeSlotsDTO {
	out := timeSlotsDTO{
		Date:            result.Date.Format(time.DateOnly),
		Recommendations: make([]slotRecommendationDTO, 0, len(result.Recommendations)),
		Message:         result.Message,
	}
	for _, item := range result.Recommendations {
		out.Recommendations = append(out.Recommendations, slotRecommendationDTO{
			StartTime: item.StartTime,
			EndTime:   item.EndTime,
			Score:     item.Score,
			Reason:    item.Reason,
		})
	}
	return out
}

func matchTeamToDTO(ref match.TeamRef) matchTeamDTO {
	return matchTeamDTO{ID: ref.ID, Name: ref.Name, Rating: ref.Rating}
}

func nearbyMatchesToDTO(items []usecase.NearbyMatch) nearbyMatchesResponse {
	out := make([]nearbyMatchDTO, 0, len(items))
	for _, item := range items {
		m := item.Match
		out = append(out, nearbyMatchDTO{
			ID:    m.ID,
			Team1: matchTeamToDTO(m.Team1),
			Team2: matchTeamToDTO(m.Team2),
			Turf: matchTurfDTO{
				ID:       m.Turf.ID,
				Name:     m.Turf.Name,
				Location: locationToDTO(m.Turf.Location),
			},
			Date:       m.Date.UTC().Format(time.RFC3339),
			StartTime:  m.StartTime,
			EndTime:    m.EndTime,
			MatchType:  m.MatchType,
			Format:     m.Format,
			DistanceKm: item.DistanceKm,
			MatchScore: item.MatchScore,
		})
	}
	return nearbyMatchesResponse{Matches: out}
}
