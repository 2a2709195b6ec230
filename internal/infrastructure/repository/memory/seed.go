package memory

import (
	"time"

	"github.com/riskibarqy/turf-matchmaking/internal/domain/booking"
	"github.com/riskibarqy/turf-matchmaking/internal/domain/geo"
	"github.com/riskibarqy/turf-matchmaking/internal/domain/match"
	"github.com/riskibarqy/turf-matchmaking/internal/domain/team"
	"github.com/riskibarqy/turf-matchmaking/internal/domain/turf"
	"github.com/riskibarqy/turf-matchmaking/internal/domain/user"
)

const (
	TurfIDShivajiPark = "turf-shivaji-park"
	TurfIDPowaiArena  = "turf-powai-arena"
)

var (
	pointDadar   = geo.Point{Lng: 72.8397, Lat: 19.0176}
	pointPowai   = geo.Point{Lng: 72.9051, Lat: 19.1176}
	pointAndheri = geo.Point{Lng: 72.8697, Lat: 19.1136}
	pointThane   = geo.Point{Lng: 72.9781, Lat: 19.2183}
	pointPune    = geo.Point{Lng: 73.8567, Lat: 18.5204}
)

func at(p geo.Point) *geo.Point {
	return &p
}

func SeedUsers() []user.User {
	return []user.User{
		{ID: "usr-aarav", Name: "Aarav Shah", Role: user.RolePlayer, SkillRating: 1040, Location: at(pointDadar), PreferredPositions: []user.Position{user.PositionBatsman}},
		{ID: "usr-vihaan", Name: "Vihaan Rao", Role: user.RolePlayer, SkillRating: 980, Location: at(pointAndheri), PreferredPositions: []user.Position{user.PositionBowler}},
		{ID: "usr-ishaan", Name: "Ishaan Kulkarni", Role: user.RolePlayer, SkillRating: 1110, Location: at(pointPowai), PreferredPositions: []user.Position{user.PositionAllRounder, user.PositionBowler}},
		{ID: "usr-kabir", Name: "Kabir Mehta", Role: user.RolePlayer, SkillRating: 920, PreferredPositions: []user.Position{user.PositionWicketKeeper}},
		{ID: "usr-reyansh", Name: "Reyansh Iyer", Role: user.RolePlayer, SkillRating: 1010, Location: at(pointThane), PreferredPositions: []user.Position{user.PositionFielder, user.PositionBatsman}},
		{ID: "usr-anaya", Name: "Anaya Desai", Role: user.RolePlayer, SkillRating: 1190, Location: at(pointPune), PreferredPositions: []user.Position{user.PositionBowler}},
		{ID: "usr-diya", Name: "Diya Nair", Role: user.RolePlayer, SkillRating: 1000, Location: at(pointDadar), PreferredPositions: []user.Position{user.PositionBatsman, user.PositionWicketKeeper}},
		{ID: "usr-owner", Name: "Rohan Patil", Role: user.RoleTurfOwner, SkillRating: user.DefaultSkillRating, Location: at(pointDadar)},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{
			ID: "team-dadar-strikers", Name: "Dadar Strikers", City: "Mumbai", CaptainID: "usr-aarav",
			Rating: 1020, Location: at(pointDadar), Active: true, LookingForPlayers: true,
			Members:           []team.Member{{UserID: "usr-aarav", Role: team.MemberRoleCaptain}, {UserID: "usr-diya", Role: team.MemberRolePlayer}},
			RequiredPositions: []user.Position{user.PositionBowler, user.PositionWicketKeeper},
		},
		{
			ID: "team-powai-panthers", Name: "Powai Panthers", City: "Mumbai", CaptainID: "usr-ishaan",
			Rating: 1080, Location: at(pointPowai), Active: true,
			Members: []team.Member{{UserID: "usr-ishaan", Role: team.MemberRoleCaptain}},
		},
		{
			ID: "team-andheri-avengers", Name: "Andheri Avengers", City: "Mumbai", CaptainID: "usr-vihaan",
			Rating: 960, Location: at(pointAndheri), Active: true,
			Members: []team.Member{{UserID: "usr-vihaan", Role: team.MemberRoleCaptain}},
		},
		{
			ID: "team-nomads", Name: "Sunday Nomads", City: "Mumbai", CaptainID: "usr-kabir",
			Rating: 1000, Active: true,
			Members: []team.Member{{UserID: "usr-kabir", Role: team.MemberRoleCaptain}},
		},
		{
			ID: "team-thane-titans", Name: "Thane Titans", City: "Thane", CaptainID: "usr-reyansh",
			Rating: 1250, Location: at(pointThane), Active: false,
			Members: []team.Member{{UserID: "usr-reyansh", Role: team.MemberRoleCaptain}},
		},
		{
			ID: "team-pune-pacers", Name: "Pune Pacers", City: "Pune", CaptainID: "usr-anaya",
			Rating: 1150, Location: at(pointPune), Active: true,
			Members: []team.Member{{UserID: "usr-anaya", Role: team.MemberRoleCaptain}},
		},
	}
}

// SeedTurfs publishes a week of hourly slots starting at now's day.
func SeedTurfs(now time.Time) []turf.Turf {
	return []turf.Turf{
		{
			ID: TurfIDShivajiPark, Name: "Shivaji Park Nets", OwnerID: "usr-owner",
			Location: pointDadar, BasePrice: 1200, Active: true,
			Availability: weekOfSlots(now, 6, 22, map[string]bool{"19:00": true}),
		},
		{
			ID: TurfIDPowaiArena, Name: "Powai Lakeside Arena", OwnerID: "usr-owner",
			Location: pointPowai, BasePrice: 1500, Active: true,
			Availability: weekOfSlots(now, 7, 23, nil),
		},
	}
}

func SeedBookings(now time.Time) []booking.Booking {
	day := startOfDay(now)
	return []booking.Booking{
		{
			ID: "bkg-001", UserID: "usr-aarav", TurfID: TurfIDShivajiPark, BookingDate: day.AddDate(0, 0, -7),
			Slots: []booking.SlotRef{{StartTime: "18:00", EndTime: "19:00"}}, TotalAmount: 1200,
			Status: booking.StatusConfirmed, CreatedAt: now.AddDate(0, 0, -9),
		},
		{
			ID: "bkg-002", UserID: "usr-aarav", TurfID: TurfIDShivajiPark, BookingDate: day.AddDate(0, 0, -3),
			Slots: []booking.SlotRef{{StartTime: "07:00", EndTime: "08:00"}}, TotalAmount: 1200,
			Status: booking.StatusCompleted, CreatedAt: now.AddDate(0, 0, -4),
		},
		{
			ID: "bkg-003", UserID: "usr-diya", TurfID: TurfIDShivajiPark, BookingDate: day.AddDate(0, 0, -2),
			Slots: []booking.SlotRef{{StartTime: "20:00", EndTime: "21:00"}, {StartTime: "21:00", EndTime: "22:00"}}, TotalAmount: 2400,
			Status: booking.StatusConfirmed, CreatedAt: now.AddDate(0, 0, -3),
		},
		{
			ID: "bkg-004", UserID: "usr-ishaan", TurfID: TurfIDPowaiArena, BookingDate: day.AddDate(0, 0, -1),
			Slots: []booking.SlotRef{{StartTime: "18:00", EndTime: "19:00"}}, TotalAmount: 1500,
			Status: booking.StatusConfirmed, CreatedAt: now.AddDate(0, 0, -2),
		},
	}
}

func SeedMatches(now time.Time) []match.Match {
	day := startOfDay(now)
	shivaji := match.TurfRef{ID: TurfIDShivajiPark, Name: "Shivaji Park Nets", Location: at(pointDadar)}
	powai := match.TurfRef{ID: TurfIDPowaiArena, Name: "Powai Lakeside Arena", Location: at(pointPowai)}

	return []match.Match{
		{
			ID:    "mch-001",
			Team1: match.TeamRef{ID: "team-dadar-strikers", Name: "Dadar Strikers", Rating: 1020},
			Team2: match.TeamRef{ID: "team-andheri-avengers", Name: "Andheri Avengers", Rating: 960},
			Turf:  shivaji, Date: day.AddDate(0, 0, 2).Add(18 * time.Hour), StartTime: "18:00", EndTime: "20:00",
			Status: match.StatusScheduled, MatchType: "friendly", Format: "T10",
		},
		{
			ID:    "mch-002",
			Team1: match.TeamRef{ID: "team-powai-panthers", Name: "Powai Panthers", Rating: 1080},
			Team2: match.TeamRef{ID: "team-nomads", Name: "Sunday Nomads", Rating: 1000},
			Turf:  powai, Date: day.AddDate(0, 0, 3).Add(7 * time.Hour), StartTime: "07:00", EndTime: "09:00",
			Status: match.StatusScheduled, MatchType: "league", Format: "T20",
		},
		{
			ID:    "mch-003",
			Team1: match.TeamRef{ID: "team-dadar-strikers", Name: "Dadar Strikers", Rating: 1020},
			Team2: match.TeamRef{ID: "team-powai-panthers", Name: "Powai Panthers", Rating: 1080},
			Turf:  shivaji, Date: day.AddDate(0, 0, -1).Add(18 * time.Hour), StartTime: "18:00", EndTime: "20:00",
			Status: match.StatusCompleted, MatchType: "friendly", Format: "T10",
		},
	}
}

func weekOfSlots(now time.Time, fromHour, toHour int, booked map[string]bool) []turf.DayRecord {
	day := startOfDay(now)
	out := make([]turf.DayRecord, 0, 7)
	for i := 0; i < 7; i++ {
		slots := make([]turf.Slot, 0, toHour-fromHour)
		for h := fromHour; h < toHour; h++ {
			start := time.Date(2000, 1, 1, h, 0, 0, 0, time.UTC).Format("15:04")
			end := time.Date(2000, 1, 1, h+1, 0, 0, 0, time.UTC).Format("15:04")
			slots = append(slots, turf.Slot{StartTime: start, EndTime: end, IsBooked: booked[start]})
		}
		out = append(out, turf.DayRecord{Date: day.AddDate(0, 0, i), Slots: slots})
	}
	return out
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
