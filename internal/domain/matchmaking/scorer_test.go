package matchmaking

import (
	"math"
	"testing"

	"github.com/riskibarqy/turf-matchmaking/internal/domain/geo"
	"github.com/riskibarqy/turf-matchmaking/internal/domain/match"
	"github.com/riskibarqy/turf-matchmaking/internal/domain/team"
	"github.com/riskibarqy/turf-matchmaking/internal/domain/user"
)

func origin() *geo.Point {
	return &geo.Point{Lng: 0, Lat: 0}
}

func TestTeamSimilarity_WorkedExamples(t *testing.T) {
	scorer := NewScorer(DefaultConfig())

	tests := []struct {
		name string
		a    team.Team
		b    team.Team
		opts TeamScoreOptions
		want float64
	}{
		{
			name: "equal rating same point",
			a:    team.Team{ID: "a", Rating: 1000, Location: origin()},
			b:    team.Team{ID: "b", Rating: 1000, Location: origin()},
			opts: TeamScoreOptions{MaxDistanceKm: 50, MaxRatingDiff: 500},
			want: 94.0,
		},
		{
			name: "rating gap clamps to max rating diff",
			a:    team.Team{ID: "a", Rating: 1000, Location: origin()},
			b:    team.Team{ID: "b", Rating: 1600, Location: origin()},
			opts: TeamScoreOptions{MaxDistanceKm: 50, MaxRatingDiff: 500},
			want: 69.0,
		},
		{
			name: "missing location uses neutral distance",
			a:    team.Team{ID: "a", Rating: 1000},
			b:    team.Team{ID: "b", Rating: 1000, Location: origin()},
			opts: TeamScoreOptions{MaxDistanceKm: 50, MaxRatingDiff: 500},
			want: 79.0,
		},
		{
			name: "unset max rating diff uses full band",
			a:    team.Team{ID: "a", Rating: 1000, Location: origin()},
			b:    team.Team{ID: "b", Rating: 1600, Location: origin()},
			opts: TeamScoreOptions{MaxDistanceKm: 50},
			want: 64.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DisplayScore(scorer.TeamSimilarity(tt.a, tt.b, tt.opts))
			if got != tt.want {
				t.Fatalf("TeamSimilarity display=%.1f want=%.1f", got, tt.want)
			}
		})
	}
}

func TestTeamSimilarity_AlwaysInUnitRange(t *testing.T) {
	scorer := NewScorer(DefaultConfig())
	ratings := []float64{0, 500, 1000, 2500, 10000}
	locations := []*geo.Point{nil, origin(), {Lng: 72.87, Lat: 19.07}, {Lng: -74.0, Lat: 40.7}}
	bounds := []TeamScoreOptions{
		{MaxDistanceKm: 50, MaxRatingDiff: 500},
		{MaxDistanceKm: 0, MaxRatingDiff: 0},
		{MaxDistanceKm: 0.2, MaxRatingDiff: 1},
		{MaxDistanceKm: 20000, MaxRatingDiff: 5000},
	}

	for _, ra := range ratings {
		for _, rb := range ratings {
			for _, la := range locations {
				for _, lb := range locations {
					for _, opts := range bounds {
						score := scorer.TeamSimilarity(
							team.Team{Rating: ra, Location: la},
							team.Team{Rating: rb, Location: lb},
							opts,
						)
						if math.IsNaN(score) || score < 0 || score > 1 {
							t.Fatalf("score out of range: %v (ra=%v rb=%v opts=%+v)", score, ra, rb, opts)
						}
					}
				}
			}
		}
	}
}

func TestTeamSimilarity_ZeroDistanceBoundDoesNotDivideByZero(t *testing.T) {
	scorer := NewScorer(DefaultConfig())
	a := team.Team{Rating: 1000, Location: origin()}
	b := team.Team{Rating: 1000, Location: origin()}

	got := DisplayScore(scorer.TeamSimilarity(a, b, TeamScoreOptions{}))
	if got != 94.0 {
		t.Fatalf("expected 94.0 with zero bounds, got %.1f", got)
	}
}

func TestTeamSimilarity_InjectedWeights(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Team = WeightConfig{Skill: 1}
	scorer := NewScorer(cfg)

	got := scorer.TeamSimilarity(
		team.Team{Rating: 1000},
		team.Team{Rating: 1250},
		TeamScoreOptions{MaxDistanceKm: 50, MaxRatingDiff: 500},
	)
	if math.Abs(got-0.75) > 1e-9 {
		t.Fatalf("expected skill-only score 0.75, got %v", got)
	}
}

type fixedAvailability float64

func (f fixedAvailability) Estimate(_, _ team.Team) float64 { return float64(f) }
func (fixedAvailability) Computed() bool { return true }

func TestTeamSimilarity_CustomAvailabilityEstimator(t *testing.T) {
	scorer := NewScorer(DefaultConfig(), WithAvailability(fixedAvailability(0)))
	a := team.Team{Rating: 1000, Location: origin()}
	b := team.Team{Rating: 1000, Location: origin()}

	got := DisplayScore(scorer.TeamSimilarity(a, b, TeamScoreOptions{MaxDistanceKm: 50}))
	if got != 80.0 {
		t.Fatalf("expected 80.0 with zero availability, got %.1f", got)
	}
}

func TestStubAvailability(t *testing.T) {
	stub := StubAvailability{Value: AvailabilityStubScore}
	if stub.Computed() {
		t.Fatalf("stub must not report computed availability")
	}
	if got := stub.Estimate(team.Team{}, team.Team{}); got != 0.7 {
		t.Fatalf("unexpected stub value: %v", got)
	}
}

func TestPlayerFit(t *testing.T) {
	scorer := NewScorer(DefaultConfig())
	squad := team.Team{ID: "t1", Rating: 1000, Location: origin()}

	tests := []struct {
		name   string
		player user.User
		maxKm  float64
		want   float64
	}{
		{
			name:   "same rating same point",
			player: user.User{ID: "p1", SkillRating: 1000, Location: origin()},
			maxKm:  30,
			want:   100.0,
		},
		{
			name:   "rating gap half band without location",
			player: user.User{ID: "p2", SkillRating: 1200},
			maxKm:  30,
			want:   50.0,
		},
		{
			name:   "rating gap beyond band",
			player: user.User{ID: "p3", SkillRating: 500, Location: origin()},
			maxKm:  30,
			want:   40.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DisplayScore(scorer.PlayerFit(tt.player, squad, tt.maxKm))
			if got != tt.want {
				t.Fatalf("PlayerFit display=%.1f want=%.1f", got, tt.want)
			}
		})
	}
}

func TestNearbyMatch(t *testing.T) {
	scorer := NewScorer(DefaultConfig())
	fixture := match.Match{
		ID:    "m1",
		Team1: match.TeamRef{ID: "a", Rating: 900},
		Team2: match.TeamRef{ID: "b", Rating: 1100},
	}

	got := DisplayScore(scorer.NearbyMatch(user.User{SkillRating: 1000}, fixture, 10, 20))
	if got != 80.0 {
		t.Fatalf("expected 80.0, got %.1f", got)
	}

	got = DisplayScore(scorer.NearbyMatch(user.User{SkillRating: 1750}, fixture, 0, 20))
	if got != 40.0 {
		t.Fatalf("expected 40.0 when rating gap exceeds band, got %.1f", got)
	}
}

func TestConfigNormalize_FillsBands(t *testing.T) {
	cfg := Config{}.Normalize()
	if cfg.TeamSkillBand != 1000 || cfg.PlayerSkillBand != 400 || cfg.NearbySkillBand != 500 {
		t.Fatalf("unexpected bands after normalize: %+v", cfg)
	}
	if cfg.Team != (WeightConfig{}) {
		t.Fatalf("expected weights to be kept as given, got %+v", cfg.Team)
	}
}
