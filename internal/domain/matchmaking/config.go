package matchmaking

// WeightConfig weights the three team-versus-team sub-scores.
type WeightConfig struct {
	Skill        float64
	Distance     float64
	Availability float64
}

// FitWeights weights two-factor scores (player fit, nearby matches).
type FitWeights struct {
	Skill    float64
	Distance float64
}

// SlotWeights weights the time slot signals.
type SlotWeights struct {
	Preference float64
	Popularity float64
	TimeOfDay  float64
}

// Config holds every tunable of the scoring pipeline.
type Config struct {
	Team   WeightConfig
	Player FitWeights
	Nearby FitWeights
	Slot   SlotWeights

	// Rating differences at or beyond a band score zero on the skill term.
	TeamSkillBand   float64
	PlayerSkillBand float64
	NearbySkillBand float64

	// NeutralDistance is used when one side has no location.
	NeutralDistance float64
}

func DefaultConfig() Config {
	return Config{
		Team:            WeightConfig{Skill: 0.5, Distance: 0.3, Availability: 0.2},
		Player:          FitWeights{Skill: 0.6, Distance: 0.4},
		Nearby:          FitWeights{Skill: 0.6, Distance: 0.4},
		Slot:            SlotWeights{Preference: 0.4, Popularity: 0.3, TimeOfDay: 0.3},
		TeamSkillBand:   1000,
		PlayerSkillBand: 400,
		NearbySkillBand: 500,
		NeutralDistance: 0.5,
	}
}

// Normalize fills zero bands with defaults. Weights are kept as given so a
// caller can switch a term off with a zero weight.
func (c Config) Normalize() Config {
	defaults := DefaultConfig()
	if c.TeamSkillBand <= 0 {
		c.TeamSkillBand = defaults.TeamSkillBand
	}
	if c.PlayerSkillBand <= 0 {
		c.PlayerSkillBand = defaults.PlayerSkillBand
	}
	if c.NearbySkillBand <= 0 {
		c.NearbySkillBand = defaults.NearbySkillBand
	}
	if c.NeutralDistance < 0 || c.NeutralDistance > 1 {
		c.NeutralDistance = defaults.NeutralDistance
	}
	return c
}
