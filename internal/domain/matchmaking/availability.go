package matchmaking

import "github.com/riskibarqy/turf-matchmaking/internal/domain/team"

// AvailabilityStubScore is the fixed availability term used until real
// schedule overlap is computed.
const AvailabilityStubScore = 0.7

// AvailabilityEstimator scores how well two teams' schedules overlap, in [0,1].
type AvailabilityEstimator interface {
	Estimate(a, b team.Team) float64
	// Computed reports whether estimates come from real data rather than a stub.
	Computed() bool
}

// StubAvailability returns a constant for every pair.
// TODO: replace with overlap of the teams' booked turf slots once the booking
// store exposes per-team schedules.
type StubAvailability struct {
	Value float64
}

func (s StubAvailability) Estimate(_, _ team.Team) float64 {
	return clamp01(s.Value)
}

func (StubAvailability) Computed() bool {
	return false
}
