package usecase

import "time"

// RankingRecorder observes completed ranking calls.
type RankingRecorder interface {
	ObserveRanking(operation string, candidates, returned int, elapsed time.Duration, err error)
}

type nopRecorder struct{}

func (nopRecorder) ObserveRanking(string, int, int, time.Duration, error) {}

func recorderOrNop(r RankingRecorder) RankingRecorder {
	if r == nil {
		return nopRecorder{}
	}
	return r
}
